package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/dmitrijs2005/founderhub/internal/flagx"
)

const envFileName = ".founderhub"

func defaultEnvFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, envFileName)
}

// parseEnv loads the dotenv file (without overriding variables that are
// already set) and then overlays cfg with FOUNDERHUB_* variables.
func parseEnv(cfg *Config, args []string) error {
	envFile := cfg.EnvFile
	if v, ok := os.LookupEnv("FOUNDERHUB_ENV_FILE"); ok {
		envFile = v
	}
	if v := envFileFlag(args); v != "" {
		envFile = v
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	cfg.EnvFile = envFile

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	return nil
}

// envFileFlag pre-scans args for --env-file, which has to be known before
// the flags proper are parsed.
func envFileFlag(args []string) string {
	filtered := flagx.FilterArgs(args, []string{"--env-file", "-env-file"})

	set := flag.NewFlagSet("env-file", flag.ContinueOnError)
	set.SetOutput(io.Discard)
	path := set.String("env-file", "", "")
	if err := set.Parse(filtered); err != nil {
		return ""
	}
	return *path
}
