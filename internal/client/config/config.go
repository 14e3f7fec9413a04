package config

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/founderhub/internal/filex"
)

// Config holds runtime settings for the founderhub CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the REST API, without the /api suffix.
//   - RequestTimeout: upper bound for a single HTTP request.
//   - PollInterval: how often "follow" polls a room for new messages.
//   - StoreBackend: where the session is kept: sqlite, bolt or memory.
//   - StorePath: session file; empty means a file in the user config dir.
//   - LogLevel, LogFormat: slog level (debug, info, warn, error) and text|json.
//   - EnvFile: dotenv file read before the environment.
//   - Verbose: forces debug logging (flag only).
type Config struct {
	APIBaseURL     string        `env:"FOUNDERHUB_API_URL,VITE_API_URL"`
	RequestTimeout time.Duration `env:"FOUNDERHUB_REQUEST_TIMEOUT"`
	PollInterval   time.Duration `env:"FOUNDERHUB_POLL_INTERVAL"`
	StoreBackend   string        `env:"FOUNDERHUB_STORE"`
	StorePath      string        `env:"FOUNDERHUB_STORE_PATH"`
	LogLevel       string        `env:"FOUNDERHUB_LOG_LEVEL"`
	LogFormat      string        `env:"FOUNDERHUB_LOG_FORMAT"`
	EnvFile        string
	Verbose        bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000"
	c.RequestTimeout = 15 * time.Second
	c.PollInterval = 3 * time.Second
	c.StoreBackend = "sqlite"
	c.StorePath = ""
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.EnvFile = defaultEnvFile()
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (-c/--config), the dotenv file and the environment. Later sources take
// precedence over earlier ones; command-line flags are applied last by the
// caller through BindFlags.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Level returns the effective log level.
func (c *Config) Level() string {
	if c.Verbose {
		return "debug"
	}
	return c.LogLevel
}

// Validate reports settings no component can work with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api url must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	switch c.StoreBackend {
	case "sqlite", "bolt", "memory":
	default:
		return fmt.Errorf("unknown store %q (want sqlite, bolt or memory)", c.StoreBackend)
	}
	return nil
}

// SessionFile returns StorePath, or the default file for the backend.
func (c *Config) SessionFile() (string, error) {
	if c.StorePath != "" || c.StoreBackend == "memory" {
		return c.StorePath, nil
	}
	name := "session.db"
	if c.StoreBackend == "bolt" {
		name = "session.bolt"
	}
	return filex.DataFile(name)
}
