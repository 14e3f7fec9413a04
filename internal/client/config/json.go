package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/founderhub/internal/flagx"
	"github.com/dmitrijs2005/founderhub/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// It relies on timex.Duration so JSON can specify intervals either as
// strings like "15s" or as integer nanoseconds. Only keys present in the
// file override the current values.
type JsonConfig struct {
	APIBaseURL     string          `json:"api_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	PollInterval   *timex.Duration `json:"poll_interval"`
	StoreBackend   string          `json:"store"`
	StorePath      string          `json:"store_path"`
	LogLevel       string          `json:"log_level"`
	LogFormat      string          `json:"log_format"`
	EnvFile        string          `json:"env_file"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// -c/-config/--config in args. Without the flag it does nothing.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.StoreBackend, jc.StoreBackend)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.EnvFile, jc.EnvFile)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.PollInterval != nil {
		cfg.PollInterval = jc.PollInterval.Duration
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
