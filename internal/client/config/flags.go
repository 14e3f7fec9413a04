package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the command-line flags on fs, writing straight into
// cfg. The current cfg values become the flag defaults, so a flag only
// changes a setting when it is given.
//
// Supported flags:
//
//	-a, --api-url string          REST API base URL
//	-t, --timeout duration        per-request timeout
//	-i, --poll-interval duration  room polling interval
//	    --store string            session store: sqlite, bolt or memory
//	    --store-path string       session file
//	    --log-level string        debug, info, warn or error
//	    --log-format string       text or json
//	-v, --verbose                 shorthand for --log-level=debug
//	-c, --config string           JSON config file (read before the flags)
//	    --env-file string         dotenv file (read before the flags)
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.APIBaseURL, "api-url", "a", cfg.APIBaseURL, "REST API base URL")
	fs.DurationVarP(&cfg.RequestTimeout, "timeout", "t", cfg.RequestTimeout, "per-request timeout")
	fs.DurationVarP(&cfg.PollInterval, "poll-interval", "i", cfg.PollInterval, "room polling interval")
	fs.StringVar(&cfg.StoreBackend, "store", cfg.StoreBackend, "session store: sqlite, bolt or memory")
	fs.StringVar(&cfg.StorePath, "store-path", cfg.StorePath, "session file (default: user config dir)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "shorthand for --log-level=debug")

	// read in LoadConfig; declared so they show up in help and parse cleanly
	fs.StringP("config", "c", "", "JSON config file")
	fs.String("env-file", cfg.EnvFile, "dotenv file")
}
