// Package config loads runtime configuration for the founderhub CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or --config.
//  3. Optional dotenv file (default ~/.founderhub, --env-file or
//     FOUNDERHUB_ENV_FILE); it never overrides variables already set.
//  4. FOUNDERHUB_* environment variables.
//  5. Command-line flags registered by BindFlags.
//
// # JSON schema
//
// Durations can be strings like "15s" or integer nanoseconds:
//
//	{
//	  "api_url": "https://api.founderhub.example",
//	  "request_timeout": "15s",
//	  "poll_interval": "3s",
//	  "store": "sqlite",
//	  "store_path": "/home/me/.config/founderhub/session.db",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// # Environment
//
//	FOUNDERHUB_API_URL (or VITE_API_URL), FOUNDERHUB_REQUEST_TIMEOUT,
//	FOUNDERHUB_POLL_INTERVAL, FOUNDERHUB_STORE, FOUNDERHUB_STORE_PATH,
//	FOUNDERHUB_LOG_LEVEL, FOUNDERHUB_LOG_FORMAT, FOUNDERHUB_ENV_FILE
package config
