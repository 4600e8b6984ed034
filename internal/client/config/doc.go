// Package config loads runtime configuration for the BookApp CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, optionally read from a .env file (see parseEnv).
//     The file is ".env" unless -env-file names another one.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Environment variables
//
//	BOOKAPP_ENV         dev or prod
//	BOOKAPP_DEV_URL     development backend base URL
//	BOOKAPP_PROD_URL    production backend base URL
//	BOOKAPP_DB          token database path
//	BOOKAPP_LOG_LEVEL   debug, info, warn or error
//
// Supported flags
//
//	-e string   environment (dev or prod)
//	-a string   base URL for the selected environment
//	-d string   token database path
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so it can be either a
// string like "15s" or integer nanoseconds:
//
//	{
//	  "env": "prod",
//	  "dev_url": "http://127.0.0.1:8000",
//	  "prod_url": "https://books.example.com",
//	  "database_path": "bookapp.db",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
//
// BaseURL picks DevURL or ProdURL according to Env.
package config
