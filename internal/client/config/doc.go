// Package config loads runtime configuration for the authflow client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with AUTHFLOW_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   storage backend (sqlite, memory, redis, s3)
//	-p string   SQLite database path
//	-d string   PostgreSQL DSN of the user directory
//	-l string   log level
//	-n int      simulated network delay (milliseconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "1s"
// or integer nanoseconds. Keys that are absent keep their previous value:
//
//	{
//	  "storage_backend": "sqlite",
//	  "storage_path": "authflow.db",
//	  "directory_dsn": "",
//	  "seed_demo_users": true,
//	  "network_delay": "1s",
//	  "logout_delay": "800ms",
//	  "log_level": "info"
//	}
//
// # Environment
//
// Every field has an AUTHFLOW_ variable, e.g. AUTHFLOW_STORAGE_BACKEND,
// AUTHFLOW_REDIS_URL, AUTHFLOW_NETWORK_DELAY=250ms. S3 credentials are only
// read from the environment (AUTHFLOW_S3_ACCESS_KEY, AUTHFLOW_S3_SECRET_KEY).
package config
