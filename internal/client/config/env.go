package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name, e.g. AUTHFLOW_STORAGE_BACKEND.
const EnvPrefix = "AUTHFLOW_"

// parseEnv overlays cfg with the environment variables that are set.
// Unset variables leave the current values alone. Panics on malformed
// values, like the other loaders.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
