package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/authflow/internal/flagx"
	"github.com/dmitrijs2005/authflow/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Pointer fields distinguish "absent" from a zero value so a file only
// overrides what it mentions. Durations accept "1s" strings or integer
// nanoseconds.
type JsonConfig struct {
	StorageBackend *string         `json:"storage_backend"`
	StoragePath    *string         `json:"storage_path"`
	RedisURL       *string         `json:"redis_url"`
	RedisPrefix    *string         `json:"redis_prefix"`
	S3Bucket       *string         `json:"s3_bucket"`
	S3Region       *string         `json:"s3_region"`
	S3Endpoint     *string         `json:"s3_endpoint"`
	S3Prefix       *string         `json:"s3_prefix"`
	DirectoryDSN   *string         `json:"directory_dsn"`
	SeedDemoUsers  *bool           `json:"seed_demo_users"`
	NetworkDelay   *timex.Duration `json:"network_delay"`
	LogoutDelay    *timex.Duration `json:"logout_delay"`
	TokenSecret    *string         `json:"token_secret"`
	LogLevel       *string         `json:"log_level"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag nothing is loaded. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.StorageBackend, jc.StorageBackend)
	setString(&cfg.StoragePath, jc.StoragePath)
	setString(&cfg.RedisURL, jc.RedisURL)
	setString(&cfg.RedisPrefix, jc.RedisPrefix)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3Endpoint, jc.S3Endpoint)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.DirectoryDSN, jc.DirectoryDSN)
	setString(&cfg.TokenSecret, jc.TokenSecret)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.SeedDemoUsers != nil {
		cfg.SeedDemoUsers = *jc.SeedDemoUsers
	}
	if jc.NetworkDelay != nil {
		cfg.NetworkDelay = jc.NetworkDelay.Duration
	}
	if jc.LogoutDelay != nil {
		cfg.LogoutDelay = jc.LogoutDelay.Duration
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
