package config

import (
	"time"

	"github.com/dmitrijs2005/authflow/internal/client/storage"
)

// Config holds runtime settings for the authflow client.
//
// Storage selects where the session artifact lives; DirectoryDSN selects
// the user directory (empty means in-memory). NetworkDelay and LogoutDelay
// are the simulated latencies of the session service.
type Config struct {
	StorageBackend string `env:"STORAGE_BACKEND"`
	StoragePath    string `env:"STORAGE_PATH"`
	RedisURL       string `env:"REDIS_URL"`
	RedisPrefix    string `env:"REDIS_PREFIX"`
	S3Bucket       string `env:"S3_BUCKET"`
	S3Region       string `env:"S3_REGION"`
	S3Endpoint     string `env:"S3_ENDPOINT"`
	S3Prefix       string `env:"S3_PREFIX"`
	S3AccessKey    string `env:"S3_ACCESS_KEY"`
	S3SecretKey    string `env:"S3_SECRET_KEY"`

	DirectoryDSN  string `env:"DIRECTORY_DSN"`
	SeedDemoUsers bool   `env:"SEED_DEMO_USERS"`

	NetworkDelay time.Duration `env:"NETWORK_DELAY"`
	LogoutDelay  time.Duration `env:"LOGOUT_DELAY"`

	TokenSecret string `env:"TOKEN_SECRET"`
	LogLevel    string `env:"LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.StorageBackend = storage.BackendSQLite
	c.StoragePath = "authflow.db"
	c.RedisPrefix = "authflow:"
	c.S3Region = "us-east-1"
	c.S3Prefix = "authflow"
	c.SeedDemoUsers = true
	c.NetworkDelay = time.Second
	c.LogoutDelay = 800 * time.Millisecond
	c.LogLevel = "info"
}

// StorageOptions translates the storage settings for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:     c.StorageBackend,
		SQLitePath:  c.StoragePath,
		RedisURL:    c.RedisURL,
		RedisPrefix: c.RedisPrefix,
		S3Bucket:    c.S3Bucket,
		S3Prefix:    c.S3Prefix,
		S3: storage.S3Options{
			Region:    c.S3Region,
			Endpoint:  c.S3Endpoint,
			AccessKey: c.S3AccessKey,
			SecretKey: c.S3SecretKey,
		},
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
