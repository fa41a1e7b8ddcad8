package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/authflow/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   storage backend: sqlite, memory, redis or s3
//	-p string   SQLite database path
//	-d string   PostgreSQL DSN of the user directory
//	-l string   log level
//	-n int      simulated network delay in milliseconds
//
// os.Args is filtered with flagx.FilterArgs so flags owned by other
// loaders (-c, -config) do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-p", "-d", "-l", "-n"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite, memory, redis, s3)")
	fs.StringVar(&cfg.StoragePath, "p", cfg.StoragePath, "path of the SQLite session database")
	fs.StringVar(&cfg.DirectoryDSN, "d", cfg.DirectoryDSN, "PostgreSQL DSN of the user directory (empty: in-memory)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	networkDelay := fs.Int("n", int(cfg.NetworkDelay.Milliseconds()), "simulated network delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.NetworkDelay = time.Duration(*networkDelay) * time.Millisecond
}
