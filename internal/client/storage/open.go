package storage

import (
	"context"
	"fmt"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendS3     = "s3"
)

// Options selects and configures a backend.
type Options struct {
	Backend    string
	SQLitePath string

	RedisURL    string
	RedisPrefix string

	S3Bucket string
	S3Prefix string
	S3       S3Options
}

// Open builds the configured Store. The returned close function releases
// backend resources and is never nil.
func Open(ctx context.Context, o Options) (Store, func() error, error) {
	noop := func() error { return nil }

	switch o.Backend {
	case BackendSQLite, "":
		s, err := OpenSQLite(ctx, o.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case BackendMemory:
		return NewMemoryStore(), noop, nil

	case BackendRedis:
		client, err := NewRedisClient(ctx, o.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		s := NewRedisStore(client, o.RedisPrefix)
		return s, s.Close, nil

	case BackendS3:
		if o.S3Bucket == "" {
			return nil, noop, fmt.Errorf("s3: bucket is required")
		}
		client, err := NewS3Client(ctx, o.S3)
		if err != nil {
			return nil, noop, err
		}
		return NewS3Store(client, o.S3Bucket, o.S3Prefix), noop, nil
	}

	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownBackend, o.Backend)
}
