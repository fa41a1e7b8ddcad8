// Package storage provides the durable key/value store that holds the
// persisted session. Keys and values are strings; a missing key is reported
// as ok == false with a nil error.
//
// Backends:
//   - SQLiteStore: local file (default), schema managed by goose.
//   - MemoryStore: process-local map, used by tests and the "memory" backend.
//   - RedisStore:  a Redis database, optionally namespaced by a key prefix.
//   - S3Store:     one object per key in an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is an asynchronous get/set/remove key-value store. Implementations
// must tolerate Remove of a key that does not exist.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Batcher is implemented by stores that can apply several writes at once.
// SQLite and Redis apply a batch atomically.
type Batcher interface {
	SetMany(ctx context.Context, values map[string]string) error
	RemoveMany(ctx context.Context, keys ...string) error
}

// Entry is one key/value pair of an ordered write.
type Entry struct {
	Key   string
	Value string
}

// SetAll writes entries through Batcher when s supports it. Otherwise it
// writes them one by one in the given order, so callers put the key that
// commits the batch last. On failure the keys already written are put back
// to their previous values.
func SetAll(ctx context.Context, s Store, entries ...Entry) error {
	if b, ok := s.(Batcher); ok {
		values := make(map[string]string, len(entries))
		for _, e := range entries {
			values[e.Key] = e.Value
		}
		return b.SetMany(ctx, values)
	}

	keys := make([]string, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
	}
	prev, err := snapshot(ctx, s, keys)
	if err != nil {
		return err
	}
	for i, e := range entries {
		if err := s.Set(ctx, e.Key, e.Value); err != nil {
			return undo(ctx, s, err, prev[:i])
		}
	}
	return nil
}

// RemoveAll removes keys through Batcher when s supports it. Otherwise it
// removes them one by one in the given order and puts removed keys back if
// a later removal fails.
func RemoveAll(ctx context.Context, s Store, keys ...string) error {
	if b, ok := s.(Batcher); ok {
		return b.RemoveMany(ctx, keys...)
	}

	prev, err := snapshot(ctx, s, keys)
	if err != nil {
		return err
	}
	for i, k := range keys {
		if err := s.Remove(ctx, k); err != nil {
			return undo(ctx, s, err, prev[:i])
		}
	}
	return nil
}

type previous struct {
	key     string
	value   string
	present bool
}

func snapshot(ctx context.Context, s Store, keys []string) ([]previous, error) {
	out := make([]previous, len(keys))
	for i, k := range keys {
		v, ok, err := s.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		out[i] = previous{key: k, value: v, present: ok}
	}
	return out, nil
}

func undo(ctx context.Context, s Store, cause error, prev []previous) error {
	if err := restore(ctx, s, prev); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

// restore undoes writes in reverse order. It runs even when ctx is done.
func restore(ctx context.Context, s Store, prev []previous) error {
	ctx = context.WithoutCancel(ctx)
	var errs []error
	for i := len(prev) - 1; i >= 0; i-- {
		p := prev[i]
		var err error
		if p.present {
			err = s.Set(ctx, p.key, p.value)
		} else {
			err = s.Remove(ctx, p.key)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("restore %s: %w", p.key, err))
		}
	}
	return errors.Join(errs...)
}
