package directory

import (
	"context"
)

// Open returns an in-memory directory when dsn is empty and a PostgreSQL
// directory otherwise. The close function is never nil.
func Open(ctx context.Context, dsn string) (Repository, func() error, error) {
	if dsn == "" {
		return NewMemoryRepository(), func() error { return nil }, nil
	}
	db, err := OpenPostgres(ctx, dsn)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return NewPostgresRepository(db), db.Close, nil
}
