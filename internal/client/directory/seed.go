package directory

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DemoRecords returns the accounts the directory ships with.
func DemoRecords(now time.Time) []CredentialRecord {
	return []CredentialRecord{
		{ID: "1", Email: "demo@example.com", Name: "Demo User", Password: "password123", CreatedAt: now},
		{ID: "2", Email: "test@example.com", Name: "Test User", Password: "test123", CreatedAt: now},
	}
}

// Seed inserts records that are not present yet and returns how many were
// added.
func Seed(ctx context.Context, repo Repository, records ...CredentialRecord) (int, error) {
	added := 0
	for i := range records {
		err := repo.Create(ctx, &records[i])
		switch {
		case err == nil:
			added++
		case errors.Is(err, ErrAlreadyExists):
		default:
			return added, fmt.Errorf("seed %s: %w", records[i].Email, err)
		}
	}
	return added, nil
}
