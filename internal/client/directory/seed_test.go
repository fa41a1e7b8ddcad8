package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoRecords(t *testing.T) {
	now := time.Now()
	recs := DemoRecords(now)
	require.Len(t, recs, 2)

	assert.Equal(t, "1", recs[0].ID)
	assert.Equal(t, "demo@example.com", recs[0].Email)
	assert.Equal(t, "password123", recs[0].Password)
	assert.Equal(t, "Demo User", recs[0].Name)

	assert.Equal(t, "2", recs[1].ID)
	assert.Equal(t, "test@example.com", recs[1].Email)
	assert.Equal(t, "test123", recs[1].Password)
	assert.Equal(t, "Test User", recs[1].Name)
}

func TestSeed_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	added, err := Seed(ctx, repo, DemoRecords(time.Now())...)
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = Seed(ctx, repo, DemoRecords(time.Now())...)
	require.NoError(t, err)
	assert.Equal(t, 0, added)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

type failingRepo struct{ *MemoryRepository }

func (failingRepo) Create(context.Context, *CredentialRecord) error { return errors.New("boom") }

func TestSeed_PropagatesErrors(t *testing.T) {
	_, err := Seed(context.Background(), failingRepo{NewMemoryRepository()}, DemoRecords(time.Now())...)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "seed demo@example.com")
}

func TestOpen_EmptyDSNIsMemory(t *testing.T) {
	repo, closeFn, err := Open(context.Background(), "")
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	_, ok := repo.(*MemoryRepository)
	assert.True(t, ok)
	assert.NoError(t, closeFn())
}
