package directory

import (
	"context"
	"sync"
)

// MemoryRepository keeps records for the lifetime of the process. Each
// instance is independent, so tests can build isolated directories.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]CredentialRecord
}

var _ Repository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]CredentialRecord)}
}

func (m *MemoryRepository) Get(ctx context.Context, email string) (*CredentialRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[email]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *MemoryRepository) Exists(ctx context.Context, email string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.records[email]
	return ok, nil
}

func (m *MemoryRepository) Create(ctx context.Context, rec *CredentialRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[rec.Email]; ok {
		return ErrAlreadyExists
	}
	m.records[rec.Email] = *rec
	return nil
}

func (m *MemoryRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}
