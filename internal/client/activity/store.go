package activity

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/releasedrop/internal/client/models"
)

// Store persists the whole log as one ordered sequence, oldest first.
type Store interface {
	// ReadAll returns every persisted entry, oldest first.
	ReadAll(ctx context.Context) ([]models.ActivityLogEntry, error)

	// Overwrite replaces the persisted sequence with entries.
	Overwrite(ctx context.Context, entries []models.ActivityLogEntry) error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.Mutex
	entries []models.ActivityLogEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) ReadAll(_ context.Context) ([]models.ActivityLogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries), nil
}

func (s *MemoryStore) Overwrite(_ context.Context, entries []models.ActivityLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = slices.Clone(entries)
	return nil
}
