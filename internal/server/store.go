package server

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"guestwall/internal/shared"
)

// Store is the persistence gateway for guestbook entries.
type Store interface {
	// Insert persists one entry and returns the storage-assigned id.
	Insert(ctx context.Context, e *shared.Entry) (string, error)
	// ListAll returns every entry, newest first.
	ListAll(ctx context.Context) ([]shared.Entry, error)
}

// MemoryStore keeps entries in process memory. Handler tests run against it
// as a substitutable Store.
type MemoryStore struct {
	mu      sync.Mutex
	nextID  int
	entries []shared.Entry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Insert(ctx context.Context, e *shared.Entry) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := fmt.Sprintf("mem-%d", s.nextID)
	rec := *e
	rec.ID = id
	s.entries = append(s.entries, rec)
	return id, nil
}

func (s *MemoryStore) ListAll(ctx context.Context) ([]shared.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.Entry, len(s.entries))
	copy(out, s.entries)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
