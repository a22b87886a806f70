package ledger

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps entries in process memory. It is used for local runs and tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries []Entry
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Append adds entry to the end of the ledger.
func (m *MemoryStore) Append(_ context.Context, entry Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

// GetByID returns ErrNotSupported.
func (m *MemoryStore) GetByID(context.Context, string) (*Entry, error) {
	return nil, ErrNotSupported
}

// ListByDateRange returns ErrNotSupported.
func (m *MemoryStore) ListByDateRange(context.Context, time.Time, time.Time) ([]Entry, error) {
	return nil, ErrNotSupported
}

// Entries returns a copy of every appended entry in order.
func (m *MemoryStore) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

var _ Store = (*MemoryStore)(nil)
