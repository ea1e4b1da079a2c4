// internal/store/memory.go
//
// In-memory implementation of the input Store interface.
// Submitted puzzle inputs are kept only for the lifetime of the process:
// they exist so a client can upload a blob once and solve several
// day/part combinations against it without re-sending it.
//
// Characteristics:
//   - Stores *Submission objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Errors are returned for missing IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrNotFound is returned by Get for unknown submission IDs.
var ErrNotFound = errors.New("store: submission not found")

// Submission is one uploaded puzzle input blob.
type Submission struct {
	ID        string    `json:"id"`
	Input     string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store defines the persistence interface for submitted inputs.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or updates a submission.
	Save(ctx context.Context, s *Submission) error

	// Get retrieves a submission by ID.
	Get(ctx context.Context, id string) (*Submission, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu   sync.RWMutex           // guards subs map
	subs map[string]*Submission // keyed by Submission.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{subs: make(map[string]*Submission)}
}

// Save adds or updates the submission in the map.
func (m *memory) Save(ctx context.Context, s *Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subs[s.ID] = s
	return nil
}

// Get looks up a submission by ID.
func (m *memory) Get(ctx context.Context, id string) (*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.subs[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}
