package summary

import (
	"context"
	"sync"
	"time"
)

// Record is a stored page summary.
type Record struct {
	ID        string    `json:"id"`
	Lang      string    `json:"lang"`
	Title     string    `json:"title"`
	Extract   string    `json:"extract"`
	FetchedAt time.Time `json:"fetched_at"`
}

// Store persists summary records keyed by content-variant language and title.
type Store interface {
	// Get retrieves a record. Returns ErrNotFound when absent.
	Get(ctx context.Context, lang, title string) (Record, error)

	// Put stores a record under its Lang and Title.
	Put(ctx context.Context, rec Record) error

	// Close releases resources. Operations on a closed store return ErrClosed.
	Close() error
}

// MemoryStore is an in-memory Store. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
	closed  bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func storeKey(lang, title string) string {
	return lang + ":" + title
}

func (s *MemoryStore) Get(_ context.Context, lang, title string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Record{}, ErrClosed
	}

	rec, ok := s.records[storeKey(lang, title)]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (s *MemoryStore) Put(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.records[storeKey(rec.Lang, rec.Title)] = rec
	return nil
}

// Close is idempotent.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

var _ Store = (*MemoryStore)(nil)
