package journal

import (
	"sync"
)

// InMemoryStore is a simple, goroutine-safe Store backed by a slice.
// Records are not durable; use SQLiteStore for that.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []*Record
	byID    map[string]*Record
}

// NewInMemoryStore creates a new InMemoryStore.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		byID: make(map[string]*Record),
	}
}

// Ensure InMemoryStore implements Store.
var _ Store = (*InMemoryStore)(nil)

func (s *InMemoryStore) Append(rec *Record) error {
	// Copy so later caller mutations don't reach into the trail.
	copied := *rec

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, &copied)
	s.byID[copied.ID] = &copied
	return nil
}

func (s *InMemoryStore) Get(id string) (*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.byID[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	copied := *rec
	return &copied, nil
}

func (s *InMemoryStore) List(filter Filter) ([]*Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Record
	for _, rec := range s.records {
		if filter.RunID != "" && rec.RunID != filter.RunID {
			continue
		}
		if filter.Destination != "" && rec.Destination != filter.Destination {
			continue
		}
		if filter.Outcome != "" && rec.Outcome != filter.Outcome {
			continue
		}
		copied := *rec
		result = append(result, &copied)
	}

	return result, nil
}
