package history

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository.
// Used when no database is configured, and in tests.
type InMemoryRepository struct {
	mu      sync.RWMutex
	records []*Record
}

// NewInMemoryRepository creates a new in-memory history repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// Insert persists a record.
func (r *InMemoryRepository) Insert(_ context.Context, record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *record
	r.records = append(r.records, &cpy)
	return nil
}

// ListRecent returns records ordered by creation time, newest first.
func (r *InMemoryRepository) ListRecent(_ context.Context, opts ListOptions) ([]*Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*Record
	for _, rec := range r.records {
		if opts.District != "" && rec.DistrictName != opts.District {
			continue
		}
		cpy := *rec
		records = append(records, &cpy)
	}

	sort.Slice(records, func(a, b int) bool {
		return records[a].CreatedAt.After(records[b].CreatedAt)
	})

	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	if len(records) > limit {
		records = records[:limit]
	}

	return records, nil
}
