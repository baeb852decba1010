package history

import "context"

// Repository stores calculation records.
type Repository interface {
	// Insert persists a record.
	Insert(ctx context.Context, record *Record) error

	// ListRecent returns records ordered by creation time, newest first.
	ListRecent(ctx context.Context, opts ListOptions) ([]*Record, error)
}
