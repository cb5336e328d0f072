package journal

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a journal entry is not found.
var ErrNotFound = errors.New("journal entry not found")

// Store defines persistence operations for the journal.
type Store interface {
	// List returns all entries, newest first.
	List(ctx context.Context) ([]Entry, error)
	// Get returns an entry by popup ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (Entry, error)
	// Save adds an entry, pruning the oldest entries past the configured maximum.
	Save(ctx context.Context, entry Entry) error
	// Clear removes all entries.
	Clear(ctx context.Context) error
	// LastFailed returns the most recent failed entry. Returns ErrNotFound if none.
	LastFailed(ctx context.Context) (Entry, error)
}
