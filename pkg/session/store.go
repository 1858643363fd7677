package session

import (
	"context"
	"time"
)

// Store defines the interface for session persistence. Implementations keep
// one opaque record per identifier and may expire records on their own via
// the ttl passed to Save.
type Store interface {
	// Load fetches the record for the given identifier. It returns
	// ErrSessionNotFound when the record is absent, expired or cannot be
	// decoded; a corrupt record must never surface as a decode error.
	Load(ctx context.Context, id string) (map[string]any, error)

	// Save upserts the record for the given identifier. A ttl of zero means
	// the record does not expire. The write must be atomic per identifier:
	// a concurrent reader of the same key observes either the previous or
	// the new record, never a partial one.
	Save(ctx context.Context, id string, data map[string]any, ttl time.Duration) error

	// Delete removes the record. Deleting an absent identifier is not an
	// error.
	Delete(ctx context.Context, id string) error
}
