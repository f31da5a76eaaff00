package settings

import "context"

// Repository is a small key/value store for client-side scalars that live
// outside the record collections: the last successful sync timestamp, the
// stored session token.
type Repository interface {
	// Get returns the stored value, or "" when the key is absent.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the value, overwriting any previous one.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}

// Well-known setting keys.
const (
	KeyLastSyncTimestamp = "lastSyncTimestamp"
	KeySessionToken      = "sessionToken"
	KeyUserID            = "userId"
)
