package client

import (
	"context"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
)

// PushResponse is the backend's answer to a push. Success must be an explicit
// true for the sync engine to mark local records clean; transport-level
// failures are errors, never a false-flagged response.
type PushResponse struct {
	Success   bool                `json:"success"`
	SyncedIDs map[string][]string `json:"syncedIds,omitempty"`
	Message   string              `json:"message,omitempty"`
}

// Session is the result of a successful login.
type Session struct {
	Token  string
	UserID string
}

// Client is the remote authority the sync engine talks to. The token is an
// opaque string injected on every call; implementations must not keep it in
// shared mutable state.
type Client interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Ping checks server liveness without authentication.
	Ping(ctx context.Context) error

	// PushAll submits the full local snapshot. The remote is idempotent under
	// re-submission of already-synced records and echoes client-generated ids.
	PushAll(ctx context.Context, token string, payload map[models.Collection][]models.Record) (*PushResponse, error)

	// PullAll fetches the authoritative full snapshot, keyed by the backend's
	// own collection names (alias normalization is the caller's concern).
	PullAll(ctx context.Context, token string) (map[string][]models.Record, error)
}
