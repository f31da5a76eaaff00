package records

import (
	"context"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
)

// Repository describes CRUD and bulk operations over the collection-partitioned
// record store. Implementations are backed by a local SQLite database.
//
// Writes never interpret the Synced flag: dirty-tracking policy belongs to the
// service layer. Every method validates the collection name before touching
// storage and returns common.ErrUnknownCollection otherwise.
type Repository interface {
	// Add inserts a new record. Returns common.ErrDuplicateKey when the id
	// already exists in the collection.
	Add(ctx context.Context, col models.Collection, rec *models.Record) error

	// Get returns a record by id, or (nil, nil) when absent. Absence is not
	// an error: callers routinely probe before deciding between Add and Update.
	Get(ctx context.Context, col models.Collection, id string) (*models.Record, error)

	// List returns a snapshot of every record in the collection. Order is
	// implementation-defined; callers needing order must sort.
	List(ctx context.Context, col models.Collection) ([]models.Record, error)

	// Update upserts the record: creates it when missing, overwrites when
	// present.
	Update(ctx context.Context, col models.Collection, rec *models.Record) error

	// Remove deletes by id. Removing an absent id is a no-op.
	Remove(ctx context.Context, col models.Collection, id string) error

	// Clear empties one collection.
	Clear(ctx context.Context, col models.Collection) error

	// ClearAll empties every known collection.
	ClearAll(ctx context.Context) error

	// Replace clears the collection and inserts items in one transaction:
	// either the collection holds exactly items afterwards, or it is untouched.
	Replace(ctx context.Context, col models.Collection, items []models.Record) error

	// Count returns the total number of records across the given collections.
	Count(ctx context.Context, cols ...models.Collection) (int, error)
}
