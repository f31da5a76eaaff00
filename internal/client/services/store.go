// Package services implements the client's business layer: CRUD with dirty
// tracking, the push/pull sync engine, the sample-data seeder and session
// handling.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/records"
)

// StoreService is the UI-facing record store. Every mutation that enters
// through this interface is a local change: Add and Update always write the
// record with Synced=false so the next push picks it up. Only the sync engine
// writes Synced=true, and it bypasses this service to do so.
type StoreService interface {
	// Add inserts a new record, assigning a collision-resistant id when the
	// record has none and stamping CreatedAt/UpdatedAt.
	Add(ctx context.Context, col models.Collection, rec *models.Record) error

	// Get returns a record by id, or (nil, nil) when absent.
	Get(ctx context.Context, col models.Collection, id string) (*models.Record, error)

	// List returns a snapshot of the collection. No order is guaranteed;
	// callers sort when they need one.
	List(ctx context.Context, col models.Collection) ([]models.Record, error)

	// Update upserts the record and re-stamps UpdatedAt.
	Update(ctx context.Context, col models.Collection, rec *models.Record) error

	// Delete removes by id. No cascading: records referencing the deleted id
	// are left untouched, referential cleanup is the caller's job.
	Delete(ctx context.Context, col models.Collection, id string) error

	// BulkReplace swaps every known collection's contents for the snapshot,
	// forcing Synced=true on every inserted record. Collections absent from
	// the snapshot are cleared to empty. Each collection is replaced in its
	// own transaction; collections are independent of one another.
	BulkReplace(ctx context.Context, snapshot map[models.Collection][]models.Record) error

	// CountBusiness counts records across every collection except users.
	CountBusiness(ctx context.Context) (int, error)

	// ClearAll empties every collection. Used on logout.
	ClearAll(ctx context.Context) error
}

type storeService struct {
	repo records.Repository
	now  func() time.Time
}

func NewStoreService(repo records.Repository) StoreService {
	return &storeService{repo: repo, now: time.Now}
}

func (s *storeService) Add(ctx context.Context, col models.Collection, rec *models.Record) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := s.now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	rec.Synced = false

	if err := s.repo.Add(ctx, col, rec); err != nil {
		return fmt.Errorf("failed to add record: %w", err)
	}
	return nil
}

func (s *storeService) Get(ctx context.Context, col models.Collection, id string) (*models.Record, error) {
	return s.repo.Get(ctx, col, id)
}

func (s *storeService) List(ctx context.Context, col models.Collection) ([]models.Record, error) {
	return s.repo.List(ctx, col)
}

func (s *storeService) Update(ctx context.Context, col models.Collection, rec *models.Record) error {
	rec.UpdatedAt = s.now()
	rec.Synced = false

	if err := s.repo.Update(ctx, col, rec); err != nil {
		return fmt.Errorf("failed to update record: %w", err)
	}
	return nil
}

func (s *storeService) Delete(ctx context.Context, col models.Collection, id string) error {
	return s.repo.Remove(ctx, col, id)
}

func (s *storeService) BulkReplace(ctx context.Context, snapshot map[models.Collection][]models.Record) error {
	for _, col := range models.Collections() {
		items := snapshot[col]
		replaced := make([]models.Record, len(items))
		for i, item := range items {
			replaced[i] = item.Clone()
			replaced[i].Synced = true
		}
		if err := s.repo.Replace(ctx, col, replaced); err != nil {
			return fmt.Errorf("failed to replace %s: %w", col, err)
		}
	}
	return nil
}

func (s *storeService) CountBusiness(ctx context.Context) (int, error) {
	return s.repo.Count(ctx, models.BusinessCollections()...)
}

func (s *storeService) ClearAll(ctx context.Context) error {
	return s.repo.ClearAll(ctx)
}
