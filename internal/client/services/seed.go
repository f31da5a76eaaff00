package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
	"github.com/tailorapp898-afk/tailorsync/internal/client/repositories/records"
)

// SeedLoader populates the store with canned demonstration data. It is the
// last-resort fallback when neither the remote nor the local store has any
// business records, so a fresh install is never blank.
type SeedLoader interface {
	Load(ctx context.Context, ownerID string) error
}

type seedService struct {
	repo records.Repository
	now  func() time.Time
}

func NewSeedService(repo records.Repository) SeedLoader {
	return &seedService{repo: repo, now: time.Now}
}

// sampleData returns the fixed demonstration set: two families, three
// customers referencing them, two orders, one measurement and one template.
// Load pre-marks everything synced and tags it with the owner id.
func sampleData() map[models.Collection][]map[string]any {
	return map[models.Collection][]map[string]any{
		models.CollectionFamilies: {
			{"_id": "family-1", "name": "The Smiths"},
			{"_id": "family-2", "name": "The Jones"},
		},
		models.CollectionCustomers: {
			{"_id": "cust-1", "name": "John Smith", "phone": "123-456-7890", "familyId": "family-1", "address": "123 Main St"},
			{"_id": "cust-2", "name": "Jane Smith", "phone": "123-456-7891", "familyId": "family-1", "address": "123 Main St"},
			{"_id": "cust-3", "name": "Peter Jones", "phone": "987-654-3210", "familyId": "family-2", "address": "456 Oak Ave"},
		},
		models.CollectionOrders: {
			{"_id": "order-1", "customerId": "cust-1", "items": []any{map[string]any{"description": "Shirt", "quantity": 2, "rate": 500}}, "totalAmount": 1000, "status": "delivered"},
			{"_id": "order-2", "customerId": "cust-3", "items": []any{map[string]any{"description": "Pants", "quantity": 1, "rate": 1200}}, "totalAmount": 1200, "status": "pending"},
		},
		models.CollectionMeasurements: {
			{"_id": "meas-1", "customerId": "cust-1", "templateId": "temp-1", "values": map[string]any{"chest": "40", "waist": "34"}},
		},
		models.CollectionTemplates: {
			{"_id": "temp-1", "name": "Standard Shirt", "measurements": []any{
				map[string]any{"field": "chest", "label_en": "Chest", "unit": "inches"},
				map[string]any{"field": "waist", "label_en": "Waist", "unit": "inches"},
			}},
		},
	}
}

// Load clears the business collections and inserts the sample set.
func (s *seedService) Load(ctx context.Context, ownerID string) error {
	for _, col := range models.BusinessCollections() {
		if err := s.repo.Clear(ctx, col); err != nil {
			return fmt.Errorf("failed to clear %s: %w", col, err)
		}
	}

	now := s.now()
	for col, items := range sampleData() {
		for _, fields := range items {
			id, _ := fields["_id"].(string)
			delete(fields, "_id")
			fields["userId"] = ownerID

			rec := &models.Record{
				ID:        id,
				CreatedAt: now,
				UpdatedAt: now,
				Synced:    true,
				Fields:    fields,
			}
			if err := s.repo.Add(ctx, col, rec); err != nil {
				return fmt.Errorf("failed to seed %s/%s: %w", col, id, err)
			}
		}
	}

	return nil
}
