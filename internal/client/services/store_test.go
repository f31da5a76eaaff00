package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
)

func TestStoreAdd_AssignsIDAndMarksDirty(t *testing.T) {
	recs, _ := setupRepos(t)
	store := NewStoreService(recs)
	ctx := context.Background()

	rec := &models.Record{Fields: map[string]any{"name": "John Smith"}}
	require.NoError(t, store.Add(ctx, models.CollectionCustomers, rec))

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.Synced)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := store.Get(ctx, models.CollectionCustomers, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.Synced, "locally created records must start unsynced")
}

func TestStoreAdd_KeepsCallerProvidedID(t *testing.T) {
	recs, _ := setupRepos(t)
	store := NewStoreService(recs)

	rec := &models.Record{ID: "cust-1", Fields: map[string]any{"name": "n"}}
	require.NoError(t, store.Add(context.Background(), models.CollectionCustomers, rec))
	assert.Equal(t, "cust-1", rec.ID)
}

func TestStoreUpdate_FlipsBackToDirty(t *testing.T) {
	recs, _ := setupRepos(t)
	store := NewStoreService(recs).(*storeService)
	ctx := context.Background()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return base }

	rec := &models.Record{ID: "o1", Fields: map[string]any{"status": "pending"}}
	require.NoError(t, store.Add(ctx, models.CollectionOrders, rec))

	// simulate a record the sync engine already confirmed
	rec.Synced = true
	require.NoError(t, recs.Update(ctx, models.CollectionOrders, rec))

	store.now = func() time.Time { return base.Add(time.Hour) }
	rec.Fields["status"] = "delivered"
	require.NoError(t, store.Update(ctx, models.CollectionOrders, rec))

	got, err := store.Get(ctx, models.CollectionOrders, "o1")
	require.NoError(t, err)
	assert.False(t, got.Synced, "a local edit must mark the record unsynced again")
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))
	assert.Equal(t, "delivered", got.Fields["status"])
}

func TestStoreDelete_NoCascade(t *testing.T) {
	recs, _ := setupRepos(t)
	store := NewStoreService(recs)
	ctx := context.Background()

	cust := &models.Record{ID: "cust-1", Fields: map[string]any{"name": "John"}}
	require.NoError(t, store.Add(ctx, models.CollectionCustomers, cust))
	order := &models.Record{ID: "order-1", Fields: map[string]any{"customerId": "cust-1"}}
	require.NoError(t, store.Add(ctx, models.CollectionOrders, order))
	meas := &models.Record{ID: "meas-1", Fields: map[string]any{"customerId": "cust-1"}}
	require.NoError(t, store.Add(ctx, models.CollectionMeasurements, meas))

	require.NoError(t, store.Delete(ctx, models.CollectionCustomers, "cust-1"))

	gotOrder, err := store.Get(ctx, models.CollectionOrders, "order-1")
	require.NoError(t, err)
	assert.NotNil(t, gotOrder, "dependent orders survive a customer delete")

	gotMeas, err := store.Get(ctx, models.CollectionMeasurements, "meas-1")
	require.NoError(t, err)
	assert.NotNil(t, gotMeas)
}

func TestStoreBulkReplace_ForcesSyncedAndClearsAbsent(t *testing.T) {
	recs, _ := setupRepos(t)
	store := NewStoreService(recs)
	ctx := context.Background()

	// pre-existing local data in a collection absent from the snapshot
	stale := &models.Record{ID: "p1", Fields: map[string]any{"amount": 10}}
	require.NoError(t, store.Add(ctx, models.CollectionPayments, stale))

	snapshot := map[models.Collection][]models.Record{
		models.CollectionCustomers: {
			{ID: "cust-1", Synced: false, Fields: map[string]any{"name": "John"}},
		},
	}
	require.NoError(t, store.BulkReplace(ctx, snapshot))

	got, err := store.Get(ctx, models.CollectionCustomers, "cust-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Synced, "pulled records are trusted and marked synced regardless of input")

	payments, err := store.List(ctx, models.CollectionPayments)
	require.NoError(t, err)
	assert.Empty(t, payments, "collections absent from the snapshot are cleared")
}

func TestStoreCountBusiness_ExcludesUsers(t *testing.T) {
	recs, _ := setupRepos(t)
	store := NewStoreService(recs)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, models.CollectionUsers, &models.Record{ID: "u1"}))
	require.NoError(t, store.Add(ctx, models.CollectionCustomers, &models.Record{ID: "c1"}))

	n, err := store.CountBusiness(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
