package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailorapp898-afk/tailorsync/internal/client/models"
)

func TestSeed_ProducesExpectedCounts(t *testing.T) {
	recs, _ := setupRepos(t)
	seeder := NewSeedService(recs)
	ctx := context.Background()

	require.NoError(t, seeder.Load(ctx, "user-42"))

	counts := map[models.Collection]int{
		models.CollectionFamilies:     2,
		models.CollectionCustomers:    3,
		models.CollectionOrders:       2,
		models.CollectionMeasurements: 1,
		models.CollectionTemplates:    1,
		models.CollectionInvoices:     0,
		models.CollectionPayments:     0,
	}
	for col, want := range counts {
		items, err := recs.List(ctx, col)
		require.NoError(t, err)
		assert.Len(t, items, want, "collection %s", col)
	}
}

func TestSeed_RecordsAreSyncedAndOwned(t *testing.T) {
	recs, _ := setupRepos(t)
	seeder := NewSeedService(recs)
	ctx := context.Background()

	require.NoError(t, seeder.Load(ctx, "user-42"))

	for _, col := range models.BusinessCollections() {
		items, err := recs.List(ctx, col)
		require.NoError(t, err)
		for _, it := range items {
			assert.True(t, it.Synced, "%s/%s", col, it.ID)
			assert.Equal(t, "user-42", it.Fields["userId"], "%s/%s", col, it.ID)
		}
	}
}

func TestSeed_Relationships(t *testing.T) {
	recs, _ := setupRepos(t)
	seeder := NewSeedService(recs)
	ctx := context.Background()

	require.NoError(t, seeder.Load(ctx, "user-42"))

	families := map[string]int{}
	customers, err := recs.List(ctx, models.CollectionCustomers)
	require.NoError(t, err)
	for _, c := range customers {
		fid, _ := c.Fields["familyId"].(string)
		families[fid]++
	}
	assert.Equal(t, map[string]int{"family-1": 2, "family-2": 1}, families)

	orders, err := recs.List(ctx, models.CollectionOrders)
	require.NoError(t, err)
	orderCustomers := map[string]struct{}{}
	for _, o := range orders {
		cid, _ := o.Fields["customerId"].(string)
		orderCustomers[cid] = struct{}{}
	}
	assert.Equal(t, map[string]struct{}{"cust-1": {}, "cust-3": {}}, orderCustomers)

	meas, err := recs.Get(ctx, models.CollectionMeasurements, "meas-1")
	require.NoError(t, err)
	require.NotNil(t, meas)
	assert.Equal(t, "cust-1", meas.Fields["customerId"])
	assert.Equal(t, "temp-1", meas.Fields["templateId"])
}

func TestSeed_ReloadIsIdempotent(t *testing.T) {
	recs, _ := setupRepos(t)
	seeder := NewSeedService(recs)
	ctx := context.Background()

	require.NoError(t, seeder.Load(ctx, "user-42"))
	require.NoError(t, seeder.Load(ctx, "user-42"))

	customers, err := recs.List(ctx, models.CollectionCustomers)
	require.NoError(t, err)
	assert.Len(t, customers, 3, "re-seeding must not duplicate records")
}
