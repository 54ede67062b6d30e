package dashboardControllers

import (
	"context"
	"testing"

	"github.com/junaidrashid-git/orbit-aether/database"
	"github.com/junaidrashid-git/orbit-aether/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	db, err := database.OpenOrbit(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateOrbit(db))

	stats, err := ComputeStats(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats, "an empty store reports zeros")

	active := models.Client{Name: "Acme", Status: models.ClientStatusActive}
	require.NoError(t, db.Create(&active).Error)
	require.NoError(t, db.Create(&models.Client{Name: "Dormant", Status: models.ClientStatusInactive}).Error)

	for _, o := range []models.Order{
		{ClientID: active.ID, Amount: 100, Date: "2025-01-01", Status: models.OrderStatusPending},
		{ClientID: active.ID, Amount: 40.5, Date: "2025-01-02", Status: models.OrderStatusCompleted},
		{ClientID: active.ID, Amount: 999, Date: "2025-01-03", Status: models.OrderStatusCancelled},
	} {
		require.NoError(t, db.Create(&o).Error)
	}

	for _, p := range []models.Product{
		{Name: "Plenty", SKU: "P-1", Stock: 50, Status: models.StockStatusInStock},
		{Name: "Few", SKU: "P-2", Stock: 3, Status: models.StockStatusInStock},
		{Name: "Flagged", SKU: "P-3", Stock: 20, Status: models.StockStatusLowStock},
	} {
		require.NoError(t, db.Create(&p).Error)
	}

	stats, err = ComputeStats(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, Stats{
		TotalRevenue:  140.5,
		ActiveClients: 1,
		PendingOrders: 1,
		LowStockItems: 2,
	}, stats)
}
