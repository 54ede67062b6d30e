package dashboardControllers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/orbit-aether/models"
	"gorm.io/gorm"
)

type Stats struct {
	TotalRevenue  float64 `json:"totalRevenue"`
	ActiveClients int64   `json:"activeClients"`
	PendingOrders int64   `json:"pendingOrders"`
	LowStockItems int64   `json:"lowStockItems"`
}

// ComputeStats aggregates the headline numbers of the overview screen.
// Revenue counts every order that was not cancelled.
func ComputeStats(ctx context.Context, db *gorm.DB) (Stats, error) {
	var stats Stats
	db = db.WithContext(ctx)

	if err := db.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&stats.TotalRevenue).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to sum revenue: %w", err)
	}
	if err := db.Model(&models.Client{}).
		Where("status = ?", models.ClientStatusActive).
		Count(&stats.ActiveClients).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count clients: %w", err)
	}
	if err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count orders: %w", err)
	}
	if err := db.Model(&models.Product{}).
		Where("status = ? OR stock < ?", models.StockStatusLowStock, models.LowStockThreshold).
		Count(&stats.LowStockItems).Error; err != nil {
		return Stats{}, fmt.Errorf("failed to count low stock: %w", err)
	}
	return stats, nil
}

// GET /dashboard
func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats, err := ComputeStats(c.Request.Context(), db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}
