package models

import (
	"errors"
	"strings"
)

type StockStatus string

const (
	StockStatusInStock    StockStatus = "In Stock"
	StockStatusLowStock   StockStatus = "Low Stock"
	StockStatusOutOfStock StockStatus = "Out of Stock"
)

// LowStockThreshold is the stock level below which a product counts as low.
const LowStockThreshold = 10

// Product is an inventory item of the back office.
type Product struct {
	ID       uint        `gorm:"primaryKey" json:"id"`
	Name     string      `gorm:"not null" json:"name"`
	SKU      string      `gorm:"column:sku;index" json:"sku"`
	Price    float64     `json:"price"`
	Stock    int         `json:"stock"`
	Category string      `json:"category"`
	Status   StockStatus `gorm:"type:VARCHAR(20)" json:"status"`
}

// StockStatusFor derives the status the inventory screen shows for a stock level.
func StockStatusFor(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOutOfStock
	case stock < LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// ParseStockStatus validates an explicit status. Empty input derives it from stock.
func ParseStockStatus(s string, stock int) (StockStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return StockStatusFor(stock), nil
	case "in stock":
		return StockStatusInStock, nil
	case "low stock":
		return StockStatusLowStock, nil
	case "out of stock":
		return StockStatusOutOfStock, nil
	default:
		return "", errors.New("invalid product status")
	}
}
