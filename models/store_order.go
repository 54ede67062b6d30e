package models

import (
	"errors"
	"strings"
	"time"
)

type StoreOrderStatus string

// Checkout orders start as pending; staff move them along with the status
// endpoint.
const (
	StoreOrderPending     StoreOrderStatus = "pending"
	StoreOrderConfirmed   StoreOrderStatus = "confirmed"
	StoreOrderReadyToShip StoreOrderStatus = "ready_to_ship"
	StoreOrderShipped     StoreOrderStatus = "shipped"
	StoreOrderDelivered   StoreOrderStatus = "delivered"
	StoreOrderReturned    StoreOrderStatus = "returned"
	StoreOrderCancelled   StoreOrderStatus = "cancelled"
)

// StoreOrder is a storefront checkout. TotalAmount is always computed by the
// server from catalog prices.
type StoreOrder struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	CustomerEmail string           `gorm:"type:VARCHAR(255);not null;index" json:"customer_email"`
	CustomerName  string           `gorm:"type:VARCHAR(255);not null" json:"customer_name"`
	TotalAmount   float64          `gorm:"not null" json:"total_amount"`
	Status        StoreOrderStatus `gorm:"type:VARCHAR(20);not null" json:"status"`
	Items         []StoreOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
	CreatedAt     time.Time        `gorm:"index" json:"created_at"`
}

func (StoreOrder) TableName() string { return "orders" }

type StoreOrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"-"`
	OrderID     uint    `gorm:"index;not null" json:"-"`
	ProductID   uint    `gorm:"not null" json:"product_id"`
	ProductName string  `gorm:"type:VARCHAR(255)" json:"product_name"`
	Price       float64 `gorm:"not null" json:"price"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	Size        string  `gorm:"type:VARCHAR(10)" json:"size"`
}

func (StoreOrderItem) TableName() string { return "order_items" }

// ParseStoreOrderStatus maps user input onto a StoreOrderStatus.
func ParseStoreOrderStatus(status string) (StoreOrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case string(StoreOrderPending):
		return StoreOrderPending, nil
	case string(StoreOrderConfirmed):
		return StoreOrderConfirmed, nil
	case string(StoreOrderReadyToShip):
		return StoreOrderReadyToShip, nil
	case string(StoreOrderShipped):
		return StoreOrderShipped, nil
	case string(StoreOrderDelivered):
		return StoreOrderDelivered, nil
	case string(StoreOrderReturned):
		return StoreOrderReturned, nil
	case string(StoreOrderCancelled):
		return StoreOrderCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}
