package models

import (
	"errors"
	"strings"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusCompleted  OrderStatus = "Completed"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// UnknownClient is reported for orders whose client row no longer exists.
const UnknownClient = "Unknown Client"

// Order is a back-office sales order. ClientName is joined from clients at read
// time and never stored.
type Order struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	ClientID   uint        `gorm:"index;not null" json:"clientId"`
	ClientName string      `gorm:"->;-:migration" json:"clientName"`
	Amount     float64     `json:"amount"`
	Date       string      `gorm:"type:VARCHAR(32);index" json:"date"`
	Status     OrderStatus `gorm:"type:VARCHAR(20)" json:"status"`
}

// ParseOrderStatus maps user input onto an OrderStatus. Empty input yields Pending.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "pending":
		return OrderStatusPending, nil
	case "processing":
		return OrderStatusProcessing, nil
	case "completed":
		return OrderStatusCompleted, nil
	case "cancelled":
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}
