package models

import (
	"errors"
	"strings"
)

type SupplierStatus string

const (
	SupplierStatusActive SupplierStatus = "Active"
	SupplierStatusPaused SupplierStatus = "Paused"
)

type Supplier struct {
	ID       uint           `gorm:"primaryKey" json:"id"`
	Name     string         `gorm:"not null" json:"name"`
	Contact  string         `json:"contact"`
	Category string         `json:"category"`
	Status   SupplierStatus `gorm:"type:VARCHAR(20)" json:"status"`
}

func ParseSupplierStatus(s string) (SupplierStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "active":
		return SupplierStatusActive, nil
	case "paused":
		return SupplierStatusPaused, nil
	default:
		return "", errors.New("invalid supplier status")
	}
}
