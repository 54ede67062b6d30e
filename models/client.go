package models

import (
	"errors"
	"strings"
)

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "Active"
	ClientStatusInactive ClientStatus = "Inactive"
)

type Client struct {
	ID      uint         `gorm:"primaryKey" json:"id"`
	Name    string       `gorm:"not null" json:"name"`
	Company string       `json:"company"`
	Email   string       `json:"email"`
	Status  ClientStatus `gorm:"type:VARCHAR(20)" json:"status"`
	Revenue float64      `json:"revenue"`
}

// ParseClientStatus maps user input onto a ClientStatus. Empty input yields Active.
func ParseClientStatus(s string) (ClientStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "active":
		return ClientStatusActive, nil
	case "inactive":
		return ClientStatusInactive, nil
	default:
		return "", errors.New("invalid client status")
	}
}
