package models

import (
	"errors"
	"strings"
	"time"
)

type Role string
type MemberStatus string

const (
	RoleAdmin   Role = "Admin"
	RoleManager Role = "Manager"
	RoleViewer  Role = "Viewer"

	MemberStatusActive   MemberStatus = "Active"
	MemberStatusInactive MemberStatus = "Inactive"
)

// JustNow is what lastActive reads right after a login or account creation.
const JustNow = "Just now"

// User is a team member that can sign in to the back office.
type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Name         string       `gorm:"not null" json:"name"`
	Email        string       `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string       `gorm:"column:password;not null" json:"-"`
	Role         Role         `gorm:"type:VARCHAR(20)" json:"role"`
	Status       MemberStatus `gorm:"type:VARCHAR(20)" json:"status"`
	LastActive   string       `json:"lastActive"`
	CreatedAt    time.Time    `json:"-"`
}

// ParseRole maps user input onto a Role. Empty input yields Viewer.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "viewer":
		return RoleViewer, nil
	case "manager":
		return RoleManager, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return "", errors.New("invalid role")
	}
}

func ParseMemberStatus(s string) (MemberStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "active":
		return MemberStatusActive, nil
	case "inactive":
		return MemberStatusInactive, nil
	default:
		return "", errors.New("invalid member status")
	}
}
