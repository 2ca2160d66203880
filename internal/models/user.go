package models

import (
	"time"
)

// Roles understood by the access token middleware
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is an operator owning OAuth clients
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Name      string
	Role      string `gorm:"default:'user'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
