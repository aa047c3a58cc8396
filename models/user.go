package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleOwner      UserRole = "owner"
	RoleVetPartner UserRole = "vet_partner"
	RoleModerator  UserRole = "moderator"
	RoleAdmin      UserRole = "admin"
)

type User struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Username  string         `json:"username" gorm:"uniqueIndex;not null"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"`
	Role      UserRole       `json:"role" gorm:"default:'owner'"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// CanModerate reports whether the role may review content and mark duplicates.
func (r UserRole) CanModerate() bool {
	return r == RoleModerator || r == RoleAdmin || r == RoleVetPartner
}
