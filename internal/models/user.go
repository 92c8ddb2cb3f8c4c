package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles assignable to users. Comments are strictly owner-gated regardless of
// role; posts and themes accept Admin mutations.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User represents a registered account.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"uniqueIndex;not null" json:"username"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Role      string         `gorm:"not null;default:User" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// UserIdentity is the authenticated principal resolved fresh from a request's
// own credential. It is never persisted; mutating operations receive it from
// the identity resolver and compare it against resource ownership.
type UserIdentity struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the identity carries the Admin role.
func (i *UserIdentity) IsAdmin() bool {
	return i != nil && i.Role == RoleAdmin
}
