package models

import "time"

// Profile holds a user's public profile data. Each user has at most one
// profile; the profile image is attached through the attachment store.
type Profile struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FullName    string     `json:"full_name"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Facebook    string     `json:"facebook"`
	Reddit      string     `json:"reddit"`
	Address     string     `json:"address"`
	Images      []Image    `gorm:"foreignKey:ProfileID" json:"images,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
