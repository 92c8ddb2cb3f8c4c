package models

import "time"

// Theme groups posts by topic. Mutations are Admin-only.
type Theme struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"uniqueIndex;not null" json:"name"`
	Info      string    `gorm:"type:text" json:"info"`
	Posts     []Post    `gorm:"foreignKey:ThemeID" json:"posts,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
