package models

import "time"

// Post represents a blog post. Username is a display-name snapshot captured
// at creation, matching the comment model.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Intro     string    `json:"intro"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ThemeID   uint      `gorm:"not null;index" json:"theme_id"`
	Theme     *Theme    `gorm:"foreignKey:ThemeID" json:"theme,omitempty"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"`
	Images    []Image   `gorm:"foreignKey:PostID" json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
