package models

import "time"

// Comment is a node in a post's discussion thread. A nil ParentID marks a
// root comment; otherwise the comment is a reply and ParentID must reference
// a comment on the same post. The parent link is fixed at creation.
//
// UserID and Username are captured from the resolved identity when the
// comment is created; the username is a denormalized snapshot and is not
// re-resolved on later reads.
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Username  string    `gorm:"not null" json:"username"`
	PostID    uint      `gorm:"not null;index" json:"post_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ParentID  *uint     `gorm:"index" json:"parent_id,omitempty"`
	Images    []Image   `gorm:"foreignKey:CommentID" json:"images,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsRoot reports whether the comment is a root comment of its post.
func (c *Comment) IsRoot() bool {
	return c.ParentID == nil
}
