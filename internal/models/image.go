package models

import "time"

// ImageOwner tags which kind of entity owns an image. The relational layout
// is three nullable foreign keys, but in design terms an image is a tagged
// union: owned by exactly one of a post, a profile, or a comment.
type ImageOwner string

const (
	ImageOwnerPost    ImageOwner = "post"
	ImageOwnerProfile ImageOwner = "profile"
	ImageOwnerComment ImageOwner = "comment"
)

// Image is an attachment record. Exactly one of PostID, ProfileID, CommentID
// is non-nil at all times; the attachment store enforces this cross-column
// exclusivity because the schema's per-column constraints cannot.
type Image struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	URL       string    `gorm:"not null" json:"url"`
	Type      string    `json:"type"`
	PostID    *uint     `gorm:"index" json:"post_id,omitempty"`
	ProfileID *uint     `gorm:"index" json:"profile_id,omitempty"`
	CommentID *uint     `gorm:"index" json:"comment_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ImageData carries the caller-supplied descriptor for creating or replacing
// an image. Ownership is never part of the descriptor.
type ImageData struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// OwnerRef returns the owner kind and id of the image. ok is false when the
// record violates the exclusivity invariant (zero or multiple owner refs).
func (img *Image) OwnerRef() (kind ImageOwner, ownerID uint, ok bool) {
	set := 0
	if img.PostID != nil {
		kind, ownerID = ImageOwnerPost, *img.PostID
		set++
	}
	if img.ProfileID != nil {
		kind, ownerID = ImageOwnerProfile, *img.ProfileID
		set++
	}
	if img.CommentID != nil {
		kind, ownerID = ImageOwnerComment, *img.CommentID
		set++
	}
	return kind, ownerID, set == 1
}
