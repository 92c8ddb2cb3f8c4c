package repository

import (
	"context"
	"errors"
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ImageRepository is the attachment store. Every image row belongs to
// exactly one owning entity; all writes go through this interface so the
// exclusivity rule is checked in one place.
type ImageRepository interface {
	Attach(ctx context.Context, image *models.Image) error
	Replace(ctx context.Context, owner models.ImageOwner, ownerID uint, data models.ImageData) (*models.Image, error)
	DetachAllForOwner(ctx context.Context, owner models.ImageOwner, ownerID uint) error
	GetByID(ctx context.Context, id uint) (*models.Image, error)
	ListAll(ctx context.Context) ([]*models.Image, error)
	ListByOwner(ctx context.Context, owner models.ImageOwner, ownerID uint) ([]*models.Image, error)
	Update(ctx context.Context, image *models.Image) error
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository returns the attachment store bound to db, which may
// be a transaction handle.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func ownerColumn(owner models.ImageOwner) (string, bool) {
	switch owner {
	case models.ImageOwnerPost:
		return "post_id", true
	case models.ImageOwnerProfile:
		return "profile_id", true
	case models.ImageOwnerComment:
		return "comment_id", true
	}
	return "", false
}

func (r *imageRepository) Attach(ctx context.Context, image *models.Image) error {
	if _, _, ok := image.OwnerRef(); !ok {
		return models.NewInvalidAttachmentError()
	}
	// The schema's NOT NULL does not catch an empty string.
	if strings.TrimSpace(image.URL) == "" {
		return &models.AppError{
			Code:    models.CodeInvalidAttachment,
			Message: "An image requires a URL",
		}
	}
	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// Replace removes whatever the owner currently holds and attaches a single
// new image in its place.
func (r *imageRepository) Replace(
	ctx context.Context,
	owner models.ImageOwner,
	ownerID uint,
	data models.ImageData,
) (*models.Image, error) {
	if err := r.DetachAllForOwner(ctx, owner, ownerID); err != nil {
		return nil, err
	}

	image := &models.Image{Name: data.Name, URL: data.URL, Type: data.Type}
	switch owner {
	case models.ImageOwnerPost:
		image.PostID = &ownerID
	case models.ImageOwnerProfile:
		image.ProfileID = &ownerID
	case models.ImageOwnerComment:
		image.CommentID = &ownerID
	default:
		return nil, models.NewInvalidAttachmentError()
	}

	if err := r.Attach(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

func (r *imageRepository) DetachAllForOwner(ctx context.Context, owner models.ImageOwner, ownerID uint) error {
	column, ok := ownerColumn(owner)
	if !ok {
		return models.NewInvalidAttachmentError()
	}
	err := r.db.WithContext(ctx).
		Where(column+" = ?", ownerID).
		Delete(&models.Image{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *imageRepository) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	var image models.Image
	if err := r.db.WithContext(ctx).First(&image, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Image", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &image, nil
}

func (r *imageRepository) ListAll(ctx context.Context) ([]*models.Image, error) {
	var images []*models.Image
	if err := r.db.WithContext(ctx).Order("id asc").Find(&images).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return images, nil
}

func (r *imageRepository) ListByOwner(ctx context.Context, owner models.ImageOwner, ownerID uint) ([]*models.Image, error) {
	column, ok := ownerColumn(owner)
	if !ok {
		return nil, models.NewInvalidAttachmentError()
	}
	var images []*models.Image
	err := r.db.WithContext(ctx).
		Where(column+" = ?", ownerID).
		Order("id asc").
		Find(&images).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return images, nil
}

func (r *imageRepository) Update(ctx context.Context, image *models.Image) error {
	if _, _, ok := image.OwnerRef(); !ok {
		return models.NewInvalidAttachmentError()
	}
	if err := r.db.WithContext(ctx).Save(image).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
