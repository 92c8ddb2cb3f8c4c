package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
)

// ImageService exposes read and update access to stored images. Whether a
// caller may touch an image is decided by the rules of whatever entity
// owns it.
type ImageService struct {
	imageRepo   repository.ImageRepository
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	profileRepo repository.ProfileRepository
}

// UpdateImageInput is the input for editing image metadata. The owner link
// never changes through this path.
type UpdateImageInput struct {
	Actor   *models.UserIdentity
	ImageID uint
	Name    string
	URL     string
	Type    string
}

// NewImageService returns a new ImageService.
func NewImageService(
	imageRepo repository.ImageRepository,
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	profileRepo repository.ProfileRepository,
) *ImageService {
	return &ImageService{
		imageRepo:   imageRepo,
		commentRepo: commentRepo,
		postRepo:    postRepo,
		profileRepo: profileRepo,
	}
}

// ListAll returns every stored image.
func (s *ImageService) ListAll(ctx context.Context) ([]*models.Image, error) {
	return s.imageRepo.ListAll(ctx)
}

// GetByID returns a single image.
func (s *ImageService) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	return s.imageRepo.GetByID(ctx, id)
}

// canMutateImage resolves the image's owner and applies that owner's
// mutation policy.
func (s *ImageService) canMutateImage(ctx context.Context, actor *models.UserIdentity, image *models.Image) (bool, error) {
	owner, ownerID, ok := image.OwnerRef()
	if !ok {
		return false, models.NewInvalidAttachmentError()
	}

	switch owner {
	case models.ImageOwnerComment:
		comment, err := s.commentRepo.GetByID(ctx, ownerID)
		if err != nil {
			return false, err
		}
		return policy.CanMutateComment(actor, comment), nil
	case models.ImageOwnerPost:
		post, err := s.postRepo.GetByID(ctx, ownerID)
		if err != nil {
			return false, err
		}
		return policy.CanMutatePost(actor, post), nil
	case models.ImageOwnerProfile:
		profile, err := s.profileRepo.GetByID(ctx, ownerID)
		if err != nil {
			return false, err
		}
		return policy.CanMutateProfile(actor, profile), nil
	}
	return false, models.NewInvalidAttachmentError()
}

// Update edits an image's metadata after checking the owning entity's
// rules.
func (s *ImageService) Update(ctx context.Context, in UpdateImageInput) (*models.Image, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if strings.TrimSpace(in.URL) == "" {
		return nil, models.NewValidationError("URL is required")
	}

	image, err := s.imageRepo.GetByID(ctx, in.ImageID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canMutateImage(ctx, in.Actor, image)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, models.NewForbiddenError("You cannot edit this image")
	}

	image.Name = in.Name
	image.URL = in.URL
	image.Type = in.Type
	if err := s.imageRepo.Update(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}
