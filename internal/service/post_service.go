package service

import (
	"context"
	"strings"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

const (
	maxPostTitleLen   = 255
	maxPostContentLen = 100000
)

// PostService provides blog post business logic.
type PostService struct {
	db        *gorm.DB
	postRepo  repository.PostRepository
	themeRepo repository.ThemeRepository
	imageRepo repository.ImageRepository
}

// CreatePostInput is the input for creating a post.
type CreatePostInput struct {
	Actor   *models.UserIdentity
	Title   string
	Intro   string
	Content string
	ThemeID uint
	Cover   *models.ImageData
}

// UpdatePostInput is the input for editing a post. A nil Cover leaves the
// current cover image untouched.
type UpdatePostInput struct {
	Actor   *models.UserIdentity
	PostID  uint
	Title   string
	Intro   string
	Content string
	ThemeID uint
	Cover   *models.ImageData
}

// NewPostService returns a new PostService.
func NewPostService(
	db *gorm.DB,
	postRepo repository.PostRepository,
	themeRepo repository.ThemeRepository,
	imageRepo repository.ImageRepository,
) *PostService {
	return &PostService{
		db:        db,
		postRepo:  postRepo,
		themeRepo: themeRepo,
		imageRepo: imageRepo,
	}
}

// List returns posts newest first.
func (s *PostService) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	limit = clampLimit(limit)
	return s.postRepo.List(ctx, limit, offset)
}

// ListByTheme returns posts under a theme, newest first. The theme must
// exist.
func (s *PostService) ListByTheme(ctx context.Context, themeID uint, limit, offset int) ([]*models.Post, error) {
	if _, err := s.themeRepo.GetByID(ctx, themeID); err != nil {
		return nil, err
	}
	limit = clampLimit(limit)
	return s.postRepo.ListByTheme(ctx, themeID, limit, offset)
}

// GetByID returns a post with its theme and images.
func (s *PostService) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}
	return limit
}

func validatePostInput(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return models.NewValidationError("Title is required")
	}
	if len(title) > maxPostTitleLen {
		return models.NewValidationError("Title too long (max 255 characters)")
	}
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxPostContentLen {
		return models.NewValidationError("Content too long")
	}
	return nil
}

// Create creates a post under an existing theme, with an optional cover
// image attached in the same transaction.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if err := validatePostInput(in.Title, in.Content); err != nil {
		return nil, err
	}
	if _, err := s.themeRepo.GetByID(ctx, in.ThemeID); err != nil {
		return nil, err
	}

	post := &models.Post{
		Title:    in.Title,
		Intro:    in.Intro,
		Content:  in.Content,
		ThemeID:  in.ThemeID,
		UserID:   in.Actor.UserID,
		Username: in.Actor.Username,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		posts := repository.NewPostRepository(tx)
		if err := posts.Create(ctx, post); err != nil {
			return err
		}
		if in.Cover != nil {
			postID := post.ID
			image := &models.Image{
				Name:   in.Cover.Name,
				URL:    in.Cover.URL,
				Type:   in.Cover.Type,
				PostID: &postID,
			}
			if err := repository.NewImageRepository(tx).Attach(ctx, image); err != nil {
				return err
			}
			middleware.ImagesAttached.WithLabelValues(string(models.ImageOwnerPost)).Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// Update edits a post. The author and admins may edit; a new cover image
// replaces whatever the post had.
func (s *PostService) Update(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if err := validatePostInput(in.Title, in.Content); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !policy.CanMutatePost(in.Actor, post) {
		return nil, models.NewForbiddenError("You cannot edit this post")
	}

	if in.ThemeID != 0 && in.ThemeID != post.ThemeID {
		if _, err := s.themeRepo.GetByID(ctx, in.ThemeID); err != nil {
			return nil, err
		}
		post.ThemeID = in.ThemeID
	}

	post.Title = in.Title
	post.Intro = in.Intro
	post.Content = in.Content

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.NewPostRepository(tx).Update(ctx, post); err != nil {
			return err
		}
		if in.Cover != nil {
			_, err := repository.NewImageRepository(tx).Replace(ctx, models.ImageOwnerPost, post.ID, *in.Cover)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// Delete removes a post with its comment trees and every image owned by
// the post or its comments, atomically.
func (s *PostService) Delete(ctx context.Context, actor *models.UserIdentity, postID uint) error {
	if actor == nil {
		return models.NewUnauthenticatedError()
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if !policy.CanMutatePost(actor, post) {
		return models.NewForbiddenError("You cannot delete this post")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := DeleteAllForPost(ctx, tx, post.ID); err != nil {
			return err
		}
		attachments := repository.NewImageRepository(tx)
		if err := attachments.DetachAllForOwner(ctx, models.ImageOwnerPost, post.ID); err != nil {
			return err
		}
		return repository.NewPostRepository(tx).Delete(ctx, post.ID)
	})
}
