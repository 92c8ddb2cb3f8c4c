package service

import (
	"context"
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"
)

// ThemeService manages the site's post taxonomy. All writes are admin-only.
type ThemeService struct {
	themeRepo repository.ThemeRepository
	postRepo  repository.PostRepository
}

// ThemeInput is the input for creating or updating a theme.
type ThemeInput struct {
	Actor *models.UserIdentity
	Name  string
	Info  string
}

// NewThemeService returns a new ThemeService.
func NewThemeService(themeRepo repository.ThemeRepository, postRepo repository.PostRepository) *ThemeService {
	return &ThemeService{themeRepo: themeRepo, postRepo: postRepo}
}

// List returns all themes sorted by name.
func (s *ThemeService) List(ctx context.Context) ([]*models.Theme, error) {
	return s.themeRepo.List(ctx)
}

// GetByID returns a single theme.
func (s *ThemeService) GetByID(ctx context.Context, id uint) (*models.Theme, error) {
	return s.themeRepo.GetByID(ctx, id)
}

func validateThemeInput(name string) error {
	if strings.TrimSpace(name) == "" {
		return models.NewValidationError("Name is required")
	}
	if len(name) > 128 {
		return models.NewValidationError("Name too long (max 128 characters)")
	}
	return nil
}

// Create adds a new theme.
func (s *ThemeService) Create(ctx context.Context, in ThemeInput) (*models.Theme, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if !policy.CanManageThemes(in.Actor) {
		return nil, models.NewForbiddenError("Only admins can manage themes")
	}
	if err := validateThemeInput(in.Name); err != nil {
		return nil, err
	}

	theme := &models.Theme{Name: in.Name, Info: in.Info}
	if err := s.themeRepo.Create(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// Update renames a theme or changes its description.
func (s *ThemeService) Update(ctx context.Context, id uint, in ThemeInput) (*models.Theme, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if !policy.CanManageThemes(in.Actor) {
		return nil, models.NewForbiddenError("Only admins can manage themes")
	}
	if err := validateThemeInput(in.Name); err != nil {
		return nil, err
	}

	theme, err := s.themeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	theme.Name = in.Name
	theme.Info = in.Info
	if err := s.themeRepo.Update(ctx, theme); err != nil {
		return nil, err
	}
	return theme, nil
}

// Delete removes an empty theme. Themes that still hold posts cannot be
// deleted.
func (s *ThemeService) Delete(ctx context.Context, actor *models.UserIdentity, id uint) error {
	if actor == nil {
		return models.NewUnauthenticatedError()
	}
	if !policy.CanManageThemes(actor) {
		return models.NewForbiddenError("Only admins can manage themes")
	}

	if _, err := s.themeRepo.GetByID(ctx, id); err != nil {
		return err
	}

	posts, err := s.postRepo.ListByTheme(ctx, id, 1, 0)
	if err != nil {
		return err
	}
	if len(posts) > 0 {
		return models.NewValidationError("Theme still has posts")
	}

	return s.themeRepo.Delete(ctx, id)
}
