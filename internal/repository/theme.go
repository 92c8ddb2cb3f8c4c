package repository

import (
	"context"
	"errors"

	"inkwell/internal/cache"
	"inkwell/internal/models"

	"gorm.io/gorm"
)

// ThemeRepository defines persistence operations for themes.
type ThemeRepository interface {
	Create(ctx context.Context, theme *models.Theme) error
	GetByID(ctx context.Context, id uint) (*models.Theme, error)
	List(ctx context.Context) ([]*models.Theme, error)
	Update(ctx context.Context, theme *models.Theme) error
	Delete(ctx context.Context, id uint) error
}

type themeRepository struct {
	db *gorm.DB
}

// NewThemeRepository creates a new ThemeRepository.
func NewThemeRepository(db *gorm.DB) ThemeRepository {
	return &themeRepository{db: db}
}

func (r *themeRepository) Create(ctx context.Context, theme *models.Theme) error {
	if err := r.db.WithContext(ctx).Create(theme).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Theme already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *themeRepository) GetByID(ctx context.Context, id uint) (*models.Theme, error) {
	var theme models.Theme
	if err := r.db.WithContext(ctx).First(&theme, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Theme", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &theme, nil
}

func (r *themeRepository) List(ctx context.Context) ([]*models.Theme, error) {
	var themes []*models.Theme
	if err := r.db.WithContext(ctx).Order("name asc").Find(&themes).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return themes, nil
}

func (r *themeRepository) Update(ctx context.Context, theme *models.Theme) error {
	if err := r.db.WithContext(ctx).Save(theme).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("Theme already exists")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateTheme(ctx, theme.ID)
	return nil
}

func (r *themeRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Theme{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTheme(ctx, id)
	return nil
}
