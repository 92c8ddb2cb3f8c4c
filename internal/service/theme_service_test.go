package service

import (
	"context"
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeService_AdminGate(t *testing.T) {
	t.Parallel()

	svc := NewThemeService(noopThemeRepo(), noopPostRepo())
	ctx := context.Background()

	for _, actor := range []*models.UserIdentity{nil, asUser(1, "alice")} {
		wantCode := models.CodeForbidden
		if actor == nil {
			wantCode = models.CodeUnauthenticated
		}

		_, err := svc.Create(ctx, ThemeInput{Actor: actor, Name: "tech"})
		assertErrorCode(t, err, wantCode)

		_, err = svc.Update(ctx, 1, ThemeInput{Actor: actor, Name: "tech"})
		assertErrorCode(t, err, wantCode)

		err = svc.Delete(ctx, actor, 1)
		assertErrorCode(t, err, wantCode)
	}
}

func TestThemeService_Create(t *testing.T) {
	t.Parallel()

	t.Run("admin creates a theme", func(t *testing.T) {
		t.Parallel()
		repo := noopThemeRepo()
		var created *models.Theme
		repo.createFn = func(_ context.Context, th *models.Theme) error {
			th.ID = 7
			created = th
			return nil
		}
		svc := NewThemeService(repo, noopPostRepo())

		theme, err := svc.Create(context.Background(), ThemeInput{
			Actor: asAdmin(1, "root"), Name: "tech", Info: "technology",
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), theme.ID)
		assert.Equal(t, created, theme)
	})

	t.Run("rejects blank name", func(t *testing.T) {
		t.Parallel()
		svc := NewThemeService(noopThemeRepo(), noopPostRepo())

		_, err := svc.Create(context.Background(), ThemeInput{Actor: asAdmin(1, "root"), Name: "   "})
		assertErrorCode(t, err, models.CodeValidation)
	})
}

func TestThemeService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("refuses while posts remain", func(t *testing.T) {
		t.Parallel()
		posts := noopPostRepo()
		posts.listByThemeFn = func(context.Context, uint, int, int) ([]*models.Post, error) {
			return []*models.Post{{Title: "still here"}}, nil
		}
		themes := noopThemeRepo()
		themes.deleteFn = func(context.Context, uint) error {
			t.Fatal("delete must not be reached while posts remain")
			return nil
		}
		svc := NewThemeService(themes, posts)

		err := svc.Delete(context.Background(), asAdmin(1, "root"), 3)
		assertErrorCode(t, err, models.CodeValidation)
	})

	t.Run("deletes an empty theme", func(t *testing.T) {
		t.Parallel()
		themes := noopThemeRepo()
		var deletedID uint
		themes.deleteFn = func(_ context.Context, id uint) error {
			deletedID = id
			return nil
		}
		svc := NewThemeService(themes, noopPostRepo())

		require.NoError(t, svc.Delete(context.Background(), asAdmin(1, "root"), 3))
		assert.Equal(t, uint(3), deletedID)
	})

	t.Run("unknown theme is a not-found", func(t *testing.T) {
		t.Parallel()
		themes := noopThemeRepo()
		themes.getByIDFn = func(_ context.Context, id uint) (*models.Theme, error) {
			return nil, models.NewNotFoundError("Theme", id)
		}
		svc := NewThemeService(themes, noopPostRepo())

		err := svc.Delete(context.Background(), asAdmin(1, "root"), 404)
		assertErrorCode(t, err, models.CodeNotFound)
	})
}
