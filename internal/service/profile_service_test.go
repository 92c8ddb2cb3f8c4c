package service

import (
	"context"
	"testing"

	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProfileServiceForDB(db *gorm.DB) *ProfileService {
	return NewProfileService(db, repository.NewProfileRepository(db), repository.NewImageRepository(db))
}

func TestProfileService_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("first write creates, second write updates", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := newProfileServiceForDB(db)
		alice := asUser(1, "alice")
		ctx := context.Background()

		profile, err := svc.Upsert(ctx, ProfileInput{Actor: alice, FullName: "Alice A."})
		require.NoError(t, err)
		assert.Equal(t, alice.UserID, profile.UserID)
		assert.Equal(t, "Alice A.", profile.FullName)

		updated, err := svc.Upsert(ctx, ProfileInput{Actor: alice, FullName: "Alice B.", Phone: "555"})
		require.NoError(t, err)
		assert.Equal(t, profile.ID, updated.ID)
		assert.Equal(t, "Alice B.", updated.FullName)
		assert.Equal(t, "555", updated.Phone)

		var count int64
		require.NoError(t, db.Model(&models.Profile{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("a new avatar replaces the old one", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := newProfileServiceForDB(db)
		alice := asUser(1, "alice")
		ctx := context.Background()

		_, err := svc.Upsert(ctx, ProfileInput{
			Actor: alice, FullName: "Alice",
			Avatar: &models.ImageData{URL: "https://img.test/old.webp"},
		})
		require.NoError(t, err)

		profile, err := svc.Upsert(ctx, ProfileInput{
			Actor: alice, FullName: "Alice",
			Avatar: &models.ImageData{URL: "https://img.test/new.webp"},
		})
		require.NoError(t, err)
		require.Len(t, profile.Images, 1)
		assert.Equal(t, "https://img.test/new.webp", profile.Images[0].URL)

		var imageCount int64
		require.NoError(t, db.Model(&models.Image{}).Count(&imageCount).Error)
		assert.Equal(t, int64(1), imageCount)
	})

	t.Run("omitting the avatar keeps the current one", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := newProfileServiceForDB(db)
		alice := asUser(1, "alice")
		ctx := context.Background()

		_, err := svc.Upsert(ctx, ProfileInput{
			Actor: alice, FullName: "Alice",
			Avatar: &models.ImageData{URL: "https://img.test/keep.webp"},
		})
		require.NoError(t, err)

		profile, err := svc.Upsert(ctx, ProfileInput{Actor: alice, FullName: "Alice Z."})
		require.NoError(t, err)
		require.Len(t, profile.Images, 1)
		assert.Equal(t, "https://img.test/keep.webp", profile.Images[0].URL)
	})

	t.Run("rejects missing actor", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := newProfileServiceForDB(db)

		_, err := svc.Upsert(context.Background(), ProfileInput{FullName: "ghost"})
		assertErrorCode(t, err, models.CodeUnauthenticated)
	})
}

func TestProfileService_Delete(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes profile and avatar", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := newProfileServiceForDB(db)
		alice := asUser(1, "alice")
		ctx := context.Background()

		_, err := svc.Upsert(ctx, ProfileInput{
			Actor: alice, FullName: "Alice",
			Avatar: &models.ImageData{URL: "https://img.test/a.webp"},
		})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, alice, alice.UserID))

		for _, model := range []interface{}{&models.Profile{}, &models.Image{}} {
			var count int64
			require.NoError(t, db.Model(model).Count(&count).Error)
			assert.Zero(t, count)
		}
	})

	t.Run("admin may delete another user's profile", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := newProfileServiceForDB(db)
		alice := asUser(1, "alice")
		ctx := context.Background()

		_, err := svc.Upsert(ctx, ProfileInput{Actor: alice, FullName: "Alice"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, asAdmin(9, "root"), alice.UserID))
	})

	t.Run("other users are refused", func(t *testing.T) {
		t.Parallel()
		db := setupTestDB(t)
		svc := newProfileServiceForDB(db)
		alice := asUser(1, "alice")
		ctx := context.Background()

		_, err := svc.Upsert(ctx, ProfileInput{Actor: alice, FullName: "Alice"})
		require.NoError(t, err)

		err = svc.Delete(ctx, asUser(2, "bob"), alice.UserID)
		assertErrorCode(t, err, models.CodeForbidden)
	})
}
