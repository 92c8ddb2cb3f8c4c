package service

import (
	"context"
	"time"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/policy"
	"inkwell/internal/repository"

	"gorm.io/gorm"
)

// ProfileService manages user profiles and their avatar images.
type ProfileService struct {
	db          *gorm.DB
	profileRepo repository.ProfileRepository
	imageRepo   repository.ImageRepository
}

// ProfileInput is the input for creating or updating a profile. A nil
// Avatar leaves the current avatar untouched.
type ProfileInput struct {
	Actor       *models.UserIdentity
	FullName    string
	DateOfBirth *time.Time
	Phone       string
	Email       string
	Facebook    string
	Reddit      string
	Address     string
	Avatar      *models.ImageData
}

// NewProfileService returns a new ProfileService.
func NewProfileService(db *gorm.DB, profileRepo repository.ProfileRepository, imageRepo repository.ImageRepository) *ProfileService {
	return &ProfileService{db: db, profileRepo: profileRepo, imageRepo: imageRepo}
}

// GetByUserID returns the profile of the given user.
func (s *ProfileService) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// Upsert creates the actor's profile on first write and updates it after.
// The avatar, when provided, replaces the previous one in the same
// transaction.
func (s *ProfileService) Upsert(ctx context.Context, in ProfileInput) (*models.Profile, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}

	profile, err := s.profileRepo.GetByUserID(ctx, in.Actor.UserID)
	if err != nil {
		if models.ErrorCode(err) != models.CodeNotFound {
			return nil, err
		}
		profile = &models.Profile{UserID: in.Actor.UserID}
	}

	profile.FullName = in.FullName
	profile.DateOfBirth = in.DateOfBirth
	profile.Phone = in.Phone
	profile.Email = in.Email
	profile.Facebook = in.Facebook
	profile.Reddit = in.Reddit
	profile.Address = in.Address

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		profiles := repository.NewProfileRepository(tx)
		if profile.ID == 0 {
			if err := profiles.Create(ctx, profile); err != nil {
				return err
			}
		} else if err := profiles.Update(ctx, profile); err != nil {
			return err
		}

		if in.Avatar != nil {
			if _, err := repository.NewImageRepository(tx).Replace(ctx, models.ImageOwnerProfile, profile.ID, *in.Avatar); err != nil {
				return err
			}
			middleware.ImagesAttached.WithLabelValues(string(models.ImageOwnerProfile)).Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.profileRepo.GetByID(ctx, profile.ID)
}

// Delete removes a profile and its avatar images. Owners and admins may
// delete.
func (s *ProfileService) Delete(ctx context.Context, actor *models.UserIdentity, userID uint) error {
	if actor == nil {
		return models.NewUnauthenticatedError()
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if !policy.CanMutateProfile(actor, profile) {
		return models.NewForbiddenError("You cannot delete this profile")
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attachments := repository.NewImageRepository(tx)
		if err := attachments.DetachAllForOwner(ctx, models.ImageOwnerProfile, profile.ID); err != nil {
			return err
		}
		return repository.NewProfileRepository(tx).Delete(ctx, profile.ID)
	})
}
