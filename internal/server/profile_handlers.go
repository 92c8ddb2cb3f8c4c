package server

import (
	"time"

	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

type profileRequest struct {
	FullName    string            `json:"full_name"`
	DateOfBirth *time.Time        `json:"date_of_birth"`
	Phone       string            `json:"phone"`
	Email       string            `json:"email"`
	Facebook    string            `json:"facebook"`
	Reddit      string            `json:"reddit"`
	Address     string            `json:"address"`
	Avatar      *models.ImageData `json:"avatar"`
}

// GetProfile handles GET /api/profiles/:userId
// @Summary Get a user's profile
// @Tags profiles
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /profiles/{userId} [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.GetByUserID(c.UserContext(), userID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, profile)
}

// GetMyProfile handles GET /api/profiles/me
// @Summary Get own profile
// @Tags profiles
// @Produce json
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /profiles/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	profile, err := s.profileService.GetByUserID(c.UserContext(), actor.UserID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, profile)
}

// UpsertMyProfile handles PUT /api/profiles/me. The first write creates the
// profile; later writes update it.
// @Summary Create or update own profile
// @Tags profiles
// @Accept json
// @Produce json
// @Param request body profileRequest true "Profile"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Security BearerAuth
// @Router /profiles/me [put]
func (s *Server) UpsertMyProfile(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req profileRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.Upsert(c.UserContext(), service.ProfileInput{
		Actor:       actor,
		FullName:    req.FullName,
		DateOfBirth: req.DateOfBirth,
		Phone:       req.Phone,
		Email:       req.Email,
		Facebook:    req.Facebook,
		Reddit:      req.Reddit,
		Address:     req.Address,
		Avatar:      req.Avatar,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, profile)
}

// DeleteProfile handles DELETE /api/profiles/:userId (owner or admin).
// @Summary Delete a profile
// @Tags profiles
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /profiles/{userId} [delete]
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.profileService.Delete(c.UserContext(), actor, userID); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{"deleted": userID})
}
