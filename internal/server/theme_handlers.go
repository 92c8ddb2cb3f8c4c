package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

type themeRequest struct {
	Name string `json:"name"`
	Info string `json:"info"`
}

// GetThemes handles GET /api/themes
// @Summary List themes
// @Tags themes
// @Produce json
// @Success 200 {object} models.Envelope
// @Router /themes [get]
func (s *Server) GetThemes(c *fiber.Ctx) error {
	themes, err := s.themeService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, themes)
}

// GetTheme handles GET /api/themes/:id
// @Summary Get theme
// @Tags themes
// @Produce json
// @Param id path int true "Theme ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /themes/{id} [get]
func (s *Server) GetTheme(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	theme, err := s.themeService.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, theme)
}

// CreateTheme handles POST /api/themes (admin only).
// @Summary Create theme
// @Tags themes
// @Accept json
// @Produce json
// @Param request body themeRequest true "Theme"
// @Success 200 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Security BearerAuth
// @Router /themes [post]
func (s *Server) CreateTheme(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req themeRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	theme, err := s.themeService.Create(c.UserContext(), service.ThemeInput{
		Actor: actor,
		Name:  req.Name,
		Info:  req.Info,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, theme)
}

// UpdateTheme handles PUT /api/themes/:id (admin only).
// @Summary Update theme
// @Tags themes
// @Accept json
// @Produce json
// @Param id path int true "Theme ID"
// @Param request body themeRequest true "Theme"
// @Success 200 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /themes/{id} [put]
func (s *Server) UpdateTheme(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req themeRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	theme, err := s.themeService.Update(c.UserContext(), id, service.ThemeInput{
		Actor: actor,
		Name:  req.Name,
		Info:  req.Info,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, theme)
}

// DeleteTheme handles DELETE /api/themes/:id (admin only, empty themes
// only).
// @Summary Delete theme
// @Tags themes
// @Produce json
// @Param id path int true "Theme ID"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Security BearerAuth
// @Router /themes/{id} [delete]
func (s *Server) DeleteTheme(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.themeService.Delete(c.UserContext(), actor, id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
