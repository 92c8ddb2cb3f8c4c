package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetImages handles GET /api/images
// @Summary List images
// @Tags images
// @Produce json
// @Success 200 {object} models.Envelope
// @Router /images [get]
func (s *Server) GetImages(c *fiber.Ctx) error {
	images, err := s.imageService.ListAll(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, images)
}

// GetImage handles GET /api/images/:id
// @Summary Get image
// @Tags images
// @Produce json
// @Param id path int true "Image ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /images/{id} [get]
func (s *Server) GetImage(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	image, err := s.imageService.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, image)
}

// UpdateImage handles PUT /api/images/:id. Metadata only; the owner link
// never changes through this endpoint.
// @Summary Update image metadata
// @Tags images
// @Accept json
// @Produce json
// @Param id path int true "Image ID"
// @Param request body models.ImageData true "Image metadata"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /images/{id} [put]
func (s *Server) UpdateImage(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req models.ImageData
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	image, err := s.imageService.Update(c.UserContext(), service.UpdateImageInput{
		Actor:   actor,
		ImageID: id,
		Name:    req.Name,
		URL:     req.URL,
		Type:    req.Type,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, image)
}
