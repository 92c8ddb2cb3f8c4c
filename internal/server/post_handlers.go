package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

type postRequest struct {
	Title   string            `json:"title"`
	Intro   string            `json:"intro"`
	Content string            `json:"content"`
	ThemeID uint              `json:"theme_id"`
	Cover   *models.ImageData `json:"cover"`
}

// GetPosts handles GET /api/posts
// @Summary List posts
// @Tags posts
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} models.Envelope
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	p := parsePagination(c, 20)
	posts, err := s.postService.List(c.UserContext(), p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, posts)
}

// GetPostsByTheme handles GET /api/posts/theme/:themeId
// @Summary List posts under a theme
// @Tags posts
// @Produce json
// @Param themeId path int true "Theme ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /posts/theme/{themeId} [get]
func (s *Server) GetPostsByTheme(c *fiber.Ctx) error {
	themeID, err := s.parseID(c, "themeId")
	if err != nil {
		return nil
	}

	p := parsePagination(c, 20)
	posts, err := s.postService.ListByTheme(c.UserContext(), themeID, p.Limit, p.Offset)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, post)
}

// CreatePost handles POST /api/posts
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body postRequest true "Post"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Security BearerAuth
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req postRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Create(c.UserContext(), service.CreatePostInput{
		Actor:   actor,
		Title:   req.Title,
		Intro:   req.Intro,
		Content: req.Content,
		ThemeID: req.ThemeID,
		Cover:   req.Cover,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, post)
}

// UpdatePost handles PUT /api/posts/:id (owner or admin).
// @Summary Update post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body postRequest true "Post"
// @Success 200 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req postRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	post, err := s.postService.Update(c.UserContext(), service.UpdatePostInput{
		Actor:   actor,
		PostID:  id,
		Title:   req.Title,
		Intro:   req.Intro,
		Content: req.Content,
		ThemeID: req.ThemeID,
		Cover:   req.Cover,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, post)
}

// DeletePost handles DELETE /api/posts/:id (owner or admin). Comments and
// images owned by the post go with it.
// @Summary Delete post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.postService.Delete(c.UserContext(), actor, id); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
