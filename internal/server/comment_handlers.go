package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

type commentRequest struct {
	PostID   uint               `json:"post_id"`
	ParentID uint               `json:"parent_id"`
	Content  string             `json:"content"`
	Images   []models.ImageData `json:"images"`
}

// GetComments handles GET /api/comments
// @Summary List comments
// @Description Every comment on the site, newest first
// @Tags comments
// @Produce json
// @Success 200 {object} models.Envelope
// @Router /comments [get]
func (s *Server) GetComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListAll(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, comments)
}

// GetComment handles GET /api/comments/:id
// @Summary Get comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /comments/{id} [get]
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, comment)
}

// GetPostComments handles GET /api/comments/post/:postId. It returns the
// root comments of a post; an unknown post lists as empty.
// @Summary List root comments of a post
// @Tags comments
// @Produce json
// @Param postId path int true "Post ID"
// @Success 200 {object} models.Envelope
// @Router /comments/post/{postId} [get]
func (s *Server) GetPostComments(c *fiber.Ctx) error {
	postID, err := s.parseID(c, "postId")
	if err != nil {
		return nil
	}

	comments, err := s.commentService.ListForPost(c.UserContext(), postID)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, comments)
}

// GetCommentReplies handles GET /api/comments/replies/:id. One level only;
// clients walk deeper levels on demand.
// @Summary List direct replies of a comment
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Router /comments/replies/{id} [get]
func (s *Server) GetCommentReplies(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	replies, err := s.commentService.ListReplies(c.UserContext(), id)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, replies)
}

// CreateComment handles POST /api/comments (root comments).
// @Summary Create a root comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body commentRequest true "Comment"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /comments [post]
func (s *Server) CreateComment(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req commentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	created, err := s.commentService.CreateRoot(c.UserContext(), service.CreateCommentInput{
		Actor:   actor,
		PostID:  req.PostID,
		Content: req.Content,
		Images:  req.Images,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, created)
}

// CreateReply handles POST /api/comments/reply.
// @Summary Reply to a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param request body commentRequest true "Reply"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /comments/reply [post]
func (s *Server) CreateReply(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	var req commentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	created, err := s.commentService.CreateReply(c.UserContext(), service.CreateReplyInput{
		Actor:    actor,
		PostID:   req.PostID,
		ParentID: req.ParentID,
		Content:  req.Content,
		Images:   req.Images,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, created)
}

// UpdateComment handles PUT /api/comments/:id (author only).
// @Summary Update a comment
// @Tags comments
// @Accept json
// @Produce json
// @Param id path int true "Comment ID"
// @Param request body commentRequest true "New content and image set"
// @Success 200 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /comments/{id} [put]
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req commentRequest
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	updated, err := s.commentService.Update(c.UserContext(), service.UpdateCommentInput{
		Actor:     actor,
		CommentID: id,
		Content:   req.Content,
		Images:    req.Images,
	})
	if err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, updated)
}

// DeleteComment handles DELETE /api/comments/:id (author only). The whole
// reply subtree goes with it.
// @Summary Delete a comment subtree
// @Tags comments
// @Produce json
// @Param id path int true "Comment ID"
// @Success 200 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Failure 404 {object} models.Envelope
// @Security BearerAuth
// @Router /comments/{id} [delete]
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	actor, err := s.currentIdentity(c)
	if err != nil {
		return models.RespondWithError(c, err)
	}

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.commentService.Delete(c.UserContext(), service.DeleteCommentInput{
		Actor:     actor,
		CommentID: id,
	}); err != nil {
		return models.RespondWithError(c, err)
	}
	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{"deleted": id})
}
