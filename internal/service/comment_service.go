// Package service provides application business logic.
package service

import (
	"context"
	"strings"

	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/policy"
	"inkwell/internal/repository"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const maxCommentLen = 10000

// CommentService owns the comment tree: roots under posts, replies under
// comments, and the image attachments both may carry. Mutations run inside
// a transaction so a failed write never leaves a partial subtree behind.
type CommentService struct {
	db          *gorm.DB
	commentRepo repository.CommentRepository
	imageRepo   repository.ImageRepository
	postRepo    repository.PostRepository
}

// CreateCommentInput is the input for creating a root comment on a post.
type CreateCommentInput struct {
	Actor   *models.UserIdentity
	PostID  uint
	Content string
	Images  []models.ImageData
}

// CreateReplyInput is the input for replying to an existing comment. A
// zero PostID means "the parent's post"; a non-zero PostID must match it.
type CreateReplyInput struct {
	Actor    *models.UserIdentity
	PostID   uint
	ParentID uint
	Content  string
	Images   []models.ImageData
}

// UpdateCommentInput is the input for editing a comment. Images is the
// comment's new image set; whatever was attached before is replaced.
type UpdateCommentInput struct {
	Actor     *models.UserIdentity
	CommentID uint
	Content   string
	Images    []models.ImageData
}

// DeleteCommentInput is the input for deleting a comment subtree.
type DeleteCommentInput struct {
	Actor     *models.UserIdentity
	CommentID uint
}

// NewCommentService returns a new CommentService. db is used for
// transactional mutations; the repositories serve reads and validation.
func NewCommentService(
	db *gorm.DB,
	commentRepo repository.CommentRepository,
	imageRepo repository.ImageRepository,
	postRepo repository.PostRepository,
) *CommentService {
	return &CommentService{
		db:          db,
		commentRepo: commentRepo,
		imageRepo:   imageRepo,
		postRepo:    postRepo,
	}
}

// ListAll returns every comment, newest first. An empty board is a valid
// result, not an error.
func (s *CommentService) ListAll(ctx context.Context) ([]*models.Comment, error) {
	return s.commentRepo.ListAll(ctx)
}

// ListForPost returns the root comments of a post, newest first. A post
// with no comments, or an unknown post, yields an empty list.
func (s *CommentService) ListForPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.commentRepo.ListRootsByPost(ctx, postID)
}

// ListReplies returns the direct replies of a comment in conversation
// order. The parent must exist.
func (s *CommentService) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	if _, err := s.commentRepo.GetByID(ctx, parentID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListReplies(ctx, parentID)
}

// GetByID returns a single comment with its attachments.
func (s *CommentService) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLen {
		return models.NewValidationError("Comment too long (max 10000 characters)")
	}
	return nil
}

// CreateRoot creates a root comment on a post, attaching any images in the
// same transaction.
func (s *CommentService) CreateRoot(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	exists, err := s.postRepo.Exists(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", in.PostID)
	}

	comment := &models.Comment{
		UserID:   in.Actor.UserID,
		Username: in.Actor.Username,
		PostID:   in.PostID,
		Content:  in.Content,
	}

	if err := s.createWithImages(ctx, comment, in.Images); err != nil {
		return nil, err
	}

	middleware.CommentsCreated.WithLabelValues("root").Inc()
	return s.commentRepo.GetByID(ctx, comment.ID)
}

// CreateReply creates a reply under an existing comment. The reply lives
// on the same post as its parent; a missing parent is an invalid parent,
// not a generic not-found.
func (s *CommentService) CreateReply(ctx context.Context, in CreateReplyInput) (*models.Comment, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	parent, err := s.commentRepo.GetByID(ctx, in.ParentID)
	if err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return nil, models.NewInvalidParentError(in.ParentID)
		}
		return nil, err
	}
	if in.PostID != 0 && in.PostID != parent.PostID {
		return nil, models.NewInvalidParentError(in.ParentID)
	}

	parentID := parent.ID
	comment := &models.Comment{
		UserID:   in.Actor.UserID,
		Username: in.Actor.Username,
		PostID:   parent.PostID,
		Content:  in.Content,
		ParentID: &parentID,
	}

	if err := s.createWithImages(ctx, comment, in.Images); err != nil {
		return nil, err
	}

	middleware.CommentsCreated.WithLabelValues("reply").Inc()
	return s.commentRepo.GetByID(ctx, comment.ID)
}

func (s *CommentService) createWithImages(ctx context.Context, comment *models.Comment, images []models.ImageData) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments := repository.NewCommentRepository(tx)
		attachments := repository.NewImageRepository(tx)

		if err := comments.Create(ctx, comment); err != nil {
			return err
		}

		for _, data := range images {
			commentID := comment.ID
			image := &models.Image{
				Name:      data.Name,
				URL:       data.URL,
				Type:      data.Type,
				CommentID: &commentID,
			}
			if err := attachments.Attach(ctx, image); err != nil {
				return err
			}
			middleware.ImagesAttached.WithLabelValues(string(models.ImageOwnerComment)).Inc()
		}
		return nil
	})
}

// Update edits a comment's content and replaces its image set. Only the
// author may edit; admins get no bypass here.
func (s *CommentService) Update(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if in.Actor == nil {
		return nil, models.NewUnauthenticatedError()
	}
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}

	if !policy.CanMutateComment(in.Actor, comment) {
		return nil, models.NewForbiddenError("You can only edit your own comments")
	}

	comment.Content = in.Content
	comment.Images = nil

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		attachments := repository.NewImageRepository(tx)
		if err := repository.NewCommentRepository(tx).Update(ctx, comment); err != nil {
			return err
		}
		if err := attachments.DetachAllForOwner(ctx, models.ImageOwnerComment, comment.ID); err != nil {
			return err
		}
		for _, data := range in.Images {
			commentID := comment.ID
			image := &models.Image{
				Name:      data.Name,
				URL:       data.URL,
				Type:      data.Type,
				CommentID: &commentID,
			}
			if err := attachments.Attach(ctx, image); err != nil {
				return err
			}
			middleware.ImagesAttached.WithLabelValues(string(models.ImageOwnerComment)).Inc()
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// Delete removes a comment together with its whole reply subtree and every
// image attached anywhere in it, atomically.
func (s *CommentService) Delete(ctx context.Context, in DeleteCommentInput) error {
	if in.Actor == nil {
		return models.NewUnauthenticatedError()
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}

	if !policy.CanMutateComment(in.Actor, comment) {
		return models.NewForbiddenError("You can only delete your own comments")
	}

	span, ctx := observability.NewSpan(ctx, "comment.delete_subtree",
		trace.WithAttributes(attribute.Int64("comment.id", int64(comment.ID))))
	defer span.End()

	var deleted int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		comments := repository.NewCommentRepository(tx)
		attachments := repository.NewImageRepository(tx)

		ids, err := comments.CollectSubtreeIDs(ctx, comment.ID)
		if err != nil {
			return err
		}

		for _, id := range ids {
			if err := attachments.DetachAllForOwner(ctx, models.ImageOwnerComment, id); err != nil {
				return err
			}
		}

		if err := comments.DeleteByIDs(ctx, ids); err != nil {
			return err
		}

		deleted = len(ids)
		return nil
	})
	if err != nil {
		span.SetError(err)
		return err
	}

	span.AddAttributes(attribute.Int("comment.subtree_size", deleted))
	middleware.CommentTreesDeleted.Observe(float64(deleted))
	return nil
}

// DeleteAllForPost removes every comment tree of a post with the images
// those comments carry. Callers are expected to run this inside their own
// transaction handle.
func DeleteAllForPost(ctx context.Context, tx *gorm.DB, postID uint) error {
	var ids []uint
	if err := tx.WithContext(ctx).
		Model(&models.Comment{}).
		Where("post_id = ?", postID).
		Pluck("id", &ids).Error; err != nil {
		return models.NewInternalError(err)
	}
	if len(ids) == 0 {
		return nil
	}

	attachments := repository.NewImageRepository(tx)
	for _, id := range ids {
		if err := attachments.DetachAllForOwner(ctx, models.ImageOwnerComment, id); err != nil {
			return err
		}
	}
	return repository.NewCommentRepository(tx).DeleteByIDs(ctx, ids)
}
