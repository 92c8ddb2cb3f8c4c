package repository

import (
	"context"
	"errors"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentRepository defines persistence operations for the comment tree.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	ListAll(ctx context.Context) ([]*models.Comment, error)
	ListRootsByPost(ctx context.Context, postID uint) ([]*models.Comment, error)
	ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	CollectSubtreeIDs(ctx context.Context, rootID uint) ([]uint, error)
	DeleteByIDs(ctx context.Context, ids []uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new CommentRepository bound to db, which
// may be a transaction handle.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.WithContext(ctx).Preload("Images").First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Comment", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &comment, nil
}

func (r *commentRepository) ListAll(ctx context.Context) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Images").
		Order("created_at desc, id desc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) ListRootsByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("post_id = ? AND parent_id IS NULL", postID).
		Order("created_at desc, id desc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.WithContext(ctx).
		Preload("Images").
		Where("parent_id = ?", parentID).
		Order("created_at asc, id asc").
		Find(&comments).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return comments, nil
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// CollectSubtreeIDs walks the reply tree breadth-first starting at rootID
// and returns the IDs of the root and every descendant. A visited set keeps
// the walk terminating even if stored parent links ever form a cycle.
func (r *commentRepository) CollectSubtreeIDs(ctx context.Context, rootID uint) ([]uint, error) {
	visited := map[uint]bool{rootID: true}
	collected := []uint{rootID}
	frontier := []uint{rootID}

	for len(frontier) > 0 {
		var childIDs []uint
		err := r.db.WithContext(ctx).
			Model(&models.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &childIDs).Error
		if err != nil {
			return nil, models.NewInternalError(err)
		}

		frontier = frontier[:0]
		for _, id := range childIDs {
			if visited[id] {
				continue
			}
			visited[id] = true
			collected = append(collected, id)
			frontier = append(frontier, id)
		}
	}

	return collected, nil
}

func (r *commentRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, ids).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
