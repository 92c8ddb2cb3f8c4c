package repository

import (
	"context"
	"regexp"
	"testing"

	"inkwell/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCommentRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	comment := &models.Comment{Content: "Nice post!", PostID: 1, UserID: 1, Username: "testuser"}

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "comments"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	err := repo.Create(ctx, comment)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_GetByID_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE "comments"."id" = $1 ORDER BY "comments"."id" LIMIT $2`)).
		WithArgs(99, 1).
		WillReturnError(gorm.ErrRecordNotFound)

	comment, err := repo.GetByID(ctx, 99)
	assert.Nil(t, comment)
	var appErr *models.AppError
	if assert.ErrorAs(t, err, &appErr) {
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListRootsByPost(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE post_id = $1 AND parent_id IS NULL ORDER BY created_at desc, id desc`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "user_id", "post_id"}).
			AddRow(2, "Second root", 101, 1).
			AddRow(1, "First root", 102, 1))

	// Preload Images for the returned comments
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "images" WHERE "images"."comment_id" IN ($1,$2)`)).
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url", "comment_id"}).
			AddRow(10, "pic", "https://cdn.example.com/pic.png", 1))

	comments, err := repo.ListRootsByPost(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, comments, 2)
	assert.Equal(t, "Second root", comments[0].Content)
	assert.Len(t, comments[1].Images, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_ListReplies(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "comments" WHERE parent_id = $1 ORDER BY created_at asc, id asc`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "content", "parent_id"}).
			AddRow(5, "First reply", 1).
			AddRow(6, "Second reply", 1))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "images" WHERE "images"."comment_id" IN ($1,$2)`)).
		WithArgs(5, 6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "url", "comment_id"}))

	replies, err := repo.ListReplies(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, replies, 2)
	assert.Equal(t, "First reply", replies[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_CollectSubtreeIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	// Tree: 1 -> (2, 3), 2 -> (4)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "comments" WHERE parent_id IN ($1)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "comments" WHERE parent_id IN ($1,$2)`)).
		WithArgs(2, 3).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "comments" WHERE parent_id IN ($1)`)).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.CollectSubtreeIDs(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1, 2, 3, 4}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_CollectSubtreeIDs_TerminatesOnCycle(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	// Corrupt data: the row claims to be its own child.
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT "id" FROM "comments" WHERE parent_id IN ($1)`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	ids, err := repo.CollectSubtreeIDs(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, []uint{1}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentRepository_DeleteByIDs(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewCommentRepository(db)
	ctx := context.Background()

	t.Run("Deletes batch", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "comments" WHERE "comments"."id" IN ($1,$2,$3)`)).
			WithArgs(1, 2, 3).
			WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		err := repo.DeleteByIDs(ctx, []uint{1, 2, 3})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty batch is a no-op", func(t *testing.T) {
		err := repo.DeleteByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
