package service

import (
	"context"
	"errors"
	"testing"

	"inkwell/internal/database"
	"inkwell/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory SQLite database with the full schema for
// transactional service tests.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected app error with code %s, got %#v", code, err)
	}
}

func asUser(id uint, username string) *models.UserIdentity {
	return &models.UserIdentity{UserID: id, Username: username, Role: models.RoleUser}
}

func asAdmin(id uint, username string) *models.UserIdentity {
	return &models.UserIdentity{UserID: id, Username: username, Role: models.RoleAdmin}
}

// Stub repositories for unit tests that do not need a database.

type commentRepoStub struct {
	createFn            func(context.Context, *models.Comment) error
	getByIDFn           func(context.Context, uint) (*models.Comment, error)
	listAllFn           func(context.Context) ([]*models.Comment, error)
	listRootsByPostFn   func(context.Context, uint) ([]*models.Comment, error)
	listRepliesFn       func(context.Context, uint) ([]*models.Comment, error)
	updateFn            func(context.Context, *models.Comment) error
	collectSubtreeIDsFn func(context.Context, uint) ([]uint, error)
	deleteByIDsFn       func(context.Context, []uint) error
}

func (s *commentRepoStub) Create(ctx context.Context, c *models.Comment) error {
	return s.createFn(ctx, c)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id)
}
func (s *commentRepoStub) ListAll(ctx context.Context) ([]*models.Comment, error) {
	return s.listAllFn(ctx)
}
func (s *commentRepoStub) ListRootsByPost(ctx context.Context, postID uint) ([]*models.Comment, error) {
	return s.listRootsByPostFn(ctx, postID)
}
func (s *commentRepoStub) ListReplies(ctx context.Context, parentID uint) ([]*models.Comment, error) {
	return s.listRepliesFn(ctx, parentID)
}
func (s *commentRepoStub) Update(ctx context.Context, c *models.Comment) error {
	return s.updateFn(ctx, c)
}
func (s *commentRepoStub) CollectSubtreeIDs(ctx context.Context, rootID uint) ([]uint, error) {
	return s.collectSubtreeIDsFn(ctx, rootID)
}
func (s *commentRepoStub) DeleteByIDs(ctx context.Context, ids []uint) error {
	return s.deleteByIDsFn(ctx, ids)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn:            func(context.Context, *models.Comment) error { return nil },
		getByIDFn:           func(context.Context, uint) (*models.Comment, error) { return &models.Comment{}, nil },
		listAllFn:           func(context.Context) ([]*models.Comment, error) { return nil, nil },
		listRootsByPostFn:   func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		listRepliesFn:       func(context.Context, uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:            func(context.Context, *models.Comment) error { return nil },
		collectSubtreeIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
		deleteByIDsFn:       func(context.Context, []uint) error { return nil },
	}
}

type postRepoStub struct {
	createFn      func(context.Context, *models.Post) error
	getByIDFn     func(context.Context, uint) (*models.Post, error)
	existsFn      func(context.Context, uint) (bool, error)
	listFn        func(context.Context, int, int) ([]*models.Post, error)
	listByThemeFn func(context.Context, uint, int, int) ([]*models.Post, error)
	updateFn      func(context.Context, *models.Post) error
	deleteFn      func(context.Context, uint) error
}

func (s *postRepoStub) Create(ctx context.Context, p *models.Post) error { return s.createFn(ctx, p) }
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) Exists(ctx context.Context, id uint) (bool, error) {
	return s.existsFn(ctx, id)
}
func (s *postRepoStub) List(ctx context.Context, limit, offset int) ([]*models.Post, error) {
	return s.listFn(ctx, limit, offset)
}
func (s *postRepoStub) ListByTheme(ctx context.Context, themeID uint, limit, offset int) ([]*models.Post, error) {
	return s.listByThemeFn(ctx, themeID, limit, offset)
}
func (s *postRepoStub) Update(ctx context.Context, p *models.Post) error { return s.updateFn(ctx, p) }
func (s *postRepoStub) Delete(ctx context.Context, id uint) error        { return s.deleteFn(ctx, id) }

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:      func(context.Context, *models.Post) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Post, error) { return &models.Post{}, nil },
		existsFn:      func(context.Context, uint) (bool, error) { return true, nil },
		listFn:        func(context.Context, int, int) ([]*models.Post, error) { return nil, nil },
		listByThemeFn: func(context.Context, uint, int, int) ([]*models.Post, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Post) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}

type imageRepoStub struct {
	attachFn            func(context.Context, *models.Image) error
	replaceFn           func(context.Context, models.ImageOwner, uint, models.ImageData) (*models.Image, error)
	detachAllForOwnerFn func(context.Context, models.ImageOwner, uint) error
	getByIDFn           func(context.Context, uint) (*models.Image, error)
	listAllFn           func(context.Context) ([]*models.Image, error)
	listByOwnerFn       func(context.Context, models.ImageOwner, uint) ([]*models.Image, error)
	updateFn            func(context.Context, *models.Image) error
}

func (s *imageRepoStub) Attach(ctx context.Context, i *models.Image) error {
	return s.attachFn(ctx, i)
}
func (s *imageRepoStub) Replace(ctx context.Context, o models.ImageOwner, id uint, d models.ImageData) (*models.Image, error) {
	return s.replaceFn(ctx, o, id, d)
}
func (s *imageRepoStub) DetachAllForOwner(ctx context.Context, o models.ImageOwner, id uint) error {
	return s.detachAllForOwnerFn(ctx, o, id)
}
func (s *imageRepoStub) GetByID(ctx context.Context, id uint) (*models.Image, error) {
	return s.getByIDFn(ctx, id)
}
func (s *imageRepoStub) ListAll(ctx context.Context) ([]*models.Image, error) {
	return s.listAllFn(ctx)
}
func (s *imageRepoStub) ListByOwner(ctx context.Context, o models.ImageOwner, id uint) ([]*models.Image, error) {
	return s.listByOwnerFn(ctx, o, id)
}
func (s *imageRepoStub) Update(ctx context.Context, i *models.Image) error {
	return s.updateFn(ctx, i)
}

func noopImageRepo() *imageRepoStub {
	return &imageRepoStub{
		attachFn: func(context.Context, *models.Image) error { return nil },
		replaceFn: func(context.Context, models.ImageOwner, uint, models.ImageData) (*models.Image, error) {
			return &models.Image{}, nil
		},
		detachAllForOwnerFn: func(context.Context, models.ImageOwner, uint) error { return nil },
		getByIDFn:           func(context.Context, uint) (*models.Image, error) { return &models.Image{}, nil },
		listAllFn:           func(context.Context) ([]*models.Image, error) { return nil, nil },
		listByOwnerFn:       func(context.Context, models.ImageOwner, uint) ([]*models.Image, error) { return nil, nil },
		updateFn:            func(context.Context, *models.Image) error { return nil },
	}
}

type themeRepoStub struct {
	createFn  func(context.Context, *models.Theme) error
	getByIDFn func(context.Context, uint) (*models.Theme, error)
	listFn    func(context.Context) ([]*models.Theme, error)
	updateFn  func(context.Context, *models.Theme) error
	deleteFn  func(context.Context, uint) error
}

func (s *themeRepoStub) Create(ctx context.Context, th *models.Theme) error {
	return s.createFn(ctx, th)
}
func (s *themeRepoStub) GetByID(ctx context.Context, id uint) (*models.Theme, error) {
	return s.getByIDFn(ctx, id)
}
func (s *themeRepoStub) List(ctx context.Context) ([]*models.Theme, error) { return s.listFn(ctx) }
func (s *themeRepoStub) Update(ctx context.Context, th *models.Theme) error {
	return s.updateFn(ctx, th)
}
func (s *themeRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopThemeRepo() *themeRepoStub {
	return &themeRepoStub{
		createFn:  func(context.Context, *models.Theme) error { return nil },
		getByIDFn: func(context.Context, uint) (*models.Theme, error) { return &models.Theme{}, nil },
		listFn:    func(context.Context) ([]*models.Theme, error) { return nil, nil },
		updateFn:  func(context.Context, *models.Theme) error { return nil },
		deleteFn:  func(context.Context, uint) error { return nil },
	}
}

type profileRepoStub struct {
	createFn      func(context.Context, *models.Profile) error
	getByIDFn     func(context.Context, uint) (*models.Profile, error)
	getByUserIDFn func(context.Context, uint) (*models.Profile, error)
	updateFn      func(context.Context, *models.Profile) error
	deleteFn      func(context.Context, uint) error
}

func (s *profileRepoStub) Create(ctx context.Context, p *models.Profile) error {
	return s.createFn(ctx, p)
}
func (s *profileRepoStub) GetByID(ctx context.Context, id uint) (*models.Profile, error) {
	return s.getByIDFn(ctx, id)
}
func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) Update(ctx context.Context, p *models.Profile) error {
	return s.updateFn(ctx, p)
}
func (s *profileRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		createFn:      func(context.Context, *models.Profile) error { return nil },
		getByIDFn:     func(context.Context, uint) (*models.Profile, error) { return &models.Profile{}, nil },
		getByUserIDFn: func(context.Context, uint) (*models.Profile, error) { return &models.Profile{}, nil },
		updateFn:      func(context.Context, *models.Profile) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
	}
}
