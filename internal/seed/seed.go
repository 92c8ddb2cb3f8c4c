// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkwell/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers        int
	NumPosts        int
	CommentsPerPost int
	Password        string
}

var themeNames = []string{
	"Technology", "Programming", "Travel", "Food", "Music",
	"Books", "Science", "Gaming", "Fitness", "Art",
}

// Run populates the database with demo users, themes, posts and comment
// trees. It is idempotent per database: a database that already has users
// is left untouched.
func Run(db *gorm.DB, opts Options) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if userCount > 0 {
		log.Println("seed: database already has users, skipping")
		return nil
	}

	if opts.NumUsers <= 0 {
		opts.NumUsers = 10
	}
	if opts.NumPosts <= 0 {
		opts.NumPosts = 25
	}
	if opts.CommentsPerPost <= 0 {
		opts.CommentsPerPost = 4
	}
	if opts.Password == "" {
		opts.Password = "Dem0!Passw0rd"
	}

	gofakeit.Seed(time.Now().UnixNano())
	f := &factory{db: db, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}

	users, err := f.createUsers(opts.NumUsers, opts.Password)
	if err != nil {
		return err
	}
	themes, err := f.createThemes()
	if err != nil {
		return err
	}
	posts, err := f.createPosts(opts.NumPosts, users, themes)
	if err != nil {
		return err
	}
	if err := f.createCommentTrees(posts, users, opts.CommentsPerPost); err != nil {
		return err
	}

	log.Printf("seed: created %d users, %d themes, %d posts", len(users), len(themes), len(posts))
	return nil
}

type factory struct {
	db  *gorm.DB
	rng *rand.Rand
}

func (f *factory) createUsers(n int, password string) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}

	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		role := models.RoleUser
		if i == 0 {
			role = models.RoleAdmin
		}
		user := &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), i),
			Email:    fmt.Sprintf("seed%d@%s", i, gofakeit.DomainName()),
			Password: string(hashed),
			Role:     role,
		}
		if err := f.db.Create(user).Error; err != nil {
			return nil, fmt.Errorf("create seed user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

func (f *factory) createThemes() ([]*models.Theme, error) {
	themes := make([]*models.Theme, 0, len(themeNames))
	for _, name := range themeNames {
		theme := &models.Theme{Name: name, Info: gofakeit.Sentence(8)}
		if err := f.db.Create(theme).Error; err != nil {
			return nil, fmt.Errorf("create seed theme %q: %w", name, err)
		}
		themes = append(themes, theme)
	}
	return themes, nil
}

func (f *factory) createPosts(n int, users []*models.User, themes []*models.Theme) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		author := users[f.rng.Intn(len(users))]
		post := &models.Post{
			Title:    gofakeit.Sentence(5),
			Intro:    gofakeit.Sentence(12),
			Content:  gofakeit.Paragraph(2, 4, 8, "\n\n"),
			ThemeID:  themes[f.rng.Intn(len(themes))].ID,
			UserID:   author.ID,
			Username: author.Username,
			// realistic created_at spread over the last 90 days
			CreatedAt: time.Now().Add(-time.Duration(f.rng.Intn(90*24)) * time.Hour),
		}
		if err := f.db.Create(post).Error; err != nil {
			return nil, fmt.Errorf("create seed post: %w", err)
		}
		if f.rng.Intn(2) == 0 {
			postID := post.ID
			cover := &models.Image{
				Name:   "cover",
				URL:    fmt.Sprintf("https://picsum.photos/seed/%s/1200/600", gofakeit.UUID()),
				Type:   "jpeg",
				PostID: &postID,
			}
			if err := f.db.Create(cover).Error; err != nil {
				return nil, fmt.Errorf("create seed cover: %w", err)
			}
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// createCommentTrees writes a small discussion under each post: a few roots,
// each with a chance of replies one level down.
func (f *factory) createCommentTrees(posts []*models.Post, users []*models.User, perPost int) error {
	for _, post := range posts {
		roots := f.rng.Intn(perPost + 1)
		for i := 0; i < roots; i++ {
			root, err := f.createComment(post, users, nil)
			if err != nil {
				return err
			}
			replies := f.rng.Intn(3)
			for j := 0; j < replies; j++ {
				if _, err := f.createComment(post, users, &root.ID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (f *factory) createComment(post *models.Post, users []*models.User, parentID *uint) (*models.Comment, error) {
	author := users[f.rng.Intn(len(users))]
	comment := &models.Comment{
		UserID:   author.ID,
		Username: author.Username,
		PostID:   post.ID,
		Content:  gofakeit.Sentence(10 + f.rng.Intn(15)),
		ParentID: parentID,
	}
	if err := f.db.Create(comment).Error; err != nil {
		return nil, fmt.Errorf("create seed comment: %w", err)
	}
	if f.rng.Intn(5) == 0 {
		commentID := comment.ID
		image := &models.Image{
			URL:       fmt.Sprintf("https://picsum.photos/seed/%s/400/300", gofakeit.UUID()),
			Type:      "jpeg",
			CommentID: &commentID,
		}
		if err := f.db.Create(image).Error; err != nil {
			return nil, fmt.Errorf("create seed comment image: %w", err)
		}
	}
	return comment, nil
}
