package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostHandlers(t *testing.T) {
	t.Run("create, list, update, delete", func(t *testing.T) {
		s, app := newTestServer(t)
		_, token := createTestUser(t, s, "alice", models.RoleUser)
		theme := createTestTheme(t, s, "tech")

		resp := doJSON(t, app, http.MethodPost, "/api/posts", token, fiber.Map{
			"title":    "Go generics",
			"content":  "long form",
			"theme_id": theme.ID,
			"cover":    fiber.Map{"url": "https://img.test/hero.webp"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_, data := decodeEnvelope(t, resp)
		var post models.Post
		require.NoError(t, json.Unmarshal(data, &post))
		require.Len(t, post.Images, 1)

		resp = doJSON(t, app, http.MethodGet, "/api/posts", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_, data = decodeEnvelope(t, resp)
		var posts []models.Post
		require.NoError(t, json.Unmarshal(data, &posts))
		assert.Len(t, posts, 1)

		resp = doJSON(t, app, http.MethodPut, "/api/posts/"+itoa(post.ID), token, fiber.Map{
			"title":    "Go generics, revised",
			"content":  "long form",
			"theme_id": theme.ID,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_, data = decodeEnvelope(t, resp)
		var updated models.Post
		require.NoError(t, json.Unmarshal(data, &updated))
		assert.Equal(t, "Go generics, revised", updated.Title)

		resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+itoa(post.ID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		resp = doJSON(t, app, http.MethodGet, "/api/posts/"+itoa(post.ID), "", nil)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("mutations require auth", func(t *testing.T) {
		_, app := newTestServer(t)

		resp := doJSON(t, app, http.MethodPost, "/api/posts", "", fiber.Map{
			"title": "anonymous", "content": "body", "theme_id": 1,
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("deleting a post removes its comments", func(t *testing.T) {
		s, app := newTestServer(t)
		user, token := createTestUser(t, s, "alice", models.RoleUser)
		theme := createTestTheme(t, s, "tech")
		post := createTestPost(t, s, user, theme.ID)

		resp := doJSON(t, app, http.MethodPost, "/api/comments", token, fiber.Map{
			"post_id": post.ID, "content": "doomed",
		})
		_ = resp.Body.Close()

		resp = doJSON(t, app, http.MethodDelete, "/api/posts/"+itoa(post.ID), token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()

		var count int64
		require.NoError(t, s.db.Model(&models.Comment{}).Count(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("posts by theme", func(t *testing.T) {
		s, app := newTestServer(t)
		user, _ := createTestUser(t, s, "alice", models.RoleUser)
		theme := createTestTheme(t, s, "tech")
		other := createTestTheme(t, s, "life")
		createTestPost(t, s, user, theme.ID)

		resp := doJSON(t, app, http.MethodGet, "/api/posts/theme/"+itoa(theme.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_, data := decodeEnvelope(t, resp)
		var posts []models.Post
		require.NoError(t, json.Unmarshal(data, &posts))
		assert.Len(t, posts, 1)

		resp = doJSON(t, app, http.MethodGet, "/api/posts/theme/"+itoa(other.ID), "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		_, data = decodeEnvelope(t, resp)
		posts = nil
		if len(data) > 0 {
			require.NoError(t, json.Unmarshal(data, &posts))
		}
		assert.Empty(t, posts)
	})
}
