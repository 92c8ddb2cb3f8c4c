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

func TestRegister(t *testing.T) {
	t.Run("creates an account and returns a token", func(t *testing.T) {
		_, app := newTestServer(t)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username": "alice",
			"email":    "alice@example.com",
			"password": testPassword,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		env, data := decodeEnvelope(t, resp)
		assert.True(t, env.Success)

		var payload struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.NotEmpty(t, payload.Token)
		assert.Equal(t, "alice", payload.User.Username)
		assert.Equal(t, models.RoleUser, payload.User.Role)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, app := newTestServer(t)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username": "alice",
			"email":    "alice@example.com",
			"password": "short",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("rejects duplicate emails", func(t *testing.T) {
		s, app := newTestServer(t)
		createTestUser(t, s, "alice", models.RoleUser)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
			"username": "alice2",
			"email":    "alice@example.com",
			"password": testPassword,
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestRegisterAdmin(t *testing.T) {
	t.Run("requires the admin signup code", func(t *testing.T) {
		_, app := newTestServer(t)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/register-admin", "", fiber.Map{
			"username":   "root",
			"email":      "root@example.com",
			"password":   testPassword,
			"admin_code": "wrong",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	})

	t.Run("grants the Admin role with the right code", func(t *testing.T) {
		_, app := newTestServer(t)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/register-admin", "", fiber.Map{
			"username":   "root",
			"email":      "root@example.com",
			"password":   testPassword,
			"admin_code": "let-me-in",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		_, data := decodeEnvelope(t, resp)
		var payload struct {
			User models.User `json:"user"`
		}
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.Equal(t, models.RoleAdmin, payload.User.Role)
	})
}

func TestLogin(t *testing.T) {
	t.Run("returns a token for valid credentials", func(t *testing.T) {
		s, app := newTestServer(t)
		createTestUser(t, s, "alice", models.RoleUser)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "alice@example.com",
			"password": testPassword,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		env, data := decodeEnvelope(t, resp)
		assert.True(t, env.Success)
		var payload struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.NotEmpty(t, payload.Token)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		s, app := newTestServer(t)
		createTestUser(t, s, "alice", models.RoleUser)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "alice@example.com",
			"password": "Wr0ng!Passw0rd",
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects an unknown email without leaking existence", func(t *testing.T) {
		_, app := newTestServer(t)

		resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
			"email":    "nobody@example.com",
			"password": testPassword,
		})
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
