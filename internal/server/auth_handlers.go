package server

import (
	"fmt"
	"strconv"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	// AdminCode is only honored by the register-admin endpoint.
	AdminCode string `json:"admin_code,omitempty"`
}

// Register handles POST /api/auth/register
// @Summary Register
// @Description Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string} true "Registration request"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Router /auth/register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	return s.register(c, models.RoleUser)
}

// RegisterAdmin handles POST /api/auth/register-admin. The request must
// carry the admin signup code from the server configuration.
// @Summary Register admin
// @Description Register a new administrator account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{username=string,email=string,password=string,admin_code=string} true "Admin registration request"
// @Success 200 {object} models.Envelope
// @Failure 400 {object} models.Envelope
// @Failure 403 {object} models.Envelope
// @Router /auth/register-admin [post]
func (s *Server) RegisterAdmin(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}
	if s.config.AdminSignupCode == "" || req.AdminCode != s.config.AdminSignupCode {
		return models.RespondWithError(c,
			models.NewForbiddenError("Invalid admin signup code"))
	}
	return s.register(c, models.RoleAdmin)
}

func (s *Server) register(c *fiber.Ctx, role string) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		return models.RespondWithError(c,
			models.NewValidationError("Username, email, and password are required"))
	}
	if err := validation.ValidateUsername(req.Username); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		return models.RespondWithError(c, models.NewValidationError(err.Error()))
	}

	existing, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if existing != nil {
		return models.RespondWithError(c, models.NewValidationError("User already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if createErr := s.userRepo.Create(c.UserContext(), user); createErr != nil {
		return models.RespondWithError(c, createErr)
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login handles POST /api/auth/login
// @Summary Login
// @Description Authenticate a user and return a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} models.Envelope
// @Failure 401 {object} models.Envelope
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, models.NewValidationError("Invalid request body"))
	}

	user, err := s.userRepo.GetByEmail(c.UserContext(), req.Email)
	if err != nil {
		return models.RespondWithError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c,
			&models.AppError{Code: models.CodeUnauthenticated, Message: "Invalid credentials"})
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c,
			&models.AppError{Code: models.CodeUnauthenticated, Message: "Invalid credentials"})
	}

	token, err := s.generateToken(user)
	if err != nil {
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	return models.RespondWithData(c, fiber.StatusOK, fiber.Map{
		"token": token,
		"user":  user,
	})
}

// generateToken creates a JWT for the given user.
func (s *Server) generateToken(user *models.User) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	ttl := time.Duration(s.config.TokenTTLMinutes) * time.Minute
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      strconv.FormatUint(uint64(user.ID), 10),
		"username": user.Username,
		"role":     user.Role,
		"iss":      "inkwell-api",
		"aud":      "inkwell-client",
		"exp":      now.Add(ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
		"jti":      fmt.Sprintf("%d-%s", now.Unix(), uuid.New().String()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}
