// Package server contains the HTTP handlers for the application's API
// endpoints.
package server

import (
	"context"
	"fmt"
	"log"
	"time"

	_ "inkwell/docs" // swagger docs
	"inkwell/internal/cache"
	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/identity"
	"inkwell/internal/middleware"
	"inkwell/internal/models"
	"inkwell/internal/repository"
	"inkwell/internal/service"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config         *config.Config
	db             *gorm.DB
	redis          *redis.Client
	app            *fiber.App
	promMiddleware *fiberprometheus.FiberPrometheus
	userRepo       repository.UserRepository
	commentRepo    repository.CommentRepository
	imageRepo      repository.ImageRepository
	postRepo       repository.PostRepository
	themeRepo      repository.ThemeRepository
	profileRepo    repository.ProfileRepository
	resolver       *identity.Resolver
	commentService *service.CommentService
	postService    *service.PostService
	themeService   *service.ThemeService
	profileService *service.ProfileService
	imageService   *service.ImageService
}

// NewServer creates a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDeps(cfg, db, cache.GetClient())
}

// NewServerWithDeps creates a Server using already-initialized dependencies.
// Use this in tests or when a bootstrap layer establishes DB/Redis.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Server, error) {
	userRepo := repository.NewUserRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	imageRepo := repository.NewImageRepository(db)
	postRepo := repository.NewPostRepository(db)
	themeRepo := repository.NewThemeRepository(db)
	profileRepo := repository.NewProfileRepository(db)

	prom := middleware.InitMetrics("inkwell-api")

	server := &Server{
		config:         cfg,
		db:             db,
		redis:          redisClient,
		promMiddleware: prom,
		userRepo:       userRepo,
		commentRepo:    commentRepo,
		imageRepo:      imageRepo,
		postRepo:       postRepo,
		themeRepo:      themeRepo,
		profileRepo:    profileRepo,
		resolver:       identity.NewResolver(userRepo),
	}
	server.commentService = service.NewCommentService(db, commentRepo, imageRepo, postRepo)
	server.postService = service.NewPostService(db, postRepo, themeRepo, imageRepo)
	server.themeService = service.NewThemeService(themeRepo, postRepo)
	server.profileService = service.NewProfileService(db, profileRepo, imageRepo)
	server.imageService = service.NewImageService(imageRepo, commentRepo, postRepo, profileRepo)

	return server, nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Panic recovery
	app.Use(recover.New())

	// Request ID for tracing
	app.Use(requestid.New())

	// Context Middleware to propagate Request ID and User ID
	app.Use(middleware.ContextMiddleware())

	// Prometheus Metrics
	if s.promMiddleware != nil {
		app.Use(middleware.MetricsMiddleware(s.promMiddleware))
	}

	// Security headers
	app.Use(helmet.New())

	// Structured Logging middleware (after requestid and context middleware)
	app.Use(middleware.StructuredLogger())

	if s.config.TracingEnabled {
		app.Use(middleware.TracingMiddleware())
	}

	// CORS middleware should run before middlewares that can short-circuit
	// (e.g. limiter) so browser clients still receive CORS headers on error
	// responses.
	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		// Never rate-limit preflight requests; they are handled by CORS.
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions
		},
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return models.RespondWithError(c,
				models.NewValidationError("Too many requests, please try again later."))
		},
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health checks
	app.Get("/health/live", s.LivenessCheck)
	app.Get("/health/ready", s.ReadinessCheck)
	app.Get("/health", s.ReadinessCheck)

	// Metrics endpoint for Prometheus
	if s.promMiddleware != nil {
		s.promMiddleware.RegisterAt(app, "/metrics")
	}
	api.Get("/metrics/dashboard", monitor.New(monitor.Config{
		Title: "Inkwell Backend Metrics Dashboard",
	}))

	// Swagger documentation
	api.Get("/swagger/*", swagger.HandlerDefault)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/register", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register"), s.Register)
	auth.Post("/register-admin", middleware.RateLimit(
		s.redis, 3, 10*time.Minute, "register_admin"), s.RegisterAdmin)
	auth.Post("/login", middleware.RateLimit(
		s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public comment routes. Specific /:id/:resource style routes go BEFORE
	// the generic /:id route.
	comments := api.Group("/comments")
	comments.Get("/", s.GetComments)
	comments.Get("/post/:postId", s.GetPostComments)
	comments.Get("/replies/:id", s.GetCommentReplies)
	comments.Get("/:id", s.GetComment)

	// Public post routes
	posts := api.Group("/posts")
	posts.Get("/", s.GetPosts)
	posts.Get("/theme/:themeId", s.GetPostsByTheme)
	posts.Get("/:id", s.GetPost)

	// Public theme routes
	themes := api.Group("/themes")
	themes.Get("/", s.GetThemes)
	themes.Get("/:id", s.GetTheme)

	// Public image routes
	images := api.Group("/images")
	images.Get("/", s.GetImages)
	images.Get("/:id", s.GetImage)

	// Public profile lookup
	api.Get("/profiles/:userId", s.GetProfile)

	// Protected routes
	protected := api.Group("", middleware.AuthRequired)

	protectedComments := protected.Group("/comments")
	protectedComments.Post("/", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
	protectedComments.Post("/reply", middleware.RateLimit(
		s.redis, 10, time.Minute, "create_comment"), s.CreateReply)
	protectedComments.Put("/:id", s.UpdateComment)
	protectedComments.Delete("/:id", s.DeleteComment)

	protectedPosts := protected.Group("/posts")
	protectedPosts.Post("/", middleware.RateLimit(
		s.redis, 5, 5*time.Minute, "create_post"), s.CreatePost)
	protectedPosts.Put("/:id", s.UpdatePost)
	protectedPosts.Delete("/:id", s.DeletePost)

	protectedThemes := protected.Group("/themes")
	protectedThemes.Post("/", s.CreateTheme)
	protectedThemes.Put("/:id", s.UpdateTheme)
	protectedThemes.Delete("/:id", s.DeleteTheme)

	protectedProfiles := protected.Group("/profiles")
	protectedProfiles.Get("/me", s.GetMyProfile)
	protectedProfiles.Put("/me", s.UpsertMyProfile)
	protectedProfiles.Delete("/:userId", s.DeleteProfile)

	protected.Put("/images/:id", s.UpdateImage)
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck handles readiness probe requests
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		// The API serves without redis; caching and rate limits degrade.
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	overallStatus := "healthy"
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
		overallStatus = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overallStatus,
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// Start starts the server
func (s *Server) Start() error {
	app := fiber.New(fiber.Config{
		AppName: "Inkwell API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return models.RespondWithError(c, models.NewInternalError(err))
		},
	})
	s.app = app

	s.SetupMiddleware(app)
	s.SetupRoutes(app)

	log.Printf("Server starting on port %s...", s.config.Port)
	return app.Listen(":" + s.config.Port)
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.app != nil {
		if err := s.app.ShutdownWithContext(ctx); err != nil {
			log.Printf("error shutting down HTTP server: %v", err)
		}
	}

	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Printf("error closing sql DB: %v", cerr)
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			log.Printf("error closing redis: %v", rerr)
		}
	}

	log.Println("Server shutdown complete")
	return nil
}
