package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/blogpress/blog-backend/internal/api/handler"
	"github.com/blogpress/blog-backend/internal/api/middleware"
	"github.com/blogpress/blog-backend/internal/core/ports"
	"github.com/blogpress/blog-backend/internal/core/service"
	"github.com/blogpress/blog-backend/internal/infrastructure/config"
	mongodb "github.com/blogpress/blog-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/blogpress/blog-backend/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, uploader ports.Uploader, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	sessions := redisdb.NewSessionStore(rdb, cfg.Session.TTL)

	authService := service.NewAuthService(userRepo, sessions)
	postService := service.NewPostService(postRepo, userRepo, uploader, log)

	authHandler := handler.NewAuthHandler(authService, handler.CookieSettings{
		Name:      cfg.Session.CookieName,
		TTL:       cfg.Session.TTL,
		Secure:    cfg.Session.CookieSecure,
		CrossSite: cfg.Session.CookieCrossSite,
	})
	postHandler := handler.NewPostHandler(postService)
	requireSession := middleware.Session(sessions, cfg.Session.CookieName)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/logout", authHandler.Logout)

	// --- Post routes ---
	e.POST("/post", postHandler.Create, requireSession)
	e.GET("/post", postHandler.List)
	e.GET("/post/:id", postHandler.Get)
	e.PUT("/post", postHandler.Update, requireSession)
	e.GET("/delete/:id", postHandler.Delete, requireSession)

	// --- Local cover images served statically ---
	if cfg.Upload.Backend == "local" {
		e.Static("/uploads", cfg.Upload.Dir)
	}

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
