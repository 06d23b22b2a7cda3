package api

import (
	"database/sql"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kotatsu-vn/novel-backend/internal/api/handler"
	"github.com/kotatsu-vn/novel-backend/internal/core/ports"
)

// Services groups the application services the router exposes.
type Services struct {
	Auth    ports.AuthService
	Novel   ports.NovelService
	Project ports.ProjectService
	Upload  ports.UploadService
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, db *sql.DB, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	// Permissive CORS, same policy the original handlers answered OPTIONS with.
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
		MaxAge:       86400,
	}))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(svc.Auth)
	novelHandler := handler.NewNovelHandler(svc.Novel)
	projectHandler := handler.NewProjectHandler(svc.Project)
	uploadHandler := handler.NewUploadHandler(svc.Upload)

	// --- Auth / profile ---
	e.POST("/api/auth", authHandler.Handle)

	// --- Novel document ---
	e.GET("/api/novel", novelHandler.Get)
	e.PUT("/api/novel", novelHandler.Replace)

	// --- Scene projects ---
	e.GET("/api/projects", projectHandler.List)
	e.POST("/api/projects", projectHandler.Create)
	e.GET("/api/projects/:id", projectHandler.Get)
	e.PUT("/api/projects/:id", projectHandler.Update)
	e.DELETE("/api/projects/:id", projectHandler.Delete)

	// --- Image upload ---
	e.POST("/api/upload", uploadHandler.Upload)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return e
}
