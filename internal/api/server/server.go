package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/feral-file/launchpad/internal/adapter"
	"github.com/feral-file/launchpad/internal/api/middleware"
	"github.com/feral-file/launchpad/internal/api/rest"
	"github.com/feral-file/launchpad/internal/api/shared/executor"
	"github.com/feral-file/launchpad/internal/logger"
	"github.com/feral-file/launchpad/internal/metrics"
	"github.com/feral-file/launchpad/internal/ratelimit"
)

// Config holds the server configuration
type Config struct {
	Debug          bool
	Host           string
	Port           int
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
	// FilesDir, when set, is served read-only under FilesPrefix
	FilesDir    string
	FilesPrefix string
	// RateLimit throttles the anonymous write routes; disabled when the rate is zero
	RateLimit ratelimit.Config
}

// Server wraps the HTTP server
type Server struct {
	config     Config
	deps       executor.Deps
	auth       middleware.AuthConfig
	httpServer *http.Server
}

// New creates a new API server
func New(cfg Config, deps executor.Deps, auth middleware.AuthConfig) *Server {
	return &Server{
		config: cfg,
		deps:   deps,
		auth:   auth,
	}
}

// Router builds the gin engine with middleware, metrics, static files and REST routes
func (s *Server) Router() *gin.Engine {
	// Set Gin mode based on debug flag
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.SetupCORS(s.config.AllowedOrigins))

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	if s.config.FilesDir != "" && strings.HasPrefix(s.config.FilesPrefix, "/") {
		router.Static(s.config.FilesPrefix, s.config.FilesDir)
	}

	// Create shared executor (contains the business logic behind every route)
	exec := executor.NewExecutor(s.deps)

	// Create REST handler
	restHandler := rest.NewHandler(exec, s.deps.Store)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler, s.auth, s.throttle()...)

	return router
}

func (s *Server) throttle() []gin.HandlerFunc {
	if s.config.RateLimit.RequestsPerSecond <= 0 {
		return nil
	}

	clock := s.deps.Clock
	if clock == nil {
		clock = adapter.NewClock()
	}

	limiter, err := ratelimit.New(s.config.RateLimit, clock)
	if err != nil {
		logger.Warn("Rate limiting disabled", zap.Error(err))
		return nil
	}
	return []gin.HandlerFunc{middleware.RateLimit(limiter)}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
