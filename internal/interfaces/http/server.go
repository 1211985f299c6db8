// internal/interfaces/http/server.go
package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/voice-shop/internal/config"
	"github.com/your-org/voice-shop/internal/domain/store"
	"github.com/your-org/voice-shop/internal/domain/transcript"
	"github.com/your-org/voice-shop/internal/interfaces/http/middleware"
	"github.com/your-org/voice-shop/internal/interfaces/http/routes"
	"github.com/your-org/voice-shop/internal/pkg/metrics"
	"github.com/your-org/voice-shop/internal/pkg/pdf"
)

// HealthChecker is a backing service the health endpoint pings
type HealthChecker interface {
	Health() error
}

// Options carry the optional collaborators of the server
type Options struct {
	Redis       *redis.Client
	Transcripts *transcript.Service
	PDF         *pdf.Service
	Metrics     *metrics.HTTPMetrics
	Checks      map[string]HealthChecker
}

// Server represents the HTTP server
type Server struct {
	config     *config.Config
	logger     logrus.FieldLogger
	gin        *gin.Engine
	httpServer *http.Server
	store      *store.Store
	opts       Options
	startedAt  time.Time
}

// NewServer creates a new HTTP server instance with its routes mounted
func NewServer(cfg *config.Config, logger logrus.FieldLogger, st *store.Store, opts Options) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if opts.PDF == nil {
		opts.PDF = pdf.NewService(cfg)
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New("voice_shop")
	}

	s := &Server{
		config:    cfg,
		logger:    logger,
		gin:       gin.New(),
		store:     st,
		opts:      opts,
		startedAt: time.Now(),
	}

	if err := s.gin.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		logger.WithError(err).Warn("Invalid trusted proxies, trusting none")
		_ = s.gin.SetTrustedProxies(nil)
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s
}

// Router exposes the gin engine, mainly for tests
func (s *Server) Router() *gin.Engine {
	return s.gin
}

// Start starts the HTTP server and blocks until it stops
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.gin,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  s.config.Server.IdleTimeout,
	}

	s.logger.WithFields(logrus.Fields{
		"port":     s.config.Server.Port,
		"base_url": fmt.Sprintf("http://localhost:%s/api/v1", s.config.Server.Port),
	}).Info("HTTP server starting")

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("Shutting down HTTP server")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	s.logger.Info("HTTP server stopped gracefully")
	return nil
}

func (s *Server) setupMiddleware() {
	s.gin.Use(gin.Recovery())
	s.gin.Use(middleware.RequestID())
	s.gin.Use(middleware.Logger(s.logger))
	s.gin.Use(middleware.Metrics(s.opts.Metrics))
	s.gin.Use(middleware.CORS(s.config))
	s.gin.Use(middleware.SecurityHeaders())
	s.gin.Use(middleware.RateLimit(s.config, s.opts.Redis, s.logger))
	s.gin.Use(middleware.RequestSizeLimit(s.config.Server.MaxBodyBytes))
	s.gin.Use(middleware.Timeout(s.config.Server.RequestTimeout))
}

func (s *Server) setupRoutes() {
	s.gin.GET("/health", s.healthCheck)
	s.gin.GET("/ready", s.readinessCheck)
	s.gin.GET("/metrics", gin.WrapH(s.opts.Metrics.Handler()))

	apiV1 := s.gin.Group("/api/v1")
	routes.SetupRoutes(apiV1, routes.Dependencies{
		Store:       s.store,
		Transcripts: s.opts.Transcripts,
		PDF:         s.opts.PDF,
		Metrics:     s.opts.Metrics,
		Logger:      s.logger,
	})

	if s.config.IsDevelopment() {
		s.gin.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":     s.config.App.Name,
				"version":     s.config.App.Version,
				"environment": s.config.App.Environment,
				"health":      "/health",
				"endpoints": gin.H{
					"products":    "/api/v1/products",
					"promos":      "/api/v1/promos",
					"carts":       "/api/v1/carts",
					"orders":      "/api/v1/orders",
					"tools":       "/api/v1/tools",
					"transcripts": "/api/v1/transcripts",
				},
			})
		})
	}
}

// healthCheck pings every configured backing service
func (s *Server) healthCheck(c *gin.Context) {
	for name, check := range s.opts.Checks {
		if err := check.Health(); err != nil {
			s.logger.WithError(err).WithField("service", name).Warn("Health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  fmt.Sprintf("%s unavailable", name),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"version":     s.config.App.Version,
		"environment": s.config.App.Environment,
	})
}

// readinessCheck reports the in-memory store as ready
func (s *Server) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startedAt).String(),
		"carts":     s.store.Carts.Count(),
		"orders":    s.store.Orders.Count(),
	})
}
