package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/factorio-tools/bpeditor/internal/config"
	apihttp "github.com/factorio-tools/bpeditor/internal/http"
	"github.com/factorio-tools/bpeditor/internal/logging"
	"github.com/factorio-tools/bpeditor/internal/middleware"
	"github.com/factorio-tools/bpeditor/internal/monitoring"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	cfg    *config.Config
	log    *logging.Logger
	router *gin.Engine
	srv    *http.Server
}

// New builds a server from configuration.
func New(cfg *config.Config, log *logging.Logger) *Server {
	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := monitoring.New()
	handlers := apihttp.NewHandlers(log, metrics)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(nil))
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(middleware.RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
		}))
	}

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	blueprints := router.Group("/blueprints")
	{
		blueprints.POST("/decode", handlers.Decode)
		blueprints.POST("/encode", handlers.Encode)
		blueprints.POST("/analyze", handlers.Analyze)
		blueprints.POST("/stats", handlers.Stats)
		blueprints.POST("/validate", handlers.Validate)
	}

	return &Server{cfg: cfg, log: log, router: router}
}

// Router exposes the configured gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until the context is cancelled, then drains in-flight
// requests.
func (s *Server) Run(ctx context.Context) error {
	addr := net.JoinHostPort(s.cfg.Server.Host, s.cfg.Server.Port)
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           http.MaxBytesHandler(s.router, s.cfg.Server.MaxBodyBytes),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server listening", zap.String("addr", addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	}
}

// requestLogger logs each request with method, path, status, and latency.
func requestLogger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
