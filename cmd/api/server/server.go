package server

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"shop-service/cmd/api/di"
	"shop-service/internal/adapter/gin/router"
	"shop-service/internal/config"
)

// Server wraps the HTTP server and its dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server
}

// New creates a new server instance with the router wired to the
// container's handlers.
func New(cfg *config.Config, l *zap.Logger, c *di.Container) *Server {
	r := router.Setup(c.AuthHandler, c.ItemHandler, c.CartHandler, c.Tokens, cfg.App.StaticDir, l)

	return &Server{
		Config: cfg,
		Logger: l,
		HTTP: &http.Server{
			Addr:              ":" + cfg.App.HTTPPort,
			Handler:           r,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       120 * time.Second,
		},
	}
}

// Start runs the HTTP server until it fails or is shut down
func (s *Server) Start() error {
	s.Logger.Info("HTTP server running", zap.String("address", s.HTTP.Addr))
	return s.HTTP.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}
