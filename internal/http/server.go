package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/dig"

	"github.com/davidbz/anyway/internal/config"
	"github.com/davidbz/anyway/internal/http/middleware"
	"github.com/davidbz/anyway/internal/observability"
	"github.com/davidbz/anyway/internal/telemetry/metrics"
)

// ServerParams are the server's injected dependencies.
type ServerParams struct {
	dig.In

	Config      *config.ServerConfig
	Handler     *Handler
	Middlewares middleware.Middleware
	Metrics     *metrics.CostMetrics `optional:"true"`
}

// Server represents the HTTP server.
type Server struct {
	config      config.ServerConfig
	handler     *Handler
	middlewares middleware.Middleware
	metrics     *metrics.CostMetrics
	srv         *http.Server
}

// NewServer creates a new HTTP server.
func NewServer(params ServerParams) *Server {
	return &Server{
		config:      *params.Config,
		handler:     params.Handler,
		middlewares: params.Middlewares,
		metrics:     params.Metrics,
		srv:         nil,
	}
}

// Routes returns the server's handler with middleware applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	// Register routes.
	mux.HandleFunc("/v1/cost", s.handler.HandleCost)
	mux.HandleFunc("/v1/pricing", s.handler.HandlePricing)
	mux.HandleFunc("/health", s.handler.HandleHealth)

	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	// Apply middleware chain.
	return s.middlewares(mux)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	// Create server with timeouts.
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(s.config.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.config.WriteTimeout) * time.Second,
	}

	ctx := context.Background()
	observability.FromContext(ctx).Info("starting HTTP server", observability.Int("port", s.config.Port))

	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	observability.FromContext(ctx).Info("shutting down HTTP server")

	if s.srv == nil {
		return nil
	}

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
