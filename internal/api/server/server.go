package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ukpabik/mid-diff/internal/api/middleware"
	"github.com/ukpabik/mid-diff/internal/api/rest"
	"github.com/ukpabik/mid-diff/internal/config"
	"github.com/ukpabik/mid-diff/internal/ingest"
	"github.com/ukpabik/mid-diff/internal/logger"
	"github.com/ukpabik/mid-diff/internal/recommend"
	"github.com/ukpabik/mid-diff/internal/stats"
	"github.com/ukpabik/mid-diff/internal/store"
)

// Server wraps the HTTP server
type Server struct {
	debug       bool
	config      config.ServerConfig
	store       store.Store
	ingester    ingest.Ingester
	recommender recommend.Recommender
	aggregator  stats.Aggregator
	httpServer  *http.Server
}

// New creates a new API server
func New(debug bool, cfg config.ServerConfig, st store.Store, ingester ingest.Ingester, recommender recommend.Recommender, aggregator stats.Aggregator) *Server {
	return &Server{
		debug:       debug,
		config:      cfg,
		store:       st,
		ingester:    ingester,
		recommender: recommender,
		aggregator:  aggregator,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	// Set Gin mode based on debug flag
	if s.debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Setup middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	// Create REST handler
	restHandler := rest.NewHandler(s.ingester, s.store, s.recommender, s.aggregator)

	// Setup REST routes
	rest.SetupRoutes(router, restHandler)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	// Start server
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
