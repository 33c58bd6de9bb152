package httpserver

import (
	"context"
	"errors"
	"fmt"
	"jobly/internal/config"
	"jobly/internal/http-server/handlers"
	"jobly/internal/http-server/middleware"
	"jobly/internal/http-server/routes"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router   *gin.Engine
	handlers *handlers.Handlers
	logger   *zap.Logger
	config   config.ServiceConfig
}

func NewServer(logger *zap.Logger, handlers *handlers.Handlers, cfg config.ServiceConfig) *Server {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), gin.Recovery())

	s := &Server{
		router:   router,
		handlers: handlers,
		logger:   logger,
		config:   cfg,
	}
	s.setupRoutes()

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", zap.String("address", s.config.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("server error: %w", err)
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal", zap.Error(ctx.Err()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server forced to shutdown", zap.Error(err))
			return err
		}
		s.logger.Info("Server gracefully shut down")
		return nil
	}
}

func (s *Server) setupRoutes() {
	routes.SetupHealthRoutes(s.router)

	api := s.router.Group("/api/v1")

	routes.SetupJobsRoutes(api, s.handlers.JobsHandler)
	routes.SetupCompaniesRoutes(api, s.handlers.JobsHandler)
}
