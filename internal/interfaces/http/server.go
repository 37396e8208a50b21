package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/siamhora/siamhora/internal/config"
	"github.com/siamhora/siamhora/internal/infrastructure/monitoring/logging"
)

// Server wraps http.Server with the service's lifecycle conventions.
type Server struct {
	httpServer *http.Server
	cfg        config.ServerConfig
	logger     logging.Logger
}

// NewServer builds the server around an assembled router.
func NewServer(cfg config.ServerConfig, handler http.Handler, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		cfg:    cfg,
		logger: logger,
	}
}

// Start serves until the listener closes.  It returns nil on graceful
// shutdown and the listener error otherwise.
func (s *Server) Start() error {
	s.logger.Info("http server listening",
		logging.String("addr", s.httpServer.Addr),
		logging.String("mode", s.cfg.Mode))

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests within the configured timeout.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.ShutdownTimeout)
	defer cancel()

	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(shutdownCtx)
}

//Personal.AI order the ending
