// Package http exposes the negotiation planning API over HTTP. Routing and
// handlers are gin-based; the server supports graceful shutdown.
package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/logging"
)

// Server wraps the standard http.Server with lifecycle management.
type Server struct {
	srv             *http.Server
	log             logging.Logger
	shutdownTimeout time.Duration
}

// NewServer builds the listening server around the given handler.
func NewServer(cfg config.ServerConfig, handler http.Handler, log logging.Logger) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		log:             log.Named("http.server"),
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Run serves until ctx is cancelled, then drains in-flight requests within
// the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.Info("http server listening", logging.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		s.log.Info("shutting down http server")
		return s.srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
