// Package httpapi serves the evaluation engine over HTTP.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/consultready/consultready/internal/application"
)

// ShutdownTimeout bounds how long in-flight requests get after the run
// context ends.
const ShutdownTimeout = 10 * time.Second

// Server wraps an echo instance with the consult routes registered.
type Server struct {
	echo   *echo.Echo
	logger zerolog.Logger
}

// New builds the server. bodyLimit uses echo's size syntax ("64K", "1M").
func New(catalog *application.Catalog, svc *application.EvaluateService, bodyLimit string, logger zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(Recovery(logger))
	e.Use(RequestID())
	e.Use(Logger(logger))
	e.Use(echomw.BodyLimit(bodyLimit))

	NewHandler(catalog, svc).RegisterRoutes(e)

	return &Server{echo: e, logger: logger}
}

// ServeHTTP lets tests drive the router without a listener.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Addr returns the bound listener address, or nil before Run starts listening.
func (s *Server) Addr() net.Addr {
	return s.echo.ListenerAddr()
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", addr).Msg("starting server")
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
