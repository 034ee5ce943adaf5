// Package server exposes the dashboard pages as a JSON HTTP API. Every request
// runs its own pipeline against the configured source.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
)

// Server wires the handlers and middleware into a gin engine.
type Server struct {
	src    dataset.Source
	log    zerolog.Logger
	engine *gin.Engine
}

// New builds the router. The source is shared; tables never are.
func New(src dataset.Source, log zerolog.Logger) *Server {
	s := &Server{src: src, log: log}
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", s.health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/diversity", s.diversity)
		v1.GET("/salary", s.salary)
		v1.GET("/income", s.income)
		v1.GET("/income/years", s.incomeYears)
		v1.GET("/statemap", s.stateMap)
	}
	s.engine = router
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.engine }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
