// Package server exposes the study session over a JSON HTTP API for a
// browser front end.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arcanaland/flashcards/internal/catalog"
	"github.com/arcanaland/flashcards/internal/session"
)

// Server owns one session engine shared by all requests. Every engine call
// runs under mu.
type Server struct {
	decks  *catalog.Catalog
	logger *slog.Logger

	mu        sync.Mutex
	engine    *session.Engine
	sessionID uuid.UUID
}

// New returns a server with no active session.
func New(decks *catalog.Catalog, logger *slog.Logger, opts ...session.Option) *Server {
	return &Server{
		decks:  decks,
		logger: logger,
		engine: session.NewEngine(decks, opts...),
	}
}

// Handler returns the gin router for the API.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())
	s.RegisterRoutes(r)
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", "addr", "http://"+addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// do runs op against the engine under the lock and records a new session
// ID when op replaced the session.
func (s *Server) do(op func(e *session.Engine) (session.Step, error), replaces bool) (stepResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := op(s.engine)
	if replaces && (err == nil || errors.Is(err, session.ErrEmptyDeck)) {
		s.sessionID = uuid.New()
	}
	if err != nil && !errors.Is(err, session.ErrEmptyDeck) {
		return stepResponse{}, err
	}
	return newStepResponse(st, s.sessionID), nil
}

func (s *Server) current() stepResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newStepResponse(s.engine.Current(), s.sessionID)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
