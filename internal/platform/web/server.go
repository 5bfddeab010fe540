// Package web serves the score board and run history over HTTP as JSON.
package web

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/wildfire/internal/storage"
)

// ScoreStore is the read side of the score database.
type ScoreStore interface {
	TopScores(gameID string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(gameID string) (*storage.GameStats, error)
	RecentRuns(gameID string, limit int) ([]storage.RunRecord, error)
}

// Server is the HTTP score API.
type Server struct {
	srv    *http.Server
	logger *log.Logger
}

// NewServer creates a server listening on addr. A nil logger discards logs.
func NewServer(addr string, store ScoreStore, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewRouter(store, logger),
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// NewRouter configures all routes and returns the router.
func NewRouter(store ScoreStore, logger *log.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(recovery(logger))
	r.Use(requestLogger(logger))

	h := &handler{store: store}

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.Get("/games", h.listGames)
		r.Route("/games/{id}", func(r chi.Router) {
			r.Use(h.requireGame)
			r.Get("/scores", h.gameScores)
			r.Get("/stats", h.gameStats)
			r.Get("/runs", h.gameRuns)
		})

		r.Get("/runs", h.recentRuns)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "not found")
	})

	return r
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.srv.Addr
}

// ListenAndServe blocks until the server stops. A shutdown is not an error.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting HTTP server", "address", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
