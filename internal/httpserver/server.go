// Package httpserver serves puzzles and the leaderboard as a JSON API.
//
// Routes:
//
//	GET  /health
//	GET  /api/generate?level=N
//	GET  /api/levels
//	POST /api/leaderboard
//	GET  /api/leaderboard?level=&limit=
//	GET  /api/leaderboard/top?limit=
//	GET  /api/leaderboard/stats?level=
//	GET  /api/leaderboard/player/{name}
//
// Every /api response uses the envelope {success, data, error}.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

// ServiceName is reported by /health.
const ServiceName = "wordsearch"

// Leaderboard is the result store the API reads and writes.
// *storage.Store satisfies it.
type Leaderboard interface {
	SaveResult(player string, level, secs int) (storage.Result, error)
	Results(level, limit int) ([]storage.Result, error)
	TopByLevel(limit int) (map[int][]storage.Result, error)
	PlayerResults(player string) ([]storage.Result, error)
	Stats(level int) (storage.Stats, error)
	Count() (int, error)
}

var _ Leaderboard = (*storage.Store)(nil)

// Server bundles the router, the puzzle generator and the leaderboard.
type Server struct {
	r      *chi.Mux
	gen    *wordsearch.Generator
	board  Leaderboard
	logger *log.Logger
	now    func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(gen *wordsearch.Generator, board Leaderboard, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{r: chi.NewRouter(), gen: gen, board: board, logger: logger, now: time.Now}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(s.requestLogger)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))
	s.r.Use(jsonContentType)
	s.r.Use(corsFromEnv)

	s.r.Get("/health", s.handleHealth)

	s.r.Route("/api", func(r chi.Router) {
		r.Get("/generate", s.handleGenerate)
		r.Get("/levels", s.handleLevels)
		s.mountLeaderboard(r)
	})

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found: "+r.URL.Path)
	})
	s.r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return s
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() http.Handler { return s.r }

// ListenAndServe serves HTTP on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "address", addr)
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

	s.logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type healthResponse struct {
	Status       string `json:"status"`
	Service      string `json:"service"`
	Timestamp    string `json:"timestamp"`
	TotalResults int    `json:"totalResults"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	total, err := s.board.Count()
	if err != nil {
		s.logger.Error("count results", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:       "OK",
		Service:      ServiceName,
		Timestamp:    s.now().UTC().Format(time.RFC3339),
		TotalResults: total,
	})
}
