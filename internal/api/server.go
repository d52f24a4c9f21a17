// Package api serves read-only JSON views of the leaderboard, high scores and
// player statistics over HTTP.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/leaderboard"
	"github.com/vovakirdan/tui-2048/internal/profile"
	"github.com/vovakirdan/tui-2048/internal/stats"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

const (
	requestTimeout   = 10 * time.Second
	defaultScoreRows = 10
	maxScoreRows     = 100
)

// Options wires the server to its data sources.
type Options struct {
	Store       *storage.Store // nil disables the scores endpoint
	Stats       *stats.Repository
	Profiles    *profile.Repository
	Leaderboard leaderboard.Options
	Logger      *log.Logger
}

// Server handles HTTP requests.
type Server struct {
	store     *storage.Store
	stats     *stats.Repository
	profiles  *profile.Repository
	board     leaderboard.Options
	logger    *log.Logger
	startTime time.Time
}

// NewServer creates an API server.
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Server{
		store:     opts.Store,
		stats:     opts.Stats,
		profiles:  opts.Profiles,
		board:     opts.Leaderboard,
		logger:    logger,
		startTime: time.Now(),
	}
}

// Routes sets up the HTTP routes with their middleware.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/leaderboard/{category}", s.handleLeaderboard)
		r.Get("/scores/{mode}", s.handleScores)
		r.Get("/stats", s.handleStats)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "no such endpoint")
	})

	return r
}

// logRequests logs one line per request once it has been served.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{
		Status:   "ok",
		Uptime:   time.Since(s.startTime).Round(time.Second).String(),
		Database: s.store != nil,
	})
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	category, err := leaderboard.ParseCategory(chi.URLParam(r, "category"))
	if err != nil {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, err.Error())
		return
	}
	limit, ok := s.limitParam(w, r)
	if !ok {
		return
	}

	board, err := leaderboard.Load(s.profiles, s.stats, s.board)
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	entries, err := board.Top(category, limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := LeaderboardResponse{
		Category: category,
		Label:    category.Label(),
		Entries:  entries,
	}
	if rank, total, ok := board.UserRank(category); ok {
		resp.UserRank = &UserRank{Rank: rank, Total: total}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	mode := chi.URLParam(r, "mode")
	if mode != t2048.IDClassic && mode != t2048.IDEndless {
		s.writeError(w, r, http.StatusNotFound, ErrTypeNotFound, "unknown mode "+strconv.Quote(mode))
		return
	}
	if s.store == nil {
		s.writeError(w, r, http.StatusServiceUnavailable, ErrTypeUnavailable, "score database is not available")
		return
	}
	limit, ok := s.limitParam(w, r)
	if !ok {
		return
	}
	if limit == 0 {
		limit = defaultScoreRows
	}

	scores, err := s.store.TopScores(mode, min(limit, maxScoreRows))
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	resp := ScoresResponse{Mode: mode, Scores: make([]Score, len(scores))}
	for i, e := range scores {
		resp.Scores[i] = Score{Rank: i + 1, Score: e.Score, CreatedAt: e.CreatedAt}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	st, err := s.stats.Stats()
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	best, err := s.stats.BestScore()
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, StatsResponse{
		Profile:      p,
		Stats:        st,
		BestScore:    best,
		WinRate:      st.WinRatePercent(),
		AverageMoves: st.AverageMoves(),
	})
}

// limitParam reads ?limit=, 0 when absent. It writes a 400 on bad input.
func (s *Server) limitParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		s.writeError(w, r, http.StatusBadRequest, ErrTypeValidation, "limit must be a positive integer")
		return 0, false
	}
	return n, true
}

// writeJSON writes a JSON response with proper headers.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("could not encode response", "error", err)
	}
}

// writeError writes a structured error response.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, errType, message string) {
	s.writeJSON(w, status, Error{
		Type:      errType,
		Message:   message,
		RequestID: middleware.GetReqID(r.Context()),
	})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("request failed", "path", r.URL.Path, "error", err)
	msg := "internal error"
	if errors.Is(err, storage.ErrCorrupt) {
		msg = "stored data is corrupt"
	}
	s.writeError(w, r, http.StatusInternalServerError, ErrTypeInternal, msg)
}
