package httpserver

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vovakirdan/wordsearch/internal/storage"
	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

// mountLeaderboard registers the leaderboard routes under r.
func (s *Server) mountLeaderboard(r chi.Router) {
	r.Route("/leaderboard", func(r chi.Router) {
		r.Post("/", s.handleSaveResult)
		r.Get("/", s.handleResults)
		r.Get("/top", s.handleTop)
		r.Get("/stats", s.handleStats)
		r.Get("/player/{name}", s.handlePlayer)
	})
}

// resultRequest accepts level as a number or a numeric string; time must be
// a JSON number.
type resultRequest struct {
	PlayerName string `json:"playerName"`
	Level      any    `json:"level"`
	Time       any    `json:"time"`
}

func (s *Server) handleSaveResult(w http.ResponseWriter, r *http.Request) {
	var req resultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.PlayerName)
	if name == "" {
		writeError(w, http.StatusBadRequest, "player name is required")
		return
	}

	level, ok := levelValue(req.Level)
	if !ok || !wordsearch.ValidLevel(level) {
		writeError(w, http.StatusBadRequest, invalidLevelMessage())
		return
	}

	secs, ok := req.Time.(float64)
	if !ok || secs < 0 {
		writeError(w, http.StatusBadRequest, "time must be a non-negative number")
		return
	}

	res, err := s.board.SaveResult(name, level, int(secs))
	if err != nil {
		s.logger.Error("save result", "player", name, "level", level, "error", err)
		writeError(w, http.StatusInternalServerError, "could not save result")
		return
	}
	s.logger.Info("result saved", "player", res.PlayerName, "level", res.Level, "time", res.Time)
	writeData(w, http.StatusCreated, res)
}

// levelValue converts a decoded JSON level: numbers are truncated, strings
// parsed.
func levelValue(v any) (int, bool) {
	switch v := v.(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}

// filterLevel reads the optional level filter. Missing, zero or non-numeric
// values mean every level.
func filterLevel(w http.ResponseWriter, r *http.Request) (level int, ok bool) {
	level, _ = queryInt(r, "level")
	if level != 0 && !wordsearch.ValidLevel(level) {
		writeError(w, http.StatusBadRequest, invalidLevelMessage())
		return 0, false
	}
	return level, true
}

func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	level, ok := filterLevel(w, r)
	if !ok {
		return
	}
	limit, _ := queryInt(r, "limit")

	results, err := s.board.Results(level, limit)
	if err != nil {
		s.internalError(w, "query results", err)
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{
		Success: true,
		Data:    results,
		Total:   len(results),
		Level:   levelLabel(level),
	})
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryInt(r, "limit")
	if !ok || limit <= 0 {
		limit = storage.DefaultTopLimit
	}

	top, err := s.board.TopByLevel(limit)
	if err != nil {
		s.internalError(w, "query top results", err)
		return
	}
	writeData(w, http.StatusOK, top)
}

type statsResponse struct {
	storage.Stats
	Level any `json:"level"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	level, ok := filterLevel(w, r)
	if !ok {
		return
	}

	st, err := s.board.Stats(level)
	if err != nil {
		s.internalError(w, "query stats", err)
		return
	}
	writeData(w, http.StatusOK, statsResponse{Stats: st, Level: levelLabel(level)})
}

func (s *Server) handlePlayer(w http.ResponseWriter, r *http.Request) {
	// chi matches on RawPath when it is set, leaving the parameter escaped.
	name := chi.URLParam(r, "name")
	if r.URL.RawPath != "" {
		if v, err := url.PathUnescape(name); err == nil {
			name = v
		}
	}
	name = strings.TrimSpace(name)

	results, err := s.board.PlayerResults(name)
	if err != nil {
		s.internalError(w, "query player results", err)
		return
	}
	if len(results) == 0 {
		writeError(w, http.StatusNotFound, "player '"+name+"' not found")
		return
	}
	writeJSON(w, http.StatusOK, listEnvelope{
		Success:    true,
		Data:       results,
		Total:      len(results),
		PlayerName: results[0].PlayerName,
	})
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error(op, "error", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
