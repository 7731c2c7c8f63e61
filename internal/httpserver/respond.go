package httpserver

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

// envelope wraps every /api response.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// listEnvelope adds list metadata next to the data.
type listEnvelope struct {
	Success    bool   `json:"success"`
	Data       any    `json:"data"`
	Total      int    `json:"total"`
	Level      any    `json:"level,omitempty"`
	PlayerName string `json:"playerName,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelope{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// queryInt reads an integer query parameter. ok is false when the parameter
// is missing or not a number.
func queryInt(r *http.Request, name string) (n int, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// levelLabel is the "level" field of list responses: the number, or "all".
func levelLabel(level int) any {
	if level == 0 {
		return "all"
	}
	return level
}
