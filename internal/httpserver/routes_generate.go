package httpserver

import (
	"fmt"
	"net/http"

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

// handleGenerate returns a fresh puzzle. A missing, zero or non-numeric
// level means level 1; any other level outside the table is rejected.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	level, ok := queryInt(r, "level")
	if !ok || level == 0 {
		level = wordsearch.DefaultLevel
	}
	if !wordsearch.ValidLevel(level) {
		writeError(w, http.StatusBadRequest, invalidLevelMessage())
		return
	}

	p := s.gen.Generate(level)
	if len(p.Dropped) > 0 {
		s.logger.Debug("puzzle generated with dropped words", "level", level, "dropped", p.Dropped)
	}
	writeData(w, http.StatusOK, p)
}

type levelInfo struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	GridSize  int      `json:"gridSize"`
	WordCount int      `json:"wordCount"`
	Words     []string `json:"words"`
}

func (s *Server) handleLevels(w http.ResponseWriter, r *http.Request) {
	words := s.gen.Words()
	levels := make([]levelInfo, 0, len(wordsearch.Levels))
	for _, l := range wordsearch.Levels {
		list := words.For(l.ID)
		if list == nil {
			list = []string{}
		}
		levels = append(levels, levelInfo{
			ID:        l.ID,
			Name:      l.Name,
			GridSize:  l.GridSize,
			WordCount: len(list),
			Words:     list,
		})
	}
	writeData(w, http.StatusOK, levels)
}

func invalidLevelMessage() string {
	return fmt.Sprintf("invalid level: must be between 1 and %d", wordsearch.LevelCount())
}
