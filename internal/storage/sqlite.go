// Package storage provides SQLite-based persistence for the leaderboard.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wordsearch/internal/wordsearch"
)

const timeLayout = "2006-01-02 15:04:05"

// DefaultTopLimit is the per-level limit used by TopByLevel when none is given.
const DefaultTopLimit = 10

// Store manages the SQLite database connection for leaderboard results.
type Store struct {
	db *sql.DB
}

// Result is one completed puzzle: who solved which level and how fast.
type Result struct {
	ID         int64     `json:"id"`
	PlayerName string    `json:"playerName"`
	Level      int       `json:"level"`
	Time       int       `json:"time"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Stats aggregates results. BestTime and AverageTime are nil when there are
// no results.
type Stats struct {
	TotalResults int  `json:"totalResults"`
	BestTime     *int `json:"bestTime"`
	AverageTime  *int `json:"averageTime"`
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// player_key holds the lower-cased name; SQLite's LOWER only folds ASCII.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player_name TEXT NOT NULL,
			player_key TEXT NOT NULL,
			level INTEGER NOT NULL,
			time_secs INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_level_time ON results(level, time_secs);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player_key);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a solved puzzle and returns the stored row.
// The player name is trimmed.
func (s *Store) SaveResult(player string, level, secs int) (Result, error) {
	player = strings.TrimSpace(player)
	now := time.Now().UTC().Truncate(time.Second)

	res, err := s.db.Exec(
		`INSERT INTO results (player_name, player_key, level, time_secs, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		player, playerKey(player), level, secs, now.Format(timeLayout),
	)
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return Result{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return Result{ID: id, PlayerName: player, Level: level, Time: secs, CreatedAt: now}, nil
}

// Results returns results ordered by time ascending, fastest first.
// level 0 means every level; limit <= 0 means no limit.
func (s *Store) Results(level, limit int) ([]Result, error) {
	query := `SELECT id, player_name, level, time_secs, created_at FROM results`
	var args []any
	if level != 0 {
		query += ` WHERE level = ?`
		args = append(args, level)
	}
	query += ` ORDER BY time_secs ASC, id ASC`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

// TopByLevel returns the fastest limit results of every level.
// Each level is present in the map, possibly with an empty slice.
func (s *Store) TopByLevel(limit int) (map[int][]Result, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}

	top := make(map[int][]Result, wordsearch.LevelCount())
	for _, l := range wordsearch.Levels {
		results, err := s.Results(l.ID, limit)
		if err != nil {
			return nil, err
		}
		top[l.ID] = results
	}
	return top, nil
}

// PlayerResults returns all results of one player, fastest first.
// Names match case-insensitively.
func (s *Store) PlayerResults(player string) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT id, player_name, level, time_secs, created_at
		 FROM results
		 WHERE player_key = ?
		 ORDER BY time_secs ASC, id ASC`,
		playerKey(player),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query player results: %w", err)
	}
	return scanResults(rows)
}

// Stats aggregates results of one level, or of all levels when level is 0.
// The average is rounded to whole seconds.
func (s *Store) Stats(level int) (Stats, error) {
	query := `SELECT COUNT(*), MIN(time_secs), AVG(time_secs) FROM results`
	var args []any
	if level != 0 {
		query += ` WHERE level = ?`
		args = append(args, level)
	}

	var (
		stats Stats
		best  sql.NullInt64
		avg   sql.NullFloat64
	)
	if err := s.db.QueryRow(query, args...).Scan(&stats.TotalResults, &best, &avg); err != nil {
		return Stats{}, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	if best.Valid {
		b := int(best.Int64)
		stats.BestTime = &b
	}
	if avg.Valid {
		a := int(math.Round(avg.Float64))
		stats.AverageTime = &a
	}
	return stats, nil
}

// Count returns the total number of stored results.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count results: %w", err)
	}
	return n, nil
}

// Clear deletes results of one level, or every result when level is 0.
func (s *Store) Clear(level int) error {
	var err error
	if level == 0 {
		_, err = s.db.Exec(`DELETE FROM results`)
	} else {
		_, err = s.db.Exec(`DELETE FROM results WHERE level = ?`, level)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func scanResults(rows *sql.Rows) ([]Result, error) {
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(&r.ID, &r.PlayerName, &r.Level, &r.Time, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// parseTime handles both time.Time and string, depending on how the driver
// decoded the DATETIME column.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func playerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
