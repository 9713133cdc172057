// Package storage provides SQLite-based persistence for run history and
// per-user settings. Game state itself is never saved.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/wanderer/internal/game"
)

// ErrNotFound is returned when a run does not exist.
var ErrNotFound = errors.New("storage: not found")

// Run end causes.
const (
	CauseStarved    = "starved"
	CauseQuit       = "quit"
	CauseDisconnect = "disconnect"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run represents one finished journey.
type Run struct {
	ID            string
	Player        string
	Seed          int64
	Difficulty    string
	Day           int // Day reached
	Hour          int
	Minute        int
	ItemsGathered int
	Crafted       int
	Distance      float64
	DurationSecs  float64 // Game time simulated
	Cause         string
	CreatedAt     time.Time
}

// NewRun builds a run record from a game summary with a fresh ID. The cause
// is CauseStarved when the player died, otherwise the given cause.
func NewRun(player, difficulty, cause string, sum game.Summary) Run {
	if sum.Dead {
		cause = CauseStarved
	}
	return Run{
		ID:            uuid.NewString(),
		Player:        player,
		Seed:          sum.Seed,
		Difficulty:    difficulty,
		Day:           sum.Day,
		Hour:          sum.Hour,
		Minute:        sum.Minute,
		ItemsGathered: sum.ItemsGathered,
		Crafted:       sum.Crafted,
		Distance:      sum.Distance,
		DurationSecs:  sum.ElapsedMs / 1000,
		Cause:         cause,
	}
}

// DaysSurvived counts completed days.
func (r Run) DaysSurvived() int {
	return r.Day - 1
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			seed INTEGER NOT NULL,
			difficulty TEXT NOT NULL DEFAULT 'normal',
			day INTEGER NOT NULL,
			hour INTEGER NOT NULL DEFAULT 0,
			minute INTEGER NOT NULL DEFAULT 0,
			items_gathered INTEGER NOT NULL DEFAULT 0,
			crafted INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			cause TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_player ON runs(player);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(day DESC, hour DESC, minute DESC);

		CREATE TABLE IF NOT EXISTS settings (
			player TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (player, key)
		);
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

// SaveRun records a finished run. A run without an ID gets a new one.
// Returns the ID of the stored run.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Difficulty == "" {
		r.Difficulty = "normal"
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, player, seed, difficulty, day, hour, minute,
		                   items_gathered, crafted, distance, duration_secs, cause)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Player, r.Seed, r.Difficulty, r.Day, r.Hour, r.Minute,
		r.ItemsGathered, r.Crafted, r.Distance, r.DurationSecs, r.Cause,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return r.ID, nil
}

const runColumns = `id, player, seed, difficulty, day, hour, minute,
	items_gathered, crafted, distance, duration_secs, cause, created_at`

// BestRuns retrieves the longest survivals, latest in-game time first.
func (s *Store) BestRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY day DESC, hour DESC, minute DESC, items_gathered DESC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns retrieves the most recently recorded runs.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
}

// PlayerRuns retrieves a player's runs, best first.
func (s *Store) PlayerRuns(player string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE player = ?
		 ORDER BY day DESC, hour DESC, minute DESC
		 LIMIT ?`,
		player, limit,
	)
}

// RunByID retrieves a single run.
func (s *Store) RunByID(id string) (Run, error) {
	runs, err := s.queryRuns(`SELECT `+runColumns+` FROM runs WHERE id = ?`, id)
	if err != nil {
		return Run{}, err
	}
	if len(runs) == 0 {
		return Run{}, ErrNotFound
	}
	return runs[0], nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Seed, &r.Difficulty, &r.Day, &r.Hour, &r.Minute,
			&r.ItemsGathered, &r.Crafted, &r.Distance, &r.DurationSecs, &r.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes all run history.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// RunStats aggregates run history.
type RunStats struct {
	Runs          int
	BestDay       int
	AvgDay        float64
	TotalGathered int
	LastPlayed    time.Time
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*RunStats, error) {
	stats := &RunStats{}
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(day), 0), COALESCE(AVG(day), 0),
		        COALESCE(SUM(items_gathered), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.BestDay, &stats.AvgDay, &stats.TotalGathered, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
