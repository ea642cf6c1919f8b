package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrRunNotFound is returned by RunByID for an unknown ID.
var ErrRunNotFound = errors.New("storage: run not found")

// SimulationRun summarizes one headless random-move simulation.
type SimulationRun struct {
	ID        string // UUID, assigned by SaveRun when empty
	Seed      int64
	Width     int
	Height    int
	NumColors int
	Moves     int
	Matches   int
	Score     int
	Cascades  int
	CreatedAt time.Time
}

const runColumns = `run_id, seed, width, height, num_colors, moves, matches, score, cascades, created_at`

// SaveRun stores a simulation summary and returns its run ID.
func (s *Store) SaveRun(run SimulationRun) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	} else if _, err := uuid.Parse(run.ID); err != nil {
		return "", fmt.Errorf("storage: invalid run ID %q: %w", run.ID, err)
	}

	_, err := s.db.Exec(
		`INSERT INTO simulation_runs
		 (run_id, seed, width, height, num_colors, moves, matches, score, cascades)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Seed, run.Width, run.Height, run.NumColors,
		run.Moves, run.Matches, run.Score, run.Cascades,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.ID, nil
}

// RecentRuns returns the latest simulation runs, newest first.
// A non-positive limit means 20.
func (s *Store) RecentRuns(limit int) ([]SimulationRun, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM simulation_runs
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []SimulationRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// RunByID looks up one run.
func (s *Store) RunByID(id string) (SimulationRun, error) {
	row := s.db.QueryRow(`SELECT `+runColumns+` FROM simulation_runs WHERE run_id = ?`, id)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return SimulationRun{}, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	return run, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(r rowScanner) (SimulationRun, error) {
	var run SimulationRun
	var createdAt any
	err := r.Scan(
		&run.ID, &run.Seed, &run.Width, &run.Height, &run.NumColors,
		&run.Moves, &run.Matches, &run.Score, &run.Cascades, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return run, err
	}
	if err != nil {
		return run, fmt.Errorf("storage: cannot scan run: %w", err)
	}
	run.CreatedAt = scanTime(createdAt)
	return run, nil
}
