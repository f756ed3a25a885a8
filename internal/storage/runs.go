package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run outcomes.
const (
	OutcomeVictory  = "victory"
	OutcomeGameOver = "gameover"
)

// Run is one finished playthrough.
type Run struct {
	ID        uuid.UUID
	GameID    string
	Score     int
	TimeMs    int64 // Play time at the end of the run
	Outcome   string
	Lives     int // Lives left when the run ended
	Seed      int64
	CreatedAt time.Time
}

// Seconds formats the run time with one decimal.
func (r Run) Seconds() string {
	return fmt.Sprintf("%.1f", float64(r.TimeMs)/1000)
}

// SaveRun records a finished run. A zero ID is replaced with a fresh one.
// Returns the ID the run was stored under.
func (s *Store) SaveRun(run Run) (uuid.UUID, error) {
	if run.Outcome != OutcomeVictory && run.Outcome != OutcomeGameOver {
		return uuid.Nil, fmt.Errorf("storage: invalid run outcome %q", run.Outcome)
	}
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, game_id, score, time_ms, outcome, lives, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.GameID, run.Score, run.TimeMs, run.Outcome, run.Lives, run.Seed,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("storage: cannot save run: %w", err)
	}

	return run.ID, nil
}

const runColumns = `id, game_id, score, time_ms, outcome, lives, seed, created_at`

// RecentRuns retrieves the most recent runs for the given game.
// An empty gameID returns runs of every game.
func (s *Store) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// TopRuns retrieves the best runs for the given game: highest score first,
// faster runs first on equal scores.
func (s *Store) TopRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, time_ms ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the highest-scoring run for the given game, the faster
// one on equal scores. Returns nil if the game has no runs.
func (s *Store) BestRun(gameID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, time_ms ASC
		 LIMIT 1`,
		gameID,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var id string
	var createdAt any
	err := sc.Scan(&id, &r.GameID, &r.Score, &r.TimeMs, &r.Outcome, &r.Lives, &r.Seed, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan run: %w", err)
	}

	r.ID, err = uuid.Parse(id)
	if err != nil {
		return r, fmt.Errorf("storage: bad run id %q: %w", id, err)
	}
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}
