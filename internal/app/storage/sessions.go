package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents one play session in the database: from the shuffle
// that scrambled the cube until it was solved or abandoned.
type Session struct {
	SessionID  string
	CubeSize   int
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	MoveCount  int
	Solved     bool
}

// SizeStats aggregates completed sessions for one cube size.
type SizeStats struct {
	CubeSize   int
	Sessions   int
	SolvedRate float64
	AvgMoves   float64
	BestMs     int64
	AvgMs      float64
}

// SessionRepository provides CRUD operations for play sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a new session and returns its ID.
func (r *SessionRepository) Create(cubeSize int) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, cube_size, started_at)
		VALUES (?, ?, ?)
	`, id, cubeSize, startedAt.Format(time.RFC3339))
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// AddMove appends one committed move to a session's log.
func (r *SessionRepository) AddMove(sessionID string, seq int, notation string, elapsed time.Duration) error {
	_, err := r.db.Exec(`
		INSERT INTO session_moves (session_id, seq, notation, elapsed_ms)
		VALUES (?, ?, ?, ?)
	`, sessionID, seq, notation, elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("failed to add move: %w", err)
	}
	return nil
}

// Finish marks a session as complete.
func (r *SessionRepository) Finish(sessionID string, moveCount int, solved bool) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, move_count = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, moveCount, boolToInt(solved), sessionID)
	if err != nil {
		return fmt.Errorf("failed to finish session: %w", err)
	}

	return nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, cube_size, started_at, ended_at, duration_ms, move_count, solved
		FROM sessions WHERE session_id = ?
	`, sessionID)
	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return s, err
}

// List returns the most recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]*Session, error) {
	rows, err := r.db.Query(`
		SELECT session_id, cube_size, started_at, ended_at, duration_ms, move_count, solved
		FROM sessions ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Moves returns a session's move log in sequence order.
func (r *SessionRepository) Moves(sessionID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT notation FROM session_moves
		WHERE session_id = ? ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load moves: %w", err)
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		moves = append(moves, n)
	}
	return moves, rows.Err()
}

// Stats aggregates finished sessions per cube size.
func (r *SessionRepository) Stats() ([]SizeStats, error) {
	rows, err := r.db.Query(`
		SELECT cube_size,
		       COUNT(*),
		       AVG(solved),
		       AVG(move_count),
		       COALESCE(MIN(CASE WHEN solved = 1 THEN duration_ms END), 0),
		       COALESCE(AVG(duration_ms), 0)
		FROM sessions
		WHERE ended_at IS NOT NULL
		GROUP BY cube_size
		ORDER BY cube_size
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	defer rows.Close()

	var stats []SizeStats
	for rows.Next() {
		var s SizeStats
		if err := rows.Scan(&s.CubeSize, &s.Sessions, &s.SolvedRate, &s.AvgMoves, &s.BestMs, &s.AvgMs); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt *string
	var solved int

	if err := row.Scan(&s.SessionID, &s.CubeSize, &startedAt, &endedAt, &s.DurationMs, &s.MoveCount, &solved); err != nil {
		return nil, err
	}

	t, err := time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	s.StartedAt = t

	if endedAt != nil {
		t, err := time.Parse(time.RFC3339, *endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		s.EndedAt = &t
	}
	s.Solved = solved != 0

	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
