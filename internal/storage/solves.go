package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Solve is one solution attached to a scan: a move sequence in standard
// notation and where it came from.
type Solve struct {
	SolveID   string
	ScanID    string
	Moves     string
	MoveCount int
	Solver    *string
	CreatedAt time.Time
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create records a solution for a scan and returns its ID. solver names
// the producer (a solver binary, "manual", ...) and may be empty.
func (r *SolveRepository) Create(scanID, moves string, moveCount int, solver string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	var solverPtr *string
	if solver != "" {
		solverPtr = &solver
	}

	_, err := r.db.Exec(`
		INSERT INTO solves (solve_id, scan_id, moves, move_count, solver, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, scanID, moves, moveCount, solverPtr, createdAt.Format(time.RFC3339))

	if err != nil {
		return "", fmt.Errorf("failed to create solve: %w", err)
	}

	return id, nil
}

// CreateWithScan records a scan and a solve for it in a single
// transaction, for solutions of states that were never scanned. Either
// both rows land or neither does.
func (r *SolveRepository) CreateWithScan(notation, note, moves string, moveCount int, solver string) (scanID, solveID string, err error) {
	scanID = uuid.New().String()
	solveID = uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)

	var notePtr *string
	if note != "" {
		notePtr = &note
	}
	var solverPtr *string
	if solver != "" {
		solverPtr = &solver
	}

	err = r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO scans (scan_id, captured_at, notation, note)
			VALUES (?, ?, ?, ?)
		`, scanID, now, notation, notePtr)
		if err != nil {
			return fmt.Errorf("failed to create scan: %w", err)
		}

		_, err = tx.Exec(`
			INSERT INTO solves (solve_id, scan_id, moves, move_count, solver, created_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, solveID, scanID, moves, moveCount, solverPtr, now)
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}

	return scanID, solveID, nil
}

// Get retrieves a solve by ID. It returns nil without error when the ID
// is unknown.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	var s Solve
	var createdAtStr string

	err := r.db.QueryRow(`
		SELECT solve_id, scan_id, moves, move_count, solver, created_at
		FROM solves
		WHERE solve_id = ?
	`, solveID).Scan(&s.SolveID, &s.ScanID, &s.Moves, &s.MoveCount, &s.Solver, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}

	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return &s, nil
}

// GetByScan retrieves all solves recorded for a scan, newest first.
func (r *SolveRepository) GetByScan(scanID string) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, scan_id, moves, move_count, solver, created_at
		FROM solves
		WHERE scan_id = ?
		ORDER BY created_at DESC
	`, scanID)

	if err != nil {
		return nil, fmt.Errorf("failed to get solves for scan: %w", err)
	}
	defer rows.Close()

	return scanSolveRows(rows)
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT solve_id, scan_id, moves, move_count, solver, created_at
		FROM solves
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	return scanSolveRows(rows)
}

func scanSolveRows(rows *sql.Rows) ([]Solve, error) {
	var solves []Solve
	for rows.Next() {
		var s Solve
		var createdAtStr string

		err := rows.Scan(&s.SolveID, &s.ScanID, &s.Moves, &s.MoveCount, &s.Solver, &createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}

		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		solves = append(solves, s)
	}

	return solves, nil
}

// Delete deletes a solve.
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}
