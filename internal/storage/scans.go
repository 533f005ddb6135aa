package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Scan is one recorded cube scan: the reconstructed notation string
// plus capture metadata.
type Scan struct {
	ScanID     string
	CapturedAt time.Time
	Notation   string
	Note       *string
}

// ScanRepository provides CRUD operations for scans.
type ScanRepository struct {
	db *DB
}

// NewScanRepository creates a new scan repository.
func NewScanRepository(db *DB) *ScanRepository {
	return &ScanRepository{db: db}
}

// Create records a scan and returns its ID. A zero capturedAt is
// replaced with the current time.
func (r *ScanRepository) Create(capturedAt time.Time, notation, note string) (string, error) {
	id := uuid.New().String()
	if capturedAt.IsZero() {
		capturedAt = time.Now().UTC()
	}

	var notePtr *string
	if note != "" {
		notePtr = &note
	}

	_, err := r.db.Exec(`
		INSERT INTO scans (scan_id, captured_at, notation, note)
		VALUES (?, ?, ?, ?)
	`, id, capturedAt.UTC().Format(time.RFC3339), notation, notePtr)

	if err != nil {
		return "", fmt.Errorf("failed to create scan: %w", err)
	}

	return id, nil
}

// Get retrieves a scan by ID. It returns nil without error when the ID
// is unknown.
func (r *ScanRepository) Get(scanID string) (*Scan, error) {
	var s Scan
	var capturedAtStr string

	err := r.db.QueryRow(`
		SELECT scan_id, captured_at, notation, note
		FROM scans
		WHERE scan_id = ?
	`, scanID).Scan(&s.ScanID, &capturedAtStr, &s.Notation, &s.Note)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	s.CapturedAt, _ = time.Parse(time.RFC3339, capturedAtStr)
	return &s, nil
}

// GetLast retrieves the most recent scan.
func (r *ScanRepository) GetLast() (*Scan, error) {
	var scanID string
	err := r.db.QueryRow(`
		SELECT scan_id FROM scans
		ORDER BY captured_at DESC
		LIMIT 1
	`).Scan(&scanID)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last scan: %w", err)
	}

	return r.Get(scanID)
}

// List retrieves recent scans, newest first.
func (r *ScanRepository) List(limit int) ([]Scan, error) {
	rows, err := r.db.Query(`
		SELECT scan_id, captured_at, notation, note
		FROM scans
		ORDER BY captured_at DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var s Scan
		var capturedAtStr string

		if err := rows.Scan(&s.ScanID, &capturedAtStr, &s.Notation, &s.Note); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		s.CapturedAt, _ = time.Parse(time.RFC3339, capturedAtStr)
		scans = append(scans, s)
	}

	return scans, nil
}

// Count returns the number of recorded scans.
func (r *ScanRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM scans").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count scans: %w", err)
	}
	return count, nil
}

// Delete deletes a scan and its attached solves (cascading).
func (r *ScanRepository) Delete(scanID string) error {
	_, err := r.db.Exec("DELETE FROM scans WHERE scan_id = ?", scanID)
	if err != nil {
		return fmt.Errorf("failed to delete scan: %w", err)
	}
	return nil
}
