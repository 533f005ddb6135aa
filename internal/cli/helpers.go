package cli

import (
	"fmt"
	"time"

	"github.com/SeamusWaldron/cubevision/internal/appstate"
	"github.com/SeamusWaldron/cubevision/internal/storage"
)

// openDB opens the database from the --db flag or the default location and
// applies pending migrations.
func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.MigrateUp(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

// lastScan returns the most recent stored scan. The state file's last scan ID
// wins when it still exists; otherwise the newest row in the database.
func lastScan(db *storage.DB) (*storage.Scan, error) {
	repo := storage.NewScanRepository(db)

	stateFile, err := appstate.NewDefaultStateFile()
	if err == nil {
		if id := stateFile.LastScanID(); id != "" {
			scan, err := repo.Get(id)
			if err != nil {
				return nil, err
			}
			if scan != nil {
				return scan, nil
			}
		}
	}

	return repo.GetLast()
}

// resolveNotation returns the facelet string a command should operate on,
// plus the scan ID it came from when it was loaded from the log. An explicit
// argument wins; --last falls back to the most recent stored scan.
func resolveNotation(args []string, last bool) (string, string, error) {
	if len(args) > 0 {
		return args[0], "", nil
	}
	if !last {
		return "", "", fmt.Errorf("no cube state given (pass a 54-character notation string or use --last)")
	}

	db, err := openDB()
	if err != nil {
		return "", "", err
	}
	defer db.Close()

	scan, err := lastScan(db)
	if err != nil {
		return "", "", err
	}
	if scan == nil {
		return "", "", fmt.Errorf("no scans recorded yet (run 'cubevision scan' first)")
	}
	return scan.Notation, scan.ScanID, nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
