package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision/internal/appstate"
	"github.com/SeamusWaldron/cubevision/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show database and log status",
	Long:  `Display the database location, schema version, and a summary of recorded scans and solves.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	// Load state file
	stateFile, err := appstate.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	state := stateFile.State()

	fmt.Println("Cubevision Status")
	fmt.Println("=================")
	fmt.Println()

	// Database info
	path := getDBPath()
	if path == "" {
		path = state.DBPath
	}
	if path == "" {
		defaultPath, _ := storage.DefaultDBPath()
		path = defaultPath
	}
	fmt.Printf("Database: %s\n", path)

	db, err := storage.Open(path)
	if err != nil {
		fmt.Printf("Database not reachable: %v\n", err)
		return nil
	}
	defer db.Close()

	if err := db.MigrateUp(); err != nil {
		fmt.Printf("Migration failed: %v\n", err)
		return nil
	}

	version, err := db.CurrentVersion()
	if err == nil {
		fmt.Printf("Schema version: %d\n", version)
	}

	scanRepo := storage.NewScanRepository(db)
	if count, err := scanRepo.Count(); err == nil {
		fmt.Printf("Scans recorded: %d\n", count)
	}

	solves, err := storage.NewSolveRepository(db).List(10000)
	if err == nil {
		fmt.Printf("Solves recorded: %d\n", len(solves))
	}

	if scan, err := lastScan(db); err == nil && scan != nil {
		fmt.Println()
		fmt.Printf("Last scan: %s\n", scan.ScanID)
		fmt.Printf("Captured:  %s\n", scan.CapturedAt.Format(time.RFC3339))
		fmt.Printf("Notation:  %s\n", scan.Notation)
	}

	return nil
}
