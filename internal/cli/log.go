package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
	"github.com/SeamusWaldron/cubevision/internal/analysis"
	"github.com/SeamusWaldron/cubevision/internal/storage"
)

var (
	logLimit    int
	logShowLast bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Browse recorded scans and solves",
	Long:  `Commands for listing and inspecting the scans and solves stored in the database.`,
}

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent scans",
	Long:  `Display recent scans with their capture time and attached solve count.`,
	RunE:  runLogList,
}

var logShowCmd = &cobra.Command{
	Use:   "show [scan-id]",
	Short: "Show a scan and its solves",
	Long: `Display a recorded scan as an unfolded net together with every solution
attached to it.

Use --last to show the most recent scan.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogShow,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.AddCommand(logListCmd)
	logListCmd.Flags().IntVar(&logLimit, "limit", 20, "Maximum number of scans to display")

	logCmd.AddCommand(logShowCmd)
	logShowCmd.Flags().BoolVar(&logShowLast, "last", false, "Show the most recent scan")
}

func runLogList(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scanRepo := storage.NewScanRepository(db)
	scans, err := scanRepo.List(logLimit)
	if err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}

	if len(scans) == 0 {
		fmt.Println("No scans recorded yet")
		fmt.Println("Import one with: cubevision scan <capture.json>")
		return nil
	}

	solveRepo := storage.NewSolveRepository(db)

	fmt.Printf("Recent scans (showing %d):\n", len(scans))
	fmt.Println()
	fmt.Printf("%-36s  %-20s  %-8s  %-6s  %s\n", "ID", "Captured", "State", "Solves", "Note")
	fmt.Println("------------------------------------  --------------------  --------  ------  ----")

	for _, s := range scans {
		state := "?"
		if model, err := cubevision.ModelFromNotation(s.Notation); err == nil {
			if model.IsSolved() {
				state = "solved"
			} else {
				state = "mixed"
			}
		}

		solves, _ := solveRepo.GetByScan(s.ScanID)

		note := ""
		if s.Note != nil {
			note = *s.Note
		}
		if len(note) > 30 {
			note = note[:30] + "..."
		}

		fmt.Printf("%-36s  %-20s  %-8s  %-6d  %s\n",
			s.ScanID, s.CapturedAt.Format("2006-01-02 15:04:05"), state, len(solves), note)
	}

	return nil
}

func runLogShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scanRepo := storage.NewScanRepository(db)

	var scan *storage.Scan
	switch {
	case logShowLast:
		scan, err = lastScan(db)
		if err != nil {
			return fmt.Errorf("failed to get latest scan: %w", err)
		}
		if scan == nil {
			return fmt.Errorf("no scans found")
		}
	case len(args) > 0:
		scan, err = scanRepo.Get(args[0])
		if err != nil {
			return fmt.Errorf("failed to get scan: %w", err)
		}
		if scan == nil {
			return fmt.Errorf("scan not found: %s", args[0])
		}
	default:
		return fmt.Errorf("please provide a scan ID or use --last")
	}

	fmt.Println(titleStyle.Render("Scan " + scan.ScanID))
	fmt.Println()
	fmt.Printf("Captured: %s\n", scan.CapturedAt.Format(time.RFC3339))
	if scan.Note != nil {
		fmt.Printf("Note:     %s\n", *scan.Note)
	}
	fmt.Println()

	if model, err := cubevision.ModelFromNotation(scan.Notation); err == nil {
		fmt.Println(renderNet(model))
	}
	fmt.Printf("Notation: %s\n", scan.Notation)

	solves, err := storage.NewSolveRepository(db).GetByScan(scan.ScanID)
	if err != nil {
		return fmt.Errorf("failed to get solves: %w", err)
	}

	if len(solves) == 0 {
		fmt.Println()
		fmt.Println("No solves recorded for this scan")
		return nil
	}

	for _, solve := range solves {
		fmt.Println()
		fmt.Printf("Solve %s (%s)\n", solve.SolveID, solve.CreatedAt.Format(time.RFC3339))
		if solve.Solver != nil {
			fmt.Printf("  Solver: %s\n", *solve.Solver)
		}
		fmt.Printf("  Moves:  %s\n", solve.Moves)

		if moves, err := cubevision.ParseMoves(solve.Moves); err == nil {
			summary := analysis.Summarize(moves)
			fmt.Printf("  Length: %d (QTM %d)\n", summary.Moves, summary.QTM)
			if pattern, ok := analysis.MinePatterns(moves, 4, 8, 1).Top(); ok {
				fmt.Printf("  Pattern: %s x%d\n", pattern.Notation(), pattern.Count)
			}
		}
	}

	return nil
}
