package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
	"github.com/SeamusWaldron/cubevision/internal/analysis"
	"github.com/SeamusWaldron/cubevision/internal/scanfile"
	"github.com/SeamusWaldron/cubevision/internal/storage"
)

var (
	exportID     string
	exportFormat string
	exportOutput string
	exportLast   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded data",
	Long:  `Export recorded scans and solves in various formats.`,
}

var exportScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Export a recorded scan",
	Long: `Export a recorded scan in text, JSON, or capture format.

The capture format regenerates a scan capture file that 'cubevision scan'
can import again.

Examples:
  cubevision export scan --last
  cubevision export scan --id <scan_id> --format json
  cubevision export scan --id <scan_id> --format capture -o capture.json`,
	RunE: runExportScan,
}

var exportMovesCmd = &cobra.Command{
	Use:   "moves",
	Short: "Export the move sequence of a solve",
	Long: `Export a solve's move sequence in text or JSON format.

Examples:
  cubevision export moves --last
  cubevision export moves --id <solve_id> --format json -o moves.json`,
	RunE: runExportMoves,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.AddCommand(exportScanCmd)
	exportScanCmd.Flags().StringVar(&exportID, "id", "", "Scan ID to export")
	exportScanCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last scan")
	exportScanCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json, capture)")
	exportScanCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")

	exportCmd.AddCommand(exportMovesCmd)
	exportMovesCmd.Flags().StringVar(&exportID, "id", "", "Solve ID to export")
	exportMovesCmd.Flags().BoolVar(&exportLast, "last", false, "Export the last solve")
	exportMovesCmd.Flags().StringVar(&exportFormat, "format", "txt", "Export format (txt, json)")
	exportMovesCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}

// exportedSolve is the JSON shape of one solve in an export.
type exportedSolve struct {
	SolveID   string                    `json:"solve_id"`
	Moves     string                    `json:"moves"`
	MoveCount int                       `json:"move_count"`
	Solver    string                    `json:"solver,omitempty"`
	CreatedAt string                    `json:"created_at"`
	Summary   *analysis.SequenceSummary `json:"summary,omitempty"`
}

func runExportScan(cmd *cobra.Command, args []string) error {
	if exportID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	var scan *storage.Scan
	if exportLast {
		scan, err = lastScan(db)
	} else {
		scan, err = storage.NewScanRepository(db).Get(exportID)
	}
	if err != nil {
		return fmt.Errorf("failed to get scan: %w", err)
	}
	if scan == nil {
		return fmt.Errorf("scan not found")
	}

	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		output = scan.Notation

	case "json":
		solves, err := storage.NewSolveRepository(db).GetByScan(scan.ScanID)
		if err != nil {
			return fmt.Errorf("failed to get solves: %w", err)
		}

		type scanJSON struct {
			ScanID     string          `json:"scan_id"`
			CapturedAt string          `json:"captured_at"`
			Notation   string          `json:"notation"`
			Note       string          `json:"note,omitempty"`
			Solves     []exportedSolve `json:"solves"`
		}

		out := scanJSON{
			ScanID:     scan.ScanID,
			CapturedAt: scan.CapturedAt.UTC().Format(time.RFC3339),
			Notation:   scan.Notation,
			Solves:     []exportedSolve{},
		}
		if scan.Note != nil {
			out.Note = *scan.Note
		}
		for _, s := range solves {
			out.Solves = append(out.Solves, exportSolveJSON(s))
		}

		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	case "capture":
		model, err := cubevision.ModelFromNotation(scan.Notation)
		if err != nil {
			return err
		}
		note := ""
		if scan.Note != nil {
			note = *scan.Note
		}
		data, err := scanfile.Marshal(scanfile.FromModel(model, scan.CapturedAt, note))
		if err != nil {
			return fmt.Errorf("failed to marshal capture: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt, json, or capture)", exportFormat)
	}

	return writeExport(output, "scan "+scan.ScanID)
}

func runExportMoves(cmd *cobra.Command, args []string) error {
	if exportID == "" && !exportLast {
		return fmt.Errorf("specify --id or --last")
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)

	var solve *storage.Solve
	if exportLast {
		solves, err := solveRepo.List(1)
		if err != nil {
			return fmt.Errorf("failed to get last solve: %w", err)
		}
		if len(solves) == 0 {
			return fmt.Errorf("no solves found")
		}
		solve = &solves[0]
	} else {
		solve, err = solveRepo.Get(exportID)
		if err != nil {
			return fmt.Errorf("failed to get solve: %w", err)
		}
		if solve == nil {
			return fmt.Errorf("solve not found: %s", exportID)
		}
	}

	var output string

	switch strings.ToLower(exportFormat) {
	case "txt":
		output = solve.Moves

	case "json":
		data, err := json.MarshalIndent(exportSolveJSON(*solve), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		output = string(data)

	default:
		return fmt.Errorf("unknown format: %s (use txt or json)", exportFormat)
	}

	return writeExport(output, "solve "+solve.SolveID)
}

func exportSolveJSON(s storage.Solve) exportedSolve {
	out := exportedSolve{
		SolveID:   s.SolveID,
		Moves:     s.Moves,
		MoveCount: s.MoveCount,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
	if s.Solver != nil {
		out.Solver = *s.Solver
	}
	if moves, err := cubevision.ParseMoves(s.Moves); err == nil {
		out.Summary = analysis.Summarize(moves)
	}
	return out
}

// writeExport prints to stdout or writes the named output file.
func writeExport(output, what string) error {
	if exportOutput == "" {
		fmt.Println(output)
		return nil
	}

	dir := filepath.Dir(exportOutput)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(exportOutput, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	fmt.Printf("Exported %s to %s\n", what, exportOutput)
	return nil
}
