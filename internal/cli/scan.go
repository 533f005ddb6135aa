package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
	"github.com/SeamusWaldron/cubevision/internal/appstate"
	"github.com/SeamusWaldron/cubevision/internal/scanfile"
	"github.com/SeamusWaldron/cubevision/internal/storage"
	"github.com/SeamusWaldron/cubevision/pkg/classify"
)

var (
	scanNote      string
	scanTolerance float64
	scanNoStore   bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <capture.json>",
	Short: "Import a cube scan capture",
	Long: `Read a scan capture file, reconstruct the cube state, and record it in
the scan log.

The capture holds the sampled squares of all six faces in the order
up, right, front, down, left, back. Squares carry either a color letter
or raw pixel values; pixels are classified against the default palette.

Each face must be photographed upright: a face rotated in its frame is
reconstructed rotated, since center colors cannot reveal orientation.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().StringVar(&scanNote, "note", "", "Note to store with the scan")
	scanCmd.Flags().Float64Var(&scanTolerance, "tolerance", cubevision.DefaultRowTolerance, "Row grouping tolerance in pixels")
	scanCmd.Flags().BoolVar(&scanNoStore, "no-store", false, "Print the state without recording it")
}

func runScan(cmd *cobra.Command, args []string) error {
	capture, err := scanfile.Load(args[0], classify.New())
	if err != nil {
		return err
	}

	converter := cubevision.Converter{RowTolerance: scanTolerance}
	notation, err := converter.ToNotation(capture.Grids)
	if err != nil {
		return err
	}

	model, err := cubevision.ModelFromNotation(notation)
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Scan imported"))
	fmt.Println()
	fmt.Println(renderNet(model))
	fmt.Printf("Notation: %s\n", notation)
	if model.IsSolved() {
		fmt.Println("State: solved")
	}

	if scanNoStore {
		return nil
	}

	note := scanNote
	if note == "" {
		note = capture.Note
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	scanID, err := storage.NewScanRepository(db).Create(capture.CapturedAt, notation, note)
	if err != nil {
		return fmt.Errorf("failed to store scan: %w", err)
	}

	if stateFile, err := appstate.NewDefaultStateFile(); err == nil {
		stateFile.SetLastScan(scanID)
	}

	fmt.Println()
	fmt.Printf("Recorded scan %s\n", scanID)
	fmt.Printf("Solve it:  cubevision solve --last --moves \"...\"\n")
	return nil
}
