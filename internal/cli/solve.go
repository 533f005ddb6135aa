package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
	"github.com/SeamusWaldron/cubevision/internal/analysis"
	"github.com/SeamusWaldron/cubevision/internal/storage"
)

var (
	solveLast    bool
	solveMoves   string
	solveSolver  string
	solveCheck   bool
	solveNoStore bool
)

var solveCmd = &cobra.Command{
	Use:   "solve [notation]",
	Short: "Record a solution for a cube state",
	Long: `Attach a move sequence to a cube state and record it in the solve log.

The sequence comes from whatever solver you use, pasted in as face-turn
notation. The whole sequence is parsed up front; one bad token rejects
it all. With --check the sequence is applied to a copy of the state and
must leave the cube solved.

The state is a 54-character notation argument, or the most recent
recorded scan with --last.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveLast, "last", false, "Solve the most recent recorded scan")
	solveCmd.Flags().StringVar(&solveMoves, "moves", "", "Move sequence in face-turn notation")
	solveCmd.Flags().StringVar(&solveSolver, "solver", "", "Name of the solver that produced the sequence")
	solveCmd.Flags().BoolVar(&solveCheck, "check", false, "Verify the sequence leaves the cube solved")
	solveCmd.Flags().BoolVar(&solveNoStore, "no-store", false, "Print the analysis without recording it")
	solveCmd.MarkFlagRequired("moves")
}

func runSolve(cmd *cobra.Command, args []string) error {
	notation, scanID, err := resolveNotation(args, solveLast)
	if err != nil {
		return err
	}

	moves, err := cubevision.ParseMoves(solveMoves)
	if err != nil {
		return err
	}
	if len(moves) == 0 {
		return fmt.Errorf("no moves given")
	}

	model, err := cubevision.ModelFromNotation(notation)
	if err != nil {
		return err
	}

	if solveCheck {
		check := model.Clone()
		check.Apply(moves...)
		if !check.IsSolved() {
			end, _ := check.Notation()
			return fmt.Errorf("sequence does not solve the cube (final state %s)", end)
		}
	}

	summary := analysis.Summarize(moves)

	fmt.Println(titleStyle.Render("Solution"))
	fmt.Println()
	fmt.Printf("State:     %s\n", notation)
	fmt.Printf("Moves:     %s\n", cubevision.FormatMoves(moves))
	fmt.Printf("Length:    %d (%d quarter, %d half, %d wide)\n",
		summary.Moves, summary.QuarterTurns, summary.HalfTurns, summary.WideMoves)
	fmt.Printf("QTM:       %d\n", summary.QTM)
	if summary.CompressedMoves < summary.Moves {
		fmt.Printf("Redundant: %d moves cancel out (compresses to %d)\n",
			summary.Moves-summary.CompressedMoves, summary.CompressedMoves)
	}
	if summary.MostUsedFace != "" {
		fmt.Printf("Most used: %s (%d turns)\n", summary.MostUsedFace, summary.FaceCounts[summary.MostUsedFace])
	}
	if pattern, ok := analysis.MinePatterns(moves, 4, 8, 3).Top(); ok {
		fmt.Printf("Pattern:   %s x%d\n", pattern.Notation(), pattern.Count)
	}
	if solveCheck {
		fmt.Println("Check:     sequence solves the cube")
	}

	if solveNoStore {
		return nil
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	// A solve always hangs off a scan row. States typed on the command
	// line get an ad hoc one in the same transaction.
	repo := storage.NewSolveRepository(db)
	var solveID string
	if scanID == "" {
		scanID, solveID, err = repo.CreateWithScan(notation, "entered manually", cubevision.FormatMoves(moves), len(moves), solveSolver)
	} else {
		solveID, err = repo.Create(scanID, cubevision.FormatMoves(moves), len(moves), solveSolver)
	}
	if err != nil {
		return fmt.Errorf("failed to store solve: %w", err)
	}

	fmt.Println()
	fmt.Printf("Recorded solve %s for scan %s\n", solveID, scanID)
	fmt.Printf("Play it back:  cubevision play --last --moves %q\n", cubevision.FormatMoves(moves))
	return nil
}
