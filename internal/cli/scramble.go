package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
)

var (
	scrambleLength int
	scrambleSeed   int64
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence from the solved cube and print the
moves together with the resulting state.

Consecutive moves never repeat a face, and a face never follows its
opposite twice in a row, so every move disturbs the cube.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 20, "Number of moves")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed (0 picks one from the clock)")
}

var scrambleTurns = []cubevision.Turn{cubevision.CW, cubevision.CCW, cubevision.Double}

// randomScramble draws n moves, skipping any that trivially merge with
// the previous ones.
func randomScramble(rng *rand.Rand, n int) []cubevision.Move {
	moves := make([]cubevision.Move, 0, n)
	prev := cubevision.Face(-1)
	prevprev := cubevision.Face(-1)

	for len(moves) < n {
		face := cubevision.Faces[rng.Intn(len(cubevision.Faces))]
		if face == prev {
			continue
		}
		// R L R reduces to R2 L; forbid the same face separated only
		// by its opposite.
		if face == prevprev && prev == face.Opposite() {
			continue
		}
		turn := scrambleTurns[rng.Intn(len(scrambleTurns))]
		moves = append(moves, cubevision.Move{Face: face, Turn: turn})
		prevprev, prev = prev, face
	}
	return moves
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength < 1 {
		return fmt.Errorf("scramble length must be at least 1")
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	moves := randomScramble(rng, scrambleLength)

	model := cubevision.NewCubeModel()
	model.Apply(moves...)
	notation, err := model.Notation()
	if err != nil {
		return err
	}

	fmt.Println(titleStyle.Render("Scramble"))
	fmt.Println()
	fmt.Println(renderNet(model))
	fmt.Printf("Moves:    %s\n", cubevision.FormatMoves(moves))
	fmt.Printf("Notation: %s\n", notation)
	if verbose {
		fmt.Printf("Seed:     %d\n", seed)
	}
	return nil
}
