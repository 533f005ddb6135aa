package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubevision"
)

var showLast bool

var showCmd = &cobra.Command{
	Use:   "show [notation]",
	Short: "Display a cube state as an unfolded net",
	Long: `Validate a 54-character facelet string and draw it as an unfolded net.

With --last the state comes from the most recent recorded scan instead
of the command line.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showLast, "last", false, "Use the most recent recorded scan")
}

func runShow(cmd *cobra.Command, args []string) error {
	notation, _, err := resolveNotation(args, showLast)
	if err != nil {
		return err
	}

	model, err := cubevision.ModelFromNotation(notation)
	if err != nil {
		return err
	}

	fmt.Println(renderNet(model))
	fmt.Printf("Notation: %s\n", notation)
	if model.IsSolved() {
		fmt.Println("State: solved")
	} else {
		fmt.Println("State: scrambled")
	}
	return nil
}
