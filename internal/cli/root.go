// Package cli implements the command-line interface for cubevision.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubevision",
	Short: "Cube scan and solve toolkit",
	Long: `Cubevision - A CLI tool for turning camera scans of a Rubik's Cube into
cube state, replaying solutions, and keeping a log of scans and solves.

Import a scan capture, inspect the reconstructed cube state, feed a move
sequence from your solver of choice, and watch it play out move by move.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubevision/cubevision.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getDBPath returns the database path from flag or default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return "" // Will use default
}
