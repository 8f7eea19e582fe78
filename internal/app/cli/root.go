// Package cli implements the command-line interface for cubesolver.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/app/storage"
)

const version = "0.1.0"

var (
	// Global flags
	dbPath  string
	verbose bool

	log = logrus.New()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubesolver",
	Short: "Rubik's Cube solver",
	Long: `cubesolver - A group-theoretic Rubik's Cube solver.

Solve scrambles from the command line, generate scrambles, browse your
solve history, play interactively in the terminal, or run the HTTP API.`,
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

// Execute runs the root command. Interrupts cancel the command
// context so long solves and the server shut down cleanly.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubesolver/cubesolver.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// openDB opens the database from the --db flag or the default path.
func openDB() (*storage.DB, error) {
	if dbPath != "" {
		return storage.Open(dbPath)
	}
	return storage.OpenDefault()
}
