package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/app/storage"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

var (
	solveSave bool
	solveShow bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <scramble>",
	Short: "Solve a scrambled cube",
	Long: `Solve the cube state reached by applying the given scramble to a
solved cube. The scramble uses standard notation, for example:

  cubesolver solve "R U R' U' F2 D B'"

The solution is printed in quarter turns and, applied after the
scramble, returns the cube to solved.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Save the solve to the history database")
	solveCmd.Flags().BoolVar(&solveShow, "show", false, "Show the scrambled cube before solving")
}

func runSolve(cmd *cobra.Command, args []string) error {
	scramble := args[0]
	state, err := cubesolver.Solved().ApplyNotation(scramble)
	if err != nil {
		return fmt.Errorf("invalid scramble: %w", err)
	}

	if solveShow {
		c := cube.New()
		moves, _ := cubesolver.ParseMoves(scramble)
		c.ApplyMoves(moves)
		fmt.Print(c.String())
	}

	start := time.Now()
	solution, err := cubesolver.Solve(cmd.Context(), state)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.WithField("duration", elapsed).Debug("solve complete")
	fmt.Printf("Solution (%d moves):\n%s\n", len(solution), cubesolver.FormatMoves(solution))

	if solveSave {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		repo := storage.NewSolveRepository(db)
		id, err := repo.Save(scramble, cubesolver.FormatMoves(solution), len(solution), elapsed, "cli")
		if err != nil {
			return err
		}
		fmt.Printf("Saved as %s\n", id)
	}

	return nil
}
