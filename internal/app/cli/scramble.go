package cli

import (
	"fmt"
	"hash/maphash"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver"
	"github.com/SeamusWaldron/cubesolver/internal/cube"
)

var (
	scrambleLength int
	scrambleSeed   uint64
	scrambleShow   bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Long: `Generate a random scramble sequence. With --seed the sequence is
reproducible; otherwise a fresh one is drawn every run.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 30, "Number of moves")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Show the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleLength <= 0 {
		return fmt.Errorf("length must be positive, got %d", scrambleLength)
	}

	seed := scrambleSeed
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	rng := rand.New(rand.NewPCG(seed, 0))

	_, moves := cubesolver.Scramble(rng, scrambleLength)
	fmt.Println(cubesolver.FormatMoves(moves))

	if scrambleShow {
		c := cube.New()
		c.ApplyMoves(moves)
		fmt.Print(c.String())
	}
	return nil
}
