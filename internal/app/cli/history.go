package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesolver/internal/app/storage"
)

var (
	historyLimit int
	historyStats bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the solve history",
	Long:  `List recent solves from the history database, or summarize them with --stats.`,
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of solves to list")
	historyCmd.Flags().BoolVar(&historyStats, "stats", false, "Show aggregate statistics instead of a list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)

	if historyStats {
		st, err := repo.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("Solves:       %d\n", st.Count)
		if st.Count > 0 {
			fmt.Printf("Avg moves:    %.1f\n", st.AvgMoves)
			fmt.Printf("Min moves:    %d\n", st.MinMoves)
			fmt.Printf("Max moves:    %d\n", st.MaxMoves)
			fmt.Printf("Avg duration: %.0f ms\n", st.AvgDurationMs)
		}
		return nil
	}

	solves, err := repo.List(historyLimit)
	if err != nil {
		return err
	}
	if len(solves) == 0 {
		fmt.Println("No solves recorded yet.")
		return nil
	}

	for _, s := range solves {
		fmt.Printf("%s  %s  %3d moves  %5d ms  [%s]\n",
			s.SolveID[:8],
			s.CreatedAt.Local().Format(time.DateTime),
			s.MoveCount,
			s.DurationMs,
			s.Source,
		)
	}
	return nil
}
