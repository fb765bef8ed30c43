package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/seamusw/cubelab/internal/app/storage"
)

var statsLimit int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded session statistics",
	Long:  `List recent play sessions and aggregate statistics per cube size.`,
	RunE:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "Number of recent sessions to list")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSessionRepository(db)

	sessions, err := repo.List(statsLimit)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	fmt.Println("Recent sessions")
	fmt.Println("===============")
	if len(sessions) == 0 {
		fmt.Println("(none recorded yet)")
	}
	for _, s := range sessions {
		state := "abandoned"
		if s.Solved {
			state = "solved"
		} else if s.EndedAt == nil {
			state = "in progress"
		}
		dur := "-"
		if s.DurationMs != nil {
			dur = (time.Duration(*s.DurationMs) * time.Millisecond).Round(time.Second).String()
		}
		fmt.Printf("%s  %dx%dx%d  %3d moves  %-8s  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			s.CubeSize, s.CubeSize, s.CubeSize,
			s.MoveCount, dur, state)
	}

	stats, err := repo.Stats()
	if err != nil {
		return fmt.Errorf("failed to compute stats: %w", err)
	}

	fmt.Println()
	fmt.Println("By cube size")
	fmt.Println("============")
	for _, st := range stats {
		best := "-"
		if st.BestMs > 0 {
			best = (time.Duration(st.BestMs) * time.Millisecond).Round(time.Millisecond).String()
		}
		fmt.Printf("%dx%dx%d: %d sessions, %.0f%% solved, %.1f avg moves, best %s\n",
			st.CubeSize, st.CubeSize, st.CubeSize,
			st.Sessions, st.SolvedRate*100, st.AvgMoves, best)
	}
	return nil
}
