package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wanderer/internal/storage"
)

var (
	flagRunsPlayer string
	flagRunsRecent bool
	flagRunsLimit  int
	flagRunsClear  bool
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List past journeys",
	Long: `Display recorded journeys, longest first.

Examples:
  wanderer runs
  wanderer runs --recent --limit 5
  wanderer runs --player ann
  wanderer runs --clear`,
	Run: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&flagRunsPlayer, "player", "", "Only list runs of this player")
	runsCmd.Flags().BoolVar(&flagRunsRecent, "recent", false, "Order by date instead of days survived")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to list")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete all recorded runs")
}

func runRuns(_ *cobra.Command, _ []string) {
	newLogger("wanderer")
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	if flagRunsClear {
		if err := store.ClearRuns(); err != nil {
			fail("%v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	var runs []storage.Run
	switch {
	case flagRunsPlayer != "":
		runs, err = store.PlayerRuns(flagRunsPlayer, flagRunsLimit)
	case flagRunsRecent:
		runs, err = store.RecentRuns(flagRunsLimit)
	default:
		runs, err = store.BestRuns(flagRunsLimit)
	}
	if err != nil {
		fail("retrieving runs: %v", err)
	}

	fmt.Println("Past Journeys")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No journeys recorded yet.")
		fmt.Println()
		fmt.Println("Run 'wanderer play' to set out!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-12s  %-16s  %-4s  %-5s  %-7s  %-12s  %-10s  %s\n",
		"#", "Player", "Reached", "Days", "Items", "Crafted", "Seed", "End", "Date")
	fmt.Printf("  %-4s  %-12s  %-16s  %-4s  %-5s  %-7s  %-12s  %-10s  %s\n",
		"-", "------", "-------", "----", "-----", "-------", "----", "---", "----")

	for i, r := range runs {
		reached := fmt.Sprintf("Day %d %02d:%02d", r.Day, r.Hour, r.Minute)
		fmt.Printf("  %-4d  %-12s  %-16s  %4d  %5d  %7d  %-12d  %-10s  %s\n",
			i+1, r.Player, reached, r.DaysSurvived(), r.ItemsGathered, r.Crafted, r.Seed, r.Cause,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d journeys, furthest day %d, average day %.1f, %d items gathered\n",
			stats.Runs, stats.BestDay, stats.AvgDay, stats.TotalGathered)
	}
}
