package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-frogger/internal/registry"
	"github.com/vovakirdan/tui-frogger/internal/storage"
)

var (
	flagScoresLimit int
	flagRecent      bool
	flagClear       bool
	flagAllModes    bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show best runs for a mode",
	Long: `Display the best runs for the given mode (frogger if omitted).

Examples:
  frogger scores
  frogger scores frogger_rush --limit 20
  frogger scores --recent
  frogger scores --clear
  frogger scores --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Show the latest runs instead of the best")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the mode")
	scoresCmd.Flags().BoolVar(&flagAllModes, "all", false, "Show a summary of every mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	if flagAllModes {
		if len(args) > 0 {
			return fmt.Errorf("--all does not take a mode")
		}
		return runScoresSummary(cmd)
	}

	gameID := "frogger"
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("unknown mode %q, run 'frogger list' to see available modes", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared all runs for %s.\n", game.Title())
		return nil
	}

	heading := "Best Runs"
	var runs []storage.RunEntry
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, flagScoresLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagScoresLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s - %s\n\n", heading, game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'frogger play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-14s  %s\n", "Rank", "Score", "Level", "Reason", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-14s  %s\n", "----", "-----", "-----", "------", "----")
	for i, r := range runs {
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-14s  %s\n", i+1, r.Score, r.Level, r.Reason, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Best level: %d  Runs: %d  Average: %.1f\n",
			stats.HighScore, stats.BestLevel, stats.RunsCount, stats.AvgScore)
	}
	return nil
}

// runScoresSummary prints one line of stats per mode with recorded runs.
func runScoresSummary(cmd *cobra.Command) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "All Modes")
	fmt.Fprintln(out)

	if len(all) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(out, "  %-14s  %-5s  %-6s  %-6s  %-7s  %s\n", "Mode", "Runs", "Best", "Level", "Average", "Last Played")
	fmt.Fprintf(out, "  %-14s  %-5s  %-6s  %-6s  %-7s  %s\n", "----", "----", "----", "-----", "-------", "-----------")
	for _, id := range ids {
		st := all[id]
		fmt.Fprintf(out, "  %-14s  %-5d  %-6d  %-6d  %-7.1f  %s\n",
			id, st.RunsCount, st.HighScore, st.BestLevel, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
