package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

var (
	flagClear  bool
	flagRecent int
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorRank  = color.New(color.FgYellow)
	colorInfo  = color.New(color.FgCyan)
	colorDim   = color.New(color.FgHiBlack)
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high-score board",
	Long: `Display the top three scores, statistics over all recorded runs and
the most recent runs.

Examples:
  runner scores
  runner scores --recent 10
  runner scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the board and run history")
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to show (0 hides them)")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		err = store.ClearHighScores()
		if err == nil {
			colorInfo.Println("High scores cleared.")
		}
	} else {
		err = printScores(os.Stdout, store, flagRecent)
	}

	if closeErr := store.Close(); closeErr != nil && err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the board, run statistics and the last recent runs.
func printScores(w io.Writer, store *storage.Store, recent int) error {
	board, err := store.HighScores()
	if err != nil {
		return err
	}

	colorTitle.Fprintln(w, "High Scores")
	fmt.Fprintln(w)

	if len(board) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		colorDim.Fprintln(w, "Play 'runner play' to set the first high score!")
		return nil
	}

	for _, line := range storage.RankLines(board) {
		colorRank.Fprintf(w, "  %s\n", line)
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if stats.RunsCount == 0 {
		return nil
	}

	fmt.Fprintln(w)
	colorInfo.Fprintf(w, "Runs played: %d\n", stats.RunsCount)
	colorInfo.Fprintf(w, "Best:        %d\n", stats.BestScore)
	colorInfo.Fprintf(w, "Average:     %.1f\n", stats.AvgScore)
	colorInfo.Fprintf(w, "Total ticks: %d\n", stats.TotalTicks)
	if !stats.LastPlayed.IsZero() {
		colorDim.Fprintf(w, "Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}

	if recent <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(recent)
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	colorTitle.Fprintln(w, "Recent Runs")
	fmt.Fprintf(w, "  %-16s  %-6s  %s\n", "Name", "Score", "Date")
	fmt.Fprintf(w, "  %-16s  %-6s  %s\n", "----", "-----", "----")
	for _, run := range runs {
		fmt.Fprintf(w, "  %-16s  %-6d  %s\n", run.Name, run.Score, run.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
