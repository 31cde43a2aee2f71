package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best score and recorded runs",
	Long: `Display the best score and the top recorded runs.

In a terminal the scores open in an interactive table. Use --plain for
plain text, which is also used when output is not a terminal.

Examples:
  flappy scores
  flappy scores --plain --limit 5
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded run (the best score is kept)")
}

func runScores(cmd *cobra.Command, _ []string) error {
	gameCfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("open scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(tui.GameID); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Recorded runs cleared.")
		return nil
	}

	scores, err := tui.LoadScores(store, gameCfg.Storage.BestScoreKey)
	if err != nil {
		return fmt.Errorf("load scores: %w", err)
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(scores, width, height)
	}

	printScores(cmd.OutOrStdout(), scores, flagLimit)
	return nil
}

func printScores(w io.Writer, scores tui.Scores, limit int) {
	fmt.Fprintln(w, "High Scores - Flappy")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d\n", scores.Best)
	fmt.Fprintln(w)

	if len(scores.Entries) == 0 {
		fmt.Fprintln(w, "No runs recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'flappy play' to set the first high score!")
		return
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores.Entries {
		if limit > 0 && i >= limit {
			break
		}
		fmt.Fprintf(w, "  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if st := scores.Stats; st != nil && st.GamesCount > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "%d runs, average %.1f\n", st.GamesCount, st.AvgScore)
	}
}
