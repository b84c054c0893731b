package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/milk9111/shadowmario/storage"
	"github.com/spf13/cobra"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the best recorded runs, for one level or for all of them.

Examples:
  shadowmario scores
  shadowmario scores 3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	level := 0
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > 3 {
			return fmt.Errorf("level must be 1, 2 or 3, got %q", args[0])
		}
		level = n
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	scores, err := store.TopScores(level, flagLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if level == 0 {
		fmt.Fprintln(out, "High Scores - all levels")
	} else {
		fmt.Fprintf(out, "High Scores - level %d\n", level)
	}
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-5s  %-8s  %-6s  %s\n", "Rank", "Level", "Score", "Result", "Date")
	fmt.Fprintf(out, "  %-4s  %-5s  %-8s  %-6s  %s\n", "----", "-----", "-----", "------", "----")
	for i, sc := range scores {
		result := "lost"
		if sc.Won {
			result = "won"
		}
		fmt.Fprintf(out, "  %-4d  %-5d  %-8d  %-6s  %s\n", i+1, sc.Level, sc.Score, result, sc.CreatedAt.Format("2006-01-02 15:04"))
	}

	if level != 0 {
		best, err := store.HighScore(level)
		if err != nil {
			log.Warn("could not read high score", "err", err)
			return nil
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}
