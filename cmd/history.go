package cmd

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mixtape-dl/mixtape/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent download attempts",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			limit = loadSettings().General.HistoryLimit
		}

		hist := openHistory()
		if hist == nil {
			fmt.Fprintln(os.Stderr, "Error: history database unavailable")
			os.Exit(1)
		}
		defer hist.Close()

		entries, err := hist.Recent(limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
			os.Exit(1)
		}
		if len(entries) == 0 {
			fmt.Println("No downloads yet.")
			return
		}

		for _, e := range entries {
			printHistoryEntry(e)
		}
	},
}

func printHistoryEntry(e history.Entry) {
	mark := color.GreenString("✓")
	if !e.Success {
		mark = color.RedString("✗")
	}
	fmt.Printf("%s %-28s %2d file(s)  %s\n",
		mark, truncateName(e.Name, 28), e.Files, humanize.Time(e.FinishedAt))
}

func truncateName(s string, i int) string {
	runes := []rune(s)
	if len(runes) > i {
		return string(runes[:i-3]) + "..."
	}
	return s
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 0, "Number of attempts to show (default from settings)")
	rootCmd.AddCommand(historyCmd)
}
