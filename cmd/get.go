package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mixtape-dl/mixtape/internal/core"
	"github.com/mixtape-dl/mixtape/internal/downloader"
	"github.com/mixtape-dl/mixtape/internal/history"
	"github.com/mixtape-dl/mixtape/internal/library"
	"github.com/mixtape-dl/mixtape/internal/tui"
	"github.com/mixtape-dl/mixtape/internal/utils"
)

const getPollInterval = 200 * time.Millisecond

var getCmd = &cobra.Command{
	Use:   "get <name> <url>",
	Short: "Download a mix without the TUI",
	Long: `get runs one download headless: the same backend as the interactive
mode, with the tool output streamed to stdout.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		name, rawurl := args[0], args[1]

		settings := loadSettings()
		applyFlagOverrides(cmd, settings)
		svc := downloader.NewService(toolConfig(settings))

		at := svc.Start(name, rawurl)
		fmt.Printf("Downloading %q to %s\n", name, utils.DisplayPath(at.Dest))

		buf := at.Progress
		printed := 0
		ticker := time.NewTicker(getPollInterval)
		defer ticker.Stop()
		for range ticker.C {
			done := buf.Done()
			out := buf.Snapshot()
			if len(out) > printed {
				fmt.Print(out[printed:])
				printed = len(out)
			}
			if done {
				break
			}
		}

		success := buf.Succeeded()
		var files []library.Entry
		if success {
			files = library.Scan(at.Dest)
		}
		recordAttempt(at, success, len(files))

		if !success {
			color.Red(tui.FailedText)
			os.Exit(1)
		}

		var total int64
		for _, f := range files {
			total += f.Size
		}
		color.Green("Done: %d track(s), %s, saved to %s",
			len(files), humanize.Bytes(uint64(total)), utils.DisplayPath(at.Dest))
	},
}

// recordAttempt writes the finished attempt to the history store,
// best-effort.
func recordAttempt(at *core.Attempt, success bool, files int) {
	hist := openHistory()
	if hist == nil {
		return
	}
	defer hist.Close()

	err := hist.Record(history.Entry{
		ID:         at.ID,
		Name:       at.Name,
		URL:        at.URL,
		Success:    success,
		Files:      files,
		StartedAt:  at.StartedAt,
		FinishedAt: time.Now(),
	})
	if err != nil {
		utils.Debug("recording history: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(getCmd)
}
