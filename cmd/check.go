package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mixtape-dl/mixtape/internal/probe"
)

// checkTimeout bounds the whole preflight, retries included.
const checkTimeout = 45 * time.Second

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Verify the downloader binary and probe a URL",
	Long: `check looks for the downloader on PATH, reports its version, then
probes the URL and prints what the server offers.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rawurl := args[0]

		settings := loadSettings()
		applyFlagOverrides(cmd, settings)
		binary := settings.Tool.Binary

		path, err := exec.LookPath(binary)
		if err != nil {
			color.Red("%s: not found on PATH", binary)
			os.Exit(1)
		}
		color.Green("%s: %s", binary, path)
		if out, err := exec.Command(binary, "--version").Output(); err == nil {
			fmt.Printf("  version       %s\n", strings.TrimSpace(string(out)))
		}

		ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
		defer cancel()

		result, err := probe.Check(ctx, rawurl)
		if err != nil {
			color.Red("probe failed: %v", err)
			os.Exit(1)
		}
		printProbeResult(result)
	},
}

func printProbeResult(r *probe.Result) {
	color.Green("%s", r.FinalURL)
	fmt.Printf("  status        %d\n", r.StatusCode)
	if r.ContentType != "" {
		fmt.Printf("  content type  %s\n", r.ContentType)
	}
	if r.Filename != "" {
		fmt.Printf("  filename      %s\n", r.Filename)
	}
	if r.FileSize > 0 {
		fmt.Printf("  size          %s\n", humanize.Bytes(uint64(r.FileSize)))
	}
	fmt.Printf("  range support %v\n", r.SupportsRange)
	if r.Server != "" {
		fmt.Printf("  server        %s\n", r.Server)
	}
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
