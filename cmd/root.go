package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/mixtape-dl/mixtape/internal/config"
	"github.com/mixtape-dl/mixtape/internal/downloader"
	"github.com/mixtape-dl/mixtape/internal/history"
	"github.com/mixtape-dl/mixtape/internal/tui"
	"github.com/mixtape-dl/mixtape/internal/utils"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mixtape",
	Short: "A terminal front-end for yt-dlp that builds your music library",
	Long: `mixtape is a small terminal UI around yt-dlp: give it a name and a
URL and it drops the tracks into ~/Music/<name> as m4a files.`,
	Version: Version,
	Args:    cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initializeEnvironment()
	},
	Run: func(cmd *cobra.Command, args []string) {
		isMaster, err := AcquireLock()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error acquiring lock: %v\n", err)
			os.Exit(1)
		}
		if !isMaster {
			fmt.Fprintln(os.Stderr, "Error: mixtape is already running.")
			os.Exit(1)
		}
		defer ReleaseLock()

		startTUI(cmd)
	},
}

// startTUI builds the download service from settings and flags and runs
// the interactive program.
func startTUI(cmd *cobra.Command) {
	settings := loadSettings()
	applyFlagOverrides(cmd, settings)

	hist := openHistory()
	if hist != nil {
		defer hist.Close()
	}

	svc := downloader.NewService(toolConfig(settings))

	termenv.SetWindowTitle("mixtape")

	m := tui.InitialRootModel(Version, svc, hist)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadSettings never fails the command: on any problem it falls back to
// defaults and leaves a note in the debug log.
func loadSettings() *config.Settings {
	settings, err := config.LoadSettings()
	if err != nil {
		utils.Debug("loading settings: %v", err)
		settings = config.DefaultSettings()
	}
	return settings
}

func applyFlagOverrides(cmd *cobra.Command, settings *config.Settings) {
	if dir, _ := cmd.Flags().GetString("music-dir"); dir != "" {
		settings.General.MusicDir = utils.EnsureAbsPath(dir)
	}
	if tool, _ := cmd.Flags().GetString("tool"); tool != "" {
		settings.Tool.Binary = tool
	}
}

func toolConfig(settings *config.Settings) *downloader.Config {
	return &downloader.Config{
		Binary:    settings.Tool.Binary,
		MusicDir:  settings.General.MusicDir,
		ExtraArgs: settings.Tool.ExtraArgs,
	}
}

// openHistory is best-effort: everything runs fine without a store.
func openHistory() *history.Store {
	path := filepath.Join(config.GetStateDir(), "history.db")
	store, err := history.Open(path)
	if err != nil {
		utils.Debug("opening history: %v", err)
		return nil
	}
	return store
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("music-dir", "", "Directory downloads are placed under (default ~/Music)")
	rootCmd.PersistentFlags().String("tool", "", "Downloader binary to invoke (default yt-dlp)")
	rootCmd.SetVersionTemplate("mixtape version {{.Version}}\n")
}

// initializeEnvironment sets up directories, the .env overrides and
// debug logging before any command runs.
func initializeEnvironment() {
	_ = godotenv.Load()

	stateDir := config.GetStateDir()
	logsDir := config.GetLogsDir()

	// Ensure directories exist
	os.MkdirAll(stateDir, 0755)
	os.MkdirAll(logsDir, 0755)

	utils.ConfigureDebug(logsDir)
	utils.CleanupLogs(loadSettings().General.LogRetentionCount)
}
