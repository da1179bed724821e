package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appDirName = "mixtape"

// GetConfigDir returns the directory holding settings.json.
// Overridable via MIXTAPE_CONFIG_DIR for tests.
func GetConfigDir() string {
	if dir := os.Getenv("MIXTAPE_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, appDirName)
}

// GetStateDir returns the directory holding mutable state (history db).
func GetStateDir() string {
	if dir := os.Getenv("MIXTAPE_STATE_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, appDirName)
}

// GetLogsDir returns the directory debug logs are written to.
func GetLogsDir() string {
	return filepath.Join(GetStateDir(), "logs")
}

// GetRuntimeDir returns the directory for the instance lock file.
func GetRuntimeDir() string {
	if dir := os.Getenv("MIXTAPE_RUNTIME_DIR"); dir != "" {
		return dir
	}
	if xdg.RuntimeDir != "" {
		return filepath.Join(xdg.RuntimeDir, appDirName)
	}
	return GetStateDir()
}
