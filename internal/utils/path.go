package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// MusicDir returns the default library root, <home>/Music. Falls back to
// a relative "Music" when the home directory cannot be resolved.
func MusicDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "Music"
	}
	return filepath.Join(home, "Music")
}

// EnsureAbsPath converts a path to absolute so it stays valid if the
// working directory changes. Returns the input unchanged on failure.
func EnsureAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// DisplayPath collapses the user's home directory prefix to ~ for display.
func DisplayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if path == home {
		return "~"
	}
	if strings.HasPrefix(path, home+string(filepath.Separator)) {
		return "~" + path[len(home):]
	}
	return path
}
