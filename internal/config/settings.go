package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/mixtape-dl/mixtape/internal/utils"
)

// Settings holds all user-configurable application settings organized by category.
type Settings struct {
	General GeneralSettings `json:"general"`
	Tool    ToolSettings    `json:"tool"`
}

// GeneralSettings contains application behavior settings.
type GeneralSettings struct {
	MusicDir          string `json:"music_dir"`
	HistoryLimit      int    `json:"history_limit"`
	LogRetentionCount int    `json:"log_retention_count"`
}

// ToolSettings configures the external downloader invocation.
type ToolSettings struct {
	Binary    string   `json:"binary"`
	ExtraArgs []string `json:"extra_args"`
}

// DefaultSettings returns a new Settings instance with sensible defaults.
func DefaultSettings() *Settings {
	return &Settings{
		General: GeneralSettings{
			MusicDir:          utils.MusicDir(),
			HistoryLimit:      20,
			LogRetentionCount: 5,
		},
		Tool: ToolSettings{
			Binary: "yt-dlp",
		},
	}
}

// GetSettingsPath returns the path to the settings JSON file.
func GetSettingsPath() string {
	return filepath.Join(GetConfigDir(), "settings.json")
}

// LoadSettings loads settings from disk. Returns defaults if file doesn't
// exist. MIXTAPE_TOOL and MIXTAPE_MUSIC_DIR override the stored values.
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()

	settings := DefaultSettings() // Start with defaults to fill any missing fields

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		// File doesn't exist, keep defaults
	} else if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	applyEnvOverrides(settings)
	return settings, nil
}

func applyEnvOverrides(s *Settings) {
	if v := os.Getenv("MIXTAPE_TOOL"); v != "" {
		s.Tool.Binary = v
	}
	if v := os.Getenv("MIXTAPE_MUSIC_DIR"); v != "" {
		s.General.MusicDir = v
	}
}

// SaveSettings saves settings to disk atomically.
func SaveSettings(s *Settings) error {
	path := GetSettingsPath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: write to temp file, then rename
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return err
	}

	return os.Rename(tempPath, path)
}
