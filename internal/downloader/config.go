package downloader

import (
	"path/filepath"

	"github.com/mixtape-dl/mixtape/internal/utils"
)

const (
	// DefaultBinary is the external tool invoked for every attempt.
	DefaultBinary = "yt-dlp"

	// OutputTemplate is expanded by the tool itself; the title and
	// extension come from the source's own metadata.
	OutputTemplate = "%(title)s.%(ext)s"

	// Drain scanner limits. Tool output lines are usually short, but
	// playlist dumps can produce long ones.
	ScannerInitialBuffer = 64 * 1024
	ScannerMaxLine       = 1024 * 1024
)

// Config holds the invocation parameters for the external tool. The zero
// value is usable: every accessor falls back to a default.
type Config struct {
	Binary    string   // tool executable, looked up on PATH when not absolute
	MusicDir  string   // library root the destination directory is created under
	ExtraArgs []string // user-supplied args inserted before the URL
}

// GetBinary returns the configured tool binary or the default
func (c *Config) GetBinary() string {
	if c == nil || c.Binary == "" {
		return DefaultBinary
	}
	return c.Binary
}

// GetMusicDir returns the configured library root or <home>/Music
func (c *Config) GetMusicDir() string {
	if c == nil || c.MusicDir == "" {
		return utils.MusicDir()
	}
	return c.MusicDir
}

// Args builds the fixed argument list for one attempt: audio-only m4a,
// extracted audio with embedded thumbnail and metadata, thumbnails
// converted to jpg, output under destDir named by the source's title.
func (c *Config) Args(destDir string, rawurl string) []string {
	args := []string{
		"-f", "ba[ext=m4a]",
		"--extract-audio",
		"--embed-thumbnail",
		"--add-metadata",
		"--convert-thumbnails", "jpg",
		"--output", filepath.Join(destDir, OutputTemplate),
	}
	if c != nil {
		args = append(args, c.ExtraArgs...)
	}
	return append(args, rawurl)
}
