package core

import (
	"time"

	"github.com/mixtape-dl/mixtape/internal/progress"
)

// DownloadService defines the interface for starting download attempts.
// This abstraction lets the TUI and the headless command share one
// backend, and lets tests substitute a fake.
type DownloadService interface {
	// Start begins one download attempt for the named mix. It never
	// blocks on the download itself: the destination directory is
	// created, the worker is launched, and a handle is returned
	// immediately. All outcomes, including spawn failures, are reported
	// through the attempt's progress buffer.
	Start(name string, rawurl string) *Attempt

	// Destination resolves the directory a named mix is written to.
	Destination(name string) string
}

// Attempt is the handle for one started download.
type Attempt struct {
	ID        string
	Name      string
	URL       string
	Dest      string
	StartedAt time.Time
	Progress  *progress.Buffer
}
