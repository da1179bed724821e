package downloader

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/mixtape-dl/mixtape/internal/core"
	"github.com/mixtape-dl/mixtape/internal/progress"
	"github.com/mixtape-dl/mixtape/internal/utils"
)

// Service is the local download backend: one worker goroutine per
// attempt, results reported through the attempt's progress buffer.
type Service struct {
	cfg *Config
}

var _ core.DownloadService = (*Service)(nil)

func NewService(cfg *Config) *Service {
	return &Service{cfg: cfg}
}

// Destination resolves the directory a named mix is written to.
func (s *Service) Destination(name string) string {
	return filepath.Join(s.cfg.GetMusicDir(), name)
}

// Start creates the destination directory, allocates the progress buffer
// and launches the worker. Directory creation failures are absorbed: the
// tool will surface the problem itself when it cannot write.
func (s *Service) Start(name string, rawurl string) *core.Attempt {
	dest := s.Destination(name)
	if err := os.MkdirAll(dest, 0755); err != nil {
		utils.Debug("creating %s: %v", dest, err)
	}

	attempt := &core.Attempt{
		ID:        uuid.New().String(),
		Name:      name,
		URL:       rawurl,
		Dest:      dest,
		StartedAt: time.Now(),
		Progress:  progress.NewBuffer(),
	}
	utils.Debug("[%s] attempt %q -> %s", shortID(attempt.ID), name, dest)

	go run(s.cfg, attempt.Progress, attempt.ID, dest, rawurl)
	return attempt
}
