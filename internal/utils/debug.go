package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

var (
	debugFile *os.File
	debugOnce sync.Once
	debugDir  string
)

// ConfigureDebug sets the directory debug logs are written to. Must be
// called before the first Debug call to take effect; otherwise logs land
// in the working directory.
func ConfigureDebug(dir string) {
	debugDir = dir
}

// Debug writes a message to the current run's log file
func Debug(format string, args ...any) {
	// add timestamp to each debug message
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	debugOnce.Do(func() {
		name := fmt.Sprintf("mixtape-%s.log", time.Now().Format("20060102-150405"))
		path := name
		if debugDir != "" {
			path = filepath.Join(debugDir, name)
		}
		debugFile, _ = os.Create(path)
	})
	if debugFile != nil {
		fmt.Fprintf(debugFile, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
		debugFile.Sync() // Flush immediately
	}
}

// CleanupLogs removes old log files from the configured directory, keeping
// the most recent `keep` files.
func CleanupLogs(keep int) {
	if debugDir == "" || keep <= 0 {
		return
	}
	matches, err := filepath.Glob(filepath.Join(debugDir, "mixtape-*.log"))
	if err != nil || len(matches) <= keep {
		return
	}
	// Timestamped names sort chronologically
	sort.Strings(matches)
	for _, path := range matches[:len(matches)-keep] {
		os.Remove(path)
	}
}
