package cmd

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/mixtape-dl/mixtape/internal/config"
)

var instanceLock *flock.Flock

// AcquireLock takes the single-instance lock. The boolean reports
// whether this process now owns it; false means another mixtape holds
// the terminal already.
func AcquireLock() (bool, error) {
	lockPath := filepath.Join(config.GetRuntimeDir(), "mixtape.lock")
	_ = os.MkdirAll(filepath.Dir(lockPath), 0755)

	instanceLock = flock.New(lockPath)
	return instanceLock.TryLock()
}

// ReleaseLock drops the single-instance lock if held.
func ReleaseLock() {
	if instanceLock != nil {
		_ = instanceLock.Unlock()
	}
}
