package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "mixtape-cmd-test-*")
	if err == nil {
		_ = os.Setenv("MIXTAPE_CONFIG_DIR", filepath.Join(tmpDir, "config"))
		_ = os.Setenv("MIXTAPE_STATE_DIR", filepath.Join(tmpDir, "state"))
		_ = os.Setenv("MIXTAPE_RUNTIME_DIR", filepath.Join(tmpDir, "runtime"))
	}

	code := m.Run()

	if err == nil {
		_ = os.RemoveAll(tmpDir)
	}
	os.Exit(code)
}
