//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedScoutPath holds the path to a shared scout binary built once for all tests.
	sharedScoutPath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getScoutBinary returns the path to the scout binary, building it once if needed.
func getScoutBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "scout-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		scoutPath := filepath.Join(tempDir, "scout")
		buildCmd := exec.Command("go", "build", "-o", scoutPath, "./cmd/scout")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build scout: %v", err))
		}

		sharedScoutPath = scoutPath
	})

	return sharedScoutPath
}

// runScoutCommand runs the scout binary from the integration directory so
// testdata paths resolve.
func runScoutCommand(t *testing.T, args ...string) error {
	scoutPath := getScoutBinary()
	cmd := exec.Command(scoutPath, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
