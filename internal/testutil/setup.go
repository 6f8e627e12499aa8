// Package testutil provides common testing utilities and setup functions for
// terrainpainter tests.
package testutil

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/VoidMesh/terrainpainter/internal/logging"
)

// TestConfig holds configuration for test setup
type TestConfig struct {
	// EnableLogCapture routes log output to t.Log instead of discarding it
	EnableLogCapture bool
	// TempDir is created for the test when set
	TempDir string
}

// DefaultTestConfig returns a default test configuration suitable for most tests
func DefaultTestConfig() *TestConfig {
	return &TestConfig{
		EnableLogCapture: false, // Disable by default for cleaner test output
	}
}

// SetupTest initializes the test environment with the provided configuration.
//
// Usage:
//
//	func TestMyFunction(t *testing.T) {
//	    cleanup := testutil.SetupTest(t, testutil.DefaultTestConfig())
//	    defer cleanup()
//	    // ... test code
//	}
func SetupTest(t *testing.T, config *TestConfig) func() {
	t.Helper()

	originalLogger := logging.Logger
	if config.EnableLogCapture {
		testLogger := log.New(testWriter{t: t})
		testLogger.SetLevel(log.DebugLevel)
		logging.Logger = testLogger
	} else {
		logging.Logger = log.New(io.Discard)
	}

	if config.TempDir != "" {
		require.NoError(t, os.MkdirAll(config.TempDir, 0o755))
	}

	return func() {
		logging.Logger = originalLogger
	}
}

// CaptureLogs swaps the global logger for one writing into the returned
// buffer-backed writer until cleanup.
func CaptureLogs(t *testing.T, w io.Writer) {
	t.Helper()

	originalLogger := logging.Logger
	captured := log.New(w)
	captured.SetLevel(log.DebugLevel)
	logging.Logger = captured
	t.Cleanup(func() {
		logging.Logger = originalLogger
	})
}

// TempPath joins name onto a per-test temporary directory.
func TempPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}

// testWriter adapts testing.T to implement io.Writer for log output
type testWriter struct {
	t *testing.T
}

func (tw testWriter) Write(p []byte) (n int, err error) {
	tw.t.Helper()
	tw.t.Log(string(p))
	return len(p), nil
}
