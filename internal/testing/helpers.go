// Package testing provides shared fixtures, assertions and helpers for hue's
// tests.
package testing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// ============================================================================
// Context Helpers
// ============================================================================

// ContextWithTimeout creates a context with timeout for testing.
// The context is automatically cancelled when the test completes.
func ContextWithTimeout(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// TestContext creates a context with a 30 second timeout.
func TestContext(t testing.TB) context.Context {
	t.Helper()
	return ContextWithTimeout(t, 30*time.Second)
}

// ============================================================================
// File System Helpers
// ============================================================================

// WriteFile writes content to name under dir, creating parents, and returns
// the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ============================================================================
// Environment Helpers
// ============================================================================

// IsolateConfig points HUE_CONFIG_DIR at a fresh temp directory and clears
// every other HUE_ variable for the duration of the test. It returns the
// directory.
func IsolateConfig(t *testing.T) string {
	t.Helper()

	for _, kv := range os.Environ() {
		if key, _, ok := strings.Cut(kv, "="); ok && strings.HasPrefix(key, "HUE_") {
			t.Setenv(key, "")
		}
	}
	dir := t.TempDir()
	t.Setenv("HUE_CONFIG_DIR", dir)
	return dir
}

func prefix(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if format, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return format + ": "
		}
		return fmt.Sprintf(format, msgAndArgs[1:]...) + ": "
	}
	return ""
}
