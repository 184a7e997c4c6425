package testing

import (
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/logging"
	"github.com/tungetti/hue/internal/tokens"
)

// ============================================================================
// Error Assertions
// ============================================================================

// AssertErrorCode checks if an error has a specific error code.
func AssertErrorCode(t testing.TB, err error, expectedCode errors.Code) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error with code %s, but got nil", expectedCode)
		return
	}

	if actual := errors.GetCode(err); actual != expectedCode {
		t.Errorf("expected error code %s, but got %s (error: %v)", expectedCode, actual, err)
	}
}

// AssertErrorContains checks if error message contains a substring.
func AssertErrorContains(t testing.TB, err error, substring string) {
	t.Helper()

	if err == nil {
		t.Errorf("expected error containing %q, but got nil", substring)
		return
	}

	if !strings.Contains(err.Error(), substring) {
		t.Errorf("expected error to contain %q, but got: %v", substring, err)
	}
}

// ============================================================================
// Color Assertions
// ============================================================================

// AssertHex checks that s is a #rrggbb or #rrggbbaa color.
func AssertHex(t testing.TB, s string, msgAndArgs ...interface{}) {
	t.Helper()

	if !isHex(s) {
		t.Errorf("%sexpected a hex color, got %q", prefix(msgAndArgs...), s)
	}
}

// AssertOpaque checks that s is a #rrggbb color without alpha.
func AssertOpaque(t testing.TB, s string, msgAndArgs ...interface{}) {
	t.Helper()

	if !tokens.ValidHex(s) {
		t.Errorf("%sexpected an opaque #rrggbb color, got %q", prefix(msgAndArgs...), s)
	}
}

func isHex(s string) bool {
	if len(s) == 9 {
		_, err := strconv.ParseUint(s[7:], 16, 8)
		return err == nil && tokens.ValidHex(s[:7])
	}
	return tokens.ValidHex(s)
}

// AssertDistinct checks that no two of the named colors are equal.
func AssertDistinct(t testing.TB, colors map[string]string) {
	t.Helper()

	seen := make(map[string]string, len(colors))
	for name, c := range colors {
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share color %s", name, other, c)
		}
		seen[c] = name
	}
}

// AssertFamilyComplete checks every tone of a family is an opaque color.
func AssertFamilyComplete(t testing.TB, name string, fam tokens.FamilyTokens) {
	t.Helper()

	for _, tone := range tokens.Tones() {
		v, ok := fam.Get(tone)
		if !ok {
			t.Errorf("%s: tone %s missing", name, tone)
			continue
		}
		AssertOpaque(t, v, "%s.%s", name, tone)
	}
}

// ============================================================================
// Logger Assertions
// ============================================================================

// AssertLogLevel checks if a message containing substring was recorded at level.
func AssertLogLevel(t testing.TB, rec *logging.Recorder, level logging.Level, substring string) {
	t.Helper()

	var msgs []string
	for _, e := range rec.ByLevel(level) {
		if strings.Contains(e.Message, substring) {
			return
		}
		msgs = append(msgs, e.Message)
	}
	t.Errorf("expected log at level %s to contain %q, but it doesn't (messages: %v)", level, substring, msgs)
}

// AssertNoWarnings checks the recorder holds no warnings or errors.
func AssertNoWarnings(t testing.TB, rec *logging.Recorder) {
	t.Helper()

	for _, level := range []logging.Level{logging.LevelWarn, logging.LevelError} {
		for _, e := range rec.ByLevel(level) {
			t.Errorf("unexpected %s log: %s %v", level, e.Message, e.Fields)
		}
	}
}

// ============================================================================
// File System Assertions
// ============================================================================

// AssertFileContains checks if a file contains a substring.
func AssertFileContains(t testing.TB, path, substring string) {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("failed to read file %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substring) {
		t.Errorf("expected file %s to contain %q, got:\n%s", path, substring, data)
	}
}

// AssertFileNotExists checks if a file does not exist.
func AssertFileNotExists(t testing.TB, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to not exist: %s", path)
	}
}
