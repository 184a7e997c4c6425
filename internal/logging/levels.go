// Package logging wraps charmbracelet/log behind a small Logger interface so
// the theme store and CLI can log structured key-value pairs without caring
// whether output goes to a terminal, a file, or a test recorder.
package logging

import "strings"

// Level is a logging severity. Lower values are more verbose.
type Level int

const (
	// LevelDebug is for recomputation and subscriber traces.
	LevelDebug Level = iota
	// LevelInfo is for lifecycle transitions.
	LevelInfo
	// LevelWarn is for recovered problems such as an ignored preference.
	LevelWarn
	// LevelError is for failures surfaced to the developer.
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level, case-insensitively.
// Unrecognized strings default to LevelInfo.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}
