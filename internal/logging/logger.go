package logging

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Logger is the logging interface used throughout hue.
type Logger interface {
	Debug(msg string, keyvals ...interface{})
	Info(msg string, keyvals ...interface{})
	Warn(msg string, keyvals ...interface{})
	Error(msg string, keyvals ...interface{})
	// WithPrefix returns a Logger whose messages carry the given prefix.
	WithPrefix(prefix string) Logger
	// WithFields returns a Logger that appends keyvals to every message.
	WithFields(keyvals ...interface{}) Logger
	SetLevel(level Level)
	GetLevel() Level
}

// Options configures a charm-backed logger.
type Options struct {
	Level           Level
	Output          io.Writer
	TimeFormat      string
	Prefix          string
	NoColor         bool
	ReportTimestamp bool
}

// DefaultOptions returns options for console logging on stderr.
func DefaultOptions() Options {
	return Options{
		Level:           LevelInfo,
		Output:          os.Stderr,
		TimeFormat:      "15:04:05",
		ReportTimestamp: true,
	}
}

// FileOptions returns options for file logging: no color, full timestamp.
func FileOptions(w io.Writer) Options {
	return Options{
		Level:           LevelDebug,
		Output:          w,
		TimeFormat:      "2006-01-02 15:04:05",
		NoColor:         true,
		ReportTimestamp: true,
	}
}

type charmLogger struct {
	mu     sync.RWMutex
	impl   *log.Logger
	level  Level
	fields []interface{}
}

// New creates a Logger backed by charmbracelet/log.
func New(opts Options) Logger {
	impl := log.NewWithOptions(opts.Output, log.Options{
		TimeFormat:      opts.TimeFormat,
		Level:           toCharmLevel(opts.Level),
		Prefix:          opts.Prefix,
		ReportTimestamp: opts.ReportTimestamp,
	})
	if opts.NoColor {
		impl.SetColorProfile(termenv.Ascii)
	}
	return &charmLogger{impl: impl, level: opts.Level}
}

// NewFileLogger creates a Logger appending to the file at path.
// The returned closer releases the file handle.
func NewFileLogger(path string, level Level) (Logger, io.Closer, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	opts := FileOptions(file)
	opts.Level = level
	return New(opts), file, nil
}

func (l *charmLogger) log(level Level, msg string, keyvals []interface{}) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	// Errors are always emitted.
	if level < l.level && level != LevelError {
		return
	}
	kv := make([]interface{}, 0, len(l.fields)+len(keyvals))
	kv = append(kv, l.fields...)
	kv = append(kv, keyvals...)
	switch level {
	case LevelDebug:
		l.impl.Debug(msg, kv...)
	case LevelInfo:
		l.impl.Info(msg, kv...)
	case LevelWarn:
		l.impl.Warn(msg, kv...)
	default:
		l.impl.Error(msg, kv...)
	}
}

func (l *charmLogger) Debug(msg string, keyvals ...interface{}) { l.log(LevelDebug, msg, keyvals) }
func (l *charmLogger) Info(msg string, keyvals ...interface{})  { l.log(LevelInfo, msg, keyvals) }
func (l *charmLogger) Warn(msg string, keyvals ...interface{})  { l.log(LevelWarn, msg, keyvals) }
func (l *charmLogger) Error(msg string, keyvals ...interface{}) { l.log(LevelError, msg, keyvals) }

func (l *charmLogger) WithPrefix(prefix string) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return &charmLogger{impl: l.impl.WithPrefix(prefix), level: l.level, fields: l.fields}
}

func (l *charmLogger) WithFields(keyvals ...interface{}) Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fields := make([]interface{}, 0, len(l.fields)+len(keyvals))
	fields = append(fields, l.fields...)
	fields = append(fields, keyvals...)
	return &charmLogger{impl: l.impl, level: l.level, fields: fields}
}

func (l *charmLogger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.impl.SetLevel(toCharmLevel(level))
}

func (l *charmLogger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

func toCharmLevel(l Level) log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{})       {}
func (nopLogger) Info(string, ...interface{})        {}
func (nopLogger) Warn(string, ...interface{})        {}
func (nopLogger) Error(string, ...interface{})       {}
func (n nopLogger) WithPrefix(string) Logger         { return n }
func (n nopLogger) WithFields(...interface{}) Logger { return n }
func (nopLogger) SetLevel(Level)                     {}
func (nopLogger) GetLevel() Level                    { return LevelInfo }
