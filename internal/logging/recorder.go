package logging

import "sync"

// Entry is a single message captured by a Recorder.
type Entry struct {
	Level   Level
	Message string
	Fields  []interface{}
}

// Field returns the value recorded for key, if present.
func (e Entry) Field(key string) (interface{}, bool) {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if k, ok := e.Fields[i].(string); ok && k == key {
			return e.Fields[i+1], true
		}
	}
	return nil, false
}

// Recorder is a Logger that keeps every entry in memory. It is meant for
// tests that assert on warnings, e.g. an ignored preference.
type Recorder struct {
	mu      *sync.Mutex
	entries *[]Entry
	fields  []interface{}
	level   Level
}

// NewRecorder returns an empty Recorder that captures all levels.
func NewRecorder() *Recorder {
	return &Recorder{mu: &sync.Mutex{}, entries: &[]Entry{}, level: LevelDebug}
}

func (r *Recorder) add(level Level, msg string, keyvals []interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if level < r.level {
		return
	}
	fields := make([]interface{}, 0, len(r.fields)+len(keyvals))
	fields = append(fields, r.fields...)
	fields = append(fields, keyvals...)
	*r.entries = append(*r.entries, Entry{Level: level, Message: msg, Fields: fields})
}

func (r *Recorder) Debug(msg string, keyvals ...interface{}) { r.add(LevelDebug, msg, keyvals) }
func (r *Recorder) Info(msg string, keyvals ...interface{})  { r.add(LevelInfo, msg, keyvals) }
func (r *Recorder) Warn(msg string, keyvals ...interface{})  { r.add(LevelWarn, msg, keyvals) }
func (r *Recorder) Error(msg string, keyvals ...interface{}) { r.add(LevelError, msg, keyvals) }

// WithPrefix returns r; prefixes are not recorded.
func (r *Recorder) WithPrefix(string) Logger { return r }

// WithFields returns a Recorder sharing r's entries.
func (r *Recorder) WithFields(keyvals ...interface{}) Logger {
	fields := make([]interface{}, 0, len(r.fields)+len(keyvals))
	fields = append(fields, r.fields...)
	fields = append(fields, keyvals...)
	return &Recorder{mu: r.mu, entries: r.entries, fields: fields, level: r.level}
}

func (r *Recorder) SetLevel(level Level) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.level = level
}

func (r *Recorder) GetLevel() Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.level
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(*r.entries))
	copy(out, *r.entries)
	return out
}

// ByLevel returns the recorded entries at the given level.
func (r *Recorder) ByLevel(level Level) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Reset discards all recorded entries.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.entries = (*r.entries)[:0]
}
