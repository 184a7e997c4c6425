// Package prefs persists the user's color scheme and mode between runs.
// Values are stored as plain strings and validated by the theme store.
package prefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tungetti/hue/internal/errors"
)

// Preference is the persisted theme choice. Empty fields mean "not set".
type Preference struct {
	ColorScheme string `yaml:"color_scheme,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
}

// IsZero reports whether neither field is set.
func (p Preference) IsZero() bool {
	return p.ColorScheme == "" && p.Mode == ""
}

// Store reads and writes a Preference.
type Store interface {
	// Load returns the stored preference. A missing preference is the zero
	// value and no error.
	Load(ctx context.Context) (Preference, error)
	// Save replaces the stored preference.
	Save(ctx context.Context, p Preference) error
}

// FileStore keeps the preference in a YAML file.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore returns a store backed by path. The file and its directory are
// created on first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the preference file.
func (s *FileStore) Load(ctx context.Context) (Preference, error) {
	if err := ctx.Err(); err != nil {
		return Preference{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Preference{}, nil
		}
		return Preference{}, errors.Wrap(errors.Persistence, "failed to read preferences", err).
			WithOp("prefs.Load")
	}

	var p Preference
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preference{}, errors.Wrap(errors.Preference, "failed to parse preferences", err).
			WithOp("prefs.Load")
	}
	return p, nil
}

// Save writes the preference file atomically.
func (s *FileStore) Save(ctx context.Context, p Preference) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return errors.Wrap(errors.Persistence, "failed to create preferences directory", err).
			WithOp("prefs.Save")
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.Wrap(errors.Persistence, "failed to marshal preferences", err).
			WithOp("prefs.Save")
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return errors.Wrap(errors.Persistence, "failed to write preferences", err).
			WithOp("prefs.Save")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(errors.Persistence, "failed to replace preferences", err).
			WithOp("prefs.Save")
	}
	return nil
}

// MemoryStore keeps the preference in memory. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.Mutex
	pref    Preference
	saves   int
	loadErr error
	saveErr error
}

// NewMemoryStore returns a store seeded with p.
func NewMemoryStore(p Preference) *MemoryStore {
	return &MemoryStore{pref: p}
}

// Load returns the stored preference.
func (s *MemoryStore) Load(ctx context.Context) (Preference, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return Preference{}, s.loadErr
	}
	return s.pref, nil
}

// Save stores p.
func (s *MemoryStore) Save(ctx context.Context, p Preference) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.pref = p
	s.saves++
	return nil
}

// Current returns the stored preference without going through Load.
func (s *MemoryStore) Current() Preference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pref
}

// Saves returns the number of successful saves.
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// FailLoad makes subsequent loads return err. Pass nil to clear.
func (s *MemoryStore) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// FailSave makes subsequent saves return err. Pass nil to clear.
func (s *MemoryStore) FailSave(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = err
}
