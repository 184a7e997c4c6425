// Package theme owns the application's single source of truth for the active
// color scheme, mode and token table. A Store is injected where it is needed;
// there is no package-level instance.
package theme

import (
	"context"
	"sync"

	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/logging"
	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/prefs"
	"github.com/tungetti/hue/internal/tokens"
)

// Status is the lifecycle state of a Store.
type Status int

const (
	StatusUninitialized Status = iota
	StatusInitializing
	StatusReady
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusInitializing:
		return "initializing"
	case StatusReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Snapshot is an immutable view of the store. Tokens is nil until the store
// is ready.
type Snapshot struct {
	Status      Status
	ColorScheme palette.ColorScheme
	Mode        palette.Mode
	Tokens      *tokens.AppColorTokens
}

// Ready reports whether the snapshot carries tokens.
func (s Snapshot) Ready() bool {
	return s.Status == StatusReady && s.Tokens != nil
}

// BuildFunc computes a token table.
type BuildFunc func(palette.ColorScheme, palette.Mode) (*tokens.AppColorTokens, error)

// Option configures a Store.
type Option func(*Store)

// WithBuilder replaces tokens.Build.
func WithBuilder(fn BuildFunc) Option {
	return func(s *Store) { s.build = fn }
}

// WithDefaults sets the scheme and mode used when no valid preference exists.
func WithDefaults(scheme palette.ColorScheme, mode palette.Mode) Option {
	return func(s *Store) {
		if scheme.Valid() {
			s.defaultScheme = scheme
		}
		if mode.Valid() {
			s.defaultMode = mode
		}
	}
}

// Store holds the current Snapshot and notifies subscribers on every
// replacement. Writers are serialized; subscribers always run with no store
// lock held, so a subscriber may call back into a setter.
type Store struct {
	// writeMu serializes snapshot swaps. It is never held while subscribers
	// run or while the preference is saved.
	writeMu sync.Mutex

	mu   sync.RWMutex
	snap *Snapshot
	seq  uint64

	subMu     sync.Mutex
	subs      map[int]func(Snapshot)
	nextID    int
	pending   *delivery
	draining  bool
	delivered uint64

	persistMu sync.Mutex
	saved     uint64

	prefs  prefs.Store
	logger logging.Logger
	build  BuildFunc

	defaultScheme palette.ColorScheme
	defaultMode   palette.Mode
}

// delivery is a snapshot waiting to be handed to subscribers.
type delivery struct {
	seq  uint64
	snap Snapshot
}

// NewStore returns an uninitialized store. A nil logger discards output.
func NewStore(p prefs.Store, logger logging.Logger, opts ...Option) *Store {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Store{
		subs:          make(map[int]func(Snapshot)),
		prefs:         p,
		logger:        logger.WithPrefix("theme"),
		build:         tokens.Build,
		defaultScheme: palette.DefaultScheme,
		defaultMode:   palette.DefaultMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snap = s.uninitialized()
	return s
}

func (s *Store) uninitialized() *Snapshot {
	return &Snapshot{Status: StatusUninitialized, ColorScheme: s.defaultScheme, Mode: s.defaultMode}
}

// Snapshot returns the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return *s.snap
}

// Tokens returns the current token table, or nil before Init completes.
func (s *Store) Tokens() *tokens.AppColorTokens {
	return s.Snapshot().Tokens
}

// Status returns the lifecycle status.
func (s *Store) Status() Status {
	return s.Snapshot().Status
}

// Subscribe registers fn to receive every new snapshot. The returned function
// unregisters it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

// Init loads the persisted preference and builds the first token table.
// Missing or invalid preference values fall back to the defaults. Calling
// Init on a store that is initializing or ready does nothing.
func (s *Store) Init(ctx context.Context) error {
	s.writeMu.Lock()
	if s.Status() != StatusUninitialized {
		s.writeMu.Unlock()
		return nil
	}
	gen := s.swap(&Snapshot{Status: StatusInitializing, ColorScheme: s.defaultScheme, Mode: s.defaultMode})
	s.writeMu.Unlock()
	s.notify()

	scheme, mode := s.loadPreference(ctx)
	t, err := s.build(scheme, mode)

	s.writeMu.Lock()
	s.mu.RLock()
	superseded := s.seq != gen
	s.mu.RUnlock()
	if superseded {
		// Closed while loading.
		s.writeMu.Unlock()
		return nil
	}
	if err != nil {
		s.swap(s.uninitialized())
		s.writeMu.Unlock()
		s.notify()
		return errors.Wrap(errors.GetCode(err), "failed to build color tokens", err).WithOp("theme.Init")
	}
	s.swap(&Snapshot{Status: StatusReady, ColorScheme: scheme, Mode: mode, Tokens: t})
	s.writeMu.Unlock()
	s.notify()

	s.logger.Debug("theme ready", "scheme", scheme, "mode", mode)
	return nil
}

func (s *Store) loadPreference(ctx context.Context) (palette.ColorScheme, palette.Mode) {
	scheme, mode := s.defaultScheme, s.defaultMode
	if s.prefs == nil {
		return scheme, mode
	}

	p, err := s.prefs.Load(ctx)
	if err != nil {
		s.logger.Warn("could not read theme preference, using defaults",
			"error", err, "reason", errors.ErrInvalidPreference)
		return scheme, mode
	}

	if p.ColorScheme != "" {
		if v, err := palette.ParseColorScheme(p.ColorScheme); err == nil {
			scheme = v
		} else {
			s.logger.Warn("ignoring invalid color scheme preference",
				"value", p.ColorScheme, "fallback", scheme, "reason", errors.ErrInvalidPreference)
		}
	}
	if p.Mode != "" {
		if v, err := palette.ParseMode(p.Mode); err == nil {
			mode = v
		} else {
			s.logger.Warn("ignoring invalid mode preference",
				"value", p.Mode, "fallback", mode, "reason", errors.ErrInvalidPreference)
		}
	}
	return scheme, mode
}

// SetColorScheme switches to the named scheme. It reports whether the tokens
// were replaced. Unknown names and calls before Init are logged and ignored.
func (s *Store) SetColorScheme(ctx context.Context, name string) bool {
	scheme, err := palette.ParseColorScheme(name)
	if err != nil {
		s.logger.Warn("ignoring unknown color scheme", "value", name)
		return false
	}
	return s.replace(ctx, "SetColorScheme", func(cur Snapshot) (palette.ColorScheme, palette.Mode) {
		return scheme, cur.Mode
	})
}

// SetMode switches to the named mode. It reports whether the tokens were
// replaced. Unknown names and calls before Init are logged and ignored.
func (s *Store) SetMode(ctx context.Context, name string) bool {
	mode, err := palette.ParseMode(name)
	if err != nil {
		s.logger.Warn("ignoring unknown mode", "value", name)
		return false
	}
	return s.replace(ctx, "SetMode", func(cur Snapshot) (palette.ColorScheme, palette.Mode) {
		return cur.ColorScheme, mode
	})
}

// ToggleMode flips between light and dark.
func (s *Store) ToggleMode(ctx context.Context) bool {
	return s.replace(ctx, "ToggleMode", func(cur Snapshot) (palette.ColorScheme, palette.Mode) {
		return cur.ColorScheme, cur.Mode.Opposite()
	})
}

// NextColorScheme cycles to the next scheme.
func (s *Store) NextColorScheme(ctx context.Context) bool {
	return s.replace(ctx, "NextColorScheme", func(cur Snapshot) (palette.ColorScheme, palette.Mode) {
		return cur.ColorScheme.Next(), cur.Mode
	})
}

// replace rebuilds the tokens once, swaps the snapshot, notifies subscribers
// and persists the new preference. Persistence failures are only logged.
func (s *Store) replace(ctx context.Context, op string, next func(Snapshot) (palette.ColorScheme, palette.Mode)) bool {
	seq, snap, ok := s.commit(op, next)
	if !ok {
		return false
	}
	s.notify()
	s.persist(ctx, seq, snap)
	return true
}

// commit computes and swaps in the next snapshot under writeMu.
func (s *Store) commit(op string, next func(Snapshot) (palette.ColorScheme, palette.Mode)) (uint64, Snapshot, bool) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	cur := s.Snapshot()
	if cur.Status != StatusReady {
		s.logger.Warn("theme not ready, ignoring change", "op", op, "status", cur.Status)
		return 0, Snapshot{}, false
	}

	scheme, mode := next(cur)
	if scheme == cur.ColorScheme && mode == cur.Mode {
		return 0, Snapshot{}, false
	}

	t, err := s.build(scheme, mode)
	if err != nil {
		s.logger.Error("failed to rebuild color tokens", "op", op, "error", err)
		return 0, Snapshot{}, false
	}

	snap := &Snapshot{Status: StatusReady, ColorScheme: scheme, Mode: mode, Tokens: t}
	seq := s.swap(snap)
	s.logger.Debug("theme replaced", "op", op, "scheme", scheme, "mode", mode)
	return seq, *snap, true
}

// swap installs next as the current snapshot and queues it for delivery.
// Callers hold writeMu, so sequence numbers follow swap order.
func (s *Store) swap(next *Snapshot) uint64 {
	s.mu.Lock()
	s.seq++
	seq := s.seq
	s.snap = next
	s.mu.Unlock()

	s.subMu.Lock()
	if s.pending == nil || seq > s.pending.seq {
		s.pending = &delivery{seq: seq, snap: *next}
	}
	s.subMu.Unlock()
	return seq
}

// notify hands queued snapshots to subscribers. Only one goroutine drains at a
// time; a swap made while draining (including one made by a subscriber) is
// picked up by the active drainer. Queued snapshots collapse to the newest, so
// a subscriber never sees an older snapshot after a newer one.
func (s *Store) notify() {
	s.subMu.Lock()
	if s.draining {
		s.subMu.Unlock()
		return
	}
	s.draining = true

	locked := true
	defer func() {
		if !locked {
			s.subMu.Lock()
		}
		s.draining = false
		s.subMu.Unlock()
	}()

	for s.pending != nil {
		d := *s.pending
		s.pending = nil
		if d.seq <= s.delivered {
			continue
		}
		s.delivered = d.seq

		fns := make([]func(Snapshot), 0, len(s.subs))
		for _, fn := range s.subs {
			fns = append(fns, fn)
		}

		s.subMu.Unlock()
		locked = false
		for _, fn := range fns {
			fn(d.snap)
		}
		s.subMu.Lock()
		locked = true
	}
}

// persist saves the preference of snapshot seq unless a newer one has
// already been written.
func (s *Store) persist(ctx context.Context, seq uint64, snap Snapshot) {
	if s.prefs == nil {
		return
	}
	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if seq <= s.saved {
		return
	}
	s.saved = seq

	pref := prefs.Preference{ColorScheme: snap.ColorScheme.String(), Mode: snap.Mode.String()}
	if err := s.prefs.Save(ctx, pref); err != nil {
		s.logger.Warn("failed to persist theme preference", "error", err)
	}
}

// Close returns the store to the uninitialized state and drops every
// subscriber.
func (s *Store) Close() error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.subMu.Lock()
	s.subs = make(map[int]func(Snapshot))
	s.pending = nil
	s.subMu.Unlock()

	s.mu.Lock()
	s.seq++
	s.snap = s.uninitialized()
	s.mu.Unlock()
	return nil
}
