package component

import (
	"sync"

	"github.com/tungetti/hue/internal/palette"
	"github.com/tungetti/hue/internal/tokens"
)

// Args are the inputs of any generator. Args is comparable; a Memo uses it
// as its key, with the tokens pointer standing in for the whole token table.
type Args struct {
	Tokens   *tokens.AppColorTokens
	Mode     palette.Mode
	Variant  Variant
	Size     Size
	Gradient GradientOptions
}

// Memo caches the most recent result of a generator, keyed on
// [tokens, mode, variant, size, gradient].
type Memo[T any] struct {
	mu     sync.Mutex
	fn     func(Args) *T
	last   Args
	value  *T
	filled bool
	misses int
}

// NewMemo wraps fn in a single-entry cache.
func NewMemo[T any](fn func(Args) *T) *Memo[T] {
	return &Memo[T]{fn: fn}
}

// Get returns the cached value when a equals the previous call's args and
// recomputes otherwise.
func (m *Memo[T]) Get(a Args) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.filled && m.last == a {
		return m.value
	}
	m.value = m.fn(a)
	m.last = a
	m.filled = true
	m.misses++
	return m.value
}

// Misses returns how many times the generator actually ran.
func (m *Memo[T]) Misses() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.misses
}
