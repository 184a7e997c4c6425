package app

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/tungetti/hue/internal/errors"
)

// ShutdownFunc is called during shutdown with a context bounded by the
// lifecycle timeout.
type ShutdownFunc func(ctx context.Context) error

type hook struct {
	name string
	fn   ShutdownFunc
}

// Lifecycle runs registered cleanup hooks once, in reverse order, when the
// application exits or receives SIGINT/SIGTERM.
type Lifecycle struct {
	mu           sync.Mutex
	hooks        []hook
	shutdownCh   chan struct{}
	doneCh       chan struct{}
	timeout      time.Duration
	shutdownOnce sync.Once
	err          error
}

// NewLifecycle creates a new lifecycle manager with the specified shutdown timeout.
func NewLifecycle(timeout time.Duration) *Lifecycle {
	return &Lifecycle{
		shutdownCh: make(chan struct{}),
		doneCh:     make(chan struct{}),
		timeout:    timeout,
	}
}

// OnShutdown registers a named hook. Hooks run last-registered first.
func (l *Lifecycle) OnShutdown(name string, fn ShutdownFunc) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hooks = append(l.hooks, hook{name: name, fn: fn})
}

// WaitForSignal blocks until SIGINT or SIGTERM is received, or until Shutdown
// is called. It returns nil in the latter case.
func (l *Lifecycle) WaitForSignal() os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		return sig
	case <-l.shutdownCh:
		return nil
	}
}

// Shutdown runs every hook and returns the first failure, wrapped with the
// hook's name. Later calls return the same result without running hooks again.
func (l *Lifecycle) Shutdown() error {
	l.shutdownOnce.Do(func() {
		close(l.shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()

		l.mu.Lock()
		hooks := make([]hook, len(l.hooks))
		copy(hooks, l.hooks)
		l.mu.Unlock()

		for i := len(hooks) - 1; i >= 0; i-- {
			if err := hooks[i].fn(ctx); err != nil && l.err == nil {
				l.err = errors.Wrapf(errors.GetCode(err), err, "shutdown hook %q failed", hooks[i].name).
					WithOp("app.Shutdown")
			}
		}

		close(l.doneCh)
	})

	return l.err
}

// Done returns a channel that's closed when shutdown is complete.
func (l *Lifecycle) Done() <-chan struct{} {
	return l.doneCh
}

// IsShuttingDown returns true if shutdown has been initiated.
func (l *Lifecycle) IsShuttingDown() bool {
	select {
	case <-l.shutdownCh:
		return true
	default:
		return false
	}
}

// Timeout returns the configured shutdown timeout.
func (l *Lifecycle) Timeout() time.Duration {
	return l.timeout
}
