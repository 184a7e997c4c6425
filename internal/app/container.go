// Package app wires hue's dependencies together and manages their lifecycle.
package app

import (
	"sync"

	"github.com/tungetti/hue/internal/config"
	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/logging"
	"github.com/tungetti/hue/internal/prefs"
	"github.com/tungetti/hue/internal/theme"
)

// Container holds all application dependencies.
type Container struct {
	mu     sync.RWMutex
	Config *config.Config
	Logger logging.Logger
	Prefs  prefs.Store
	Theme  *theme.Store
}

// NewContainer creates a new dependency container.
func NewContainer() *Container {
	return &Container{}
}

// SetConfig sets the configuration.
func (c *Container) SetConfig(cfg *config.Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Config = cfg
}

// SetLogger sets the logger.
func (c *Container) SetLogger(l logging.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Logger = l
}

// SetPrefs sets the preference store.
func (c *Container) SetPrefs(p prefs.Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Prefs = p
}

// SetTheme sets the theme store.
func (c *Container) SetTheme(s *theme.Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = s
}

// GetConfig returns the configuration.
func (c *Container) GetConfig() *config.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Config
}

// GetLogger returns the logger.
func (c *Container) GetLogger() logging.Logger {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Logger
}

// GetPrefs returns the preference store.
func (c *Container) GetPrefs() prefs.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Prefs
}

// GetTheme returns the theme store.
func (c *Container) GetTheme() *theme.Store {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// Validate checks that all required dependencies are set.
func (c *Container) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.Config == nil {
		return errors.New(errors.Configuration, "config not initialized").WithOp("app.Validate")
	}
	if c.Logger == nil {
		return errors.New(errors.Configuration, "logger not initialized").WithOp("app.Validate")
	}
	if c.Theme == nil {
		return errors.New(errors.Configuration, "theme store not initialized").WithOp("app.Validate")
	}
	return nil
}
