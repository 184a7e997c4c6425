// Package config provides configuration management for hue.
// Values come from built-in defaults, an optional YAML file and HUE_*
// environment variables, in that order. Directories follow the XDG Base
// Directory layout.
package config

import (
	"path/filepath"
	"time"
)

// Config represents the application configuration.
type Config struct {
	// General settings
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
	Verbose  bool   `yaml:"verbose"`
	Quiet    bool   `yaml:"quiet"`
	NoColor  bool   `yaml:"no_color"`

	// Directories
	ConfigDir       string `yaml:"config_dir"`
	PreferencesFile string `yaml:"preferences_file"`

	// Theme defaults used when no preference has been saved
	DefaultScheme string `yaml:"default_scheme"`
	DefaultMode   string `yaml:"default_mode"`

	// Timeouts
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ConfigPath returns the path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.ConfigDir, ConfigFileName)
}

// PreferencesPath returns the path of the theme preference file. A relative
// PreferencesFile is resolved against ConfigDir.
func (c *Config) PreferencesPath() string {
	if filepath.IsAbs(c.PreferencesFile) {
		return c.PreferencesFile
	}
	name := c.PreferencesFile
	if name == "" {
		name = DefaultPreferencesFile
	}
	return filepath.Join(c.ConfigDir, name)
}

// IsVerbose returns true if verbose output is enabled and quiet is not.
func (c *Config) IsVerbose() bool {
	return c.Verbose && !c.Quiet
}

// IsSilent returns true if quiet mode is enabled.
func (c *Config) IsSilent() bool {
	return c.Quiet
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
