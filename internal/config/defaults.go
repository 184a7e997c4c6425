package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// AppName is the application name used for directory paths.
	AppName = "hue"

	// ConfigFileName is the name of the config file inside ConfigDir.
	ConfigFileName = "config.yaml"

	// DefaultPreferencesFile is the theme preference file inside ConfigDir.
	DefaultPreferencesFile = "preferences.yaml"

	// DefaultLogLevel is the default logging level.
	DefaultLogLevel = "info"

	// DefaultScheme and DefaultMode seed the theme store.
	DefaultScheme = "blue"
	DefaultMode   = "light"

	// DefaultShutdownTimeout bounds cleanup on exit.
	DefaultShutdownTimeout = 5 * time.Second
)

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:        DefaultLogLevel,
		LogFile:         "",
		Verbose:         false,
		Quiet:           false,
		NoColor:         false,
		ConfigDir:       defaultConfigDir(),
		PreferencesFile: DefaultPreferencesFile,
		DefaultScheme:   DefaultScheme,
		DefaultMode:     DefaultMode,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// defaultConfigDir returns the XDG config directory for hue.
// Falls back to ~/.config/hue if XDG_CONFIG_HOME is not set.
func defaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", AppName)
	}
	return filepath.Join(home, ".config", AppName)
}

// GetConfigDir returns the configuration directory, respecting XDG.
func GetConfigDir() string {
	return defaultConfigDir()
}
