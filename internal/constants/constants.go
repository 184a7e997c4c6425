// Package constants defines application-wide constants for hue.
// All constants are typed to ensure type safety and prevent accidental misuse.
package constants

import "time"

// Application metadata
const (
	// AppName is the application name used in logs, configs, and user messages.
	AppName string = "hue"
	// AppDescription is a short description of the application.
	AppDescription string = "Color token engine and theme previewer"
)

// ExitCode represents process exit codes for different termination scenarios.
type ExitCode int

const (
	// ExitSuccess indicates the application completed successfully.
	ExitSuccess ExitCode = iota
	// ExitError indicates a general error occurred.
	ExitError
	// ExitUsage indicates an invalid command line.
	ExitUsage
	// ExitValidation indicates invalid configuration values.
	ExitValidation
	// ExitConfiguration indicates an unknown scheme, mode or family reached
	// the token engine.
	ExitConfiguration
	// ExitUserAbort indicates the user cancelled the operation.
	ExitUserAbort
)

// Int returns the exit code as an int for use with os.Exit().
func (e ExitCode) Int() int {
	return int(e)
}

// Timeouts
const (
	// ShutdownTimeout bounds shutdown hooks when no config value is set.
	ShutdownTimeout time.Duration = 5 * time.Second
	// SpinnerInterval is the frame interval of the preview's loading logo.
	SpinnerInterval time.Duration = 120 * time.Millisecond
)

// File names relative to the config directory
const (
	// ConfigFileName is the configuration file name.
	ConfigFileName string = "config.yaml"
	// PreferencesFileName stores the persisted scheme and mode.
	PreferencesFileName string = "preferences.yaml"
	// DefaultLogFile is the default log file name.
	DefaultLogFile string = "hue.log"
)

// OutputFormat selects how CLI commands print token data.
type OutputFormat string

const (
	// FormatYAML prints YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatJSON prints indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatSwatch prints colored swatches.
	FormatSwatch OutputFormat = "swatch"
)

// String returns the string representation of the output format.
func (f OutputFormat) String() string {
	return string(f)
}

// Valid reports whether f is a known format.
func (f OutputFormat) Valid() bool {
	switch f {
	case FormatYAML, FormatJSON, FormatSwatch:
		return true
	}
	return false
}
