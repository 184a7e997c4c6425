package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tungetti/hue/internal/errors"
	"github.com/tungetti/hue/internal/palette"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s", e.Field, e.Message)
}

// validLogLevels defines the accepted log level values.
var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validator validates configuration.
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate validates the configuration and returns all errors.
func (v *Validator) Validate(cfg *Config) []error {
	var errs []error

	if err := ValidateField("log_level", cfg.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateField("default_scheme", cfg.DefaultScheme); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateField("default_mode", cfg.DefaultMode); err != nil {
		errs = append(errs, err)
	}

	if cfg.ShutdownTimeout <= 0 {
		errs = append(errs, &ValidationError{
			Field:   "shutdown_timeout",
			Message: "shutdown timeout must be positive",
		})
	}

	if cfg.Verbose && cfg.Quiet {
		errs = append(errs, &ValidationError{
			Field:   "verbose/quiet",
			Message: "verbose and quiet cannot both be true",
		})
	}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if dir != "" && dir != "." {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				errs = append(errs, &ValidationError{
					Field:   "log_file",
					Message: fmt.Sprintf("directory does not exist: %s", dir),
				})
			}
		}
	}

	if cfg.ConfigDir == "" {
		errs = append(errs, &ValidationError{
			Field:   "config_dir",
			Message: "config directory cannot be empty",
		})
	}
	if strings.TrimSpace(cfg.PreferencesFile) == "" {
		errs = append(errs, &ValidationError{
			Field:   "preferences_file",
			Message: "preferences file cannot be empty",
		})
	}

	return errs
}

// ValidateOrError validates and returns a single error joining every
// failure, or nil.
func (v *Validator) ValidateOrError(cfg *Config) error {
	errs := v.Validate(cfg)
	if len(errs) == 0 {
		return nil
	}

	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}

	return errors.New(errors.Validation, strings.Join(msgs, "; ")).
		WithOp("config.Validate")
}

// IsValid returns true if the configuration is valid.
func (v *Validator) IsValid(cfg *Config) bool {
	return len(v.Validate(cfg)) == 0
}

// ValidateField validates a single field and returns an error if invalid.
// It is used for flag values before they are applied.
func ValidateField(field, value string) error {
	switch field {
	case "log_level":
		if !validLogLevels[strings.ToLower(value)] {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("invalid log level %q: must be one of: debug, info, warn, error", value),
			}
		}
	case "default_scheme":
		if _, err := palette.ParseColorScheme(value); err != nil {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unknown color scheme %q: must be one of: blue, green, orange", value),
			}
		}
	case "default_mode":
		if _, err := palette.ParseMode(value); err != nil {
			return &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("unknown mode %q: must be light or dark", value),
			}
		}
	}

	return nil
}
