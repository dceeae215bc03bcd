package settings

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with [errors.Is].
var (
	// ErrBaseSettingsNotFound is wrapped by every [ConfigurationError].
	ErrBaseSettingsNotFound = errors.New("base settings file not found")

	// ErrNilSources is returned when a nil source list is passed in.
	ErrNilSources = errors.New("source list is nil")

	// ErrEmptySourcePath is returned at load time by a required file source
	// that carries no path.
	ErrEmptySourcePath = errors.New("required source has no path")

	// ErrUnknownSourceKind is returned at load time for a descriptor whose
	// kind this package does not know how to load.
	ErrUnknownSourceKind = errors.New("unknown source kind")
)

// ConfigurationError reports that the mandatory base settings file is missing
// from Directory.
type ConfigurationError struct {
	Directory string
}

// Error implements error.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s not found. Directory: %s", BaseSettingsFile, e.Directory)
}

// Unwrap returns [ErrBaseSettingsNotFound].
func (e *ConfigurationError) Unwrap() error {
	return ErrBaseSettingsNotFound
}
