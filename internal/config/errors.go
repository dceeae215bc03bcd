package config

import "errors"

// Errors returned while building the command options.
var (
	// ErrInvalidOutputConfigs indicates invalid output settings
	// (for example, an unknown format, or both -key and -sources).
	ErrInvalidOutputConfigs = errors.New("invalid output configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrUnexpectedArguments is returned when positional arguments follow
	// the flags.
	ErrUnexpectedArguments = errors.New("unexpected arguments")
)
