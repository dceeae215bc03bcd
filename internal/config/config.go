// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable the command reads
// for its own options.
const EnvPrefix = "APPSETTINGS_"

// StructuredConfig is the top-level options container of the appsettings
// command, populated by merging flags, environment variables and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env tag lookups (caarlos0/env).
//   - env: environment variable name, after [EnvPrefix].
//   - validate: go-playground/validator rules checked by validate().
type StructuredConfig struct {
	// Settings controls which configuration sources are assembled and where
	// they are looked up.
	Settings Settings `json:"settings"`

	// Output controls what is printed and how.
	Output Output `envPrefix:"OUTPUT_" json:"output"`

	// Log controls diagnostic logging on stderr.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON options file.
	// Populated via APPSETTINGS_CONFIG or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Settings mirrors the assembler toggles. Toggles are expressed negatively
// so that the zero value means "everything enabled".
type Settings struct {
	// Directory holding appsettings*.json. Empty means resolve it.
	// Env: APPSETTINGS_DIR
	Directory string `env:"DIR" json:"dir"`

	// FromExecutable resolves an empty Directory to the directory of the
	// running binary instead of the working directory.
	// Env: APPSETTINGS_FROM_EXECUTABLE
	FromExecutable bool `env:"FROM_EXECUTABLE" json:"from_executable"`

	// NoFiles skips the JSON settings files.
	// Env: APPSETTINGS_NO_FILES
	NoFiles bool `env:"NO_FILES" json:"no_files"`

	// NoEnvVars skips the environment variable source.
	// Env: APPSETTINGS_NO_ENV
	NoEnvVars bool `env:"NO_ENV" json:"no_env"`

	// NoSecrets skips the developer secrets source.
	// Env: APPSETTINGS_NO_SECRETS
	NoSecrets bool `env:"NO_SECRETS" json:"no_secrets"`

	// EnvPrefix restricts the environment variable source to variables
	// starting with it.
	// Env: APPSETTINGS_ENV_PREFIX
	EnvPrefix string `env:"ENV_PREFIX" json:"env_prefix"`

	// AppID overrides the application identity used to locate developer
	// secrets.
	// Env: APPSETTINGS_APP_ID
	AppID string `env:"APP_ID" json:"app_id"`
}

// Output selects what the command prints.
type Output struct {
	// Format of the printed settings: "json" (default) or "yaml".
	// Env: APPSETTINGS_OUTPUT_FORMAT
	Format string `env:"FORMAT" json:"format" validate:"omitempty,oneof=json yaml"`

	// Key prints a single value instead of the whole tree.
	// Env: APPSETTINGS_OUTPUT_KEY
	Key string `env:"KEY" json:"key"`

	// Sources prints the registered sources instead of their values.
	// Env: APPSETTINGS_OUTPUT_SOURCES
	Sources bool `env:"SOURCES" json:"sources"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: APPSETTINGS_LOG_LEVEL
	Level string `env:"LEVEL" json:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
}

// GetStructuredConfig loads, merges and validates the command options from
// args (without the program name), the environment and the optional JSON
// file, in that priority order.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		build()
}
