package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the command-line options in args.
//
// Flags:
//
//	-dir settings directory
//	-from-executable resolve the directory from the binary location
//	-no-files skip appsettings*.json
//	-no-env skip environment variables
//	-no-secrets skip developer secrets
//	-env-prefix only read environment variables with this prefix
//	-app-id application identity for developer secrets
//	-format output format (json, yaml)
//	-key print a single key
//	-sources print the registered sources
//	-log-level log level
//	-c/-config json options file path
func parseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := applyFlags(cfg, args); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlags parses args onto cfg. Only flags present in args are written;
// every other field keeps its current value, so an explicit "-no-files=false"
// clears a value set by a lower-priority source.
func applyFlags(cfg *StructuredConfig, args []string) error {
	fs := newFlagSet(cfg)
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: %v", ErrUnexpectedArguments, fs.Args())
	}

	return nil
}

// newFlagSet binds the command-line options to cfg, using the current field
// values as defaults.
func newFlagSet(cfg *StructuredConfig) *flag.FlagSet {
	fs := flag.NewFlagSet("appsettings", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Settings.Directory, "dir", cfg.Settings.Directory, "Settings directory")
	fs.BoolVar(&cfg.Settings.FromExecutable, "from-executable", cfg.Settings.FromExecutable, "Resolve the settings directory from the binary location")
	fs.BoolVar(&cfg.Settings.NoFiles, "no-files", cfg.Settings.NoFiles, "Skip appsettings*.json files")
	fs.BoolVar(&cfg.Settings.NoEnvVars, "no-env", cfg.Settings.NoEnvVars, "Skip environment variables")
	fs.BoolVar(&cfg.Settings.NoSecrets, "no-secrets", cfg.Settings.NoSecrets, "Skip developer secrets")
	fs.StringVar(&cfg.Settings.EnvPrefix, "env-prefix", cfg.Settings.EnvPrefix, "Only read environment variables with this prefix")
	fs.StringVar(&cfg.Settings.AppID, "app-id", cfg.Settings.AppID, "Application identity for developer secrets")
	fs.StringVar(&cfg.Output.Format, "format", cfg.Output.Format, "Output format (json, yaml)")
	fs.StringVar(&cfg.Output.Key, "key", cfg.Output.Key, "Print a single key")
	fs.BoolVar(&cfg.Output.Sources, "sources", cfg.Output.Sources, "Print the registered sources")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "Log level")
	fs.StringVar(&cfg.JSONFilePath, "c", cfg.JSONFilePath, "JSON options file path")
	fs.StringVar(&cfg.JSONFilePath, "config", cfg.JSONFilePath, "JSON options file path (alias)")

	return fs
}
