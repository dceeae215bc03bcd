package config

import (
	"github.com/MKhiriev/appsettings/internal/logger"
	"github.com/MKhiriev/appsettings/internal/settings"
)

// AssemblerOptions translates the command options into settings assembler
// options.
func (s Settings) AssemblerOptions(log *logger.Logger) []settings.Option {
	opts := []settings.Option{
		settings.WithFiles(!s.NoFiles),
		settings.WithEnvVars(!s.NoEnvVars),
		settings.WithSecrets(!s.NoSecrets),
		settings.WithDirectory(s.Directory),
		settings.WithEnvPrefix(s.EnvPrefix),
		settings.WithLogger(log),
	}

	if s.FromExecutable {
		opts = append(opts, settings.WithDirResolver(settings.ExecutableDir))
	}

	if s.AppID != "" {
		opts = append(opts, settings.WithEntryPoint(settings.NamedApp(s.AppID)))
	}

	return opts
}
