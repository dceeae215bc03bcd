package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/appsettings/internal/config"
	"github.com/MKhiriev/appsettings/internal/logger"
	"github.com/MKhiriev/appsettings/internal/output"
	"github.com/MKhiriev/appsettings/internal/settings"
	"github.com/MKhiriev/appsettings/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errKeyNotFound = errors.New("key not found")

func main() {
	fmt.Fprint(os.Stderr, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("appsettings")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.Log.Level); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, log, os.Stdout); err != nil {
		var cfgErr *settings.ConfigurationError
		if errors.As(err, &cfgErr) {
			log.Fatal().Err(err).Str("directory", cfgErr.Directory).Msg("base settings file missing")
		}
		log.Fatal().Err(err).Msg("error resolving settings")
	}
}

// run assembles the sources described by cfg and prints either the source
// list, a single key, or the whole merged tree to w.
func run(cfg *config.StructuredConfig, log *logger.Logger, w io.Writer) error {
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	var sources settings.Sources
	opts := cfg.Settings.AssemblerOptions(log.WithComponent("assembler"))
	if err = settings.Assemble(&sources, opts...); err != nil {
		return err
	}

	if cfg.Output.Sources {
		_, err = io.WriteString(w, output.SourcesTable(sources.BasePath(), sources.All()))
		return err
	}

	resolved, err := settings.Load(&sources)
	if err != nil {
		return fmt.Errorf("error loading settings: %w", err)
	}
	log.Debug().
		Int("sources", sources.Len()).
		Int("keys", len(resolved.Keys())).
		Msg("settings resolved")

	if key := cfg.Output.Key; key != "" {
		if !resolved.Exists(key) {
			return fmt.Errorf("%w: %s", errKeyNotFound, key)
		}
		return output.Write(w, format, resolved.Get(key))
	}

	return output.Write(w, format, resolved.All())
}
