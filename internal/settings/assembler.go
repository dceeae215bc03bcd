package settings

import (
	"path/filepath"

	"github.com/MKhiriev/appsettings/internal/logger"
)

// BaseSettingsFile is the mandatory settings file every settings directory
// must contain when file sources are enabled.
const BaseSettingsFile = "appsettings.json"

// overrideFiles lists, per environment, the override file names to probe in
// order. Both spellings are accepted for compatibility with existing
// deployments; do not add more.
var overrideFiles = []struct {
	env   Environment
	names [2]string
}{
	{env: Development, names: [2]string{"appsettings.development.json", "appsettings.Development.json"}},
	{env: Production, names: [2]string{"appsettings.production.json", "appsettings.Production.json"}},
}

// Assembler registers configuration sources in a fixed precedence order:
// base file, environment override file, developer secrets, environment
// variables. Build one with [NewAssembler]; an Assembler holds no per-call
// state and may be reused.
type Assembler struct {
	useFiles   bool
	useEnvVars bool
	useSecrets bool

	directory   DirResolver
	envPrefix   string
	dirs        DirResolver
	env         EnvLookup
	files       FileProber
	entryPoint  EntryPoint
	secretsRoot func() (string, error)

	logger *logger.Logger
}

// Option configures an [Assembler].
type Option func(*Assembler)

// WithFiles toggles the JSON settings files. Enabled by default.
func WithFiles(enabled bool) Option {
	return func(a *Assembler) { a.useFiles = enabled }
}

// WithEnvVars toggles the environment variable source. Enabled by default.
func WithEnvVars(enabled bool) Option {
	return func(a *Assembler) { a.useEnvVars = enabled }
}

// WithSecrets toggles the developer secrets source. Enabled by default.
func WithSecrets(enabled bool) Option {
	return func(a *Assembler) { a.useSecrets = enabled }
}

// WithDirectory sets the settings directory explicitly. An empty dir defers
// to the [DirResolver].
func WithDirectory(dir string) Option {
	return func(a *Assembler) {
		a.directory = nil
		if dir != "" {
			a.directory = FixedDir(dir)
		}
	}
}

// WithDirResolver replaces the strategy used when no directory is given.
func WithDirResolver(r DirResolver) Option {
	return func(a *Assembler) { a.dirs = r }
}

// WithEnvironment replaces the variable lookup used to detect the
// environment name.
func WithEnvironment(env EnvLookup) Option {
	return func(a *Assembler) { a.env = env }
}

// WithFileProber replaces the file existence check.
func WithFileProber(p FileProber) Option {
	return func(a *Assembler) { a.files = p }
}

// WithEntryPoint replaces the application identity used for secrets.
func WithEntryPoint(e EntryPoint) Option {
	return func(a *Assembler) { a.entryPoint = e }
}

// WithSecretsRoot replaces the function locating the per-user directory
// that holds developer secrets.
func WithSecretsRoot(root func() (string, error)) Option {
	return func(a *Assembler) { a.secretsRoot = root }
}

// WithEnvPrefix restricts the environment variable source to variables
// carrying prefix.
func WithEnvPrefix(prefix string) Option {
	return func(a *Assembler) { a.envPrefix = prefix }
}

// WithLogger sets the logger used for debug tracing of assembly decisions.
// A nil logger keeps the no-op default.
func WithLogger(l *logger.Logger) Option {
	return func(a *Assembler) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewAssembler returns an Assembler with every source enabled, reading the
// process environment and filesystem, and resolving the directory with
// [WorkingDir]. Pass WithDirResolver([ExecutableDir]) to look next to the
// running binary instead, as .NET hosts do.
func NewAssembler(opts ...Option) *Assembler {
	a := &Assembler{
		useFiles:    true,
		useEnvVars:  true,
		useSecrets:  true,
		dirs:        WorkingDir,
		env:         ProcessEnv,
		files:       OSFiles,
		entryPoint:  MainModule,
		secretsRoot: userSecretsRoot,
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Assemble is shorthand for NewAssembler(opts...).Assemble(sources).
func Assemble(sources *Sources, opts ...Option) error {
	return NewAssembler(opts...).Assemble(sources)
}

// Assemble appends the enabled sources to the caller-owned list and records
// the settings directory as its base path. Nothing already in the list is
// touched.
//
// The only failure is a missing base settings file while files are enabled;
// it is reported as *[ConfigurationError] before any file is registered.
func (a *Assembler) Assemble(sources *Sources) error {
	if sources == nil {
		return ErrNilSources
	}

	env := DetectEnvironment(a.env)
	dir := a.settingsDirectory()
	sources.SetBasePath(dir)

	log := a.logger.With().
		Str("environment", string(env)).
		Str("directory", dir).
		Logger()

	if a.useFiles {
		base := filepath.Join(dir, BaseSettingsFile)
		if !a.files.Exists(base) {
			return &ConfigurationError{Directory: dir}
		}
		sources.Add(Source{Kind: KindJSONFile, Path: base})
		log.Debug().Str("path", base).Msg("registered base settings file")

		if path, ok := a.probeOverride(dir, env); ok {
			sources.Add(Source{Kind: KindJSONFile, Path: path})
			log.Debug().Str("path", path).Msg("registered environment settings file")
		}
	}

	if a.useSecrets {
		if appID, ok := a.entryPoint.AppID(); ok && env.Is(Development) {
			src := Source{
				Kind:     KindSecrets,
				Path:     a.secretsPath(appID),
				Optional: true,
				AppID:    appID,
			}
			sources.Add(src)
			log.Debug().Str("app_id", appID).Str("path", src.Path).Msg("registered developer secrets")
		}
	}

	if a.useEnvVars {
		sources.Add(Source{Kind: KindEnv, Prefix: a.envPrefix})
		log.Debug().Str("prefix", a.envPrefix).Msg("registered environment variables")
	}

	return nil
}

func (a *Assembler) settingsDirectory() string {
	if a.directory != nil {
		return a.directory.Dir()
	}

	return a.dirs.Dir()
}

// probeOverride returns the first existing override file for env. Probing
// stops at the first hit.
func (a *Assembler) probeOverride(dir string, env Environment) (string, bool) {
	for _, o := range overrideFiles {
		if !env.Is(o.env) {
			continue
		}
		for _, name := range o.names {
			path := filepath.Join(dir, name)
			if a.files.Exists(path) {
				return path, true
			}
		}
	}

	return "", false
}

func (a *Assembler) secretsPath(appID string) string {
	root, err := a.secretsRoot()
	if err != nil {
		a.logger.Debug().Err(err).Msg("user secrets root unavailable")
		return ""
	}

	return SecretsPath(root, appID)
}
