package settings

//go:generate mockgen -source=interfaces.go -destination=../mock/settings_mock.go -package=mock

// EnvLookup reads a single variable from the process environment (or a
// stand-in for it). The second return value reports whether the variable is
// set at all; a variable set to "" is still set.
type EnvLookup interface {
	LookupEnv(key string) (string, bool)
}

// FileProber answers whether a regular file exists at path.
type FileProber interface {
	Exists(path string) bool
}

// DirResolver produces the settings directory when the caller did not supply
// one explicitly.
type DirResolver interface {
	Dir() string
}

// EntryPoint identifies the running application. ok is false when the
// process has no identifiable entry point, in which case developer secrets
// are not supported.
type EntryPoint interface {
	AppID() (id string, ok bool)
}
