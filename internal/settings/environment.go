package settings

import (
	"os"
	"strings"
)

// Environment selector variables, checked in this order.
const (
	AspNetCoreEnvVar = "ASPNETCORE_ENVIRONMENT"
	DotNetEnvVar     = "DOTNET_ENVIRONMENT"
)

// Environment is the deployment environment name the process runs under,
// e.g. "Development". Comparisons are case-insensitive.
type Environment string

// Known environments that select an override settings file.
const (
	Development Environment = "development"
	Production  Environment = "production"
)

// Is reports whether e names the same environment as other, ignoring case.
func (e Environment) Is(other Environment) bool {
	return strings.EqualFold(string(e), string(other))
}

// EnvLookupFunc adapts a plain function to [EnvLookup].
type EnvLookupFunc func(key string) (string, bool)

// LookupEnv calls f(key).
func (f EnvLookupFunc) LookupEnv(key string) (string, bool) {
	return f(key)
}

// ProcessEnv reads the real process environment.
var ProcessEnv EnvLookup = EnvLookupFunc(os.LookupEnv)

// MapEnv serves lookups from a fixed map. Handy for tests and for callers that
// assemble settings for an environment other than their own.
type MapEnv map[string]string

// LookupEnv returns m[key].
func (m MapEnv) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// DetectEnvironment resolves the environment name from [AspNetCoreEnvVar],
// falling back to [DotNetEnvVar]. The fallback is consulted only when the
// primary variable is unset; an empty primary value wins. Returns "" when
// neither is set.
func DetectEnvironment(lookup EnvLookup) Environment {
	if v, ok := lookup.LookupEnv(AspNetCoreEnvVar); ok {
		return Environment(v)
	}
	if v, ok := lookup.LookupEnv(DotNetEnvVar); ok {
		return Environment(v)
	}

	return ""
}
