package settings

import (
	"os"
	"path/filepath"
)

// DirResolverFunc adapts a plain function to [DirResolver].
type DirResolverFunc func() string

// Dir calls f().
func (f DirResolverFunc) Dir() string {
	return f()
}

// WorkingDir resolves to the current working directory, or "." when it
// cannot be determined. This is the default strategy.
var WorkingDir DirResolver = DirResolverFunc(workingDir)

// ExecutableDir resolves to the directory containing the running binary and
// falls back to [WorkingDir] when the executable path is unavailable.
var ExecutableDir DirResolver = DirResolverFunc(executableDir)

// FixedDir always resolves to dir.
type FixedDir string

// Dir returns the fixed directory.
func (d FixedDir) Dir() string {
	return string(d)
}

func workingDir() string {
	wd, err := os.Getwd()
	if err != nil || wd == "" {
		return "."
	}

	return wd
}

func executableDir() string {
	exe, err := os.Executable()
	if err != nil || exe == "" {
		return workingDir()
	}

	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Dir(exe)
}

// FileProberFunc adapts a plain function to [FileProber].
type FileProberFunc func(path string) bool

// Exists calls f(path).
func (f FileProberFunc) Exists(path string) bool {
	return f(path)
}

// OSFiles probes the local filesystem. Directories do not count as files.
var OSFiles FileProber = FileProberFunc(regularFileExists)

func regularFileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
