package settings

import (
	"os"
	"path/filepath"
	"runtime/debug"
)

// Developer secrets live outside the project tree, one directory per
// application: <user config dir>/usersecrets/<app id>/secrets.json.
// The store is plain, unencrypted JSON meant for local development only.
const (
	secretsDirName  = "usersecrets"
	secretsFileName = "secrets.json"
)

// EntryPointFunc adapts a plain function to [EntryPoint].
type EntryPointFunc func() (string, bool)

// AppID calls f().
func (f EntryPointFunc) AppID() (string, bool) {
	return f()
}

// MainModule identifies the application by the import path of its main
// package as recorded in the binary's build info. Binaries built without
// module support have no identifiable entry point.
var MainModule EntryPoint = EntryPointFunc(mainModulePath)

// NamedApp is an [EntryPoint] with a fixed application id.
type NamedApp string

// AppID returns the fixed id; an empty name means no entry point.
func (n NamedApp) AppID() (string, bool) {
	return string(n), n != ""
}

func mainModulePath() (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Path == "" {
		return "", false
	}

	return info.Path, true
}

// SecretsPath returns the location of the developer secrets file for appID
// under root. An empty root yields an empty path.
func SecretsPath(root, appID string) string {
	if root == "" {
		return ""
	}

	return filepath.Join(root, secretsDirName, filepath.FromSlash(appID), secretsFileName)
}

func userSecretsRoot() (string, error) {
	return os.UserConfigDir()
}
