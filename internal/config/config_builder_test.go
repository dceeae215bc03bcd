package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a field set by an earlier source
// is not overwritten by a later one, while unset fields are filled in.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Settings: Settings{Directory: "/from/flags"}},
		&StructuredConfig{Settings: Settings{Directory: "/from/env", EnvPrefix: "APP_"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/from/flags", cfg.Settings.Directory)
	assert.Equal(t, "APP_", cfg.Settings.EnvPrefix)
}

// TestBuild_ValidatesResult verifies that the merged config is validated.
func TestBuild_ValidatesResult(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{Output: Output{Format: "toml"}})

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidOutputConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that prefixed environment variables are
// picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APPSETTINGS_DIR", "/etc/app")
	t.Setenv("APPSETTINGS_OUTPUT_FORMAT", "yaml")

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/etc/app", b.configs[0].Settings.Directory)
	assert.Equal(t, "yaml", b.configs[0].Output.Format)
}

// TestWithEnv_SetsErrorOnBadValue verifies that an unconvertible value is
// recorded in b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("APPSETTINGS_NO_FILES", "sometimes")

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse failures are
// recorded in b.err.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredConfig{}
	payload.Settings.Directory = "/json/dir"
	payload.Output.Format = "yaml"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "/json/dir", b.configs[1].Settings.Directory)
	assert.Equal(t, "yaml", b.configs[1].Output.Format)
}

// TestWithJSON_UsesFirstPath verifies that the highest-priority source naming
// a file decides which file is read.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := StructuredConfig{}
	first.Settings.Directory = "first"
	second := StructuredConfig{}
	second.Settings.Directory = "second"

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
		&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, second)},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].Settings.Directory)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Precedence verifies flags > env > json.
func TestGetStructuredConfig_Precedence(t *testing.T) {
	file := StructuredConfig{}
	file.Settings.Directory = "/json"
	file.Settings.EnvPrefix = "JSON_"
	file.Log.Level = "warn"
	path := writeTempJSONConfig(t, file)

	t.Setenv("APPSETTINGS_DIR", "/env")
	t.Setenv("APPSETTINGS_ENV_PREFIX", "ENV_")

	cfg, err := GetStructuredConfig([]string{"-dir", "/flags", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "/flags", cfg.Settings.Directory)
	assert.Equal(t, "ENV_", cfg.Settings.EnvPrefix)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, path, cfg.JSONFilePath)
}

// TestGetStructuredConfig_ExplicitFalseFlagWins verifies that a flag set to
// false overrides a true value coming from the environment or the JSON file.
func TestGetStructuredConfig_ExplicitFalseFlagWins(t *testing.T) {
	file := StructuredConfig{}
	file.Settings.NoSecrets = true
	file.Output.Sources = true
	path := writeTempJSONConfig(t, file)

	t.Setenv("APPSETTINGS_NO_FILES", "true")
	t.Setenv("APPSETTINGS_NO_ENV", "true")

	cfg, err := GetStructuredConfig([]string{
		"-no-files=false",
		"-no-secrets=false",
		"-c", path,
	})
	require.NoError(t, err)

	assert.False(t, cfg.Settings.NoFiles)
	assert.False(t, cfg.Settings.NoSecrets)
	assert.True(t, cfg.Settings.NoEnvVars, "env value kept when the flag is absent")
	assert.True(t, cfg.Output.Sources, "json value kept when the flag is absent")
}

// TestGetStructuredConfig_ExplicitEmptyFlagWins verifies that an empty string
// flag clears a value coming from the environment.
func TestGetStructuredConfig_ExplicitEmptyFlagWins(t *testing.T) {
	t.Setenv("APPSETTINGS_ENV_PREFIX", "ENV_")

	cfg, err := GetStructuredConfig([]string{"-env-prefix="})
	require.NoError(t, err)

	assert.Empty(t, cfg.Settings.EnvPrefix)
}
