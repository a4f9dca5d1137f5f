package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv clears a variable for the duration of one test. t.Setenv
// registers the restore; the Unsetenv makes the variable truly absent
// rather than present-but-empty.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_NoFileAndNoEnvUsesDefaults(t *testing.T) {
	unsetenv(t, "ENV")
	unsetenv(t, "STORAGE_BACKEND")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend)
}

func TestLoad_EnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("STORAGE_BACKEND", "sqlite")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
}

func TestLoad_ReadsTheYAMLFile(t *testing.T) {
	unsetenv(t, "ENV")
	unsetenv(t, "STORAGE_BACKEND")
	path := writeConfigFile(t, "env: staging\nstorage:\n  backend: sqlite\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Env)
	assert.Equal(t, BackendSQLite, cfg.Storage.Backend)
}

func TestLoad_FileMayOmitKeys(t *testing.T) {
	unsetenv(t, "ENV")
	unsetenv(t, "STORAGE_BACKEND")
	path := writeConfigFile(t, "env: prod\n")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, BackendMemory, cfg.Storage.Backend, "omitted keys keep their defaults")
}

func TestLoad_NamedButMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := writeConfigFile(t, "env: [unclosed\n")

	_, err := Load(path)

	require.Error(t, err)
}

func TestLoad_RejectsAnUnknownEnv(t *testing.T) {
	t.Setenv("ENV", "production")
	unsetenv(t, "STORAGE_BACKEND")

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field Env must be one of: dev staging prod")
}

func TestLoad_RejectsAnUnknownBackend(t *testing.T) {
	unsetenv(t, "ENV")
	unsetenv(t, "STORAGE_BACKEND")
	path := writeConfigFile(t, "storage:\n  backend: postgres\n")

	_, err := Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field Backend must be one of: memory sqlite")
}
