package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TURSO_DATABASE_URL", "REDIS_URL", "DEV_MODE", "FITTRACK_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, BackendFile, cfg.Store.Backend)
	assert.Equal(t, 2000, cfg.DailyCalorieGoal)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigFromFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level = "debug"
timezone = "UTC"
daily_calorie_goal = 2400

[store]
backend = "SQL"
connection_string = "file:/tmp/fit.db"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 2400, cfg.DailyCalorieGoal)
	assert.Equal(t, BackendSQL, cfg.Store.Backend)
	assert.Equal(t, "file:/tmp/fit.db", cfg.Store.ConnectionString)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TURSO_DATABASE_URL", "libsql://fit.turso.io?authToken=x")
	path := writeConfig(t, "[store]\nbackend = \"file\"\npath = \"/tmp/x\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendSQL, cfg.Store.Backend)
	assert.Equal(t, "libsql://fit.turso.io?authToken=x", cfg.Store.ConnectionString)

	t.Setenv("DEV_MODE", "true")
	cfg, err = LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, devConnectionString, cfg.Store.ConnectionString)
}

func TestValidateRejectsBadValues(t *testing.T) {
	clearEnv(t)
	_, err := LoadConfig(writeConfig(t, "[store]\nbackend = \"ftp\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "daily_calorie_goal = -5\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[store]\nbackend = \"redis\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "timezone = \"Nowhere/Land\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "this is not toml"))
	assert.Error(t, err)
}
