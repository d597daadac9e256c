package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad tests configuration loading from environment
func TestLoad(t *testing.T) {
	t.Run("loads config with defaults when no env vars set", func(t *testing.T) {
		clearEnvVars(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "items.csv", cfg.ItemsPath)
		assert.Equal(t, "containers.csv", cfg.ContainersPath)
		assert.Empty(t, cfg.ScenarioPath)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "dev", cfg.Environment)
		assert.Equal(t, 0, cfg.Port)
		assert.False(t, cfg.ServeEnabled())
	})

	t.Run("loads config from environment variables", func(t *testing.T) {
		clearEnvVars(t)

		t.Setenv("ITEMS_PATH", "data/items.csv")
		t.Setenv("CONTAINERS_PATH", "data/containers.csv")
		t.Setenv("SCENARIO_PATH", "data/scenario.yaml")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("LOG_DIR", "logs")
		t.Setenv("ENVIRONMENT", "prod")
		t.Setenv("PORT", "3000")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "data/items.csv", cfg.ItemsPath)
		assert.Equal(t, "data/containers.csv", cfg.ContainersPath)
		assert.Equal(t, "data/scenario.yaml", cfg.ScenarioPath)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.Equal(t, "logs", cfg.LogDir)
		assert.Equal(t, "prod", cfg.Environment)
		assert.Equal(t, 3000, cfg.Port)
		assert.True(t, cfg.ServeEnabled())
		assert.Equal(t, ":3000", cfg.Addr())
	})

	t.Run("returns error for invalid PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "not-a-number")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "PORT")
	})

	t.Run("returns error for out of range PORT", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("PORT", "70000")

		cfg, err := Load()

		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "between 0 and 65535")
	})

	t.Run("returns error for empty items path", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("ITEMS_PATH", "")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ITEMS_PATH must not be empty")
	})

	t.Run("returns error for unknown log format", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_FORMAT")
	})
}

func TestWarnings(t *testing.T) {
	cfg := &Config{Environment: "prod"}

	warnings := cfg.Warnings()

	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "SCENARIO_PATH")
	assert.Contains(t, warnings[1], "LOG_DIR")

	cfg = &Config{Environment: "dev", ScenarioPath: "scenario.yaml"}
	assert.Empty(t, cfg.Warnings())
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	// Run from a temp dir so a developer .env file is not picked up
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	for _, key := range []string{
		EnvItemsPath, EnvContainersPath, EnvScenarioPath, EnvLogLevel, EnvLogFormat,
		EnvLogDir, EnvEnvironment, EnvServiceName, EnvVersion, EnvPort,
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}
