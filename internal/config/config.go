package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	ItemsPath      string
	ContainersPath string
	ScenarioPath   string // optional: composites and loot requests

	LogLevel    string
	LogFormat   string
	LogDir      string // empty disables the rotated log file
	Environment string
	ServiceName string
	Version     string

	Port int // 0 disables the inspection server
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		ItemsPath:      getEnv(EnvItemsPath, DefaultItemsPath),
		ContainersPath: getEnv(EnvContainersPath, DefaultContainersPath),
		ScenarioPath:   getEnv(EnvScenarioPath, ""),
		LogLevel:       getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:      getEnv(EnvLogFormat, DefaultLogFormat),
		LogDir:         getEnv(EnvLogDir, ""),
		Environment:    getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:    getEnv(EnvServiceName, DefaultServiceName),
		Version:        getEnv(EnvVersion, DefaultVersion),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvPort, err)
	}
	cfg.Port = port

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// ServeEnabled reports whether the inspection server should run.
func (c *Config) ServeEnabled() bool {
	return c.Port > 0
}

// Addr is the listen address of the inspection server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
