package config

import (
	"fmt"
	"strings"
)

// Validate checks the loaded values for problems that would stop the run
func (c *Config) Validate() error {
	var problems []string

	if c.ItemsPath == "" {
		problems = append(problems, EnvItemsPath+" must not be empty")
	}
	if c.ContainersPath == "" {
		problems = append(problems, EnvContainersPath+" must not be empty")
	}
	if c.Port < 0 || c.Port > MaxPort {
		problems = append(problems, fmt.Sprintf("%s must be between 0 and %d, got %d", EnvPort, MaxPort, c.Port))
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		problems = append(problems, fmt.Sprintf("%s must be json or text, got %q", EnvLogFormat, c.LogFormat))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// Warnings returns non-critical issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.ScenarioPath == "" {
		warnings = append(warnings, EnvScenarioPath+" is not set - only the catalog will be listed")
	}
	if c.Environment == "prod" && c.LogDir == "" {
		warnings = append(warnings, EnvLogDir+" is not set in prod - logs only go to stderr")
	}

	return warnings
}
