package config

import (
	"os"
	"strconv"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// GetDefaultConfig returns the default configuration with environment
// overrides applied.
func GetDefaultConfig() *entities.Config {
	return &entities.Config{
		Theme: entities.ThemeConfig{
			Markdown: getEnvOrDefault("TERMDECK_THEME", "auto"),
			Syntax:   getEnvOrDefault("TERMDECK_SYNTAX_THEME", "solarized-light"),
		},
		Viewer: entities.ViewerConfig{
			Command: getEnvOrDefault("TERMDECK_VIEWER", "viu"),
			Enabled: getEnvBoolOrDefault("TERMDECK_VIEWER_ENABLED", true),
		},
		Presentation: entities.PresentationConfig{
			Margin: getEnvIntOrDefault("TERMDECK_MARGIN", 2),
		},
		Watcher: entities.WatcherConfig{
			Enabled:    true,
			DebounceMs: 500,
		},
		Logging: entities.LoggingConfig{
			Verbose: getEnvBoolOrDefault("TERMDECK_LOG_VERBOSE", false),
			File:    getEnvOrDefault("TERMDECK_LOG_FILE", ""),
		},
	}
}

// getEnvOrDefault returns environment variable value or default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default.
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default.
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
