package entities

import (
	"errors"
	"fmt"
)

// Config is the application configuration, loaded from TOML and merged
// with CLI flags.
type Config struct {
	Theme        ThemeConfig        `toml:"theme"`
	Viewer       ViewerConfig       `toml:"viewer"`
	Presentation PresentationConfig `toml:"presentation"`
	Watcher      WatcherConfig      `toml:"watcher"`
	Logging      LoggingConfig      `toml:"logging"`
}

// ThemeConfig selects the rendering styles.
type ThemeConfig struct {
	// Markdown is the glamour style name ("auto" picks by terminal
	// background).
	Markdown string `toml:"markdown"`

	// Syntax is the chroma style name used for source slides.
	Syntax string `toml:"syntax"`
}

// ViewerConfig describes the external image viewer.
type ViewerConfig struct {
	// Command is the viewer binary name.
	Command string `toml:"command"`

	// Enabled disables viewer invocation entirely when false; image and
	// animation slides then show a placeholder instead.
	Enabled bool `toml:"enabled"`
}

// PresentationConfig holds presentation defaults.
type PresentationConfig struct {
	// Margin is the initial four-sided cell inset for box-constrained
	// content.
	Margin int `toml:"margin"`
}

// WatcherConfig controls deck live reload.
type WatcherConfig struct {
	Enabled    bool `toml:"enabled"`
	DebounceMs int  `toml:"debounce_ms"`
}

// LoggingConfig controls the file logger.
type LoggingConfig struct {
	Verbose bool `toml:"verbose"`

	// File overrides the default log location under the user cache dir.
	File string `toml:"file"`
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if c.Presentation.Margin < 0 {
		return fmt.Errorf("presentation margin must be non-negative, got %d", c.Presentation.Margin)
	}

	if c.Viewer.Enabled && c.Viewer.Command == "" {
		return errors.New("viewer command cannot be empty when the viewer is enabled")
	}

	if c.Watcher.DebounceMs <= 0 {
		return fmt.Errorf("watcher debounce must be positive, got %d", c.Watcher.DebounceMs)
	}

	return nil
}
