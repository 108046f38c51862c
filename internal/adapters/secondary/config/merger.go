package config

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
)

// Merger implements the ConfigMerger interface.
type Merger struct{}

// NewMerger creates a new configuration merger.
func NewMerger() *Merger {
	return &Merger{}
}

// Merge merges multiple configurations with later configs taking
// precedence. Nil configs are skipped.
func (m *Merger) Merge(configs ...*entities.Config) *entities.Config {
	if len(configs) == 0 {
		return GetDefaultConfig()
	}

	result := deepCopy(configs[0])
	if result == nil {
		result = GetDefaultConfig()
	}

	for i := 1; i < len(configs); i++ {
		if configs[i] != nil {
			m.mergeInto(result, configs[i])
		}
	}

	return result
}

// ApplyFlags applies CLI flag overrides to a configuration. Flags always
// win over file-based settings.
func (m *Merger) ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config {
	result := deepCopy(config)

	if theme, ok := flags["theme"].(string); ok && theme != "" {
		result.Theme.Markdown = theme
	}

	if margin, ok := flags["margin"].(int); ok && margin >= 0 {
		result.Presentation.Margin = margin
	}

	if noViewer, ok := flags["no-viewer"].(bool); ok && noViewer {
		result.Viewer.Enabled = false
	}

	if watch, ok := flags["watch"].(bool); ok {
		result.Watcher.Enabled = watch
	}

	if verbose, ok := flags["verbose"].(bool); ok && verbose {
		result.Logging.Verbose = true
	}

	return result
}

// mergeInto overlays non-zero fields of src onto dst.
func (m *Merger) mergeInto(dst, src *entities.Config) {
	if src.Theme.Markdown != "" {
		dst.Theme.Markdown = src.Theme.Markdown
	}
	if src.Theme.Syntax != "" {
		dst.Theme.Syntax = src.Theme.Syntax
	}
	if src.Viewer.Command != "" {
		dst.Viewer.Command = src.Viewer.Command
	}
	// Enabled flags overlay unconditionally: a local config that turns
	// the viewer or watcher off must win.
	dst.Viewer.Enabled = src.Viewer.Enabled
	dst.Watcher.Enabled = src.Watcher.Enabled

	if src.Presentation.Margin > 0 {
		dst.Presentation.Margin = src.Presentation.Margin
	}
	if src.Watcher.DebounceMs > 0 {
		dst.Watcher.DebounceMs = src.Watcher.DebounceMs
	}
	if src.Logging.Verbose {
		dst.Logging.Verbose = true
	}
	if src.Logging.File != "" {
		dst.Logging.File = src.Logging.File
	}
}

// deepCopy returns an independent copy of a configuration.
func deepCopy(c *entities.Config) *entities.Config {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}
