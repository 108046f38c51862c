package ports

import (
	"context"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// DeckLoader deserializes a deck file into slide descriptors.
type DeckLoader interface {
	Load(ctx context.Context, path string) (*entities.Deck, error)
}

// ConfigLoader loads application configuration files.
type ConfigLoader interface {
	// LoadGlobal loads the global configuration, creating defaults on
	// first run.
	LoadGlobal(ctx context.Context) (*entities.Config, error)

	// LoadLocal loads an optional per-directory configuration; it
	// returns (nil, nil) when none exists.
	LoadLocal(ctx context.Context, dir string) (*entities.Config, error)
}

// ConfigMerger combines configurations from multiple sources.
type ConfigMerger interface {
	// Merge merges configurations with later ones taking precedence.
	Merge(configs ...*entities.Config) *entities.Config

	// ApplyFlags applies CLI flag overrides to a configuration.
	ApplyFlags(config *entities.Config, flags map[string]interface{}) *entities.Config
}
