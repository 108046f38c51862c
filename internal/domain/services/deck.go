package services

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
	"github.com/termdeck/termdeck/internal/log"
)

// DeckService implements the business logic for decks: loading,
// validation, and change watching.
type DeckService struct {
	loader  ports.DeckLoader
	watcher ports.FileWatcher
}

// NewDeckService creates a new deck service instance. The watcher may be
// nil when live reload is disabled.
func NewDeckService(loader ports.DeckLoader, watcher ports.FileWatcher) *DeckService {
	return &DeckService{
		loader:  loader,
		watcher: watcher,
	}
}

// LoadDeck loads and validates a deck from a file path.
func (s *DeckService) LoadDeck(ctx context.Context, path string) (*entities.Deck, error) {
	if path == "" {
		return nil, errors.New("deck path cannot be empty")
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("deck file not found: %s", path)
		}
		return nil, fmt.Errorf("checking deck file: %w", err)
	}

	deck, err := s.loader.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading deck: %w", err)
	}

	if err := deck.Validate(); err != nil {
		return nil, fmt.Errorf("invalid deck: %w", err)
	}

	deck.ID = uuid.NewString()
	deck.Path = path
	for i := range deck.Slides {
		deck.Slides[i].Index = i
	}

	log.Debugf("loaded deck %s (%d slides) from %s", deck.ID, deck.Len(), path)

	return deck, nil
}

// WatchDeck watches the deck file for changes. The returned channel is
// closed when the watcher stops.
func (s *DeckService) WatchDeck(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	if s.watcher == nil {
		return nil, errors.New("deck watching is not configured")
	}

	if path == "" {
		return nil, errors.New("deck path cannot be empty")
	}

	events, err := s.watcher.Watch(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("watching deck: %w", err)
	}

	return events, nil
}
