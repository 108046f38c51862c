package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
	"github.com/termdeck/termdeck/internal/test/builders"
)

// fakeLoader returns a canned deck or error.
type fakeLoader struct {
	deck *entities.Deck
	err  error
}

func (l *fakeLoader) Load(ctx context.Context, path string) (*entities.Deck, error) {
	if l.err != nil {
		return nil, l.err
	}
	return l.deck, nil
}

// fakeWatcher returns a canned event channel.
type fakeWatcher struct {
	events chan ports.FileChangeEvent
	err    error
}

func (w *fakeWatcher) Watch(ctx context.Context, path string) (<-chan ports.FileChangeEvent, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.events, nil
}

func (w *fakeWatcher) Stop() error { return nil }

// deckFile creates an empty file so the existence check passes.
func deckFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slides: []\n"), 0o644))
	return path
}

func TestDeckService_LoadDeck(t *testing.T) {
	ctx := context.Background()

	t.Run("loads and decorates a valid deck", func(t *testing.T) {
		deck := builders.NewDeckBuilder().WithTextSlides("a", "b").Build()
		deck.ID = ""
		service := NewDeckService(&fakeLoader{deck: deck}, nil)

		loaded, err := service.LoadDeck(ctx, deckFile(t))
		require.NoError(t, err)

		assert.NotEmpty(t, loaded.ID)
		assert.Equal(t, 0, loaded.Slides[0].Index)
		assert.Equal(t, 1, loaded.Slides[1].Index)
	})

	t.Run("empty path", func(t *testing.T) {
		service := NewDeckService(&fakeLoader{}, nil)

		_, err := service.LoadDeck(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("missing file", func(t *testing.T) {
		service := NewDeckService(&fakeLoader{}, nil)

		_, err := service.LoadDeck(ctx, filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("loader failure", func(t *testing.T) {
		service := NewDeckService(&fakeLoader{err: errors.New("bad YAML")}, nil)

		_, err := service.LoadDeck(ctx, deckFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading deck")
	})

	t.Run("invalid deck fails validation", func(t *testing.T) {
		service := NewDeckService(&fakeLoader{deck: &entities.Deck{}}, nil)

		_, err := service.LoadDeck(ctx, deckFile(t))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid deck")
	})
}

func TestDeckService_WatchDeck(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the event channel through", func(t *testing.T) {
		events := make(chan ports.FileChangeEvent, 1)
		service := NewDeckService(&fakeLoader{}, &fakeWatcher{events: events})

		ch, err := service.WatchDeck(ctx, "deck.yaml")
		require.NoError(t, err)

		events <- ports.FileChangeEvent{Path: "deck.yaml"}
		got := <-ch
		assert.Equal(t, "deck.yaml", got.Path)
	})

	t.Run("without a watcher configured", func(t *testing.T) {
		service := NewDeckService(&fakeLoader{}, nil)

		_, err := service.WatchDeck(ctx, "deck.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("watcher failure", func(t *testing.T) {
		service := NewDeckService(&fakeLoader{}, &fakeWatcher{err: errors.New("inotify limit")})

		_, err := service.WatchDeck(ctx, "deck.yaml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "watching deck")
	})
}
