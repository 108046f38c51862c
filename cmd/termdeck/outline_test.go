package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

func TestMarkdownTitle(t *testing.T) {
	t.Run("first heading wins", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "intro.md")
		require.NoError(t, os.WriteFile(path, []byte("# Welcome\n\n## Agenda\n"), 0o644))

		title, err := markdownTitle(path)
		require.NoError(t, err)
		assert.Equal(t, "Welcome", title)
	})

	t.Run("no heading", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.md")
		require.NoError(t, os.WriteFile(path, []byte("just a paragraph\n"), 0o644))

		title, err := markdownTitle(path)
		require.NoError(t, err)
		assert.Empty(t, title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := markdownTitle(filepath.Join(t.TempDir(), "nope.md"))
		require.Error(t, err)
	})
}

func TestSlideTitle(t *testing.T) {
	t.Run("markdown slide uses its heading", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "intro.md")
		require.NoError(t, os.WriteFile(path, []byte("# Opening Remarks\n"), 0o644))

		slide := &entities.Slide{Kind: entities.KindMarkdown, Payload: path}
		assert.Equal(t, "Opening Remarks", slideTitle(slide))
	})

	t.Run("markdown slide without heading falls back to the file name", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "notes.md")
		require.NoError(t, os.WriteFile(path, []byte("no heading here\n"), 0o644))

		slide := &entities.Slide{Kind: entities.KindMarkdown, Payload: path}
		assert.Equal(t, "notes.md", slideTitle(slide))
	})

	t.Run("text slide uses its first line", func(t *testing.T) {
		slide := &entities.Slide{Kind: entities.KindText, Payload: "Questions?\nsecond line"}
		assert.Equal(t, "Questions?", slideTitle(slide))
	})

	t.Run("image slide uses its file name", func(t *testing.T) {
		slide := &entities.Slide{Kind: entities.KindImage, Payload: "assets/gopher.png"}
		assert.Equal(t, "gopher.png", slideTitle(slide))
	})
}
