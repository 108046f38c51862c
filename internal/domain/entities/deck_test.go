package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck_Validate(t *testing.T) {
	t.Run("valid deck", func(t *testing.T) {
		deck := Deck{
			Slides: []Slide{
				{Kind: KindText, Payload: "hello", Index: 0},
				{Kind: KindMarkdown, Payload: "intro.md", Index: 1},
			},
		}
		assert.NoError(t, deck.Validate())
	})

	t.Run("empty deck", func(t *testing.T) {
		deck := Deck{}
		err := deck.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one slide")
	})

	t.Run("invalid slide reports its position", func(t *testing.T) {
		deck := Deck{
			Slides: []Slide{
				{Kind: KindText, Payload: "ok", Index: 0},
				{Kind: SlideKind("bogus"), Payload: "x", Index: 1},
			},
		}
		err := deck.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "slide 2")
	})
}

func TestDeck_SlideAt(t *testing.T) {
	deck := Deck{
		Slides: []Slide{
			{Kind: KindText, Payload: "first", Index: 0},
			{Kind: KindText, Payload: "second", Index: 1},
		},
	}

	require.NotNil(t, deck.SlideAt(0))
	assert.Equal(t, "first", deck.SlideAt(0).Payload)
	assert.Equal(t, "second", deck.SlideAt(1).Payload)

	// One past the last slide is a legal lookup that finds nothing.
	assert.Nil(t, deck.SlideAt(2))
	assert.Nil(t, deck.SlideAt(-1))
	assert.Nil(t, deck.SlideAt(100))

	assert.Equal(t, 2, deck.Len())
}
