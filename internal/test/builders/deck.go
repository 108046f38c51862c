// Package builders provides fluent test-data builders for deck and
// slide entities.
package builders

import (
	"github.com/termdeck/termdeck/internal/domain/entities"
)

// DeckBuilder helps build Deck entities for testing.
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder creates a new deck builder with sensible defaults.
func NewDeckBuilder() *DeckBuilder {
	return &DeckBuilder{
		deck: &entities.Deck{
			ID:     "test-deck",
			Title:  "Test Deck",
			Path:   "deck.yaml",
			Slides: []entities.Slide{},
		},
	}
}

// WithTitle sets the deck title.
func (b *DeckBuilder) WithTitle(title string) *DeckBuilder {
	b.deck.Title = title
	return b
}

// WithSlide appends a slide of the given kind and payload.
func (b *DeckBuilder) WithSlide(kind entities.SlideKind, payload string) *DeckBuilder {
	b.deck.Slides = append(b.deck.Slides, entities.Slide{
		Kind:    kind,
		Payload: payload,
		Index:   len(b.deck.Slides),
	})
	return b
}

// WithTextSlides appends one text slide per given content string.
func (b *DeckBuilder) WithTextSlides(contents ...string) *DeckBuilder {
	for _, c := range contents {
		b.WithSlide(entities.KindText, c)
	}
	return b
}

// Build returns the built deck.
func (b *DeckBuilder) Build() *entities.Deck {
	return b.deck
}
