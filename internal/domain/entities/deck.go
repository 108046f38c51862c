package entities

import (
	"errors"
	"fmt"
)

// Deck is the full ordered list of slides for one presentation session.
// It is created once at startup and never mutated while presenting.
type Deck struct {
	// ID is a unique identifier for the loaded deck, used for log
	// correlation only.
	ID string `yaml:"-"`

	// Title is the optional deck title from the deck file.
	Title string `yaml:"title"`

	// Path is the deck file the slides were loaded from.
	Path string `yaml:"-"`

	// Slides contains all slides in presentation order.
	Slides []Slide `yaml:"-"`
}

// Validate ensures the deck has at least one well-formed slide.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return errors.New("deck must have at least one slide")
	}

	for i := range d.Slides {
		if err := d.Slides[i].Validate(); err != nil {
			return fmt.Errorf("slide %d: %w", i+1, err)
		}
	}

	return nil
}

// SlideAt returns the slide at index i, or nil when no slide exists
// there. An index one past the last slide is legal and signals the end
// of the presentation.
func (d *Deck) SlideAt(i int) *Slide {
	if i < 0 || i >= len(d.Slides) {
		return nil
	}
	return &d.Slides[i]
}

// Len returns the number of slides in the deck.
func (d *Deck) Len() int {
	return len(d.Slides)
}
