package entities

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// SlideKind identifies how a slide's payload is rendered. The set is
// closed; dispatch over it is exhaustive.
type SlideKind string

const (
	// KindMarkdown renders a markdown document in a centered frame.
	KindMarkdown SlideKind = "markdown"
	// KindImage shows a static image full-screen via the external viewer.
	KindImage SlideKind = "image"
	// KindAnimation plays an animated image (single cycle) via the external viewer.
	KindAnimation SlideKind = "animation"
	// KindExternalOpen shows a prompt and opens the file with the OS
	// default application on activation.
	KindExternalOpen SlideKind = "open"
	// KindText centers literal text on screen.
	KindText SlideKind = "text"
	// KindBanner renders literal text as block-letter ASCII art.
	KindBanner SlideKind = "banner"
	// KindSource renders a source file with syntax highlighting.
	KindSource SlideKind = "source"
)

// Kinds lists every valid slide kind in declaration order.
func Kinds() []SlideKind {
	return []SlideKind{
		KindMarkdown,
		KindImage,
		KindAnimation,
		KindExternalOpen,
		KindText,
		KindBanner,
		KindSource,
	}
}

// Valid reports whether k belongs to the closed kind set.
func (k SlideKind) Valid() bool {
	switch k {
	case KindMarkdown, KindImage, KindAnimation, KindExternalOpen,
		KindText, KindBanner, KindSource:
		return true
	}
	return false
}

// PayloadIsPath reports whether the payload names a file on disk rather
// than literal content.
func (k SlideKind) PayloadIsPath() bool {
	switch k {
	case KindText, KindBanner:
		return false
	}
	return true
}

// Activatable reports whether pressing enter on a slide of this kind has
// an observable side effect. All other kinds activate as a strict no-op.
func (k SlideKind) Activatable() bool {
	switch k {
	case KindExternalOpen, KindImage, KindAnimation:
		return true
	}
	return false
}

// Slide is one unit of a presentation: a kind plus a single string
// payload (a path for file-backed kinds, literal content otherwise).
// Slides are immutable once the deck is loaded.
type Slide struct {
	// Kind selects the rendering and activation behavior.
	Kind SlideKind `yaml:"-"`

	// Payload is the path or literal content, depending on Kind.
	Payload string `yaml:"-"`

	// Index is the slide position in the deck (0-based).
	Index int `yaml:"-"`
}

// Validate ensures the slide is well formed.
func (s *Slide) Validate() error {
	if !s.Kind.Valid() {
		return fmt.Errorf("unknown slide kind %q", string(s.Kind))
	}

	if strings.TrimSpace(s.Payload) == "" {
		return errors.New("slide payload cannot be empty")
	}

	if s.Index < 0 {
		return errors.New("slide index must be non-negative")
	}

	return nil
}

// Label returns a short human-readable description of the slide, used by
// the outline command and in logs.
func (s *Slide) Label() string {
	if s.Kind.PayloadIsPath() {
		return filepath.Base(s.Payload)
	}

	// First line of literal content.
	line := s.Payload
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}
