package ports

import (
	"context"

	"github.com/termdeck/termdeck/internal/domain/entities"
)

// Frame describes the terminal area a slide is rendered into.
type Frame struct {
	// Width and Height are the full terminal dimensions in cells.
	Width  int
	Height int

	// Margin is the symmetric four-sided inset applied to
	// box-constrained content.
	Margin int
}

// SlideRenderer turns one slide plus a frame into terminal output. The
// returned string is a full screen's worth of content: lines are
// pre-positioned with leading blank lines and left padding, ready to be
// written from the origin of a cleared screen.
type SlideRenderer interface {
	Render(ctx context.Context, slide *entities.Slide, frame Frame) (string, error)
}
