package renderer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"

	"github.com/termdeck/termdeck/internal/domain/ports"
)

// MarkdownRenderer lays out a markdown document in a centered,
// margin-constrained box.
type MarkdownRenderer struct {
	style string
}

// NewMarkdownRenderer creates a markdown renderer using the given
// glamour style name ("auto" selects by terminal background).
func NewMarkdownRenderer(style string) *MarkdownRenderer {
	return &MarkdownRenderer{style: style}
}

// Render reads the document at path and renders it into the frame.
func (r *MarkdownRenderer) Render(path string, frame ports.Frame) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - slide paths come from the user's deck file
	if err != nil {
		return "", fmt.Errorf("reading markdown slide: %w", err)
	}

	x, y, w, h := markdownArea(string(data), frame)
	if w == 0 || h == 0 {
		// Terminal smaller than twice the margin; draw nothing.
		return "", nil
	}

	tr, err := r.newTermRenderer(w)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := tr.Render(string(data))
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}

	return placeAt(out, x, y), nil
}

func (r *MarkdownRenderer) newTermRenderer(wrap int) (*glamour.TermRenderer, error) {
	if r.style == "" || r.style == "auto" {
		return glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	}
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(wrap),
	)
}
