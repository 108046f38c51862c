// Package renderer turns slides into positioned terminal output. Each
// slide kind has its own rendering strategy; the dispatch over kinds is
// exhaustive and closed.
package renderer

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/termdeck/termdeck/internal/domain/entities"
	"github.com/termdeck/termdeck/internal/domain/ports"
)

var promptStyle = lipgloss.NewStyle().Faint(true)

// TerminalRenderer implements the SlideRenderer interface for terminal
// output.
type TerminalRenderer struct {
	markdown *MarkdownRenderer
	source   *SourceRenderer
	banner   *BannerRenderer
}

// New creates a terminal renderer configured from the theme settings.
func New(cfg *entities.Config) *TerminalRenderer {
	return &TerminalRenderer{
		markdown: NewMarkdownRenderer(cfg.Theme.Markdown),
		source:   NewSourceRenderer(cfg.Theme.Syntax),
		banner:   NewBannerRenderer(),
	}
}

// Render produces the full-screen content for one slide. Image and
// animation slides are drawn by the external viewer, not here; for those
// kinds Render returns the placeholder shown when the viewer is
// disabled.
func (r *TerminalRenderer) Render(ctx context.Context, slide *entities.Slide, frame ports.Frame) (string, error) {
	if slide == nil {
		return "", fmt.Errorf("slide cannot be nil")
	}

	switch slide.Kind {
	case entities.KindMarkdown:
		return r.markdown.Render(slide.Payload, frame)

	case entities.KindSource:
		return r.source.Render(slide.Payload, frame)

	case entities.KindBanner:
		return r.banner.Render(slide.Payload, frame)

	case entities.KindText:
		return centerLines(slide.Payload, frame.Width, frame.Height), nil

	case entities.KindExternalOpen:
		prompt := fmt.Sprintf("External file:\n%s\n\n%s",
			slide.Payload, promptStyle.Render("press enter to open"))
		return centerLines(prompt, frame.Width, frame.Height), nil

	case entities.KindImage, entities.KindAnimation:
		placeholder := fmt.Sprintf("[%s: %s]", string(slide.Kind), slide.Payload)
		return centerLines(promptStyle.Render(placeholder), frame.Width, frame.Height), nil

	default:
		return "", fmt.Errorf("unknown slide kind %q", string(slide.Kind))
	}
}
