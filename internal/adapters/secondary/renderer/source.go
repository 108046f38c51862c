package renderer

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/termdeck/termdeck/internal/domain/ports"
)

// SourceRenderer renders a source file with syntax highlighting as a
// centered block.
type SourceRenderer struct {
	style string
}

// NewSourceRenderer creates a source renderer using the given chroma
// style name.
func NewSourceRenderer(style string) *SourceRenderer {
	return &SourceRenderer{style: style}
}

// Render reads the file at path, highlights it with a lexer derived from
// the file's extension, and places the block at the centered origin
// computed from the unhighlighted content. The content is not truncated;
// a file taller than the terminal overflows instead of erroring.
func (r *SourceRenderer) Render(path string, frame ports.Frame) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - slide paths come from the user's deck file
	if err != nil {
		return "", fmt.Errorf("reading source slide: %w", err)
	}
	content := string(data)

	highlighted, err := r.highlight(path, content)
	if err != nil {
		return "", fmt.Errorf("highlighting %s: %w", path, err)
	}

	w, h := contentSize(content)
	x := 0
	if n := frame.Width - w; n > 0 {
		x = n / 2
	}
	y := 0
	if n := frame.Height - h; n > 0 {
		y = n / 2
	}

	return placeAt(highlighted, x, y), nil
}

// highlight runs chroma over the content. The lexer comes from the
// file name, then content analysis, then the plain-text fallback.
func (r *SourceRenderer) highlight(path, content string) (string, error) {
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(r.style)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return "", fmt.Errorf("tokenising: %w", err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("formatting: %w", err)
	}

	return buf.String(), nil
}
