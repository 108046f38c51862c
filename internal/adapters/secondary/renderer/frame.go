package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	runewidth "github.com/mattn/go-runewidth"

	"github.com/termdeck/termdeck/internal/domain/ports"
)

// contentSize returns the cell width and line count of s. The width is
// one more than the longest line so box renderers get a trailing column.
func contentSize(s string) (width, height int) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	longest := 0
	for _, l := range lines {
		if w := runewidth.StringWidth(l); w > longest {
			longest = w
		}
	}
	return longest + 1, len(lines)
}

// markdownArea computes the centered box a markdown document is laid out
// in: the document's required width capped by the margin-inset terminal
// width, the full margin-inset height, both clamped at zero so a tiny
// terminal degrades to an empty area instead of failing.
func markdownArea(content string, f ports.Frame) (x, y, w, h int) {
	required, _ := contentSize(content)

	w = f.Width - 2*f.Margin
	if required < w {
		w = required
	}
	h = f.Height - 2*f.Margin

	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	x = (f.Width - w) / 2
	y = (f.Height - h) / 2
	return x, y, w, h
}

// placeAt positions a block of lines at the given origin by prefixing
// blank lines and indenting every line, so the block lands correctly
// when written from the top-left of a cleared screen.
func placeAt(block string, x, y int) string {
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	indent := strings.Repeat(" ", x)

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", y))
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		if l != "" {
			b.WriteString(indent)
			b.WriteString(l)
		}
	}
	return b.String()
}

// centerLines centers each line of content independently in a
// width×height area: the block starts at (height−lines)/2 and every
// line is shifted to (width−lineWidth)/2, both saturating at zero.
func centerLines(content string, width, height int) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	top := 0
	if n := height - len(lines); n > 0 {
		top = n / 2
	}

	var b strings.Builder
	b.WriteString(strings.Repeat("\n", top))
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		// lipgloss.Width ignores escape sequences, so styled lines
		// center on their visible width.
		pad := 0
		if n := width - lipgloss.Width(l); n > 0 {
			pad = n / 2
		}
		if l != "" {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(l)
		}
	}
	return b.String()
}
