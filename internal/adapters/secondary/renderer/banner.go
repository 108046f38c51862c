package renderer

import (
	"github.com/common-nighthawk/go-figure"

	"github.com/termdeck/termdeck/internal/domain/ports"
)

// BannerRenderer renders literal text as block-letter ASCII art using
// the standard figlet font.
type BannerRenderer struct{}

// NewBannerRenderer creates a banner renderer.
func NewBannerRenderer() *BannerRenderer {
	return &BannerRenderer{}
}

// Render converts the text to block letters and centers the art. The
// art moves as one block; centering lines independently would shear the
// letters apart.
func (r *BannerRenderer) Render(text string, frame ports.Frame) (string, error) {
	art := figure.NewFigure(text, "", true).String()

	w, h := contentSize(art)
	x := 0
	if n := frame.Width - w; n > 0 {
		x = n / 2
	}
	y := 0
	if n := frame.Height - h; n > 0 {
		y = n / 2
	}

	return placeAt(art, x, y), nil
}
