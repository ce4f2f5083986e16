package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need text v1
	"golang.org/x/image/font"
)

// drawCentered draws s with its baseline at y, horizontally centred on cx
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, c color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int(cx)-w/2, int(y), c)
}

func drawText(screen *ebiten.Image, s string, face font.Face, x, y float64, c color.Color) {
	text.Draw(screen, s, face, int(x), int(y), c)
}

// drawRight draws s so that it ends at x
func drawRight(screen *ebiten.Image, s string, face font.Face, x, y float64, c color.Color) {
	w := text.BoundString(face, s).Dx()
	text.Draw(screen, s, face, int(x)-w, int(y), c)
}

// withAlpha scales the colour's alpha by a in [0,1]
func withAlpha(c color.RGBA, a float64) color.RGBA {
	a = min(1, max(0, a))
	// premultiplied: scale every channel
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
