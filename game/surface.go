package game

import "image/color"

// Align controls horizontal text anchoring
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface is the drawing target the game renders into. Coordinates are
// relative to the current transform, which Save/Restore push and pop.
// SetAlpha sets the global alpha for subsequent draws; it is restored with
// the rest of the state.
type Surface interface {
	Size() (w, h float64)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(theta float64)
	SetAlpha(a float64)

	StrokePath(pts []Vec, closed bool, width float64, clr color.Color)
	FillPath(pts []Vec, clr color.Color)
	StrokeArc(cx, cy, r, start, end, width float64, clr color.Color)
	FillArc(cx, cy, r, start, end float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	StrokeRect(x, y, w, h, width float64, clr color.Color)
	Text(s string, x, y float64, clr color.Color, align Align)
}

// Palette
var (
	colorWhite   = color.RGBA{255, 255, 255, 255}
	colorBlack   = color.RGBA{0, 0, 0, 255}
	colorGreen   = color.RGBA{0, 255, 0, 255}
	colorYellow  = color.RGBA{255, 255, 0, 255}
	colorRed     = color.RGBA{255, 0, 0, 255}
	colorCyan    = color.RGBA{0, 255, 255, 255}
	colorMagenta = color.RGBA{255, 0, 255, 255}
	colorOrange  = color.RGBA{255, 102, 0, 255}
	colorGrey    = color.RGBA{136, 136, 136, 255}
)

// rgba builds a straight-alpha colour from a 0..1 alpha
func rgba(r, g, b uint8, a float64) color.RGBA {
	a = clamp(a, 0, 1)
	// color.RGBA is premultiplied
	return color.RGBA{
		R: uint8(float64(r) * a),
		G: uint8(float64(g) * a),
		B: uint8(float64(b) * a),
		A: uint8(255 * a),
	}
}
