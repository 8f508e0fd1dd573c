package client

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"astrophage/game"
)

// arcSegments is the number of line segments used for a full circle
const arcSegments = 32

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is a 1x1 white source for DrawTriangles
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type surfaceState struct {
	geo   ebiten.GeoM
	alpha float64
}

// Surface implements game.Surface on top of an ebiten image with a
// save/restore transform stack
type Surface struct {
	dst   *ebiten.Image
	face  font.Face
	cur   surfaceState
	stack []surfaceState

	vs []ebiten.Vertex
	is []uint16
}

// NewSurface creates a surface; call Begin each frame before drawing
func NewSurface() *Surface {
	return &Surface{
		face:  basicfont.Face7x13,
		cur:   surfaceState{alpha: 1},
		stack: make([]surfaceState, 0, 8),
	}
}

// Begin targets dst and resets the transform stack
func (s *Surface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.cur = surfaceState{alpha: 1}
	s.stack = s.stack[:0]
}

// Size implements game.Surface
func (s *Surface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Save implements game.Surface
func (s *Surface) Save() {
	s.stack = append(s.stack, s.cur)
}

// Restore implements game.Surface
func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.cur = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate implements game.Surface
func (s *Surface) Translate(x, y float64) {
	var local ebiten.GeoM
	local.Translate(x, y)
	s.prepend(local)
}

// Rotate implements game.Surface
func (s *Surface) Rotate(theta float64) {
	var local ebiten.GeoM
	local.Rotate(theta)
	s.prepend(local)
}

// prepend applies local before the current transform, the way canvas
// transforms compose
func (s *Surface) prepend(local ebiten.GeoM) {
	local.Concat(s.cur.geo)
	s.cur.geo = local
}

// SetAlpha implements game.Surface
func (s *Surface) SetAlpha(a float64) {
	s.cur.alpha = min(max(a, 0), 1)
}

func (s *Surface) apply(p game.Vec) (float32, float32) {
	x, y := s.cur.geo.Apply(p.X, p.Y)
	return float32(x), float32(y)
}

// withAlpha scales clr by the current global alpha
func (s *Surface) withAlpha(clr color.Color) color.Color {
	if s.cur.alpha >= 1 {
		return clr
	}
	r, g, b, a := clr.RGBA()
	k := s.cur.alpha
	return color.RGBA64{
		R: uint16(float64(r) * k),
		G: uint16(float64(g) * k),
		B: uint16(float64(b) * k),
		A: uint16(float64(a) * k),
	}
}

// StrokePath implements game.Surface
func (s *Surface) StrokePath(pts []game.Vec, closed bool, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	c := s.withAlpha(clr)
	n := len(pts) - 1
	if closed {
		n = len(pts)
	}
	for i := 0; i < n; i++ {
		x0, y0 := s.apply(pts[i])
		x1, y1 := s.apply(pts[(i+1)%len(pts)])
		vector.StrokeLine(s.dst, x0, y0, x1, y1, float32(width), c, true)
	}
}

// FillPath implements game.Surface
func (s *Surface) FillPath(pts []game.Vec, clr color.Color) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	x, y := s.apply(pts[0])
	path.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = s.apply(p)
		path.LineTo(x, y)
	}
	path.Close()

	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	r, g, b, a := straightRGBA(clr)
	a *= float32(s.cur.alpha)
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}

	opts := &ebiten.DrawTrianglesOptions{}
	opts.AntiAlias = true
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, opts)
}

// StrokeArc implements game.Surface
func (s *Surface) StrokeArc(cx, cy, r, start, end, width float64, clr color.Color) {
	s.StrokePath(arcPoints(cx, cy, r, start, end), false, width, clr)
}

// FillArc implements game.Surface
func (s *Surface) FillArc(cx, cy, r, start, end float64, clr color.Color) {
	s.FillPath(arcPoints(cx, cy, r, start, end), clr)
}

// FillRect implements game.Surface
func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	s.FillPath(rectPoints(x, y, w, h), clr)
}

// StrokeRect implements game.Surface
func (s *Surface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	s.StrokePath(rectPoints(x, y, w, h), true, width, clr)
}

// Text implements game.Surface. y is the vertical centre of the line.
func (s *Surface) Text(str string, x, y float64, clr color.Color, align game.Align) {
	if str == "" {
		return
	}
	bounds := text.BoundString(s.face, str)
	switch align {
	case game.AlignCenter:
		x -= float64(bounds.Dx()) / 2
	case game.AlignRight:
		x -= float64(bounds.Dx())
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y+float64(s.face.Metrics().Ascent.Ceil())/2-1)
	op.GeoM.Concat(s.cur.geo)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(s.cur.alpha))
	text.DrawWithOptions(s.dst, str, s.face, op)
}

// straightRGBA converts a premultiplied colour to straight-alpha floats
func straightRGBA(clr color.Color) (float32, float32, float32, float32) {
	r, g, b, a := clr.RGBA()
	if a == 0 {
		return 0, 0, 0, 0
	}
	fa := float32(a)
	return float32(r) / fa, float32(g) / fa, float32(b) / fa, fa / 0xffff
}

func rectPoints(x, y, w, h float64) []game.Vec {
	return []game.Vec{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}
}

func arcPoints(cx, cy, r, start, end float64) []game.Vec {
	n := int(float64(arcSegments) * math.Abs(end-start) / (2 * math.Pi))
	n = max(n, 4)
	pts := make([]game.Vec, 0, n+1)
	step := (end - start) / float64(n)
	for i := 0; i <= n; i++ {
		pts = append(pts, game.FromAngle(start+step*float64(i), r).Add(game.Vec{X: cx, Y: cy}))
	}
	return pts
}
