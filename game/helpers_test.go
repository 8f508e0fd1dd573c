package game

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingSurface counts draw calls and checks Save/Restore balance
type recordingSurface struct {
	w, h  float64
	depth int
	calls map[string]int
	texts []string
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{w: 800, h: 600, calls: map[string]int{}}
}

func (r *recordingSurface) Size() (float64, float64) { return r.w, r.h }
func (r *recordingSurface) Save()                    { r.depth++; r.calls["save"]++ }
func (r *recordingSurface) Restore()                 { r.depth--; r.calls["restore"]++ }
func (r *recordingSurface) Translate(x, y float64)   { r.calls["translate"]++ }
func (r *recordingSurface) Rotate(theta float64)     { r.calls["rotate"]++ }
func (r *recordingSurface) SetAlpha(a float64)       { r.calls["alpha"]++ }

func (r *recordingSurface) StrokePath(pts []Vec, closed bool, width float64, clr color.Color) {
	r.calls["strokePath"]++
}

func (r *recordingSurface) FillPath(pts []Vec, clr color.Color) { r.calls["fillPath"]++ }

func (r *recordingSurface) StrokeArc(cx, cy, rad, start, end, width float64, clr color.Color) {
	r.calls["strokeArc"]++
}

func (r *recordingSurface) FillArc(cx, cy, rad, start, end float64, clr color.Color) {
	r.calls["fillArc"]++
}

func (r *recordingSurface) FillRect(x, y, w, h float64, clr color.Color) { r.calls["fillRect"]++ }

func (r *recordingSurface) StrokeRect(x, y, w, h, width float64, clr color.Color) {
	r.calls["strokeRect"]++
}

func (r *recordingSurface) Text(s string, x, y float64, clr color.Color, align Align) {
	r.calls["text"]++
	r.texts = append(r.texts, s)
}

// fakeNarrator records events and lets tests control blocking
type fakeNarrator struct {
	events     []string
	payloads   []map[string]any
	messages   []string
	bottom     []string
	displaying bool
	updates    int
}

func (f *fakeNarrator) TriggerEvent(name string, payload map[string]any) {
	f.events = append(f.events, name)
	f.payloads = append(f.payloads, payload)
}
func (f *fakeNarrator) QueueMessage(id, text string, durationFrames int) {
	f.messages = append(f.messages, id)
}
func (f *fakeNarrator) QueueBottomMessage(text string) { f.bottom = append(f.bottom, text) }
func (f *fakeNarrator) IsDisplayingMessage() bool      { return f.displaying }
func (f *fakeNarrator) Update()                        { f.updates++ }
func (f *fakeNarrator) Draw(s Surface, w, h float64)   {}

func (f *fakeNarrator) count(name string) int {
	n := 0
	for _, e := range f.events {
		if e == name {
			n++
		}
	}
	return n
}

// newTestWorld returns an empty world with a fixed seed
func newTestWorld(t *testing.T) *World {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 42
	w := NewWorld(cfg)
	require.NotNil(t, w)
	return w
}

func inField(t *testing.T, p Vec, w, h float64) {
	t.Helper()
	require.GreaterOrEqual(t, p.X, 0.0)
	require.Less(t, p.X, w)
	require.GreaterOrEqual(t, p.Y, 0.0)
	require.Less(t, p.Y, h)
}
