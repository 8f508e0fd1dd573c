package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name string
		in   Vec
		want Vec
	}{
		{"inside", Vec{100, 200}, Vec{100, 200}},
		{"past right", Vec{800, 10}, Vec{0, 10}},
		{"past bottom", Vec{10, 612}, Vec{10, 0}},
		{"past left", Vec{-5, 10}, Vec{795, 10}},
		{"past top", Vec{10, -1}, Vec{10, 599}},
		{"far negative", Vec{-1605, -1210}, Vec{795, 590}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.in, 800, 600)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestWrapTinyNegativeStaysInRange(t *testing.T) {
	got := Wrap(Vec{-1e-14, 0}, 800, 600)
	assert.GreaterOrEqual(t, got.X, 0.0)
	assert.Less(t, got.X, 800.0)
}

func TestPolysCollide(t *testing.T) {
	square := []Vec{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	shifted := func(dx, dy float64) []Vec {
		out := make([]Vec, len(square))
		for i, p := range square {
			out[i] = Vec{p.X + dx, p.Y + dy}
		}
		return out
	}

	assert.True(t, PolysCollide(square, shifted(5, 5)), "overlapping squares")
	assert.False(t, PolysCollide(square, shifted(20, 0)), "separated squares")
	assert.True(t, PolysCollide(square, shifted(10, 0)), "touching edges count")

	assert.True(t, PolysCollide(square, []Vec{{5, 5}}), "point inside")
	assert.True(t, PolysCollide([]Vec{{5, 5}}, square), "argument order does not matter")
	assert.False(t, PolysCollide(square, []Vec{{15, 5}}), "point outside")
	assert.True(t, PolysCollide(square, []Vec{{10, 5}}), "point on boundary")

	assert.True(t, PolysCollide([]Vec{{1, 1}}, []Vec{{1, 1}}))
	assert.False(t, PolysCollide([]Vec{{1, 1}}, []Vec{{1, 2}}))
	assert.False(t, PolysCollide(nil, square))
}

func TestShipPolygon(t *testing.T) {
	hull := ShipPolygon(Vec{400, 480}, -math.Pi/2)
	assert.Len(t, hull, 3)
	// Nose points up the screen
	assert.InDelta(t, 400, hull[0].X, 1e-9)
	assert.InDelta(t, 465, hull[0].Y, 1e-9)
	// Rear vertices sit below the centre
	assert.Greater(t, hull[1].Y, 480.0)
	assert.Greater(t, hull[2].Y, 480.0)
}
