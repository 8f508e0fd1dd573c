package game

import "math/rand"

// Star is a faint background point drifting downward
type Star struct {
	Pos   Vec
	Speed float64
}

// Starfield is the cosmetic background layer
type Starfield struct {
	Stars  []Star
	height float64
}

// NewStarfield scatters n stars over the field
func NewStarfield(rng *rand.Rand, n int, width, height float64) *Starfield {
	stars := make([]Star, n)
	for i := range stars {
		stars[i] = Star{
			Pos:   Vec{X: rng.Float64() * width, Y: rng.Float64() * height},
			Speed: 6.25 + rng.Float64()*18.75,
		}
	}
	return &Starfield{Stars: stars, height: height}
}

// Update drifts stars down, recycling them at the top
func (f *Starfield) Update(dt float64) {
	for i := range f.Stars {
		f.Stars[i].Pos.Y += f.Stars[i].Speed * dt
		if f.Stars[i].Pos.Y > f.height {
			f.Stars[i].Pos.Y = 0
		}
	}
}

// Draw renders each star as a single pixel
func (f *Starfield) Draw(s Surface) {
	for _, st := range f.Stars {
		s.FillRect(st.Pos.X, st.Pos.Y, 1, 1, rgba(255, 255, 255, 0.6))
	}
}
