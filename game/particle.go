package game

import (
	"image/color"
	"math"
	"math/rand"
)

// Particle is a fading spark from an explosion
type Particle struct {
	Pos     Vec
	Vel     Vec
	Life    float64
	MaxLife float64
	Color   color.RGBA
}

// ParticlePool owns all live particles
type ParticlePool struct {
	Items []*Particle

	rng    *rand.Rand
	width  float64
	height float64
}

// NewParticlePool creates an empty pool for a width x height field
func NewParticlePool(rng *rand.Rand, width, height float64) *ParticlePool {
	return &ParticlePool{
		Items:  make([]*Particle, 0, 256),
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Burst emits n particles from at, flying outward in random directions
func (p *ParticlePool) Burst(at Vec, n int, clr color.RGBA) {
	for range n {
		angle := p.rng.Float64() * 2 * math.Pi
		speed := 31.25 + p.rng.Float64()*156.25
		life := 0.5 + p.rng.Float64()*0.5
		p.Items = append(p.Items, &Particle{
			Pos:     at,
			Vel:     FromAngle(angle, speed),
			Life:    life,
			MaxLife: life,
			Color:   clr,
		})
	}
}

// Update moves particles and drops expired ones
func (p *ParticlePool) Update(dt float64) {
	live := p.Items[:0]
	for _, pt := range p.Items {
		pt.Pos = Wrap(pt.Pos.Add(pt.Vel.Scale(dt)), p.width, p.height)
		pt.Life -= dt
		if pt.Life > 0 {
			live = append(live, pt)
		}
	}
	clearTail(p.Items, len(live))
	p.Items = live
}

// Len returns the number of live particles
func (p *ParticlePool) Len() int {
	return len(p.Items)
}

// Clear removes every particle
func (p *ParticlePool) Clear() {
	clearTail(p.Items, 0)
	p.Items = p.Items[:0]
}

// Draw renders each particle, fading with remaining life
func (p *ParticlePool) Draw(s Surface) {
	for _, pt := range p.Items {
		a := pt.Life / pt.MaxLife
		s.FillRect(pt.Pos.X-1, pt.Pos.Y-1, 2, 2, rgba(pt.Color.R, pt.Color.G, pt.Color.B, a))
	}
}
