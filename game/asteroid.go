package game

import (
	"math"
	"math/rand"
)

// Asteroid is a drifting rock. Offsets are the polygon vertices relative to
// Pos; Rotation only affects drawing.
type Asteroid struct {
	Pos      Vec
	Vel      Vec
	Size     float64
	Offsets  []Vec
	Rotation float64
	Spin     float64
}

// WorldVerts returns the collision polygon. Rotation is not applied, so hits
// are tested against the rock as it was spawned.
func (a *Asteroid) WorldVerts() []Vec {
	verts := make([]Vec, len(a.Offsets))
	for i, o := range a.Offsets {
		verts[i] = a.Pos.Add(o)
	}
	return verts
}

// BoundingRadius covers every vertex the generator can produce
func (a *Asteroid) BoundingRadius() float64 {
	return a.Size * 1.3
}

// AsteroidPool owns all live asteroids
type AsteroidPool struct {
	Items []*Asteroid

	rng    *rand.Rand
	width  float64
	height float64
}

// NewAsteroidPool creates an empty pool for a width x height field
func NewAsteroidPool(rng *rand.Rand, width, height float64) *AsteroidPool {
	return &AsteroidPool{
		Items:  make([]*Asteroid, 0, 32),
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Create builds an asteroid with a jagged outline and a random drift
// without adding it to the pool
func (p *AsteroidPool) Create(pos Vec, size float64) *Asteroid {
	n := 8 + p.rng.Intn(5)
	offsets := make([]Vec, n)
	for i := range offsets {
		angle := 2 * math.Pi * float64(i) / float64(n)
		r := size * (0.7 + p.rng.Float64()*0.6)
		offsets[i] = FromAngle(angle, r)
	}

	return &Asteroid{
		Pos:      pos,
		Vel:      Vec{X: (p.rng.Float64() - 0.5) * 62.5, Y: (p.rng.Float64() - 0.5) * 62.5},
		Size:     size,
		Offsets:  offsets,
		Rotation: p.rng.Float64() * 2 * math.Pi,
		Spin:     (p.rng.Float64() - 0.5) * 1.25,
	}
}

// Spawn creates an asteroid and adds it to the pool
func (p *AsteroidPool) Spawn(pos Vec, size float64) *Asteroid {
	a := p.Create(pos, size)
	p.Items = append(p.Items, a)
	return a
}

// Add appends existing asteroids
func (p *AsteroidPool) Add(a ...*Asteroid) {
	p.Items = append(p.Items, a...)
}

// SpawnField scatters n asteroids of size 30-50 across the field, keeping
// clear of the given point
func (p *AsteroidPool) SpawnField(n int, avoid Vec, clearance float64) {
	for range n {
		var pos Vec
		for attempt := 0; attempt < 20; attempt++ {
			pos = Vec{X: p.rng.Float64() * p.width, Y: p.rng.Float64() * p.height}
			if pos.Dist(avoid) >= clearance {
				break
			}
		}
		p.Spawn(pos, 30+p.rng.Float64()*20)
	}
}

// Split returns 2-3 half-size fragments of parent, or nil if parent is too
// small to break. Fragments inherit the parent velocity plus a random kick.
func (p *AsteroidPool) Split(parent *Asteroid, minSize float64) []*Asteroid {
	if parent.Size <= minSize {
		return nil
	}

	n := 2 + p.rng.Intn(2)
	frags := make([]*Asteroid, 0, n)
	for range n {
		frag := p.Create(parent.Pos, parent.Size/2)
		angle := p.rng.Float64() * 2 * math.Pi
		speed := 6.25 + p.rng.Float64()*18.75
		frag.Vel = parent.Vel.Add(FromAngle(angle, speed))
		frags = append(frags, frag)
	}
	return frags
}

// Update advances every asteroid and wraps it into the field
func (p *AsteroidPool) Update(dt float64) {
	for _, a := range p.Items {
		a.Pos = Wrap(a.Pos.Add(a.Vel.Scale(dt)), p.width, p.height)
		a.Rotation += a.Spin * dt
	}
}

// Len returns the number of live asteroids
func (p *AsteroidPool) Len() int {
	return len(p.Items)
}

// Clear removes every asteroid
func (p *AsteroidPool) Clear() {
	p.Items = p.Items[:0]
}

// Draw renders each asteroid outline
func (p *AsteroidPool) Draw(s Surface) {
	for _, a := range p.Items {
		s.Save()
		s.Translate(a.Pos.X, a.Pos.Y)
		s.Rotate(a.Rotation)
		s.StrokePath(a.Offsets, true, 1.5, colorGrey)
		s.Restore()
	}
}
