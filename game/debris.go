package game

import (
	"math"
	"math/rand"
)

// DebrisKind selects the shape of a wreckage piece
type DebrisKind int

const (
	DebrisNose DebrisKind = iota
	DebrisWing
	DebrisShard
)

// debrisPieces is the number of pieces a destroyed ship breaks into
const debrisPieces = 8

// debrisMaxLife is the longest a piece can live, used for fading
const debrisMaxLife = 140.0 / 60

// Debris is a piece of a destroyed ship
type Debris struct {
	Pos      Vec
	Vel      Vec
	Rotation float64
	Spin     float64
	Life     float64
	Size     float64
	Kind     DebrisKind
}

// DebrisPool owns all live wreckage
type DebrisPool struct {
	Items []*Debris

	rng    *rand.Rand
	width  float64
	height float64
}

// NewDebrisPool creates an empty pool for a width x height field
func NewDebrisPool(rng *rand.Rand, width, height float64) *DebrisPool {
	return &DebrisPool{
		Items:  make([]*Debris, 0, 32),
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Burst breaks a ship at pos into pieces fanned evenly around it
func (p *DebrisPool) Burst(pos Vec) {
	for i := range debrisPieces {
		angle := 2*math.Pi*float64(i)/debrisPieces + (p.rng.Float64()-0.5)*0.5
		speed := 25 + p.rng.Float64()*50
		p.Items = append(p.Items, &Debris{
			Pos:      pos,
			Vel:      FromAngle(angle, speed),
			Rotation: p.rng.Float64() * 2 * math.Pi,
			Spin:     (p.rng.Float64() - 0.5) * 18.75,
			Life:     (80 + p.rng.Float64()*60) / 60,
			Size:     2 + p.rng.Float64()*3,
			Kind:     DebrisKind(i % 3),
		})
	}
}

// Update moves and spins debris, dropping expired pieces
func (p *DebrisPool) Update(dt float64) {
	live := p.Items[:0]
	for _, d := range p.Items {
		d.Pos = Wrap(d.Pos.Add(d.Vel.Scale(dt)), p.width, p.height)
		d.Rotation += d.Spin * dt
		d.Life -= dt
		if d.Life > 0 {
			live = append(live, d)
		}
	}
	clearTail(p.Items, len(live))
	p.Items = live
}

// Len returns the number of live pieces
func (p *DebrisPool) Len() int {
	return len(p.Items)
}

// Clear removes every piece
func (p *DebrisPool) Clear() {
	clearTail(p.Items, 0)
	p.Items = p.Items[:0]
}

// Draw renders each piece by kind
func (p *DebrisPool) Draw(s Surface) {
	for _, d := range p.Items {
		alpha := math.Max(0, d.Life/debrisMaxLife)
		sz := d.Size

		s.Save()
		s.Translate(d.Pos.X, d.Pos.Y)
		s.Rotate(d.Rotation)
		s.SetAlpha(alpha)

		switch d.Kind {
		case DebrisNose:
			s.StrokePath([]Vec{{sz * 2, 0}, {-sz, -sz}, {-sz * 0.5, 0}, {-sz, sz}}, true, 1.5, colorYellow)
		case DebrisWing:
			s.StrokePath([]Vec{{0, -sz}, {sz * 1.5, 0}, {0, sz}, {-sz, sz * 0.5}}, true, 1.5, colorCyan)
		case DebrisShard:
			s.FillArc(0, 0, sz, 0, 2*math.Pi, rgba(255, 100, 0, 1))
			s.StrokeArc(0, 0, sz, 0, 2*math.Pi, 1, colorOrange)
		}

		s.Restore()
	}
}
