package game

// maxTrail is the number of recent positions a bullet remembers
const maxTrail = 5

// Bullet is a short-lived projectile fired from the ship
type Bullet struct {
	Pos   Vec
	Vel   Vec
	Life  float64
	Trail []Vec
}

// BulletPool owns all live bullets
type BulletPool struct {
	Items []*Bullet

	speed  float64
	life   float64
	width  float64
	height float64
}

// NewBulletPool creates an empty pool using the configured speed and lifetime
func NewBulletPool(cfg Config) *BulletPool {
	return &BulletPool{
		Items:  make([]*Bullet, 0, 64),
		speed:  cfg.BulletSpeed,
		life:   cfg.BulletLife,
		width:  cfg.FieldWidth,
		height: cfg.FieldHeight,
	}
}

// Fire launches a bullet from the ship's position along its heading,
// carrying the ship's velocity
func (p *BulletPool) Fire(s *Ship) *Bullet {
	return p.Spawn(s.Pos, s.Vel.Add(FromAngle(s.Angle, p.speed)))
}

// Spawn adds a bullet with an explicit velocity
func (p *BulletPool) Spawn(pos, vel Vec) *Bullet {
	b := &Bullet{
		Pos:   pos,
		Vel:   vel,
		Life:  p.life,
		Trail: make([]Vec, 0, maxTrail),
	}
	p.Items = append(p.Items, b)
	return b
}

// Update moves bullets, records trails and drops expired ones
func (p *BulletPool) Update(dt float64) {
	live := p.Items[:0]
	for _, b := range p.Items {
		next := b.Pos.Add(b.Vel.Scale(dt))
		if wrapped(next, p.width, p.height) {
			// A trail spanning the wrap would streak across the field
			next = Wrap(next, p.width, p.height)
			b.Trail = b.Trail[:0]
		}
		b.Pos = next

		b.Trail = append(b.Trail, b.Pos)
		if len(b.Trail) > maxTrail {
			b.Trail = append(b.Trail[:0], b.Trail[len(b.Trail)-maxTrail:]...)
		}

		b.Life -= dt
		if b.Life > 0 {
			live = append(live, b)
		}
	}
	clearTail(p.Items, len(live))
	p.Items = live
}

// Remove drops the given bullets
func (p *BulletPool) Remove(dead map[*Bullet]bool) {
	if len(dead) == 0 {
		return
	}
	live := p.Items[:0]
	for _, b := range p.Items {
		if !dead[b] {
			live = append(live, b)
		}
	}
	clearTail(p.Items, len(live))
	p.Items = live
}

// Len returns the number of live bullets
func (p *BulletPool) Len() int {
	return len(p.Items)
}

// Clear removes every bullet
func (p *BulletPool) Clear() {
	clearTail(p.Items, 0)
	p.Items = p.Items[:0]
}

// Draw renders bullets and their trails, plus ghost copies one field away
// in every direction so a bullet crossing an edge stays visible on both sides
func (p *BulletPool) Draw(s Surface) {
	offsets := [3]float64{-1, 0, 1}
	for _, b := range p.Items {
		for _, ox := range offsets {
			for _, oy := range offsets {
				shift := Vec{X: ox * p.width, Y: oy * p.height}
				if len(b.Trail) > 1 {
					trail := make([]Vec, len(b.Trail))
					for i, t := range b.Trail {
						trail[i] = t.Add(shift)
					}
					s.StrokePath(trail, false, 1, colorWhite)
				}
				s.FillRect(b.Pos.X-1+shift.X, b.Pos.Y-1+shift.Y, 2, 2, colorWhite)
			}
		}
	}
}

// clearTail nils out the slots past n so dropped entities can be collected
func clearTail[T any](items []*T, n int) {
	for i := n; i < len(items); i++ {
		items[i] = nil
	}
}
