package game

import (
	"math"
	"math/rand"
)

// CollectibleKind distinguishes the two pickup variants
type CollectibleKind int

const (
	KindCloud CollectibleKind = iota
	KindCanister
)

// String returns the name used in narration events
func (k CollectibleKind) String() string {
	switch k {
	case KindCloud:
		return "cloud"
	case KindCanister:
		return "canister"
	default:
		return "unknown"
	}
}

// Collectible is a pickup that refuels the ship on first contact.
// Collected is terminal; collected pickups stay in the pool and draw faded.
type Collectible struct {
	ID        int
	Kind      CollectibleKind
	Pos       Vec
	Vel       Vec
	Radius    float64
	Collected bool
	Rotation  float64
	Spin      float64
	SpinAxis  float64
	Age       float64

	// entered is set once the pickup has drifted onto the field from above
	entered bool
}

// CollectiblePool owns one kind of pickup
type CollectiblePool struct {
	Kind  CollectibleKind
	Items []*Collectible

	rng    *rand.Rand
	width  float64
	height float64
	nextID int
}

// NewCollectiblePool creates an empty pool of the given kind
func NewCollectiblePool(kind CollectibleKind, rng *rand.Rand, width, height float64) *CollectiblePool {
	return &CollectiblePool{
		Kind:   kind,
		Items:  make([]*Collectible, 0, 8),
		rng:    rng,
		width:  width,
		height: height,
	}
}

// Spawn adds a pickup at pos with the drift of its kind
func (p *CollectiblePool) Spawn(pos Vec) *Collectible {
	c := &Collectible{
		ID:       p.nextID,
		Kind:     p.Kind,
		Pos:      pos,
		Rotation: 0,
		SpinAxis: p.rng.Float64() * 2 * math.Pi,
		entered:  pos.Y >= 0,
	}
	p.nextID++

	switch p.Kind {
	case KindCloud:
		c.Radius = 22
		c.Vel = Vec{X: (p.rng.Float64() - 0.5) * 3, Y: 9}
		c.Spin = (p.rng.Float64() - 0.5) * 0.6
	case KindCanister:
		c.Radius = 12
		c.Vel = Vec{X: (p.rng.Float64() - 0.5) * 7.5, Y: 15.6}
		c.Spin = 1.25 + p.rng.Float64()*1.875
	}

	p.Items = append(p.Items, c)
	return c
}

// Update drifts and spins every pickup. Vertical wrap only applies once a
// pickup dropped in from above has crossed the top edge.
func (p *CollectiblePool) Update(dt float64) {
	for _, c := range p.Items {
		c.Pos = c.Pos.Add(c.Vel.Scale(dt))
		c.Rotation += c.Spin * dt
		c.Age += dt

		c.Pos.X = wrapAxis(c.Pos.X, p.width)
		if !c.entered {
			if c.Pos.Y >= 0 {
				c.entered = true
			}
			continue
		}
		c.Pos.Y = wrapAxis(c.Pos.Y, p.height)
	}
}

// Collect marks every uncollected pickup within reach of at as collected
// and returns them
func (p *CollectiblePool) Collect(at Vec, reach float64) []*Collectible {
	var got []*Collectible
	for _, c := range p.Items {
		if c.Collected {
			continue
		}
		if at.Dist(c.Pos) < c.Radius+reach {
			c.Collected = true
			got = append(got, c)
		}
	}
	return got
}

// Len returns the number of pickups spawned since the last Clear
func (p *CollectiblePool) Len() int {
	return len(p.Items)
}

// CollectedCount returns how many pickups have been collected
func (p *CollectiblePool) CollectedCount() int {
	n := 0
	for _, c := range p.Items {
		if c.Collected {
			n++
		}
	}
	return n
}

// Uncollected returns how many pickups are still available
func (p *CollectiblePool) Uncollected() int {
	return len(p.Items) - p.CollectedCount()
}

// Clear removes every pickup and restarts ids
func (p *CollectiblePool) Clear() {
	clearTail(p.Items, 0)
	p.Items = p.Items[:0]
	p.nextID = 0
}

// Draw renders each pickup by kind
func (p *CollectiblePool) Draw(s Surface) {
	for _, c := range p.Items {
		s.Save()
		s.Translate(c.Pos.X, c.Pos.Y)
		if c.Collected {
			s.SetAlpha(0.2)
		}
		switch c.Kind {
		case KindCloud:
			drawCloud(s, c)
		case KindCanister:
			drawCanister(s, c)
		}
		s.Restore()
	}
}

// drawCloud renders a shimmering cluster of astrophage
func drawCloud(s Surface, c *Collectible) {
	pulse := math.Sin(c.Age*2) * 0.1
	s.FillArc(0, 0, c.Radius*(1+pulse), 0, 2*math.Pi, rgba(255, 140, 40, 0.25))

	s.Rotate(c.Rotation)
	for i := range 6 {
		a := float64(i) * math.Pi / 3
		off := FromAngle(a, c.Radius*0.5)
		s.FillArc(off.X, off.Y, c.Radius*0.35, 0, 2*math.Pi, rgba(255, 190, 60, 0.5))
	}
	s.FillArc(0, 0, c.Radius*0.4, 0, 2*math.Pi, rgba(255, 230, 120, 0.8))
}

// drawCanister renders a pulsing, spinning cylinder
func drawCanister(s Surface, c *Collectible) {
	fade := 1.0
	if c.Collected {
		fade = 0.3
	}
	pulse := math.Sin(c.Age*62.5*0.05)*0.15 + 1
	r := c.Radius * pulse

	s.FillArc(0, 0, r+8, 0, 2*math.Pi, rgba(200, 100, 255, 0.3*fade))

	s.Save()
	s.Rotate(c.Rotation + c.SpinAxis)
	s.FillRect(-8, -r, 16, r*2, rgba(180, 100, 255, 0.8*fade))
	s.FillPath(ellipsePoints(0, -r, 8, 4, 16), rgba(220, 150, 255, 0.9*fade))
	s.FillPath(ellipsePoints(0, r, 8, 4, 16), rgba(220, 150, 255, 0.9*fade))
	s.StrokePath([]Vec{{-6, -r * 0.5}, {6, -r * 0.5}}, false, 2, rgba(255, 200, 255, 0.7*fade))
	s.Restore()

	if !c.Collected {
		s.Text("CANISTER", 0, -r-15, colorMagenta, AlignCenter)
	}
}

// CanisterSpawner drops canisters during the canister mission: the first
// immediately, then one every interval or as soon as none are uncollected,
// up to max in total
type CanisterSpawner struct {
	Max      int
	Interval float64
	Origin   Vec

	active    bool
	untilNext float64
}

// NewCanisterSpawner creates an idle spawner
func NewCanisterSpawner(cfg Config) *CanisterSpawner {
	return &CanisterSpawner{
		Max:      cfg.CanisterTarget,
		Interval: cfg.CanisterInterval,
		Origin:   Vec{X: cfg.FieldWidth / 2, Y: -30},
	}
}

// Start clears the pool and drops the first canister
func (c *CanisterSpawner) Start(pool *CollectiblePool) {
	pool.Clear()
	c.active = true
	if c.Max > 0 {
		c.drop(pool)
	}
}

// Stop halts further drops
func (c *CanisterSpawner) Stop() {
	c.active = false
}

// Active reports whether the spawner is running
func (c *CanisterSpawner) Active() bool {
	return c.active
}

// Update drops the next canister when due
func (c *CanisterSpawner) Update(dt float64, pool *CollectiblePool) {
	if !c.active {
		return
	}
	c.untilNext -= dt
	if pool.Len() >= c.Max {
		return
	}
	if pool.Uncollected() == 0 || c.untilNext <= 0 {
		c.drop(pool)
	}
}

func (c *CanisterSpawner) drop(pool *CollectiblePool) {
	pool.Spawn(c.Origin)
	c.untilNext = c.Interval
}
