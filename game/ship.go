package game

import (
	"math"
)

// Ship is the player's vessel. There is exactly one per world; destruction
// only clears Alive until the next respawn or mission reset.
type Ship struct {
	Pos   Vec
	Vel   Vec
	Angle float64
	Fuel  float64
	Alive bool

	// Thrusting is true when thrust was applied on the last update
	Thrusting bool

	// SinceRespawn drives the invulnerability ring animation
	SinceRespawn float64

	invulnTimer float64
	invulnHeld  bool
}

// NewShip creates a ship at the configured spawn pose with a full tank
func NewShip(cfg Config) *Ship {
	s := &Ship{}
	s.ResetPose(cfg)
	s.Fuel = cfg.MaxFuel
	return s
}

// ResetPose moves the ship to the spawn pose and revives it. Fuel is untouched.
func (s *Ship) ResetPose(cfg Config) {
	s.Pos = cfg.SpawnPoint()
	s.Vel = Vec{}
	s.Angle = cfg.SpawnAngle
	s.Alive = true
	s.Thrusting = false
	s.SinceRespawn = 0
}

// Invulnerable reports whether asteroid hits are currently ignored
func (s *Ship) Invulnerable() bool {
	return s.invulnHeld || s.invulnTimer > 0
}

// GrantInvulnerability makes the ship invulnerable for d seconds
func (s *Ship) GrantInvulnerability(d float64) {
	s.invulnTimer = d
	s.SinceRespawn = 0
}

// HoldInvulnerability keeps the ship invulnerable until released
func (s *Ship) HoldInvulnerability() {
	s.invulnHeld = true
	s.SinceRespawn = 0
}

// ReleaseInvulnerability ends both held and timed invulnerability
func (s *Ship) ReleaseInvulnerability() {
	s.invulnHeld = false
	s.invulnTimer = 0
}

// Refuel adds amount to the tank, capped at maxFuel
func (s *Ship) Refuel(amount, maxFuel float64) {
	s.Fuel = math.Min(s.Fuel+amount, maxFuel)
}

// Polygon returns the hull in world space
func (s *Ship) Polygon() []Vec {
	return ShipPolygon(s.Pos, s.Angle)
}

// Update applies steering, thrust and drag, then integrates and wraps
func (s *Ship) Update(dt float64, in Input, cfg Config) {
	s.Thrusting = false
	if !s.Alive {
		return
	}

	s.SinceRespawn += dt
	if s.invulnTimer > 0 {
		s.invulnTimer = math.Max(0, s.invulnTimer-dt)
	}

	if in.Pressed(KeyLeft) {
		s.Angle -= cfg.TurnSpeed * dt
	}
	if in.Pressed(KeyRight) {
		s.Angle += cfg.TurnSpeed * dt
	}

	if in.Pressed(KeyThrust) && s.Fuel > 0 {
		s.Vel = s.Vel.Add(FromAngle(s.Angle, cfg.ThrustAccel*dt))
		s.Fuel = math.Max(0, s.Fuel-cfg.FuelBurnRate*dt)
		s.Thrusting = true
	}

	s.Vel = s.Vel.Scale(math.Max(0, 1-cfg.Drag*dt))
	s.Pos = Wrap(s.Pos.Add(s.Vel.Scale(dt)), cfg.FieldWidth, cfg.FieldHeight)
}

// Draw renders the hull, exhaust and invulnerability ring
func (s *Ship) Draw(sf Surface) {
	if !s.Alive {
		return
	}

	sf.Save()
	defer sf.Restore()
	sf.Translate(s.Pos.X, s.Pos.Y)

	if s.Invulnerable() {
		// Expanding ring restarts every half second
		phase := math.Mod(s.SinceRespawn, 0.5) / 0.5
		sf.StrokeArc(0, 0, 18+phase*14, 0, 2*math.Pi, 2, rgba(0, 200, 255, 0.8*(1-phase)))
		glow := 0.25 + 0.15*math.Sin(s.SinceRespawn*12)
		sf.FillArc(0, 0, 20, 0, 2*math.Pi, rgba(0, 150, 255, glow))
	}

	sf.Rotate(s.Angle)
	hull := ShipPolygon(Vec{}, 0)
	sf.StrokePath(hull, true, 1.5, colorWhite)

	if s.Thrusting {
		flicker := 4 * math.Abs(math.Sin(s.SinceRespawn*40))
		flame := []Vec{{X: -8, Y: -3}, {X: -14 - flicker, Y: 0}, {X: -8, Y: 3}}
		sf.StrokePath(flame, false, 1, colorOrange)
	}
}
