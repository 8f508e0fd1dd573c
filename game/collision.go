package game

import "github.com/rs/zerolog"

const (
	// bulletHitParticles is the burst size where a bullet strikes a rock
	bulletHitParticles = 10

	// shipHitParticles is the burst size when the ship is destroyed
	shipHitParticles = 30

	// broadPhaseFactor scales asteroid size into a bounding radius
	broadPhaseFactor = 1.3
)

// CollisionReport summarises what happened in one Resolve pass
type CollisionReport struct {
	AsteroidsDestroyed int
	ShipDestroyed      bool
	Collected          []*Collectible
}

// CollisionSystem applies bullet, ship and pickup contacts to a world
type CollisionSystem struct {
	world    *World
	narrator Narrator
	logger   zerolog.Logger
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World, narrator Narrator) *CollisionSystem {
	return &CollisionSystem{
		world:    world,
		narrator: narrator,
		logger:   world.Config.Logger.With().Str("component", "collision").Logger(),
	}
}

// Resolve runs all collision passes once
func (c *CollisionSystem) Resolve() CollisionReport {
	var report CollisionReport
	report.AsteroidsDestroyed = c.bulletsVsAsteroids()
	report.ShipDestroyed = c.shipVsAsteroids()
	report.Collected = c.shipVsCollectibles()
	return report
}

// bulletsVsAsteroids consumes each bullet on at most one asteroid. Fragments
// join the pool after the pass so they are not hit in the frame they spawn.
func (c *CollisionSystem) bulletsVsAsteroids() int {
	w := c.world
	if w.Bullets.Len() == 0 || w.Asteroids.Len() == 0 {
		return 0
	}

	spent := make(map[*Bullet]bool)
	var fragments []*Asteroid
	destroyed := 0

	survivors := w.Asteroids.Items[:0]
	for _, a := range w.Asteroids.Items {
		hit := false
		verts := a.WorldVerts()
		reach := a.BoundingRadius()
		for _, b := range w.Bullets.Items {
			if spent[b] || b.Pos.Dist(a.Pos) > reach {
				continue
			}
			if !PolysCollide(verts, []Vec{b.Pos}) {
				continue
			}
			spent[b] = true
			hit = true
			w.Particles.Burst(b.Pos, bulletHitParticles, colorWhite)
			fragments = append(fragments, w.Asteroids.Split(a, w.Config.MinSplitSize)...)
			break
		}
		if hit {
			destroyed++
			continue
		}
		survivors = append(survivors, a)
	}
	clearTail(w.Asteroids.Items, len(survivors))
	w.Asteroids.Items = survivors
	w.Asteroids.Add(fragments...)
	w.Bullets.Remove(spent)

	w.Destroyed += destroyed
	if destroyed > 0 {
		c.logger.Debug().Int("destroyed", destroyed).Int("fragments", len(fragments)).Msg("asteroids hit")
	}
	return destroyed
}

// shipVsAsteroids destroys a vulnerable ship touching any asteroid
func (c *CollisionSystem) shipVsAsteroids() bool {
	w := c.world
	ship := w.Ship
	if !ship.Alive || ship.Invulnerable() {
		return false
	}

	hull := ship.Polygon()
	for _, a := range w.Asteroids.Items {
		if ship.Pos.Dist(a.Pos) >= a.Size*broadPhaseFactor+w.Config.ShipRadius {
			continue
		}
		if !PolysCollide(a.WorldVerts(), hull) {
			continue
		}

		w.Debris.Burst(ship.Pos)
		w.Particles.Burst(ship.Pos, shipHitParticles, colorOrange)
		ship.Alive = false
		ship.Thrusting = false
		c.logger.Info().Float64("x", ship.Pos.X).Float64("y", ship.Pos.Y).Msg("ship destroyed")
		if c.narrator != nil {
			c.narrator.TriggerEvent(EventShipDestroyed, nil)
		}
		return true
	}
	return false
}

// shipVsCollectibles collects every pickup within reach of a live ship
func (c *CollisionSystem) shipVsCollectibles() []*Collectible {
	w := c.world
	if !w.Ship.Alive {
		return nil
	}

	var all []*Collectible
	for _, pool := range w.Collectibles() {
		got := pool.Collect(w.Ship.Pos, w.Config.PickupRadius)
		if len(got) == 0 {
			continue
		}
		total := w.Config.CloudTarget
		event := EventCloudCollected
		if pool.Kind == KindCanister {
			total = w.Config.CanisterTarget
			event = EventCanisterCollected
		}
		for range got {
			w.Ship.Refuel(w.Config.RefuelAmount, w.Config.MaxFuel)
		}
		count := pool.CollectedCount()
		c.logger.Debug().Stringer("kind", pool.Kind).Int("count", count).Msg("collected")
		if c.narrator != nil {
			c.narrator.TriggerEvent(event, map[string]any{"count": count, "total": total})
		}
		all = append(all, got...)
	}
	return all
}
