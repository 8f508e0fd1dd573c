package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolsWrapAfterUpdate(t *testing.T) {
	w := newTestWorld(t)
	fw, fh := w.Config.FieldWidth, w.Config.FieldHeight

	a := w.Asteroids.Spawn(Vec{795, 595}, 30)
	a.Vel = Vec{100, 100}
	b := w.Bullets.Spawn(Vec{2, 2}, Vec{-100, -100})
	w.Particles.Burst(Vec{799, 1}, 20, colorWhite)
	w.Debris.Burst(Vec{1, 599})
	c := w.Clouds.Spawn(Vec{799, 599})
	c.Vel = Vec{50, 50}

	for range 10 {
		w.Asteroids.Update(0.1)
		w.Bullets.Update(0.1)
		w.Particles.Update(0.1)
		w.Debris.Update(0.1)
		w.Clouds.Update(0.1)
	}

	inField(t, a.Pos, fw, fh)
	inField(t, b.Pos, fw, fh)
	for _, p := range w.Particles.Items {
		inField(t, p.Pos, fw, fh)
	}
	for _, d := range w.Debris.Items {
		inField(t, d.Pos, fw, fh)
	}
	inField(t, c.Pos, fw, fh)
}

func TestShipWrapsAndBurnsFuel(t *testing.T) {
	cfg := DefaultConfig()
	s := NewShip(cfg)
	s.Pos = Vec{400, 1}
	in := NewKeyState()
	in.Press(KeyThrust)

	for range 30 {
		s.Update(0.1, in, cfg)
		inField(t, s.Pos, cfg.FieldWidth, cfg.FieldHeight)
	}
	assert.Less(t, s.Fuel, cfg.MaxFuel)
	assert.True(t, s.Thrusting)
}

func TestShipNoThrustWithoutFuel(t *testing.T) {
	cfg := DefaultConfig()
	s := NewShip(cfg)
	s.Fuel = 0
	in := NewKeyState()
	in.Press(KeyThrust)

	s.Update(0.1, in, cfg)
	assert.False(t, s.Thrusting)
	assert.Equal(t, Vec{}, s.Vel)
	assert.Equal(t, 0.0, s.Fuel)
}

func TestBulletTrailBounded(t *testing.T) {
	w := newTestWorld(t)
	b := w.Bullets.Spawn(Vec{100, 100}, Vec{10, 0})

	for range 20 {
		w.Bullets.Update(0.05)
		require.LessOrEqual(t, len(b.Trail), maxTrail)
	}
	require.Len(t, b.Trail, maxTrail)
	// Oldest evicted first: last entry is the current position
	assert.Equal(t, b.Pos, b.Trail[len(b.Trail)-1])
	assert.Less(t, b.Trail[0].X, b.Trail[maxTrail-1].X)
}

func TestBulletTrailResetsOnWrap(t *testing.T) {
	w := newTestWorld(t)
	b := w.Bullets.Spawn(Vec{795, 100}, Vec{62.5, 0})

	for range 4 {
		w.Bullets.Update(0.016)
	}
	require.Len(t, b.Trail, 4)

	w.Bullets.Update(0.1)
	require.Len(t, b.Trail, 1)
	assert.Equal(t, b.Pos, b.Trail[0])
}

func TestBulletFireAndExpire(t *testing.T) {
	w := newTestWorld(t)
	ship := w.Ship
	ship.Vel = Vec{10, 0}

	b := w.Bullets.Fire(ship)
	assert.InDelta(t, 10, b.Vel.X, 1e-9)
	assert.InDelta(t, -w.Config.BulletSpeed, b.Vel.Y, 1e-9)
	assert.Equal(t, w.Config.BulletLife, b.Life)

	w.Bullets.Update(w.Config.BulletLife / 2)
	assert.Equal(t, 1, w.Bullets.Len())
	w.Bullets.Update(w.Config.BulletLife / 2)
	assert.Equal(t, 0, w.Bullets.Len())
}

func TestExpiredRemovalDoesNotSkip(t *testing.T) {
	w := newTestWorld(t)
	for i := range 6 {
		b := w.Bullets.Spawn(Vec{100, 100}, Vec{})
		if i%2 == 0 {
			b.Life = 0.01
		}
	}
	w.Bullets.Update(0.02)
	assert.Equal(t, 3, w.Bullets.Len())
	for _, b := range w.Bullets.Items {
		assert.Greater(t, b.Life, 0.0)
	}
}

func TestAsteroidShape(t *testing.T) {
	w := newTestWorld(t)
	for range 50 {
		a := w.Asteroids.Create(Vec{}, 40)
		require.GreaterOrEqual(t, len(a.Offsets), 8)
		require.LessOrEqual(t, len(a.Offsets), 12)
		for _, o := range a.Offsets {
			r := o.Len()
			require.GreaterOrEqual(t, r, 40*0.7-1e-9)
			require.LessOrEqual(t, r, 40*1.3+1e-9)
		}
	}
}

func TestAsteroidSplit(t *testing.T) {
	w := newTestWorld(t)

	for range 50 {
		parent := w.Asteroids.Create(Vec{100, 100}, 40)
		frags := w.Asteroids.Split(parent, w.Config.MinSplitSize)
		require.GreaterOrEqual(t, len(frags), 2)
		require.LessOrEqual(t, len(frags), 3)
		for _, f := range frags {
			assert.Equal(t, 20.0, f.Size)
			assert.Equal(t, parent.Pos, f.Pos)
			kick := f.Vel.Sub(parent.Vel).Len()
			assert.GreaterOrEqual(t, kick, 6.25-1e-9)
			assert.LessOrEqual(t, kick, 25+1e-9)
		}
	}

	small := w.Asteroids.Create(Vec{}, 15)
	assert.Empty(t, w.Asteroids.Split(small, w.Config.MinSplitSize))
	assert.Equal(t, 0, w.Asteroids.Len(), "split never adds to the pool")
}

func TestDebrisBurst(t *testing.T) {
	w := newTestWorld(t)
	w.Debris.Burst(Vec{200, 200})
	require.Equal(t, debrisPieces, w.Debris.Len())
	for i, d := range w.Debris.Items {
		assert.Equal(t, DebrisKind(i%3), d.Kind)
		assert.LessOrEqual(t, d.Life, debrisMaxLife+1e-9)
	}

	w.Debris.Update(debrisMaxLife + 0.01)
	assert.Equal(t, 0, w.Debris.Len())
}

func TestParticleBurstFades(t *testing.T) {
	w := newTestWorld(t)
	w.Particles.Burst(Vec{50, 50}, 10, colorWhite)
	require.Equal(t, 10, w.Particles.Len())
	for _, p := range w.Particles.Items {
		assert.GreaterOrEqual(t, p.Life, 0.5)
		assert.LessOrEqual(t, p.Life, 1.0)
	}
	w.Particles.Update(1.01)
	assert.Equal(t, 0, w.Particles.Len())
}

func TestCollectibleEntersFromAbove(t *testing.T) {
	w := newTestWorld(t)
	c := w.Canisters.Spawn(Vec{400, -30})
	assert.Equal(t, 12.0, c.Radius)
	assert.InDelta(t, 15.6, c.Vel.Y, 1e-9)

	w.Canisters.Update(0.5)
	assert.Less(t, c.Pos.Y, 0.0, "still above the field, not wrapped to the bottom")

	for range 20 {
		w.Canisters.Update(0.1)
	}
	assert.GreaterOrEqual(t, c.Pos.Y, 0.0)
	assert.Less(t, c.Pos.Y, 100.0)
}

func TestCollectOnce(t *testing.T) {
	w := newTestWorld(t)
	c := w.Clouds.Spawn(Vec{100, 100})

	got := w.Clouds.Collect(Vec{100, 100 + c.Radius + 19}, 20)
	require.Len(t, got, 1)
	assert.True(t, c.Collected)
	assert.Empty(t, w.Clouds.Collect(Vec{100, 100}, 20))
	assert.Equal(t, 1, w.Clouds.CollectedCount())
	assert.Equal(t, 0, w.Clouds.Uncollected())
	assert.Equal(t, 1, w.Clouds.Len(), "collected pickups stay in the pool")
}

func TestCanisterSpawner(t *testing.T) {
	w := newTestWorld(t)
	sp := NewCanisterSpawner(w.Config)
	pool := w.Canisters

	sp.Start(pool)
	require.Equal(t, 1, pool.Len())
	assert.Equal(t, Vec{400, -30}, pool.Items[0].Pos)

	// Uncollected canister present, interval not elapsed
	sp.Update(10, pool)
	assert.Equal(t, 1, pool.Len())

	// Interval elapsed
	sp.Update(5, pool)
	assert.Equal(t, 2, pool.Len())

	// All collected triggers an immediate drop
	for _, c := range pool.Items {
		c.Collected = true
	}
	sp.Update(0.016, pool)
	assert.Equal(t, 3, pool.Len())

	// Capped at the target
	for _, c := range pool.Items {
		c.Collected = true
	}
	sp.Update(100, pool)
	assert.Equal(t, 3, pool.Len())

	sp.Stop()
	pool.Clear()
	sp.Update(100, pool)
	assert.Equal(t, 0, pool.Len())
}

func TestPoolDrawBalanced(t *testing.T) {
	w := newTestWorld(t)
	w.Asteroids.Spawn(Vec{100, 100}, 30)
	w.Bullets.Spawn(Vec{10, 10}, Vec{1, 0})
	w.Bullets.Update(0.1)
	w.Bullets.Update(0.1)
	w.Particles.Burst(Vec{50, 50}, 3, colorWhite)
	w.Debris.Burst(Vec{60, 60})
	w.Clouds.Spawn(Vec{200, 200})
	w.Canisters.Spawn(Vec{300, 300}).Collected = true
	w.Canisters.Spawn(Vec{320, 300})
	w.Ship.GrantInvulnerability(1)
	w.Ship.Thrusting = true

	s := newRecordingSurface()
	w.Asteroids.Draw(s)
	w.Bullets.Draw(s)
	w.Particles.Draw(s)
	w.Debris.Draw(s)
	w.Clouds.Draw(s)
	w.Canisters.Draw(s)
	w.Ship.Draw(s)
	w.Stars.Draw(s)

	assert.Equal(t, 0, s.depth)
	// Nine ghost copies of the one bullet
	assert.GreaterOrEqual(t, s.calls["fillRect"], 9)
	assert.Contains(t, s.texts, "CANISTER")
	assert.Equal(t, 1, countText(s.texts, "CANISTER"), "collected canisters are unlabelled")
}

func countText(texts []string, want string) int {
	n := 0
	for _, t := range texts {
		if t == want {
			n++
		}
	}
	return n
}
