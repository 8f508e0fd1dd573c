package game

import (
	"math/rand"
)

// starCount is the number of background stars
const starCount = 50

// World holds every entity pool of a running game. Pools mutate their own
// entities; cross-pool effects are applied by the collision system and the
// mission state.
type World struct {
	// Configuration
	Config Config

	// Rand is the single random source shared by all pools
	Rand *rand.Rand

	Ship      *Ship
	Asteroids *AsteroidPool
	Bullets   *BulletPool
	Particles *ParticlePool
	Debris    *DebrisPool
	Clouds    *CollectiblePool
	Canisters *CollectiblePool
	Stars     *Starfield

	// Destroyed counts asteroids destroyed this session
	Destroyed int
}

// NewWorld creates a world with empty pools and the ship at its spawn pose
func NewWorld(config Config) *World {
	seed := config.Seed
	if seed == 0 {
		seed = 1
	}
	rng := rand.New(rand.NewSource(seed))
	w, h := config.FieldWidth, config.FieldHeight

	return &World{
		Config:    config,
		Rand:      rng,
		Ship:      NewShip(config),
		Asteroids: NewAsteroidPool(rng, w, h),
		Bullets:   NewBulletPool(config),
		Particles: NewParticlePool(rng, w, h),
		Debris:    NewDebrisPool(rng, w, h),
		Clouds:    NewCollectiblePool(KindCloud, rng, w, h),
		Canisters: NewCollectiblePool(KindCanister, rng, w, h),
		Stars:     NewStarfield(rng, starCount, w, h),
	}
}

// Collectibles returns both pickup pools
func (w *World) Collectibles() [2]*CollectiblePool {
	return [2]*CollectiblePool{w.Clouds, w.Canisters}
}

// ClearTransient empties every pool that does not survive a mission reset
func (w *World) ClearTransient() {
	w.Clouds.Clear()
	w.Canisters.Clear()
	w.Bullets.Clear()
	w.Particles.Clear()
	w.Debris.Clear()
	w.Asteroids.Clear()
}
