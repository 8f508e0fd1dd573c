package game

import (
	"math"

	"github.com/rs/zerolog"
)

// Config holds game configuration constants
type Config struct {
	// FieldWidth is the width of the toroidal playfield in pixels
	FieldWidth float64

	// FieldHeight is the height of the toroidal playfield in pixels
	FieldHeight float64

	// SpawnX, SpawnY and SpawnAngle are the ship pose used on every reset
	SpawnX, SpawnY float64
	SpawnAngle     float64

	// Ship handling, per second
	TurnSpeed   float64 // radians per second
	ThrustAccel float64 // pixels per second^2
	Drag        float64 // fraction of velocity lost per second

	// Fuel
	MaxFuel      float64
	FuelBurnRate float64 // units per second of thrust
	RefuelAmount float64 // granted per collectible

	// ShipRadius is used for the asteroid broad phase
	ShipRadius float64

	// PickupRadius is added to a collectible's radius for the pickup test
	PickupRadius float64

	// Bullets
	BulletSpeed float64 // pixels per second, added to ship velocity
	BulletLife  float64 // seconds

	// MinSplitSize is the largest asteroid size that is destroyed outright
	MinSplitSize float64

	// Mission transition timings in seconds
	WaitDuration     float64
	SlowFadeDuration float64
	FadeInDuration   float64

	// Respawn timings in seconds
	RespawnDelay            float64
	InvulnerabilityDuration float64

	// Mission targets
	CloudTarget      int
	CanisterTarget   int
	CanisterInterval float64 // seconds between timed canister drops

	// Seed feeds the world's random source; zero picks a fixed default
	Seed int64

	// ScreenWidth is the window width in pixels
	ScreenWidth int

	// ScreenHeight is the window height in pixels
	ScreenHeight int

	// Logger receives mission and combat events
	Logger zerolog.Logger
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		FieldWidth:              800,
		FieldHeight:             600,
		SpawnX:                  400,
		SpawnY:                  480,
		SpawnAngle:              -math.Pi / 2,
		TurnSpeed:               math.Pi * 1.25,
		ThrustAccel:             90,
		Drag:                    0.35,
		MaxFuel:                 100,
		FuelBurnRate:            4,
		RefuelAmount:            30,
		ShipRadius:              15,
		PickupRadius:            20,
		BulletSpeed:             62.5, // 1px per 16ms frame
		BulletLife:              3.2,  // 200 frames
		MinSplitSize:            15,
		WaitDuration:            2,
		SlowFadeDuration:        2,
		FadeInDuration:          1.5,
		RespawnDelay:            2,
		InvulnerabilityDuration: 3,
		CloudTarget:             5,
		CanisterTarget:          3,
		CanisterInterval:        15,
		Seed:                    1,
		ScreenWidth:             800,
		ScreenHeight:            600,
		Logger:                  zerolog.Nop(),
	}
}

// SpawnPoint returns the ship spawn position
func (c Config) SpawnPoint() Vec {
	return Vec{X: c.SpawnX, Y: c.SpawnY}
}
