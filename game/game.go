package game

import (
	"github.com/rs/zerolog"
)

const (
	// shakeChance is the per-frame probability of a small screen shake
	shakeChance = 0.01

	// shakeAmount is the maximum shake offset in pixels
	shakeAmount = 2.0
)

// Game represents the main game state
type Game struct {
	config     Config
	world      *World
	collisions *CollisionSystem
	mission    *MissionState
	narrator   Narrator
	debug      *DebugState
	menu       *DebugMenu
	gauge      *FuelGauge
	logger     zerolog.Logger

	// elapsed is gameplay time, scaled by the mission time scale
	elapsed float64

	// shake is this frame's camera offset
	shake Vec
}

// NewGame creates a game on mission 1. A nil narrator gets a MissionLog.
func NewGame(config Config, narrator Narrator) *Game {
	if narrator == nil {
		narrator = NewMissionLog(config.Logger)
	}

	world := NewWorld(config)
	g := &Game{
		config:     config,
		world:      world,
		collisions: NewCollisionSystem(world, narrator),
		mission:    NewMissionState(world, narrator),
		narrator:   narrator,
		debug:      &DebugState{},
		menu:       NewDebugMenu(),
		gauge:      NewFuelGauge(),
		logger:     config.Logger.With().Str("component", "game").Logger(),
	}
	g.mission.Start(1)
	return g
}

// Config returns the configuration the game was built with
func (g *Game) Config() Config { return g.config }

// World returns the entity pools
func (g *Game) World() *World { return g.world }

// Mission returns the mission state machine
func (g *Game) Mission() *MissionState { return g.mission }

// Narrator returns the narration collaborator
func (g *Game) Narrator() Narrator { return g.narrator }

// Debug returns the debug flags
func (g *Game) Debug() *DebugState { return g.debug }

// Menu returns the debug menu
func (g *Game) Menu() *DebugMenu { return g.menu }

// Elapsed returns scaled gameplay time in seconds
func (g *Game) Elapsed() float64 { return g.elapsed }

// Paused reports whether gameplay is frozen by the debug menu or a
// blocking narration message
func (g *Game) Paused() bool {
	return g.menu.Open || g.narrator.IsDisplayingMessage()
}

// Update advances one frame of dt seconds
func (g *Game) Update(dt float64, in Input) {
	if in.JustPressed(KeyDebugMenu) {
		g.menu.Toggle()
		g.logger.Debug().Bool("open", g.menu.Open).Msg("debug menu toggled")
	}
	if g.menu.Open {
		if n, ok := g.menu.HandleInput(in); ok {
			g.mission.ForceMission(n)
		}
		return
	}
	if in.JustPressed(KeyHitboxes) {
		g.debug.ShowHitboxes = !g.debug.ShowHitboxes
	}

	g.narrator.Update()
	w := g.world
	blocked := g.narrator.IsDisplayingMessage()

	if !blocked {
		sdt := dt * g.mission.TimeScale
		g.elapsed += sdt

		if in.JustPressed(KeyFire) && w.Ship.Alive {
			w.Bullets.Fire(w.Ship)
		}
		w.Ship.Update(sdt, in, g.config)
		w.Bullets.Update(sdt)
		w.Asteroids.Update(sdt)
		w.Clouds.Update(sdt)
		w.Canisters.Update(sdt)
		g.mission.UpdateSpawners(sdt)
	}

	// Cosmetic pools keep running through slow motion and narration
	w.Particles.Update(dt)
	w.Debris.Update(dt)
	w.Stars.Update(dt)

	if !blocked {
		g.collisions.Resolve()
	}
	g.mission.Update(dt)

	g.shake = Vec{}
	if w.Rand.Float64() < shakeChance {
		g.shake = Vec{
			X: (w.Rand.Float64() - 0.5) * 2 * shakeAmount,
			Y: (w.Rand.Float64() - 0.5) * 2 * shakeAmount,
		}
	}
}

// Draw renders the frame. The background is only partially cleared so
// moving objects leave a short ghost trail.
func (g *Game) Draw(s Surface) {
	w := g.world
	sw, sh := s.Size()

	s.FillRect(0, 0, sw, sh, rgba(0, 0, 0, 0.2))

	s.Save()
	s.Translate(g.shake.X, g.shake.Y)
	w.Asteroids.Draw(s)
	w.Clouds.Draw(s)
	w.Canisters.Draw(s)
	w.Ship.Draw(s)
	w.Bullets.Draw(s)
	w.Particles.Draw(s)
	w.Debris.Draw(s)
	if g.debug.ShowHitboxes {
		drawHitboxes(s, w)
	}
	s.Restore()

	w.Stars.Draw(s)
	drawHUD(s, w, g.mission, g.elapsed)
	g.gauge.Draw(s, w.Ship.Fuel, g.config.MaxFuel, sw, sh)

	if g.mission.Overlay > 0 {
		s.FillRect(0, 0, sw, sh, rgba(0, 0, 0, g.mission.Overlay))
	}

	g.narrator.Draw(s, sw, sh)
	g.menu.Draw(s, sw, sh)
}
