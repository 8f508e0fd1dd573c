package client

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"

	"astrophage/game"
	"astrophage/profiler"
)

// maxFrameTime caps dt so a stalled frame only coarsens the step
const maxFrameTime = 0.1

// Options controls the client shell around the game core
type Options struct {
	// Debug shows the FPS/TPS readout
	Debug bool

	// Profiler, when set, is fed the frame rate every tick
	Profiler *profiler.Profiler
}

// Game adapts the game core to ebiten.Game
type Game struct {
	core     *game.Game
	surface  *Surface
	input    Keyboard
	opts     Options
	config   game.Config
	logger   zerolog.Logger
	lastTick time.Time
}

// New creates the client around a fresh core
func New(config game.Config, opts Options) *Game {
	return &Game{
		core:    game.NewGame(config, nil),
		surface: NewSurface(),
		opts:    opts,
		config:  config,
		logger:  config.Logger.With().Str("component", "client").Logger(),
	}
}

// Core returns the wrapped game
func (g *Game) Core() *game.Game {
	return g.core
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	now := time.Now()
	dt := 1.0 / float64(ebiten.TPS())
	if !g.lastTick.IsZero() {
		dt = min(now.Sub(g.lastTick).Seconds(), maxFrameTime)
	}
	g.lastTick = now

	g.core.Update(dt, g.input)

	if g.opts.Profiler != nil {
		g.opts.Profiler.Observe(ebiten.ActualFPS())
	}
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen)
	g.core.Draw(g.surface)

	if g.opts.Debug {
		w := g.config.ScreenWidth
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.0f TPS: %.0f", ebiten.ActualFPS(), ebiten.ActualTPS()), w-140, 10)
	}
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.ScreenWidth, g.config.ScreenHeight
}

// Run opens the window and blocks until it closes
func Run(g *Game) error {
	ebiten.SetWindowSize(g.config.ScreenWidth, g.config.ScreenHeight)
	ebiten.SetWindowTitle("Astrophage")
	// The core clears with a translucent fill for the ghosting effect
	ebiten.SetScreenClearedEveryFrame(false)

	g.logger.Info().Int("width", g.config.ScreenWidth).Int("height", g.config.ScreenHeight).Msg("starting client")
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
