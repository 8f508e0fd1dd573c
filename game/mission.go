package game

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
)

// Phase is the mission transition step
type Phase int

const (
	// PhaseActive is normal play
	PhaseActive Phase = iota
	// PhaseWait lets play continue briefly after completion
	PhaseWait
	// PhaseSlowFade slows time to a stop while fading to black
	PhaseSlowFade
	// PhaseReset holds fully faded for one frame before the next mission
	PhaseReset
	// PhaseFadeIn reveals the next mission
	PhaseFadeIn
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseWait:
		return "wait"
	case PhaseSlowFade:
		return "slow_fade"
	case PhaseReset:
		return "reset"
	case PhaseFadeIn:
		return "fade_in"
	default:
		return "unknown"
	}
}

// LastMission is the free-play mission that never completes
const LastMission = 3

// MissionState tracks the current mission and sequences transitions and
// respawns. It is advanced with raw frame time; TimeScale is its output for
// the gameplay pools.
type MissionState struct {
	Mission   int
	Phase     Phase
	TimeScale float64

	// Overlay is the black fade alpha in [0,1]
	Overlay float64

	elapsed      float64
	respawnTimer float64

	world    *World
	narrator Narrator
	canister *CanisterSpawner
	logger   zerolog.Logger
}

// NewMissionState creates a state machine bound to world. Call Start to set
// up the first mission.
func NewMissionState(world *World, narrator Narrator) *MissionState {
	return &MissionState{
		Mission:   1,
		TimeScale: 1,
		world:     world,
		narrator:  narrator,
		canister:  NewCanisterSpawner(world.Config),
		logger:    world.Config.Logger.With().Str("component", "mission").Logger(),
	}
}

// Start sets up mission n without a transition
func (m *MissionState) Start(n int) {
	m.Mission = clampMission(n)
	m.setPhase(PhaseActive)
	m.TimeScale = 1
	m.Overlay = 0
	m.respawnTimer = 0
	m.setup()
}

// ForceMission jumps straight into mission n, bypassing the transition
func (m *MissionState) ForceMission(n int) {
	cfg := m.world.Config
	m.logger.Info().Int("from", m.Mission).Int("to", clampMission(n)).Msg("mission forced")

	m.world.ClearTransient()
	ship := m.world.Ship
	ship.ResetPose(cfg)
	ship.Fuel = cfg.MaxFuel
	ship.ReleaseInvulnerability()
	ship.GrantInvulnerability(cfg.InvulnerabilityDuration)

	m.Start(n)
}

// Transitioning reports whether a mission transition is running
func (m *MissionState) Transitioning() bool {
	return m.Phase != PhaseActive
}

// Complete reports whether the current mission's objective is met
func (m *MissionState) Complete() bool {
	cfg := m.world.Config
	switch m.Mission {
	case 1:
		return m.world.Clouds.CollectedCount() >= cfg.CloudTarget
	case 2:
		return m.world.Canisters.CollectedCount() >= cfg.CanisterTarget
	default:
		return false
	}
}

// Objective describes the current goal and progress for the HUD
func (m *MissionState) Objective() string {
	cfg := m.world.Config
	switch m.Mission {
	case 1:
		return "Mission 1: Collect Astrophage " + progress(m.world.Clouds.CollectedCount(), cfg.CloudTarget)
	case 2:
		return "Mission 2: Receive Canisters " + progress(m.world.Canisters.CollectedCount(), cfg.CanisterTarget)
	default:
		return "Mission 3: Free Flight"
	}
}

// UpdateSpawners runs the mission's timed spawners on gameplay time
func (m *MissionState) UpdateSpawners(dt float64) {
	m.canister.Update(dt, m.world.Canisters)
}

// Update advances respawns, completion checks and the transition sequence
func (m *MissionState) Update(dt float64) {
	cfg := m.world.Config

	switch m.Phase {
	case PhaseActive:
		m.updateRespawn(dt)
		if m.Mission == LastMission && m.world.Asteroids.Len() == 0 {
			n := 5 + m.world.Rand.Intn(5)
			m.world.Asteroids.SpawnField(n, m.world.Ship.Pos, 150)
			m.logger.Debug().Int("asteroids", n).Msg("wave spawned")
		}
		if m.Complete() && (m.narrator == nil || !m.narrator.IsDisplayingMessage()) {
			m.logger.Info().Int("mission", m.Mission).Msg("mission complete")
			m.setPhase(PhaseWait)
		}

	case PhaseWait:
		m.elapsed += dt
		if m.elapsed >= cfg.WaitDuration {
			m.elapsed -= cfg.WaitDuration
			m.setPhaseKeepElapsed(PhaseSlowFade)
			m.applySlowFade()
		}

	case PhaseSlowFade:
		m.elapsed += dt
		m.applySlowFade()

	case PhaseReset:
		m.reset()
		m.setPhase(PhaseFadeIn)

	case PhaseFadeIn:
		m.elapsed += dt
		p := progressOf(m.elapsed, cfg.FadeInDuration)
		m.Overlay = 1 - p
		if p >= 1 {
			m.world.Ship.ReleaseInvulnerability()
			m.Overlay = 0
			m.setPhase(PhaseActive)
		}
	}
}

// applySlowFade maps slow-fade progress onto time scale and overlay
func (m *MissionState) applySlowFade() {
	p := progressOf(m.elapsed, m.world.Config.SlowFadeDuration)
	m.TimeScale = 1 - p
	m.Overlay = p
	if p >= 1 {
		m.setPhase(PhaseReset)
	}
}

// reset clears the field and starts the next mission fully faded out
func (m *MissionState) reset() {
	cfg := m.world.Config
	m.world.ClearTransient()

	ship := m.world.Ship
	ship.ResetPose(cfg)
	ship.Fuel = cfg.MaxFuel
	ship.HoldInvulnerability()

	m.Mission = clampMission(m.Mission + 1)
	m.respawnTimer = 0
	m.setup()
	m.TimeScale = 1
	m.Overlay = 1
}

// setup spawns the current mission's entities and briefing
func (m *MissionState) setup() {
	w := m.world
	cfg := w.Config
	m.canister.Stop()

	switch m.Mission {
	case 1:
		w.Clouds.Clear()
		for range cfg.CloudTarget {
			w.Clouds.Spawn(Vec{
				X: 50 + w.Rand.Float64()*(cfg.FieldWidth-100),
				Y: 30 + w.Rand.Float64()*(cfg.FieldHeight/2-30),
			})
		}
		w.Asteroids.SpawnField(4, cfg.SpawnPoint(), 150)
	case 2:
		m.canister.Start(w.Canisters)
		w.Asteroids.SpawnField(4, cfg.SpawnPoint(), 150)
	default:
		w.Asteroids.SpawnField(8, cfg.SpawnPoint(), 150)
	}

	m.logger.Info().Int("mission", m.Mission).Msg("mission started")
	if m.narrator != nil {
		m.narrator.TriggerEvent(EventMissionStart, map[string]any{"mission": m.Mission})
	}
}

// updateRespawn brings a destroyed ship back after the respawn delay
func (m *MissionState) updateRespawn(dt float64) {
	ship := m.world.Ship
	if ship.Alive {
		m.respawnTimer = 0
		return
	}
	cfg := m.world.Config
	m.respawnTimer += dt
	if m.respawnTimer < cfg.RespawnDelay {
		return
	}

	m.respawnTimer = 0
	ship.ResetPose(cfg)
	ship.GrantInvulnerability(cfg.InvulnerabilityDuration)
	m.logger.Debug().Float64("fuel", ship.Fuel).Msg("ship respawned")
	if m.narrator != nil {
		m.narrator.TriggerEvent(EventShipRespawned, nil)
	}
}

func (m *MissionState) setPhase(p Phase) {
	m.elapsed = 0
	m.setPhaseKeepElapsed(p)
}

func (m *MissionState) setPhaseKeepElapsed(p Phase) {
	if p != m.Phase {
		m.logger.Debug().Stringer("from", m.Phase).Stringer("to", p).Int("mission", m.Mission).Msg("phase change")
	}
	m.Phase = p
}

func progressOf(elapsed, duration float64) float64 {
	if duration <= 0 {
		return 1
	}
	return math.Min(elapsed/duration, 1)
}

func progress(n, total int) string {
	return fmt.Sprintf("(%d/%d)", n, total)
}

func clampMission(n int) int {
	return max(1, min(n, LastMission))
}
