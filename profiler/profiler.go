package profiler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// ErrCooldown is returned when a capture was requested too soon after the last one
var ErrCooldown = errors.New("capture on cooldown")

// ErrBusy is returned when a capture is already running
var ErrBusy = errors.New("already profiling")

// Config controls when and how captures are taken
type Config struct {
	// Dir receives the .cpu.prof and .trace files
	Dir string

	// Threshold is the frame rate below which a tick counts as slow
	Threshold float64

	// SustainTicks is how many consecutive slow ticks trigger a capture
	SustainTicks int

	// WarmupTicks are ignored after start so loading hitches do not count
	WarmupTicks int

	// Cooldown is the minimum time between captures
	Cooldown time.Duration

	// Duration is how long each capture runs
	Duration time.Duration
}

// DefaultConfig returns the settings used by the client
func DefaultConfig() Config {
	return Config{
		Dir:          "profiles",
		Threshold:    45,
		SustainTicks: 60,
		WarmupTicks:  180,
		Cooldown:     10 * time.Second,
		Duration:     5 * time.Second,
	}
}

// Profiler handles automatic performance profiling on sustained frame drops
type Profiler struct {
	mu              sync.Mutex
	config          Config
	isProfiling     bool
	lastCaptureTime time.Time
	ticks           int
	slowTicks       int
	logger          zerolog.Logger

	// capture is swapped out in tests
	capture func(baseName string) error
}

// New creates a profiler, creating its output directory
func New(config Config, logger zerolog.Logger) (*Profiler, error) {
	if err := os.MkdirAll(config.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}
	p := &Profiler{
		config: config,
		logger: logger.With().Str("component", "profiler").Logger(),
	}
	p.capture = p.captureAll
	return p, nil
}

// Observe records one tick's frame rate and starts a capture once the rate
// has stayed below the threshold for long enough
func (p *Profiler) Observe(fps float64) {
	p.ticks++
	if p.ticks <= p.config.WarmupTicks {
		return
	}
	if fps >= p.config.Threshold {
		p.slowTicks = 0
		return
	}
	p.slowTicks++
	if p.slowTicks < p.config.SustainTicks {
		return
	}
	p.slowTicks = 0

	err := p.CaptureProfile("fps-drop")
	switch {
	case err == nil:
		p.logger.Warn().Float64("fps", fps).Msg("sustained frame drop, capturing profile")
	case errors.Is(err, ErrCooldown), errors.Is(err, ErrBusy):
	default:
		p.logger.Error().Err(err).Msg("profile capture failed")
	}
}

// CaptureProfile starts a CPU profile and execution trace in the background
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if since := time.Since(p.lastCaptureTime); since < p.config.Cooldown {
		return fmt.Errorf("%w (last capture was %v ago)", ErrCooldown, since.Round(time.Millisecond))
	}
	if p.isProfiling {
		return ErrBusy
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()
	baseName := fmt.Sprintf("%s-%s", reason, p.lastCaptureTime.Format("20060102-150405"))

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()
		if err := p.capture(baseName); err != nil {
			p.logger.Error().Err(err).Str("name", baseName).Msg("capture failed")
			return
		}
		p.logSummary(baseName)
	}()

	return nil
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// captureAll runs the CPU profile and trace side by side
func (p *Profiler) captureAll(baseName string) error {
	var wg sync.WaitGroup
	var cpuErr, traceErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		cpuErr = p.captureCPUProfile(baseName)
	}()
	go func() {
		defer wg.Done()
		traceErr = p.captureTrace(baseName)
	}()
	wg.Wait()
	return errors.Join(cpuErr, traceErr)
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.config.Dir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.config.Duration)
	pprof.StopCPUProfile()

	p.logger.Info().Str("path", profilePath).Msg("CPU profile saved")
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.config.Dir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.config.Duration)
	trace.Stop()

	p.logger.Info().Str("path", tracePath).Msg("trace saved")
	return nil
}

// logSummary logs memory stats and how to open the profile
func (p *Profiler) logSummary(baseName string) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info().
		Str("profile", filepath.Join(p.config.Dir, baseName+".cpu.prof")).
		Uint64("alloc_kb", m.Alloc/1024).
		Uint64("sys_kb", m.Sys/1024).
		Uint32("num_gc", m.NumGC).
		Uint64("heap_objects", m.HeapObjects).
		Msg("capture complete; open with go tool pprof -http=:8080")
}
