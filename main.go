package main

import (
	"flag"
	"os"

	"astrophage/client"
	"astrophage/game"
	"astrophage/logging"
	"astrophage/profiler"
)

// Browser build: `go generate` places the runtime shim and the game binary
// in public/, which cmd/server then serves.
//go:generate cp $GOROOT/lib/wasm/wasm_exec.js public/wasm_exec.js
//go:generate env GOOS=js GOARCH=wasm go build -o public/game.wasm .

func main() {
	seed := flag.Int64("seed", 1, "Random seed for the world")
	mission := flag.Int("mission", 1, "Mission to start on (1-3)")
	debug := flag.Bool("debug", false, "Show FPS/TPS and debug logging")
	profile := flag.Bool("profile", false, "Capture CPU profiles on sustained frame drops")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	logger := logging.New(os.Stderr, level)

	config := game.DefaultConfig()
	config.Seed = *seed
	config.Logger = logger

	opts := client.Options{Debug: *debug}
	if *profile {
		p, err := profiler.New(profiler.DefaultConfig(), logger)
		if err != nil {
			logger.Warn().Err(err).Msg("profiling disabled")
		} else {
			opts.Profiler = p
		}
	}

	g := client.New(config, opts)
	if *mission != 1 {
		g.Core().Mission().ForceMission(*mission)
	}

	if err := client.Run(g); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
	logger.Info().Msg("game closed")
}
