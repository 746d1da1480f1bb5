package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"snek/ai"
	"snek/config"
	"snek/game"
	"snek/gameloop"
	"snek/logger"
	"snek/termui"
	"snek/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "Path to the YAML config file")
	frontend := flag.String("frontend", "", "Frontend to use: raylib, term or headless (overrides config)")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot steer and restart after death")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = from clock, overrides config)")
	speed := flag.Float64("speed", 0, "Simulation ticks per second (overrides config)")
	maxFrames := flag.Int("max-frames", 0, "Stop after this many frames (0 = run until quit)")
	logFile := flag.String("log", "", "Log file (overrides config, '-' for stderr)")
	writeConfig := flag.Bool("write-config", false, "Write the effective config to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *autopilot {
		cfg.Autopilot = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *speed > 0 {
		cfg.Loop.TicksPerSecond = *speed
	}
	switch *logFile {
	case "":
	case "-":
		cfg.Log.File = ""
	default:
		cfg.Log.File = *logFile
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	if *writeConfig {
		if err := cfg.Save(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	log, err := logger.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync(log)

	if err := run(cfg, *maxFrames, log); err != nil {
		log.Errorw("snek stopped", "error", err)
		logger.Sync(log)
		os.Exit(1)
	}
}

func run(cfg *config.Config, maxFrames int, log *zap.SugaredLogger) error {
	settings, err := cfg.GameSettings()
	if err != nil {
		return err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Infow("starting", "frontend", cfg.Frontend, "autopilot", cfg.Autopilot, "seed", seed,
		"board", fmt.Sprintf("%dx%d", settings.Grid.Width, settings.Grid.Height))

	g, err := game.New(settings, rand.New(rand.NewSource(seed)), log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		input    gameloop.Input
		clock    gameloop.Clock
		renderer gameloop.Renderer
		quit     func() bool
	)
	switch cfg.Frontend {
	case config.FrontendRaylib:
		closeWindow := ui.Open(ui.Options{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			FPS:    cfg.Window.FPS,
			Title:  "Snek",
		})
		defer closeWindow()
		input, clock, renderer = ui.Input{}, ui.Clock{}, ui.NewRenderer()
	case config.FrontendTerm:
		term, err := termui.Open(cfg.Window.FPS)
		if err != nil {
			return err
		}
		defer term.Close()
		input, clock, renderer = term, term, term
	case config.FrontendHeadless:
		fps := cfg.Window.FPS
		if fps <= 0 {
			fps = 60
		}
		input, clock, renderer = gameloop.NoInput{}, gameloop.FixedClock(1/float64(fps)), gameloop.NopRenderer{}
	}

	human := input
	if cfg.Autopilot {
		input = ai.New(g, human, true)
	}

	driver := gameloop.NewDriver(g, input, clock, renderer, cfg.LoopOptions(), log)
	frames := 0
	quit = func() bool {
		frames++
		if maxFrames > 0 && frames > maxFrames {
			return true
		}
		if cfg.Frontend == config.FrontendRaylib {
			return ui.ShouldClose(human)
		}
		return human.WasPressed(gameloop.KeyQuit)
	}
	driver.Run(ctx, quit)

	log.Infow("final score", "session", g.ID, "score", g.Score(), "steps", g.Steps)
	return nil
}
