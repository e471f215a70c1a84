package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/cyber-invaders/audio"
	"github.com/lixenwraith/cyber-invaders/config"
	"github.com/lixenwraith/cyber-invaders/constants"
	"github.com/lixenwraith/cyber-invaders/content"
	"github.com/lixenwraith/cyber-invaders/engine"
	"github.com/lixenwraith/cyber-invaders/game"
	"github.com/lixenwraith/cyber-invaders/modes"
	"github.com/lixenwraith/cyber-invaders/render"
)

var (
	envFlag     = flag.String("env", ".env", "Optional dotenv file")
	debugFlag   = flag.Bool("debug", false, "Write debug logs to the log directory")
	seedFlag    = flag.Int64("seed", 0, "Random seed, 0 derives one from the clock")
	muteFlag    = flag.Bool("mute", false, "Disable audio")
	contentFlag = flag.String("content", "", "Directory with tierN.txt word list overrides")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCYBER-INVADERS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*envFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	logger, logFile := setupLogging(cfg.LogDir, cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	catalog, err := content.LoadCatalog(cfg.ContentDir, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load word lists: %v\n", err)
		os.Exit(1)
	}

	// Initialize terminal
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	ctx := engine.NewGameContext(catalog, nil, cfg.Seed, logger)

	// Initialize audio
	if !cfg.Mute {
		soundManager := audio.NewSoundManager()
		if err := soundManager.Initialize(); err != nil {
			logger.Warn().Err(err).Msg("audio initialization failed, continuing without audio")
		} else {
			ctx.SetSound(soundManager)
			defer soundManager.Cleanup()
		}
	}

	g := game.New(ctx)
	renderer := render.NewTerminalRenderer(screen)
	inputHandler := modes.NewInputHandler(g, screen)

	clockScheduler := engine.NewClockScheduler(g, cfg.FrameInterval, cfg.HousekeepingInterval, constants.ClockEventBuffer, logger)
	clockScheduler.Sync()
	defer clockScheduler.Halt()

	frameTicker := time.NewTicker(cfg.FrameInterval)
	defer frameTicker.Stop()

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	renderer.RenderFrame(g.Snapshot())

	for {
		select {
		case ev := <-eventChan:
			if !inputHandler.HandleEvent(ev) {
				logger.Info().Int("score", ctx.State.Score).Int("level", ctx.State.Level).Msg("quit")
				return
			}
			// Keystrokes may end or restart a session
			clockScheduler.Sync()

		case ev := <-clockScheduler.Events():
			clockScheduler.Dispatch(ev)

		case <-frameTicker.C:
			renderer.RenderFrame(g.Snapshot())
		}
	}
}

// applyFlags overrides configuration with flags given on the command line
func applyFlags(cfg *config.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Mute = *muteFlag
		case "content":
			cfg.ContentDir = *contentFlag
		}
	})
}
