package main

import (
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/bell-fighter/audio"
	"github.com/lixenwraith/bell-fighter/config"
	"github.com/lixenwraith/bell-fighter/core"
	"github.com/lixenwraith/bell-fighter/engine"
	"github.com/lixenwraith/bell-fighter/input"
	"github.com/lixenwraith/bell-fighter/logging"
	"github.com/lixenwraith/bell-fighter/render"
	"github.com/lixenwraith/bell-fighter/render/renderers"
	"github.com/lixenwraith/bell-fighter/vmath"
)

var (
	configPath = flag.String("config", config.DefaultPath, "Path to TOML config")
	colorFlag  = flag.String("color", "", "Color mode override: auto, truecolor, 256")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed override, 0 keeps the config value")
	debugFlag  = flag.Bool("debug", false, "Enable debug logging to the log directory")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, closeLog, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Info("starting", zap.Uint64("seed", seed), zap.String("color", cfg.Display.Color))

	applyColorMode(cfg.Display.Color)
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Screen must be restored exactly once, on normal exit or from the crash handler
	var finiOnce sync.Once
	fini := func() { finiOnce.Do(screen.Fini) }
	core.SetCrashCleanup(fini)
	defer fini()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	sound := audio.NewManager(cfg.Audio, log)
	if err := sound.Init(); err != nil {
		// Non-fatal, game runs silently
		log.Warn("audio initialization failed", zap.Error(err))
	}
	defer sound.Close()
	if *muteFlag {
		sound.ToggleMute()
	}

	game := engine.NewGame(engine.WithRand(vmath.NewFastRand(seed)), engine.WithLogger(log))
	keys := input.NewState(input.DefaultKeyTable(), cfg.Input.RepeatDelay, cfg.Input.HoldTimeout)
	driver := engine.NewDriver(engine.NewMonotonicTimeProvider())

	orchestrator := render.NewRenderOrchestrator(screen)
	orchestrator.Register(renderers.NewBackgroundRenderer(), render.PriorityBackground)
	orchestrator.Register(renderers.NewEntityRenderer(), render.PriorityEntities)
	orchestrator.Register(renderers.NewDebugRenderer(), render.PriorityDebug)
	orchestrator.Register(renderers.NewHUDRenderer(), render.PriorityUI)

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	})

	ticker := time.NewTicker(cfg.Display.FrameInterval())
	defer ticker.Stop()

	audioStarted := false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.HandleKey(input.FromTcell(ev), time.Now()) {
				case input.ActionQuit:
					log.Info("quit", zap.Int("score", game.Score), zap.Stringer("phase", game.Phase()))
					return nil
				case input.ActionToggleMute:
					log.Debug("mute", zap.Bool("muted", sound.ToggleMute()))
				}
				// First key of the session is the gesture that starts the track
				if !audioStarted && keys.Touched() {
					sound.Unlock()
					audioStarted = true
				}
			case *tcell.EventFocus:
				if !ev.Focused {
					keys.ReleaseAll()
				}
			case *tcell.EventResize:
				screen.Sync()
				orchestrator.Resize()
			}

		case <-ticker.C:
			driver.Advance(func() {
				game.Step(keys.Snapshot(time.Now()))
			})
			orchestrator.RenderFrame(game.Frame())
		}
	}
}

// loadConfig reads the config file and applies flag overrides
// A missing file is only tolerated at the default path
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if *configPath == config.DefaultPath {
		cfg, err = config.LoadOrDefault(*configPath)
	} else {
		cfg, err = config.Load(*configPath)
	}
	if err != nil {
		return nil, err
	}

	if *colorFlag != "" {
		cfg.Display.Color = *colorFlag
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *debugFlag {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// applyColorMode steers tcell's terminfo detection through its environment variables
func applyColorMode(mode string) {
	switch mode {
	case "256":
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case "truecolor":
		os.Setenv("COLORTERM", "truecolor")
	}
}
