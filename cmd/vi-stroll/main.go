package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/vi-stroll/asset"
	"github.com/lixenwraith/vi-stroll/audio"
	"github.com/lixenwraith/vi-stroll/config"
	"github.com/lixenwraith/vi-stroll/core"
	"github.com/lixenwraith/vi-stroll/logging"
	"github.com/lixenwraith/vi-stroll/parameter"
	"github.com/lixenwraith/vi-stroll/scene"
	"github.com/lixenwraith/vi-stroll/status"
)

// statsInterval paces the periodic metrics log line
const statsInterval = 10 * time.Second

type options struct {
	configPath string
	assetDir   string
	debug      bool
	mute       bool
	cameraMode string
	fps        int
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("vi-stroll", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML config file overriding the defaults")
	fs.StringVar(&o.assetDir, "assets", "", "directory layered over the built-in assets")
	fs.BoolVar(&o.debug, "debug", false, "write logs to "+logging.FileName+" in the configured log dir")
	fs.BoolVar(&o.mute, "mute", false, "disable audio cues")
	fs.StringVar(&o.cameraMode, "camera", "", "camera follow mode: step or lerp")
	fs.IntVar(&o.fps, "fps", 0, "target frames per second (0 keeps the config value)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.fps < 0 {
		return o, fmt.Errorf("-fps %d must not be negative", o.fps)
	}
	return o, nil
}

// loadConfig reads the config file and applies flag overrides
func loadConfig(o options) (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.cameraMode != "" {
		cfg.Camera.Mode = config.CameraMode(o.cameraMode)
	}
	if o.fps > 0 {
		cfg.Render.FrameInterval = config.Duration(time.Second / time.Duration(o.fps))
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "vi-stroll: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, err := loadConfig(o)
	if err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Options{
		Enabled: o.debug,
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Dir:     cfg.Log.Dir,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	loader, err := asset.NewLoader(o.assetDir, logger.Named("asset"))
	if err != nil {
		return err
	}

	player := audio.NewPlayer(audio.Config{
		SampleRate: parameter.AudioSampleRate,
		Buffer:     parameter.AudioBufferDuration,
		Volume:     cfg.Audio.Volume,
	}, logger.Named("audio"))
	if cfg.Audio.Enabled {
		if err := player.Start(); err != nil {
			logger.Warn("continuing without audio", zap.Error(err))
		}
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	reg := status.NewRegistry()
	sc := scene.New(cfg, loader, player, reg, logger.Named("scene"), scene.Options{})
	sc.Resize(screen.Size())

	events := make(chan tcell.Event, parameter.EventChannelSize)
	done := make(chan struct{})
	// Runs before Fini, releasing a poller stuck on a full channel
	defer close(done)
	core.Go(func() { pollEvents(screen, events, done) })

	logger.Info("started",
		zap.String("camera", string(cfg.Camera.Mode)),
		zap.Duration("frame", cfg.Render.FrameInterval.D()),
		zap.Bool("audio", cfg.Audio.Enabled),
	)
	return loop(screen, sc, events, cfg.Render.FrameInterval.D(), reg, logger)
}

// pollEvents forwards terminal events until the screen is finalized or done closes
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// loop drains terminal events and renders one frame per tick until quit
func loop(screen tcell.Screen, sc *scene.Scene, events <-chan tcell.Event, interval time.Duration, reg *status.Registry, logger *zap.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	stats := time.NewTicker(statsInterval)
	defer stats.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			w, h := screen.Size()
			in := sc.Input.HandleEvent(ev, w, h, time.Now())
			if !sc.HandleIntent(in) {
				logger.Info("quit", reg.Fields()...)
				return nil
			}
		case now := <-ticker.C:
			sc.Tick(now.Sub(last), now)
			last = now
			sc.Buffer().Flush(screen)
		case <-stats.C:
			logger.Debug("stats", reg.Fields()...)
		}
	}
}
