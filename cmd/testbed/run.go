package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lixenwraith/testbed/audio"
	"github.com/lixenwraith/testbed/config"
	"github.com/lixenwraith/testbed/engine"
	"github.com/lixenwraith/testbed/logging"
	"github.com/lixenwraith/testbed/scenes"
	"github.com/lixenwraith/testbed/terminal"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file and applies flags that were set explicitly
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	path := f.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("scene") {
		cfg.Scene = f.scene
	}
	if changed("timestep") {
		cfg.TimeStep = f.timeStep
	}
	if changed("max-frame-delta") {
		cfg.MaxFrameDelta = f.maxFrameDelta
	}
	if f.noAudio {
		cfg.Audio = false
	}
	if f.debug {
		cfg.Log.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openCues falls back to silence when the speaker is unavailable
func openCues(cfg *config.Config) audio.Cues {
	if !cfg.Audio {
		return audio.Nop{}
	}
	cues, err := audio.NewSpeakerCues(cfg.AudioVolume)
	if err != nil {
		slog.Warn("audio unavailable, continuing without", "error", err)
		return audio.Nop{}
	}
	return cues
}

func runInteractive(ctx context.Context, cfg *config.Config) error {
	logFile, err := logging.Setup(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	win, err := terminal.NewScreen()
	if err != nil {
		return err
	}
	if err := win.Init(); err != nil {
		return err
	}
	// Normal exit terminal cleanup
	defer win.Fini()

	tb, err := engine.New(cfg, win, scenes.Default(), engine.WithCues(openCues(cfg)))
	if err != nil {
		return err
	}
	defer tb.Close()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = tb.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("frame loop: %w", err)
	}
	slog.Info("testbed exit", "frames", tb.Stats().Frames, "steps", tb.Stats().StepsTotal)
	return nil
}
