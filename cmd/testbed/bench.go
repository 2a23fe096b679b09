package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/testbed/config"
	"github.com/lixenwraith/testbed/engine"
	"github.com/lixenwraith/testbed/scenes"
	"github.com/lixenwraith/testbed/terminal"
	"github.com/spf13/cobra"
)

const (
	benchWidth  = 120
	benchHeight = 40
)

func benchCmd(f *flags) *cobra.Command {
	var (
		frames   int
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run scenes headless on a simulated clock",
		Long: "Runs each scene (or the one named by --scene) for a fixed number of frames,\n" +
			"advancing a simulated clock by --interval per frame, and reports physics stepping.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if frames <= 0 {
				return fmt.Errorf("%w: frames must be positive", config.ErrInvalid)
			}
			if interval <= 0 {
				return fmt.Errorf("%w: interval must be positive", config.ErrInvalid)
			}

			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			names := scenes.Default().Names()
			if cfg.Scene != "" {
				names = []string{cfg.Scene}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, infoMsg("%d frames at %v per scene", frames, interval))

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				report, err := benchScene(cfg, name, frames, interval)
				if err != nil {
					return err
				}
				rows = append(rows, []string{
					report.Scene,
					strconv.Itoa(report.Frames),
					strconv.FormatInt(report.Steps, 10),
					strconv.FormatFloat(report.Simulated, 'f', 3, 64),
					strconv.FormatFloat(report.StepsPerFrame, 'f', 2, 64),
					strconv.FormatFloat(report.Factor, 'f', 3, 64),
				})
			}

			fmt.Fprintln(out, renderTable(
				[]string{"SCENE", "FRAMES", "STEPS", "SIM SECONDS", "STEPS/FRAME", "FACTOR"}, rows))
			fmt.Fprintln(out, muted(fmt.Sprintf("time step %.4fs, max frame delta %.3fs", cfg.TimeStep, cfg.MaxFrameDelta)))
			return nil
		},
	}

	cmd.Flags().IntVar(&frames, "frames", 600, "Frames per scene")
	cmd.Flags().DurationVar(&interval, "interval", time.Second/60, "Simulated time per frame")
	return cmd
}

// benchScene runs one scene on an offscreen window and fake clock
func benchScene(base *config.Config, name string, frames int, interval time.Duration) (engine.Report, error) {
	cfg := *base
	cfg.Scene = name

	win := terminal.New(tcell.NewSimulationScreen("UTF-8"))
	if err := win.Init(); err != nil {
		return engine.Report{}, err
	}
	defer win.Fini()
	win.SetSize(benchWidth, benchHeight)

	tb, err := engine.New(&cfg, win, scenes.Default(), engine.WithClock(clockwork.NewFakeClock()))
	if err != nil {
		return engine.Report{}, err
	}
	defer tb.Close()

	return tb.RunFrames(frames, interval)
}
