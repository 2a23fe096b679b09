package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/testbed/core"
	"github.com/spf13/cobra"
)

func main() {
	// Panic recovery: restore the terminal even if the frame loop crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorMsg("%v", err))
		os.Exit(1)
	}
}

// flags shared by the interactive and headless commands
type flags struct {
	configPath    string
	scene         string
	timeStep      float64
	maxFrameDelta float64
	noAudio       bool
	debug         bool
}

func rootCmd() *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:           "testbed",
		Short:         "Terminal viewer for fixed-step physics scenes",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &f)
			if err != nil {
				return err
			}
			return runInteractive(cmd.Context(), cfg)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/testbed/config.yaml)")
	pf.StringVar(&f.scene, "scene", "", "Scene to start on")
	pf.Float64Var(&f.timeStep, "timestep", 0, "Physics time step in seconds")
	pf.Float64Var(&f.maxFrameDelta, "max-frame-delta", 0, "Per-frame accumulation cap in seconds, 0 disables")
	pf.BoolVar(&f.noAudio, "no-audio", false, "Disable audio cues")
	pf.BoolVar(&f.debug, "debug", false, "Write a debug log")

	root.AddCommand(scenesCmd())
	root.AddCommand(benchCmd(&f))
	return root
}
