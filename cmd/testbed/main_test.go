package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/testbed/config"
	"github.com/lixenwraith/testbed/scene"
	"github.com/lixenwraith/testbed/scenes"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Keep tests away from the user config
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	root := rootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestScenesCommand(t *testing.T) {
	out, err := execute(t, "scenes")
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range scenes.Default().Names() {
		if !strings.Contains(out, name) {
			t.Errorf("Expected %q in scene list:\n%s", name, out)
		}
	}
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--frames", "30", "--scene", scenes.NameJoints, "--no-audio")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, scenes.NameJoints) {
		t.Errorf("Expected scene row in report:\n%s", out)
	}
	if strings.Contains(out, scenes.NameCubes) {
		t.Errorf("Expected only the selected scene:\n%s", out)
	}
	if !strings.Contains(out, "STEPS/FRAME") {
		t.Errorf("Expected report header:\n%s", out)
	}
}

func TestBenchErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown scene", []string{"bench", "--frames", "1", "--scene", "nope"}, scene.ErrUnknownScene},
		{"zero frames", []string{"bench", "--frames", "0"}, config.ErrInvalid},
		{"bad timestep", []string{"bench", "--timestep", "1"}, config.ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "time_step: 0.01\nscene: raycast\nmax_frame_delta: 0.5\naudio: false\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "bench", "--config", path, "--timestep", "0.02", "--frames", "10")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, scenes.NameRaycast) || strings.Contains(out, scenes.NameCubes) {
		t.Errorf("Expected scene from file only:\n%s", out)
	}
	if !strings.Contains(out, "time step 0.0200s, max frame delta 0.500s") {
		t.Errorf("Expected flag time step and file frame delta:\n%s", out)
	}
}
