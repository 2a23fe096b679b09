package engine

import (
	"fmt"
	"log/slog"

	"github.com/lixenwraith/testbed/config"
	"github.com/lixenwraith/testbed/scene"
)

// Play resumes continuous stepping and leaves single step mode
func (t *Testbed) Play() {
	t.singleStep = false
	t.singleStepDone = false
	if !t.clock.IsRunning() {
		t.clock.Start()
	}
}

// Pause stops accumulation, banked time is kept
func (t *Testbed) Pause() {
	t.clock.Stop()
}

// TogglePause flips between running and paused
func (t *Testbed) TogglePause() {
	if t.clock.IsRunning() {
		t.Pause()
	} else {
		t.Play()
	}
	slog.Debug("pause toggled", "running", t.clock.IsRunning())
}

// SingleStep pauses and arms exactly one physics step for the next frame
func (t *Testbed) SingleStep() {
	t.Pause()
	t.singleStep = true
	t.singleStepDone = false
	t.cues.Step()
}

// Restart rebuilds the current scene in place
func (t *Testbed) Restart() {
	t.Scene().Reset()
	t.cues.Reset()
	slog.Info("scene reset", "scene", t.Scene().Name())
}

// SwitchScene makes scene i current, keeping the active time step
func (t *Testbed) SwitchScene(i int) error {
	if i < 0 || i >= len(t.scenes) {
		return fmt.Errorf("%w: index %d", scene.ErrUnknownScene, i)
	}
	if i == t.current {
		return nil
	}

	timeStep := t.settings.TimeStep
	t.current = i
	sc := t.Scene()
	t.settings = sc.EngineSettings()
	t.settings.TimeStep = timeStep
	sc.Reset()
	t.cues.Switch()

	slog.Info("scene switched", "scene", sc.Name(), "index", i)
	return nil
}

// NextScene cycles forward through the registry
func (t *Testbed) NextScene() {
	_ = t.SwitchScene((t.current + 1) % len(t.scenes))
}

// PrevScene cycles backward through the registry
func (t *Testbed) PrevScene() {
	_ = t.SwitchScene((t.current + len(t.scenes) - 1) % len(t.scenes))
}

// ToggleShadows flips ground shadows
func (t *Testbed) ToggleShadows() { t.shadows = !t.shadows }

// ToggleContactPoints flips contact markers
func (t *Testbed) ToggleContactPoints() { t.contacts = !t.contacts }

// ToggleVSync switches between display-rate and uncapped frame pacing
func (t *Testbed) ToggleVSync() {
	t.vsync = !t.vsync
	slog.Debug("vsync toggled", "vsync", t.vsync)
}

// ToggleGUI shows or hides the left pane
func (t *Testbed) ToggleGUI() { t.overlay.SetVisible(!t.overlay.Visible()) }

// ScaleTimeStep multiplies the physics step, bounded to the configured range
// A bank holding a whole new step is dropped so the factor stays in [0, 1] until the next step loop
func (t *Testbed) ScaleTimeStep(factor float64) {
	if !(factor > 0) {
		return
	}
	next := min(max(t.settings.TimeStep*factor, config.MinTimeStep), config.MaxTimeStep)
	if next == t.settings.TimeStep {
		return
	}
	t.settings.TimeStep = next
	if t.clock.Accumulated() >= next {
		t.clock.DiscardAccumulated()
	}
	slog.Debug("time step changed", "time_step", next)
}

// Quit ends Run after the current event
func (t *Testbed) Quit() {
	t.quit = true
}

// Resize reacts to a window size change
func (t *Testbed) Resize(width, height int) {
	slog.Debug("resize", "width", width, "height", height)
	t.Reshape()
}
