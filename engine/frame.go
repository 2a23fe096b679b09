package engine

import (
	"time"

	"github.com/lixenwraith/testbed/scene"
)

// fpsWindow is the shortest span an FPS sample averages over
const fpsWindow = 500 * time.Millisecond

type fpsCounter struct {
	frames int
	since  time.Time
	value  float64
}

func (f *fpsCounter) reset(now time.Time) {
	f.frames = 0
	f.since = now
}

func (f *fpsCounter) tick(now time.Time) {
	f.frames++
	elapsed := now.Sub(f.since)
	if elapsed < fpsWindow {
		return
	}
	f.value = float64(f.frames) / elapsed.Seconds()
	f.reset(now)
}

// bodyCounter is implemented by scenes that can report their body count
type bodyCounter interface {
	BodyCount() int
}

// Frame runs one host frame: reshape, update, render, present, FPS
func (t *Testbed) Frame() {
	t.Reshape()
	t.Update()
	t.publish()
	t.Render()
	t.window.Present()

	now := t.source.Now()
	t.frameTime = now.Sub(t.lastFrame)
	t.lastFrame = now
	t.fps.tick(now)
	t.frames++
}

// Update advances physics for this frame and hands the scene its blend factor
// Panics if single stepping while the clock runs, or if the factor leaves [0, 1]
func (t *Testbed) Update() {
	start := t.source.Now()
	sc := t.Scene()

	t.stepsLastFrame = 0
	if t.singleStep && !t.singleStepDone {
		t.updateSingleStep(sc)
	} else {
		t.updatePhysics(sc)
	}
	t.physicsTime = t.source.Now().Sub(start)

	t.factor = t.clock.ComputeInterpolationFactor(t.settings.TimeStep)

	sc.SetInterpolationFactor(t.factor)
	sc.SetShadowMappingEnabled(t.shadows)
	sc.SetContactPointsDisplayed(t.contacts)
	sc.Update()
}

func (t *Testbed) updateSingleStep(sc scene.Scene) {
	if t.clock.IsRunning() {
		panic("engine: single step with running clock")
	}
	sc.SetEngineSettings(t.settings)
	t.step(sc)
	t.singleStepDone = true
}

func (t *Testbed) updatePhysics(sc scene.Scene) {
	t.settings.ElapsedTime = t.clock.PhysicsTime()
	sc.SetEngineSettings(t.settings)

	if !t.clock.IsRunning() {
		return
	}
	t.clock.Update()
	for t.clock.IsPossibleToTakeStep(t.settings.TimeStep) {
		t.clock.NextStep(t.settings.TimeStep)
		t.step(sc)
	}
}

func (t *Testbed) step(sc scene.Scene) {
	sc.UpdatePhysics()
	t.stepsLastFrame++
	t.stepsTotal++
	t.simulated += t.settings.TimeStep
}

// Render draws the scene right of the pane, then the pane
func (t *Testbed) Render() {
	t.window.Clear()
	c := t.window.Canvas()
	w, h := t.window.Size()
	pane := t.overlay.Width()

	sc := t.Scene()
	sc.SetViewport(pane, 0, max(0, w-pane), h)
	sc.Render(c)
	t.overlay.Render(c)
}

// Reshape pushes the window size to the scene
func (t *Testbed) Reshape() {
	w, h := t.window.Size()
	sc := t.Scene()
	sc.Reshape(max(0, w-t.overlay.Width()), h)
	sc.SetWindowDimension(w, h)
}

// publish writes frame diagnostics for the overlay
func (t *Testbed) publish() {
	m := &t.metrics
	m.fps.Set(t.fps.value)
	m.frameMs.Set(float64(t.frameTime) / float64(time.Millisecond))
	m.physicsMs.Set(float64(t.physicsTime) / float64(time.Millisecond))
	m.accumulator.Set(t.clock.Accumulated())
	m.factor.Set(t.factor)
	m.timeStep.Set(t.settings.TimeStep)
	m.elapsed.Set(t.settings.ElapsedTime)
	m.stepsFrame.Store(int64(t.stepsLastFrame))
	m.stepsTotal.Store(t.stepsTotal)
	m.frames.Store(t.frames)
	m.sceneIndex.Store(int64(t.current))
	m.running.Store(t.clock.IsRunning())
	m.singleStep.Store(t.singleStep)
	m.shadows.Store(t.shadows)
	m.contacts.Store(t.contacts)
	m.vsync.Store(t.vsync)
	m.gui.Store(t.overlay.Visible())

	sc := t.Scene()
	m.sceneName.Store(sc.Name())
	if bc, ok := sc.(bodyCounter); ok {
		m.bodies.Store(int64(bc.BodyCount()))
	} else {
		m.bodies.Store(0)
	}
}
