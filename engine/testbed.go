// Package engine drives the testbed: fixed-step physics, per-frame rendering and the controls bound to input
package engine

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/lixenwraith/testbed/audio"
	"github.com/lixenwraith/testbed/clock"
	"github.com/lixenwraith/testbed/config"
	"github.com/lixenwraith/testbed/gui"
	"github.com/lixenwraith/testbed/input"
	"github.com/lixenwraith/testbed/render"
	"github.com/lixenwraith/testbed/scene"
	"github.com/lixenwraith/testbed/status"
)

// Window is the host surface, satisfied by terminal.Window
type Window interface {
	Size() (width, height int)
	Canvas() render.Canvas
	Clear()
	Present()
	Events() <-chan tcell.Event
	Closed() <-chan struct{}
}

// Option configures a Testbed
type Option func(*Testbed)

// WithClock replaces the real clock, tests and the bench pass a fake clock
func WithClock(c clockwork.Clock) Option {
	return func(t *Testbed) { t.source = c }
}

// WithCues plays audio feedback for controls
func WithCues(c audio.Cues) Option {
	return func(t *Testbed) { t.cues = c }
}

// WithStatus shares a metrics registry
func WithStatus(r *status.Registry) Option {
	return func(t *Testbed) { t.status = r }
}

// metrics caches registry pointers written every frame
type metrics struct {
	fps, frameMs, physicsMs  *status.AtomicFloat
	accumulator, factor      *status.AtomicFloat
	timeStep, elapsed        *status.AtomicFloat
	stepsFrame, stepsTotal   *atomic.Int64
	frames, sceneIndex       *atomic.Int64
	bodies                   *atomic.Int64
	running, singleStep      *atomic.Bool
	shadows, contacts, vsync *atomic.Bool
	gui, audio               *atomic.Bool
	sceneName                *status.AtomicString
}

func newMetrics(r *status.Registry) metrics {
	return metrics{
		fps:         r.Floats.Get(status.KeyFPS),
		frameMs:     r.Floats.Get(status.KeyFrameMs),
		physicsMs:   r.Floats.Get(status.KeyPhysicsMs),
		accumulator: r.Floats.Get(status.KeyAccumulator),
		factor:      r.Floats.Get(status.KeyFactor),
		timeStep:    r.Floats.Get(status.KeyTimeStep),
		elapsed:     r.Floats.Get(status.KeyElapsed),
		stepsFrame:  r.Ints.Get(status.KeyStepsFrame),
		stepsTotal:  r.Ints.Get(status.KeyStepsTotal),
		frames:      r.Ints.Get(status.KeyFrames),
		sceneIndex:  r.Ints.Get(status.KeySceneIndex),
		bodies:      r.Ints.Get(status.KeyBodies),
		running:     r.Bools.Get(status.KeyRunning),
		singleStep:  r.Bools.Get(status.KeySingleStep),
		shadows:     r.Bools.Get(status.KeyShadows),
		contacts:    r.Bools.Get(status.KeyContacts),
		vsync:       r.Bools.Get(status.KeyVSync),
		gui:         r.Bools.Get(status.KeyGUI),
		audio:       r.Bools.Get(status.KeyAudio),
		sceneName:   r.Strings.Get(status.KeyScene),
	}
}

// Testbed owns the scenes, the simulation clock and the frame loop
// Input callbacks reach it through the router, there is no global instance
type Testbed struct {
	cfg      *config.Config
	window   Window
	registry *scene.Registry
	scenes   []scene.Scene
	current  int
	settings scene.EngineSettings

	source  clockwork.Clock
	clock   *clock.SimulationClock
	router  *input.Router
	overlay *gui.Overlay
	status  *status.Registry
	metrics metrics
	cues    audio.Cues

	singleStep     bool // Manual stepping mode
	singleStepDone bool // The step for this pause was taken

	shadows  bool
	contacts bool
	vsync    bool
	quit     bool

	factor         float64
	stepsLastFrame int
	stepsTotal     int64
	simulated      float64 // Seconds of physics stepped
	frames         int64
	physicsTime    time.Duration
	frameTime      time.Duration
	lastFrame      time.Time
	fps            fpsCounter
}

// New builds every registered scene and starts the clock on the configured one
func New(cfg *config.Config, window Window, registry *scene.Registry, opts ...Option) (*Testbed, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if registry.Len() == 0 {
		return nil, fmt.Errorf("%w: registry is empty", scene.ErrUnknownScene)
	}

	t := &Testbed{
		cfg:      cfg,
		window:   window,
		registry: registry,
		source:   clockwork.NewRealClock(),
		cues:     audio.Nop{},
		shadows:  cfg.Shadows,
		contacts: cfg.ContactPoints,
		vsync:    cfg.VSync,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.status == nil {
		t.status = status.NewRegistry()
	}
	t.metrics = newMetrics(t.status)

	if cfg.Scene != "" {
		i, err := registry.Index(cfg.Scene)
		if err != nil {
			return nil, err
		}
		t.current = i
	}

	t.scenes = registry.Build()
	t.settings = t.scenes[t.current].EngineSettings()
	t.settings.TimeStep = cfg.TimeStep

	t.overlay = gui.NewOverlay(t.status, registry.Names())
	t.overlay.SetVisible(cfg.GUI)
	t.router = input.NewRouter(t, t.overlay, cfg.ScrollSensitivity)

	t.clock = clock.New(t.source, clock.WithMaxFrameDelta(cfg.MaxFrameDelta))
	t.fps.reset(t.source.Now())
	t.lastFrame = t.source.Now()
	t.clock.Start()

	_, isNop := t.cues.(audio.Nop)
	t.metrics.audio.Store(!isNop)

	slog.Info("testbed ready",
		"scene", t.Scene().Name(),
		"scenes", registry.Len(),
		"time_step", t.settings.TimeStep,
		"max_frame_delta", t.clock.MaxFrameDelta())
	return t, nil
}

// Scene returns the current scene
func (t *Testbed) Scene() scene.Scene {
	return t.scenes[t.current]
}

// SceneIndex returns the current scene position in the registry
func (t *Testbed) SceneIndex() int {
	return t.current
}

// Settings returns the engine settings pushed to the scene
func (t *Testbed) Settings() scene.EngineSettings {
	return t.settings
}

// Clock exposes the simulation clock
func (t *Testbed) Clock() *clock.SimulationClock {
	return t.clock
}

// Router returns the input router bound to this testbed
func (t *Testbed) Router() *input.Router {
	return t.router
}

// Status returns the metrics registry
func (t *Testbed) Status() *status.Registry {
	return t.status
}

// Quitting reports whether Quit was requested
func (t *Testbed) Quitting() bool {
	return t.quit
}

// Close releases audio
func (t *Testbed) Close() {
	t.cues.Close()
}

// Stats is a snapshot of frame diagnostics
type Stats struct {
	Frames         int64
	StepsLastFrame int
	StepsTotal     int64
	Simulated      float64 // Seconds of physics stepped
	Factor         float64
	FPS            float64
	Running        bool
	SingleStep     bool
}

// Stats returns current diagnostics
func (t *Testbed) Stats() Stats {
	return Stats{
		Frames:         t.frames,
		StepsLastFrame: t.stepsLastFrame,
		StepsTotal:     t.stepsTotal,
		Simulated:      t.simulated,
		Factor:         t.factor,
		FPS:            t.fps.value,
		Running:        t.clock.IsRunning(),
		SingleStep:     t.singleStep,
	}
}
