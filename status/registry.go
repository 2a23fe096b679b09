package status

import "sync/atomic"

// Metric keys written by the frame loop
const (
	KeyFPS         = "frame.fps"
	KeyFrameMs     = "frame.ms"
	KeyPhysicsMs   = "physics.ms"
	KeyStepsFrame  = "physics.steps_frame"
	KeyStepsTotal  = "physics.steps_total"
	KeyFrames      = "frame.count"
	KeyAccumulator = "clock.accumulator"
	KeyFactor      = "clock.factor"
	KeyTimeStep    = "clock.timestep"
	KeyElapsed     = "clock.elapsed"
	KeyRunning     = "clock.running"
	KeySingleStep  = "clock.single_step"
	KeyScene       = "scene.name"
	KeySceneIndex  = "scene.index"
	KeyShadows     = "render.shadows"
	KeyContacts    = "render.contacts"
	KeyVSync       = "render.vsync"
	KeyBodies      = "scene.bodies"
	KeyGUI         = "gui.visible"
	KeyAudio       = "audio.enabled"
)

// Registry groups metrics by value type
// Writers cache pointers once, readers Range for display
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}
