package clock

import (
	"fmt"
	"time"
)

// Resolution is the host clock tick in seconds
// Accumulator comparisons tolerate one tick so exact step multiples are not lost to float rounding
const Resolution = 1e-9

// DefaultMaxFrameDelta caps a single frame's contribution to the accumulator
const DefaultMaxFrameDelta = 0.25

// TimeSource provides monotonic host time, satisfied by clockwork.Clock
type TimeSource interface {
	Now() time.Time
}

// SimulationClock converts real elapsed time into fixed-size physics steps
// Owned by the frame loop, not safe for concurrent use
type SimulationClock struct {
	source TimeSource
	epoch  time.Time

	accumulated   float64 // Banked seconds not yet consumed by a step
	lastRealTime  float64 // Host seconds since epoch at last Update/Start
	maxFrameDelta float64 // 0 disables clamping
	running       bool
}

// Option configures a SimulationClock
type Option func(*SimulationClock)

// WithMaxFrameDelta caps per-frame accumulation to seconds, 0 keeps it unbounded
func WithMaxFrameDelta(seconds float64) Option {
	return func(c *SimulationClock) {
		if seconds < 0 {
			panic(fmt.Errorf("clock: negative max frame delta %v", seconds))
		}
		c.maxFrameDelta = seconds
	}
}

// New creates a stopped clock reading time from src
func New(src TimeSource, opts ...Option) *SimulationClock {
	c := &SimulationClock{
		source:        src,
		epoch:         src.Now(),
		maxFrameDelta: DefaultMaxFrameDelta,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// now returns host seconds since the clock epoch
func (c *SimulationClock) now() float64 {
	return c.source.Now().Sub(c.epoch).Seconds()
}

// Start marks the clock running and rebases real time, accumulated time is kept
func (c *SimulationClock) Start() {
	c.running = true
	c.lastRealTime = c.now()
}

// Stop freezes accumulation
func (c *SimulationClock) Stop() {
	c.running = false
}

// IsRunning reports whether Update accumulates time
func (c *SimulationClock) IsRunning() bool {
	return c.running
}

// Update banks the real time elapsed since the previous call
// No-op while stopped
func (c *SimulationClock) Update() {
	if !c.running {
		return
	}

	current := c.now()
	delta := current - c.lastRealTime
	if delta < 0 {
		delta = 0
	}
	if c.maxFrameDelta > 0 && delta > c.maxFrameDelta {
		delta = c.maxFrameDelta
	}

	c.accumulated += delta
	c.lastRealTime = current
}

// IsPossibleToTakeStep reports whether a whole step of timeStep seconds is banked
func (c *SimulationClock) IsPossibleToTakeStep(timeStep float64) bool {
	mustPositive(timeStep)
	return c.accumulated+Resolution >= timeStep
}

// NextStep consumes one step from the accumulator
// Caller must have checked IsPossibleToTakeStep, overdrawing panics
func (c *SimulationClock) NextStep(timeStep float64) {
	mustPositive(timeStep)

	remaining := c.accumulated - timeStep
	if remaining < 0 {
		if remaining < -Resolution {
			panic(fmt.Errorf("clock: step %v exceeds accumulated %v", timeStep, c.accumulated))
		}
		remaining = 0
	}
	c.accumulated = remaining
}

// ComputeInterpolationFactor returns the fraction of a step banked beyond the last physics state
// Result is in [0, 1], anything else means a step was left unconsumed and panics
func (c *SimulationClock) ComputeInterpolationFactor(timeStep float64) float64 {
	mustPositive(timeStep)

	factor := c.accumulated / timeStep
	if factor < 0 || factor > 1 {
		panic(fmt.Errorf("clock: interpolation factor %v outside [0, 1]", factor))
	}
	return factor
}

// Accumulated returns banked seconds
func (c *SimulationClock) Accumulated() float64 {
	return c.accumulated
}

// PhysicsTime returns host seconds since epoch at the last accumulation
func (c *SimulationClock) PhysicsTime() float64 {
	return c.lastRealTime
}

// MaxFrameDelta returns the per-frame clamp, 0 when unbounded
func (c *SimulationClock) MaxFrameDelta() float64 {
	return c.maxFrameDelta
}

// DiscardAccumulated drops banked time
// Used when the step size shrinks while stopped so the factor contract holds
func (c *SimulationClock) DiscardAccumulated() {
	c.accumulated = 0
}

func mustPositive(timeStep float64) {
	if !(timeStep > 0) {
		panic(fmt.Errorf("clock: non-positive time step %v", timeStep))
	}
}
