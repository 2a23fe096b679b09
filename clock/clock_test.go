package clock

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

const sixtieth = 1.0 / 60.0

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// stepAll runs the frame driver stepping loop and returns the number of steps taken
func stepAll(c *SimulationClock, timeStep float64) int {
	steps := 0
	for c.IsPossibleToTakeStep(timeStep) {
		c.NextStep(timeStep)
		steps++
	}
	return steps
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestStartDoesNotResetAccumulator(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := New(fc, WithMaxFrameDelta(0))

	c.Start()
	fc.Advance(10 * time.Millisecond)
	c.Update()
	before := c.Accumulated()

	c.Stop()
	fc.Advance(time.Second)
	c.Start()

	if c.Accumulated() != before {
		t.Errorf("Expected accumulator %v after restart, got %v", before, c.Accumulated())
	}

	// Paused interval must not be banked
	c.Update()
	if c.Accumulated() != before {
		t.Errorf("Expected paused time excluded, got %v", c.Accumulated())
	}
}

func TestUpdateWhileStopped(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := New(fc)

	fc.Advance(time.Second)
	c.Update()

	if c.Accumulated() != 0 {
		t.Errorf("Expected no accumulation while stopped, got %v", c.Accumulated())
	}
	if c.IsRunning() {
		t.Error("Expected new clock to be stopped")
	}
}

func TestAccumulatorMatchesDeltaSum(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := New(fc, WithMaxFrameDelta(0))
	c.Start()

	rng := rand.New(rand.NewSource(42))
	var sum, consumed float64

	for i := 0; i < 500; i++ {
		d := time.Duration(rng.Int63n(int64(40 * time.Millisecond)))
		fc.Advance(d)
		c.Update()
		sum += d.Seconds()

		if got, want := c.Accumulated(), sum-consumed; math.Abs(got-want) > 1e-6 {
			t.Fatalf("frame %d: expected accumulator %v, got %v", i, want, got)
		}

		steps := stepAll(c, sixtieth)
		consumed += float64(steps) * sixtieth

		if c.Accumulated() < 0 {
			t.Fatalf("frame %d: negative accumulator %v", i, c.Accumulated())
		}
		if c.Accumulated() >= sixtieth {
			t.Fatalf("frame %d: pending step left, accumulator %v", i, c.Accumulated())
		}
		f := c.ComputeInterpolationFactor(sixtieth)
		if f < 0 || f > 1 {
			t.Fatalf("frame %d: factor %v outside [0,1]", i, f)
		}
	}
}

func TestResidualBelowStepForAnyStepSize(t *testing.T) {
	steps := []float64{1.0 / 240, 1.0 / 120, sixtieth, 1.0 / 30, 0.1, 0.5}
	deltas := []time.Duration{0, time.Millisecond, 7 * time.Millisecond, 16 * time.Millisecond, 33 * time.Millisecond, 200 * time.Millisecond}

	for _, ts := range steps {
		fc := clockwork.NewFakeClock()
		c := New(fc, WithMaxFrameDelta(0))
		c.Start()
		for _, d := range deltas {
			fc.Advance(d)
			c.Update()
			stepAll(c, ts)
			if c.Accumulated() >= ts {
				t.Errorf("step %v delta %v: accumulator %v not below step", ts, d, c.Accumulated())
			}
		}
	}
}

func TestFrameScenarios(t *testing.T) {
	tests := []struct {
		name       string
		delta      float64
		wantSteps  int
		wantFactor float64
	}{
		{"three whole steps", 3.0 / 60, 3, 0.0},
		{"two and a half steps", 2.5 / 60, 2, 0.5},
		{"less than a step", 0.25 / 60, 0, 0.25},
		{"exactly one step", 1.0 / 60, 1, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := clockwork.NewFakeClock()
			c := New(fc, WithMaxFrameDelta(0))
			c.Start()

			fc.Advance(seconds(tt.delta))
			c.Update()

			if got := stepAll(c, sixtieth); got != tt.wantSteps {
				t.Errorf("Expected %d steps, got %d", tt.wantSteps, got)
			}
			if got := c.ComputeInterpolationFactor(sixtieth); math.Abs(got-tt.wantFactor) > 1e-6 {
				t.Errorf("Expected factor %v, got %v", tt.wantFactor, got)
			}
		})
	}
}

func TestIsPossibleToTakeStepIsPure(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := New(fc)
	c.Start()
	fc.Advance(20 * time.Millisecond)
	c.Update()

	before := c.Accumulated()
	first := c.IsPossibleToTakeStep(sixtieth)
	for i := 0; i < 10; i++ {
		if got := c.IsPossibleToTakeStep(sixtieth); got != first {
			t.Fatalf("call %d: expected %v, got %v", i, first, got)
		}
	}
	if c.Accumulated() != before {
		t.Errorf("Expected accumulator unchanged at %v, got %v", before, c.Accumulated())
	}
}

func TestNextStepOverdrawPanics(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := New(fc)
	c.Start()
	fc.Advance(5 * time.Millisecond)
	c.Update()

	expectPanic(t, "overdraw", func() { c.NextStep(sixtieth) })
}

func TestNonPositiveStepPanics(t *testing.T) {
	c := New(clockwork.NewFakeClock())

	for _, ts := range []float64{0, -sixtieth, math.NaN()} {
		expectPanic(t, "IsPossibleToTakeStep", func() { c.IsPossibleToTakeStep(ts) })
		expectPanic(t, "NextStep", func() { c.NextStep(ts) })
		expectPanic(t, "ComputeInterpolationFactor", func() { c.ComputeInterpolationFactor(ts) })
	}
}

func TestInterpolationFactorOutOfRangePanics(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := New(fc, WithMaxFrameDelta(0))
	c.Start()
	fc.Advance(100 * time.Millisecond)
	c.Update()

	expectPanic(t, "pending steps", func() { c.ComputeInterpolationFactor(sixtieth) })

	c.DiscardAccumulated()
	if got := c.ComputeInterpolationFactor(sixtieth); got != 0 {
		t.Errorf("Expected factor 0 after discard, got %v", got)
	}
}

func TestFrameStallBacklog(t *testing.T) {
	tests := []struct {
		name      string
		maxDelta  float64
		wantSteps int
	}{
		{"unbounded reproduces backlog", 0, 600},
		{"clamped to default", DefaultMaxFrameDelta, 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := clockwork.NewFakeClock()
			c := New(fc, WithMaxFrameDelta(tt.maxDelta))
			c.Start()

			// Simulated breakpoint: ten seconds between frames
			fc.Advance(10 * time.Second)
			c.Update()

			if got := stepAll(c, sixtieth); got != tt.wantSteps {
				t.Errorf("Expected %d steps after stall, got %d", tt.wantSteps, got)
			}
		})
	}
}

func TestPhysicsTimeTracksLastUpdate(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := New(fc)

	fc.Advance(2 * time.Second)
	c.Start()
	if got := c.PhysicsTime(); math.Abs(got-2) > 1e-9 {
		t.Errorf("Expected physics time 2 after start, got %v", got)
	}

	fc.Advance(100 * time.Millisecond)
	c.Update()
	if got := c.PhysicsTime(); math.Abs(got-2.1) > 1e-9 {
		t.Errorf("Expected physics time 2.1, got %v", got)
	}
}

func TestNegativeMaxFrameDeltaPanics(t *testing.T) {
	expectPanic(t, "negative max delta", func() {
		New(clockwork.NewFakeClock(), WithMaxFrameDelta(-1))
	})
}
