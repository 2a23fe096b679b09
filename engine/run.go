package engine

import (
	"context"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
)

// ErrNeedsFakeClock is returned by RunFrames on a real clock
var ErrNeedsFakeClock = errors.New("headless run needs a fake clock")

// uncappedInterval paces frames when vsync is off
const uncappedInterval = time.Millisecond

// frameInterval returns the ticker period for the current vsync state
func (t *Testbed) frameInterval() time.Duration {
	if !t.vsync || t.cfg.FrameRate <= 0 {
		return uncappedInterval
	}
	return time.Duration(float64(time.Second) / float64(t.cfg.FrameRate))
}

// Run drives frames and input until quit, window close or ctx cancellation
func (t *Testbed) Run(ctx context.Context) error {
	ticker := t.source.NewTicker(t.frameInterval())
	defer ticker.Stop()
	vsync := t.vsync

	for !t.quit {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.window.Closed():
			return nil
		case ev := <-t.window.Events():
			t.router.Handle(ev)
		case <-ticker.Chan():
			t.Frame()
		}

		if t.vsync != vsync {
			vsync = t.vsync
			ticker.Reset(t.frameInterval())
		}
	}
	return nil
}

// Report summarizes a headless run
type Report struct {
	Scene         string
	Frames        int
	Steps         int64
	Simulated     float64 // Seconds of physics stepped
	StepsPerFrame float64
	Factor        float64 // Interpolation factor after the last frame
}

// RunFrames advances the fake clock by interval before each of n frames
func (t *Testbed) RunFrames(n int, interval time.Duration) (Report, error) {
	fake, ok := t.source.(*clockwork.FakeClock)
	if !ok {
		return Report{}, ErrNeedsFakeClock
	}

	startSteps, startSim := t.stepsTotal, t.simulated
	for range n {
		fake.Advance(interval)
		t.Frame()
	}

	r := Report{
		Scene:     t.Scene().Name(),
		Frames:    n,
		Steps:     t.stepsTotal - startSteps,
		Simulated: t.simulated - startSim,
		Factor:    t.factor,
	}
	if n > 0 {
		r.StepsPerFrame = float64(r.Steps) / float64(n)
	}
	return r, nil
}
