package scene

import (
	"errors"
	"slices"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/render"
)

// stub is the smallest scene built on Base
type stub struct {
	Base
	steps int
}

func newStub(name string) Factory {
	return func() Scene {
		return &stub{Base: NewBase(name, mgl64.Vec3{}, 10)}
	}
}

func (s *stub) UpdatePhysics()         { s.steps++ }
func (s *stub) Render(_ render.Canvas) {}
func (s *stub) Reset()                 { s.steps = 0 }

func TestRegistryOrderAndLookup(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("alpha", newStub("alpha"))
	r.MustRegister("beta", newStub("beta"))

	if got := r.Names(); !slices.Equal(got, []string{"alpha", "beta"}) {
		t.Errorf("Expected registration order, got %v", got)
	}

	i, err := r.Index("beta")
	if err != nil || i != 1 {
		t.Fatalf("Expected beta at 1, got %d, %v", i, err)
	}

	s, err := r.At(i)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name() != "beta" {
		t.Errorf("Expected beta, got %s", s.Name())
	}

	built := r.Build()
	if len(built) != 2 || built[0] == built[1] {
		t.Error("Expected two distinct instances")
	}
}

func TestRegistryErrors(t *testing.T) {
	r := NewRegistry()
	r.MustRegister("alpha", newStub("alpha"))

	if err := r.Register("alpha", newStub("alpha")); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}
	if _, err := r.Index("gamma"); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	for _, i := range []int{-1, 1} {
		if _, err := r.At(i); !errors.Is(err, ErrUnknownScene) {
			t.Errorf("index %d: expected ErrUnknownScene, got %v", i, err)
		}
	}
}

func TestBaseFlagsAndSettings(t *testing.T) {
	s := newStub("alpha")().(*stub)

	s.SetViewport(30, 0, 50, 20)
	s.SetInterpolationFactor(0.25)
	s.SetShadowMappingEnabled(false)
	s.SetContactPointsDisplayed(true)

	settings := s.EngineSettings()
	settings.TimeStep = 1.0 / 120
	s.SetEngineSettings(settings)

	if (s.Viewport() != render.Rect{X: 30, W: 50, H: 20}) {
		t.Errorf("Unexpected viewport %+v", s.Viewport())
	}
	if s.InterpolationFactor() != 0.25 || s.ShadowsEnabled() || !s.ContactPointsDisplayed() {
		t.Error("Render flags not stored")
	}
	if s.EngineSettings().TimeStep != 1.0/120 {
		t.Errorf("Expected time step 1/120, got %v", s.EngineSettings().TimeStep)
	}
}

func TestBaseCameraInput(t *testing.T) {
	s := newStub("alpha")().(*stub)
	s.Camera.Easing = 1
	yaw0, _, dist0 := s.Camera.Pose()

	if !s.KeyboardEvent(KeyEvent{Key: tcell.KeyRight}) {
		t.Fatal("Expected arrow key consumed")
	}
	if s.KeyboardEvent(KeyEvent{Key: tcell.KeyRune, Rune: 'x'}) {
		t.Error("Expected unrelated rune ignored")
	}

	s.MouseButtonEvent(MouseButtonEvent{Button: ButtonLeft, Action: Press, X: 10, Y: 10})
	if !s.MouseMotionEvent(MouseMotionEvent{X: 15, Y: 10, Left: true}) {
		t.Error("Expected drag consumed")
	}
	s.MouseButtonEvent(MouseButtonEvent{Button: ButtonLeft, Action: Release, X: 15, Y: 10})
	if s.MouseMotionEvent(MouseMotionEvent{X: 20, Y: 10}) {
		t.Error("Expected motion after release ignored")
	}

	s.ScrollingEvent(ScrollEvent{Y: 1}, 0.02)
	s.Update()

	yaw1, _, dist1 := s.Camera.Pose()
	if !(yaw1 > yaw0) {
		t.Errorf("Expected yaw to grow, got %v -> %v", yaw0, yaw1)
	}
	if !(dist1 < dist0) {
		t.Errorf("Expected scroll up to zoom in, got %v -> %v", dist0, dist1)
	}

	s.ResetCamera()
	if yaw, _, dist := s.Camera.Pose(); yaw != yaw0 || dist != dist0 {
		t.Errorf("Expected reset pose, got yaw=%v dist=%v", yaw, dist)
	}
}
