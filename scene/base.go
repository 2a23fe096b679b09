package scene

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/lixenwraith/testbed/render"
)

const (
	dragRotateSpeed = 0.04 // Radians per cell of drag
	keyRotateSpeed  = 0.1
	keyZoomFactor   = 0.9
	scrollZoomRate  = 5.0
)

// Base carries the state every scene shares: settings, viewport, render flags and an orbit camera
// Concrete scenes embed it and implement UpdatePhysics, Render and Reset
type Base struct {
	name     string
	settings EngineSettings

	viewport       render.Rect
	windowW        int
	windowH        int
	factor         float64
	shadows        bool
	contactsShown  bool
	Camera         *render.Camera
	dragging       bool
	lastX, lastY   int
	initialYaw     float64
	initialPitch   float64
	initialDistant float64
}

// NewBase creates shared state for a scene looking at target
func NewBase(name string, target mgl64.Vec3, distance float64) Base {
	cam := render.NewCamera(target, distance)
	yaw, pitch, dist := cam.Pose()
	return Base{
		name:           name,
		settings:       DefaultEngineSettings(),
		shadows:        true,
		Camera:         cam,
		initialYaw:     yaw,
		initialPitch:   pitch,
		initialDistant: dist,
	}
}

func (b *Base) Name() string { return b.name }

// Update eases the camera, scenes overriding it should call it
func (b *Base) Update() {
	b.Camera.Update()
}

// ResetCamera restores the initial camera pose
func (b *Base) ResetCamera() {
	b.Camera.SnapTo(b.initialYaw, b.initialPitch, b.initialDistant)
}

func (b *Base) Reshape(width, height int) {
	b.windowW, b.windowH = width, height
}

func (b *Base) SetViewport(x, y, width, height int) {
	b.viewport = render.Rect{X: x, Y: y, W: width, H: height}
}

// Viewport returns the cell rect the scene renders into
func (b *Base) Viewport() render.Rect {
	return b.viewport
}

func (b *Base) SetWindowDimension(width, height int) {
	b.windowW, b.windowH = width, height
}

// WindowDimension returns the last reported window size in cells
func (b *Base) WindowDimension() (int, int) {
	return b.windowW, b.windowH
}

func (b *Base) SetInterpolationFactor(f float64) { b.factor = f }

// InterpolationFactor returns the blend factor for the current frame
func (b *Base) InterpolationFactor() float64 { return b.factor }

func (b *Base) SetShadowMappingEnabled(enabled bool) { b.shadows = enabled }

// ShadowsEnabled reports whether ground shadows are drawn
func (b *Base) ShadowsEnabled() bool { return b.shadows }

func (b *Base) SetContactPointsDisplayed(displayed bool) { b.contactsShown = displayed }

// ContactPointsDisplayed reports whether contact markers are drawn
func (b *Base) ContactPointsDisplayed() bool { return b.contactsShown }

func (b *Base) EngineSettings() EngineSettings { return b.settings }

func (b *Base) SetEngineSettings(s EngineSettings) { b.settings = s }

// Projector returns the camera projector for the current viewport
func (b *Base) Projector() render.Projector {
	return b.Camera.Projector(b.viewport)
}

// KeyboardEvent rotates with arrows and zooms with + and -
func (b *Base) KeyboardEvent(ev KeyEvent) bool {
	switch ev.Key {
	case tcell.KeyLeft:
		b.Camera.Rotate(-keyRotateSpeed, 0)
	case tcell.KeyRight:
		b.Camera.Rotate(keyRotateSpeed, 0)
	case tcell.KeyUp:
		b.Camera.Rotate(0, keyRotateSpeed)
	case tcell.KeyDown:
		b.Camera.Rotate(0, -keyRotateSpeed)
	case tcell.KeyRune:
		switch ev.Rune {
		case '+', '=':
			b.Camera.Zoom(keyZoomFactor)
		case '-', '_':
			b.Camera.Zoom(1 / keyZoomFactor)
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// MouseButtonEvent starts and ends camera drags with the left button
func (b *Base) MouseButtonEvent(ev MouseButtonEvent) bool {
	if ev.Button != ButtonLeft {
		return false
	}
	switch ev.Action {
	case Press:
		b.dragging = true
		b.lastX, b.lastY = ev.X, ev.Y
	case Release:
		b.dragging = false
	}
	return true
}

// MouseMotionEvent rotates the camera while dragging
func (b *Base) MouseMotionEvent(ev MouseMotionEvent) bool {
	if !b.dragging || !ev.Left {
		b.lastX, b.lastY = ev.X, ev.Y
		return false
	}
	dx, dy := ev.X-b.lastX, ev.Y-b.lastY
	b.lastX, b.lastY = ev.X, ev.Y
	b.Camera.Rotate(float64(dx)*dragRotateSpeed, float64(dy)*dragRotateSpeed*render.CellAspect)
	return true
}

// ScrollingEvent zooms, positive Y moves closer
func (b *Base) ScrollingEvent(ev ScrollEvent, sensitivity float64) bool {
	if ev.Y == 0 {
		return false
	}
	b.Camera.Zoom(math.Exp(-ev.Y * sensitivity * scrollZoomRate))
	return true
}
