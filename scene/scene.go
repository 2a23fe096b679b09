package scene

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/testbed/render"
)

// Scene is one self-contained simulation demo driven by the testbed
type Scene interface {
	Name() string

	// UpdatePhysics advances the simulation by exactly one fixed step
	UpdatePhysics()
	// Update runs once per frame after physics, before Render
	Update()
	Render(c render.Canvas)
	Reset()

	Reshape(width, height int)
	SetViewport(x, y, width, height int)
	SetWindowDimension(width, height int)

	SetInterpolationFactor(f float64)
	SetShadowMappingEnabled(enabled bool)
	SetContactPointsDisplayed(displayed bool)

	EngineSettings() EngineSettings
	SetEngineSettings(s EngineSettings)

	// Input handlers return true when the event was consumed
	KeyboardEvent(ev KeyEvent) bool
	MouseButtonEvent(ev MouseButtonEvent) bool
	MouseMotionEvent(ev MouseMotionEvent) bool
	ScrollingEvent(ev ScrollEvent, sensitivity float64) bool
}

// Action is a button transition
type Action uint8

const (
	Press Action = iota
	Release
)

// MouseButton identifies a pointer button
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// KeyEvent is a key press routed to the scene
type KeyEvent struct {
	Key  tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// MouseButtonEvent is a button press or release at a cell
type MouseButtonEvent struct {
	Button MouseButton
	Action Action
	Mods   tcell.ModMask
	X, Y   int
}

// MouseMotionEvent is pointer movement with the held button state
type MouseMotionEvent struct {
	X, Y                int
	Left, Right, Middle bool
	Alt                 bool
}

// ScrollEvent is a wheel step, positive Y scrolls up
type ScrollEvent struct {
	X, Y float64
}
