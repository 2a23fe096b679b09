package input

import (
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/testbed/scene"
)

// DefaultScrollSensitivity scales wheel steps before they reach the scene
const DefaultScrollSensitivity = 0.02

// Controller is the testbed surface the router drives
type Controller interface {
	Quit()
	TogglePause()
	SingleStep()
	Restart()
	NextScene()
	PrevScene()
	SwitchScene(i int) error
	ToggleShadows()
	ToggleContactPoints()
	ToggleVSync()
	ToggleGUI()
	ScaleTimeStep(factor float64)
	Resize(width, height int)
	Scene() scene.Scene
}

// Pane is a screen region that captures the wheel
type Pane interface {
	Contains(x, y int) bool
	SetScroll(x, y float64)
}

// Router translates tcell events into controller calls and scene events
type Router struct {
	ctrl        Controller
	pane        Pane
	keys        *KeyTable
	sensitivity float64
	buttons     tcell.ButtonMask
}

// NewRouter creates a router, pane may be nil
func NewRouter(ctrl Controller, pane Pane, sensitivity float64) *Router {
	if sensitivity <= 0 {
		sensitivity = DefaultScrollSensitivity
	}
	return &Router{
		ctrl:        ctrl,
		pane:        pane,
		keys:        DefaultKeyTable(),
		sensitivity: sensitivity,
	}
}

// Handle dispatches one event, returns true when something consumed it
func (r *Router) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev)
	case *tcell.EventMouse:
		return r.handleMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		r.ctrl.Resize(w, h)
		return true
	}
	return false
}

func (r *Router) handleKey(ev *tcell.EventKey) bool {
	intent := r.keys.Lookup(ev)
	if intent == IntentNone {
		if s := r.ctrl.Scene(); s != nil {
			return s.KeyboardEvent(scene.KeyEvent{Key: ev.Key(), Rune: ev.Rune(), Mods: ev.Modifiers()})
		}
		return false
	}

	slog.Debug("input intent", "intent", intent)
	switch intent {
	case IntentQuit:
		r.ctrl.Quit()
	case IntentTogglePause:
		r.ctrl.TogglePause()
	case IntentSingleStep:
		r.ctrl.SingleStep()
	case IntentRestart:
		r.ctrl.Restart()
	case IntentFaster:
		r.ctrl.ScaleTimeStep(0.5)
	case IntentSlower:
		r.ctrl.ScaleTimeStep(2)
	case IntentNextScene:
		r.ctrl.NextScene()
	case IntentPrevScene:
		r.ctrl.PrevScene()
	case IntentSelectScene:
		if err := r.ctrl.SwitchScene(int(ev.Rune() - '1')); err != nil {
			slog.Debug("scene select ignored", "key", string(ev.Rune()), "error", err)
		}
	case IntentToggleShadows:
		r.ctrl.ToggleShadows()
	case IntentToggleContacts:
		r.ctrl.ToggleContactPoints()
	case IntentToggleVSync:
		r.ctrl.ToggleVSync()
	case IntentToggleGUI:
		r.ctrl.ToggleGUI()
	}
	return true
}

var mouseButtons = []struct {
	mask   tcell.ButtonMask
	button scene.MouseButton
}{
	{tcell.ButtonPrimary, scene.ButtonLeft},
	{tcell.ButtonSecondary, scene.ButtonRight},
	{tcell.ButtonMiddle, scene.ButtonMiddle},
}

const wheelMask = tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight

func (r *Router) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	mask := ev.Buttons()
	mods := ev.Modifiers()

	if wheel := mask & wheelMask; wheel != 0 {
		var sx, sy float64
		switch {
		case wheel&tcell.WheelUp != 0:
			sy = 1
		case wheel&tcell.WheelDown != 0:
			sy = -1
		}
		switch {
		case wheel&tcell.WheelLeft != 0:
			sx = -1
		case wheel&tcell.WheelRight != 0:
			sx = 1
		}
		if r.pane != nil && r.pane.Contains(x, y) {
			r.pane.SetScroll(sx, sy)
			return true
		}
		if s := r.ctrl.Scene(); s != nil {
			return s.ScrollingEvent(scene.ScrollEvent{X: sx, Y: sy}, r.sensitivity)
		}
		return false
	}

	s := r.ctrl.Scene()
	prev := r.buttons
	r.buttons = mask & (tcell.ButtonPrimary | tcell.ButtonSecondary | tcell.ButtonMiddle)
	if s == nil {
		return false
	}

	// Presses over the pane stay out of the scene, releases always reach it
	overPane := r.pane != nil && r.pane.Contains(x, y)
	consumed := false
	for _, b := range mouseButtons {
		was, is := prev&b.mask != 0, r.buttons&b.mask != 0
		switch {
		case is && !was && !overPane:
			consumed = s.MouseButtonEvent(scene.MouseButtonEvent{Button: b.button, Action: scene.Press, Mods: mods, X: x, Y: y}) || consumed
		case was && !is:
			consumed = s.MouseButtonEvent(scene.MouseButtonEvent{Button: b.button, Action: scene.Release, Mods: mods, X: x, Y: y}) || consumed
		}
	}

	motion := scene.MouseMotionEvent{
		X:      x,
		Y:      y,
		Left:   r.buttons&tcell.ButtonPrimary != 0,
		Right:  r.buttons&tcell.ButtonSecondary != 0,
		Middle: r.buttons&tcell.ButtonMiddle != 0,
		Alt:    mods&tcell.ModAlt != 0,
	}
	return s.MouseMotionEvent(motion) || consumed
}
