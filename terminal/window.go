// Package terminal hosts the testbed in a tcell screen and feeds its input events to the frame loop
package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/testbed/core"
	"github.com/lixenwraith/testbed/render"
)

// ErrInit reports a screen that could not be taken over
var ErrInit = errors.New("terminal init")

const eventBuffer = 256

// Window owns a tcell screen and its input polling goroutine
type Window struct {
	screen tcell.Screen
	events chan tcell.Event
	stopCh chan struct{}
	doneCh chan struct{}

	mu      sync.Mutex
	running bool
	finied  bool
}

// New wraps screen, which is initialized by Init
func New(screen tcell.Screen) *Window {
	return &Window{
		screen: screen,
		events: make(chan tcell.Event, eventBuffer),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// NewScreen creates a window on the controlling terminal
func NewScreen() (*Window, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	return New(screen), nil
}

// Init enters the alternate screen, enables the mouse and starts polling
func (w *Window) Init() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.screen.Init(); err != nil {
		return fmt.Errorf("%w: %w", ErrInit, err)
	}
	w.screen.SetStyle(render.StyleDefault)
	w.screen.EnableMouse()
	w.screen.HideCursor()
	w.screen.Clear()

	core.SetCrashTerminal(w)
	w.running = true
	core.Go(w.pollLoop)
	return nil
}

// pollLoop forwards screen events until the screen is finalized
func (w *Window) pollLoop() {
	defer close(w.doneCh)

	for {
		ev := w.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case w.events <- ev:
		case <-w.stopCh:
			return
		}
	}
}

// Fini restores the terminal. Safe to call multiple times
func (w *Window) Fini() {
	w.mu.Lock()
	if w.finied {
		w.mu.Unlock()
		return
	}
	w.finied = true
	running := w.running
	w.running = false
	w.mu.Unlock()

	core.SetCrashTerminal(nil)
	close(w.stopCh)
	if running {
		// Fini makes PollEvent return nil
		w.screen.Fini()
		<-w.doneCh
	}
}

// Size returns the screen size in cells
func (w *Window) Size() (width, height int) {
	return w.screen.Size()
}

// SetSize requests a screen size, honored by simulation screens
func (w *Window) SetSize(width, height int) {
	w.screen.SetSize(width, height)
}

// Canvas returns the drawing surface
func (w *Window) Canvas() render.Canvas {
	return w.screen
}

// Clear blanks the back buffer
func (w *Window) Clear() {
	w.screen.Clear()
}

// Present flushes the back buffer to the terminal
func (w *Window) Present() {
	w.screen.Show()
}

// Events returns the buffered input event channel
func (w *Window) Events() <-chan tcell.Event {
	return w.events
}

// Closed is closed once polling has stopped
func (w *Window) Closed() <-chan struct{} {
	return w.doneCh
}
