package terminal

import (
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimWindow(t *testing.T) (*Window, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	w := New(screen)
	if err := w.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(w.Fini)
	screen.SetSize(80, 24)
	return w, screen
}

func nextEvent(t *testing.T, w *Window) tcell.Event {
	t.Helper()
	for {
		select {
		case ev := <-w.Events():
			// Init posts a resize before any injected input
			if _, ok := ev.(*tcell.EventResize); ok {
				continue
			}
			return ev
		case <-time.After(2 * time.Second):
			t.Fatal("Timed out waiting for event")
			return nil
		}
	}
}

func TestWindowForwardsKeys(t *testing.T) {
	w, screen := newSimWindow(t)

	screen.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)

	ev, ok := nextEvent(t, w).(*tcell.EventKey)
	if !ok {
		t.Fatal("Expected key event")
	}
	if ev.Rune() != 'n' {
		t.Errorf("Expected n, got %q", ev.Rune())
	}
}

func TestWindowForwardsMouse(t *testing.T) {
	w, screen := newSimWindow(t)

	screen.InjectMouse(10, 4, tcell.ButtonPrimary, tcell.ModNone)

	ev, ok := nextEvent(t, w).(*tcell.EventMouse)
	if !ok {
		t.Fatal("Expected mouse event")
	}
	if x, y := ev.Position(); x != 10 || y != 4 {
		t.Errorf("Expected (10,4), got (%d,%d)", x, y)
	}
}

func TestWindowCanvasAndSize(t *testing.T) {
	w, screen := newSimWindow(t)

	if width, height := w.Size(); width != 80 || height != 24 {
		t.Errorf("Expected 80x24, got %dx%d", width, height)
	}

	w.Canvas().SetContent(3, 2, '#', nil, tcell.StyleDefault)
	w.Present()
	if r, _, _, _ := screen.GetContent(3, 2); r != '#' {
		t.Errorf("Expected # at (3,2), got %q", r)
	}

	w.Clear()
	if r, _, _, _ := screen.GetContent(3, 2); r == '#' {
		t.Error("Expected Clear to blank the cell")
	}

	w.SetSize(100, 30)
	if width, height := w.Size(); width != 100 || height != 30 {
		t.Errorf("Expected 100x30 after SetSize, got %dx%d", width, height)
	}
}

func TestWindowFiniClosesPolling(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	w := New(screen)
	if err := w.Init(); err != nil {
		t.Fatal(err)
	}

	w.Fini()
	w.Fini()

	select {
	case <-w.Closed():
	case <-time.After(2 * time.Second):
		t.Fatal("Expected polling to stop after Fini")
	}
}

type failingScreen struct {
	tcell.Screen
}

func (failingScreen) Init() error { return errors.New("no tty") }

func TestWindowInitError(t *testing.T) {
	w := New(failingScreen{})
	err := w.Init()
	if !errors.Is(err, ErrInit) {
		t.Errorf("Expected ErrInit, got %v", err)
	}
	w.Fini()
}
