package gui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/testbed/status"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

// row reads one screen line as text
func row(s tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := s.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.SimulationScreen) string {
	w, h := s.Size()
	var lines []string
	for y := 0; y < h; y++ {
		lines = append(lines, row(s, y, w))
	}
	return strings.Join(lines, "\n")
}

func TestOverlayShowsMetrics(t *testing.T) {
	reg := status.NewRegistry()
	reg.Floats.Get(status.KeyTimeStep).Set(1.0 / 60)
	reg.Floats.Get(status.KeyFPS).Set(59.9)
	reg.Bools.Get(status.KeyRunning).Store(true)
	reg.Bools.Get(status.KeyShadows).Store(true)
	reg.Ints.Get(status.KeySceneIndex).Store(1)

	s := newScreen(t, 80, 80)
	o := NewOverlay(reg, []string{"cubes", "joints"})
	o.Render(s)

	text := screenText(s)
	for _, want := range []string{"PHYSICS TESTBED", "2>joints", "running", "60 Hz", "59.9", "16.67 ms"} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected overlay to contain %q", want)
		}
	}

	// Pane never spills into the viewport
	for y := 0; y < 80; y++ {
		if r := row(s, y, 80)[LeftPaneWidth:]; strings.TrimSpace(r) != "" {
			t.Fatalf("row %d: drew past pane: %q", y, r)
		}
	}
}

func TestOverlaySingleStepState(t *testing.T) {
	reg := status.NewRegistry()
	reg.Bools.Get(status.KeySingleStep).Store(true)

	s := newScreen(t, 60, 80)
	NewOverlay(reg, nil).Render(s)

	if !strings.Contains(screenText(s), "single step") {
		t.Error("Expected single step state")
	}
}

func TestOverlayHidden(t *testing.T) {
	o := NewOverlay(status.NewRegistry(), []string{"cubes"})
	o.SetVisible(false)

	if o.Width() != 0 || o.Contains(1, 1) {
		t.Error("Expected hidden pane to take no space")
	}

	s := newScreen(t, 60, 20)
	o.Render(s)
	if strings.TrimSpace(screenText(s)) != "" {
		t.Error("Expected nothing drawn while hidden")
	}
}

func TestOverlayScrollClamped(t *testing.T) {
	o := NewOverlay(status.NewRegistry(), []string{"cubes", "joints"})
	s := newScreen(t, 60, 12)
	o.Render(s)

	o.SetScroll(0, 1)
	if o.Scroll() != 0 {
		t.Errorf("Expected scroll clamped at top, got %d", o.Scroll())
	}

	for i := 0; i < 200; i++ {
		o.SetScroll(0, -1)
	}
	limit := o.lines - o.height
	if o.Scroll() != limit {
		t.Errorf("Expected scroll clamped at %d, got %d", limit, o.Scroll())
	}

	s.Clear()
	o.Render(s)
	if strings.Contains(screenText(s), "Scenes") {
		t.Error("Expected scenes header scrolled out of view")
	}
	if !strings.Contains(screenText(s), "quit") {
		t.Error("Expected last rows visible at bottom of scroll")
	}
}
