package gui

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/testbed/render"
	"github.com/lixenwraith/testbed/status"
)

// LeftPaneWidth is the overlay width in cells
const LeftPaneWidth = 30

const (
	paddingX    = 1
	valueColumn = 16
	maxHotkey   = 9
)

// section is a header followed by label/value rows
type section struct {
	header string
	items  []item
}

type item struct {
	label string
	value string
	style tcell.Style
	wide  bool // Label spans the pane, value sits at the right edge
}

// Overlay draws the diagnostic pane on the left edge
type Overlay struct {
	reg     *status.Registry
	names   []string
	visible bool
	scroll  int
	lines   int // Rows produced by the last Render, bounds scrolling
	height  int
}

// NewOverlay creates a visible overlay listing scene names
func NewOverlay(reg *status.Registry, names []string) *Overlay {
	return &Overlay{reg: reg, names: names, visible: true}
}

func (o *Overlay) Visible() bool { return o.visible }

func (o *Overlay) SetVisible(v bool) { o.visible = v }

// Width returns the cells reserved by the pane, 0 when hidden
func (o *Overlay) Width() int {
	if !o.visible {
		return 0
	}
	return LeftPaneWidth
}

// Contains reports whether a cell lies over the visible pane
func (o *Overlay) Contains(x, _ int) bool {
	return o.visible && x >= 0 && x < LeftPaneWidth
}

// Scroll returns the current row offset
func (o *Overlay) Scroll() int { return o.scroll }

// SetScroll moves the pane by wheel steps, positive y scrolls toward the top
func (o *Overlay) SetScroll(_, y float64) {
	if y == 0 {
		return
	}
	step := int(math.Copysign(math.Max(1, math.Round(math.Abs(y))), y))
	o.scroll -= step
	o.clampScroll()
}

func (o *Overlay) clampScroll() {
	limit := max(0, o.lines-o.height)
	o.scroll = min(max(o.scroll, 0), limit)
}

// Render fills the pane and draws the sections
func (o *Overlay) Render(c render.Canvas) {
	if !o.visible {
		return
	}
	_, h := c.Size()
	pane := render.Rect{W: LeftPaneWidth, H: h}
	render.Fill(c, pane, ' ', render.StylePane)

	title := " PHYSICS TESTBED "
	render.DrawText(c, (LeftPaneWidth-len(title))/2, 0, LeftPaneWidth, title, render.StylePaneTitle)

	sections := o.sections()
	o.lines = 0
	for _, s := range sections {
		o.lines += 1 + len(s.items) + 1
	}
	o.height = max(0, h-3)
	o.clampScroll()

	row := 0
	y := 2
	put := func(draw func(y int)) {
		if row >= o.scroll && y < h-1 {
			draw(y)
			y++
		}
		row++
	}
	for _, s := range sections {
		put(func(y int) {
			render.DrawText(c, paddingX, y, LeftPaneWidth, s.header, render.StylePaneTitle)
		})
		for _, it := range s.items {
			put(func(y int) {
				if it.wide {
					render.DrawText(c, paddingX+1, y, LeftPaneWidth-paddingX-2, it.label, it.style)
					render.DrawText(c, LeftPaneWidth-paddingX-1, y, LeftPaneWidth, it.value, it.style)
					return
				}
				render.DrawText(c, paddingX+1, y, valueColumn, it.label, render.StylePaneLabel)
				render.DrawText(c, valueColumn, y, LeftPaneWidth-paddingX, it.value, it.style)
			})
		}
		put(func(int) {})
	}

	if o.lines > o.height && h > 0 {
		info := fmt.Sprintf("[%d/%d]", o.scroll+1, o.lines-o.height+1)
		render.DrawText(c, LeftPaneWidth-len(info)-paddingX, h-1, LeftPaneWidth, info, render.StylePaneLabel)
	}
}

func onOff(v bool) (string, tcell.Style) {
	if v {
		return "on", render.StylePaneOn
	}
	return "off", render.StylePaneOff
}

func (o *Overlay) toggle(label, key string) item {
	v, style := onOff(o.reg.Bools.Get(key).Load())
	return item{label: label, value: v, style: style}
}

func (o *Overlay) value(label, v string) item {
	return item{label: label, value: v, style: render.StylePaneValue}
}

func (o *Overlay) sections() []section {
	r := o.reg
	current := int(r.Ints.Get(status.KeySceneIndex).Load())

	scenes := section{header: "Scenes"}
	for i, name := range o.names {
		key := " "
		if i < maxHotkey {
			key = strconv.Itoa(i + 1)
		}
		it := item{label: key + " " + name, style: render.StylePaneLabel, wide: true}
		if i == current {
			it.label = key + ">" + name
			it.style = render.StylePaneMark
			it.value = "<"
		}
		scenes.items = append(scenes.items, it)
	}

	state := "paused"
	stateStyle := render.StylePaneOff
	if r.Bools.Get(status.KeyRunning).Load() {
		state, stateStyle = "running", render.StylePaneOn
	}
	if r.Bools.Get(status.KeySingleStep).Load() {
		state, stateStyle = "single step", render.StylePaneMark
	}

	step := r.Floats.Get(status.KeyTimeStep).Get()
	rate := "-"
	if step > 0 {
		rate = fmt.Sprintf("%.0f Hz", 1/step)
	}

	sim := section{header: "Simulation", items: []item{
		{label: "State", value: state, style: stateStyle},
		o.value("Physics rate", rate),
		o.value("Time step", fmt.Sprintf("%.2f ms", step*1000)),
		o.value("Bodies", strconv.FormatInt(r.Ints.Get(status.KeyBodies).Load(), 10)),
		o.value("Total steps", strconv.FormatInt(r.Ints.Get(status.KeyStepsTotal).Load(), 10)),
	}}

	perf := section{header: "Frame", items: []item{
		o.value("FPS", fmt.Sprintf("%.1f", r.Floats.Get(status.KeyFPS).Get())),
		o.value("Frame time", fmt.Sprintf("%.2f ms", r.Floats.Get(status.KeyFrameMs).Get())),
		o.value("Physics time", fmt.Sprintf("%.2f ms", r.Floats.Get(status.KeyPhysicsMs).Get())),
		o.value("Steps/frame", strconv.FormatInt(r.Ints.Get(status.KeyStepsFrame).Load(), 10)),
		o.value("Accumulator", fmt.Sprintf("%.2f ms", r.Floats.Get(status.KeyAccumulator).Get()*1000)),
		o.value("Interp", fmt.Sprintf("%.3f", r.Floats.Get(status.KeyFactor).Get())),
	}}

	toggles := section{header: "Display", items: []item{
		o.toggle("Shadows", status.KeyShadows),
		o.toggle("Contacts", status.KeyContacts),
		o.toggle("VSync", status.KeyVSync),
		o.toggle("Audio", status.KeyAudio),
	}}

	help := section{header: "Keys", items: []item{
		o.value("space", "pause"),
		o.value("n", "single step"),
		o.value("r", "restart"),
		o.value("tab 1-9", "scene"),
		o.value("[ ]", "rate"),
		o.value("s c v", "toggles"),
		o.value("g", "hide pane"),
		o.value("drag wheel", "camera"),
		o.value("q esc", "quit"),
	}}

	return []section{scenes, sim, perf, toggles, help}
}
