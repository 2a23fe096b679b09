package render

import "github.com/gdamore/tcell/v2"

// Canvas is the cell surface scenes and overlays draw on
// tcell.Screen satisfies it
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (int, int)
}

// Rect is a cell rectangle, W and H exclusive
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports a zero-area rect
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Center returns the middle cell
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Clipped restricts drawing on a canvas to a rect
type Clipped struct {
	Canvas
	Bounds Rect
}

// Clip wraps c so writes outside bounds are dropped
func Clip(c Canvas, bounds Rect) *Clipped {
	return &Clipped{Canvas: c, Bounds: bounds}
}

// SetContent writes the cell when inside bounds
func (c *Clipped) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if !c.Bounds.Contains(x, y) {
		return
	}
	c.Canvas.SetContent(x, y, primary, combining, style)
}

// Fill paints every cell of r
func Fill(c Canvas, r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c.SetContent(x, y, ch, nil, style)
		}
	}
}

// DrawText writes s left to right starting at x, y and returns the column after the last rune
// Text stops at maxX when maxX > 0
func DrawText(c Canvas, x, y, maxX int, s string, style tcell.Style) int {
	for _, r := range s {
		if maxX > 0 && x >= maxX {
			break
		}
		c.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// DrawLine rasterizes a segment between two cells with Bresenham
func DrawLine(c Canvas, x0, y0, x1, y1 int, ch rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		c.SetContent(x0, y0, ch, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
