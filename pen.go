package turtle

import (
	"fmt"
	"math"
)

// PenDown makes subsequent motion draw.
func (t *Turtle) PenDown() {
	t.penDown = true
}

// PenUp makes subsequent motion move without drawing.
func (t *Turtle) PenUp() {
	t.penDown = false
}

// IsDown reports whether the pen is down.
func (t *Turtle) IsDown() bool {
	return t.penDown
}

// PenSize returns the stroke width in pixels.
func (t *Turtle) PenSize() int {
	return t.penSize
}

// SetPenSize sets the stroke width, rounded to the nearest integer (ties
// to even) and at least 1.
func (t *Turtle) SetPenSize(width float64) error {
	if width < 0 || math.IsNaN(width) {
		return fmt.Errorf("%w: %g", ErrInvalidPenSize, width)
	}
	t.penSize = max(1, int(math.RoundToEven(width)))
	return nil
}

// PenColor returns the stroke color.
func (t *Turtle) PenColor() Color {
	return t.penColor
}

// SetPenColor sets the color used by lines, arcs, text and default dots.
func (t *Turtle) SetPenColor(c Color) {
	t.penColor = c
}

// HideTurtle marks the turtle hidden. The turtle itself is never drawn.
func (t *Turtle) HideTurtle() {
	t.visible = false
}

// ShowTurtle marks the turtle visible. The turtle itself is never drawn.
func (t *Turtle) ShowTurtle() {
	t.visible = true
}

// IsVisible reports whether the turtle is marked visible.
func (t *Turtle) IsVisible() bool {
	return t.visible
}

// SetSpeed is accepted for compatibility; drawing is never animated.
func (t *Turtle) SetSpeed(int) {}

// SetColor is accepted for compatibility and has no effect. Use
// SetPenColor to change the drawing color.
func (t *Turtle) SetColor(Color) {}

// Dot draws a filled circle of the given diameter centered on the turtle,
// whether or not the pen is down. A zero color uses the pen color.
func (t *Turtle) Dot(size float64, c Color) error {
	if size < 1 || math.IsNaN(size) {
		return fmt.Errorf("%w: %g", ErrInvalidDotSize, size)
	}
	if c.IsZero() {
		c = t.penColor
	}
	center := t.toPixel(t.pos)
	half := Vec2D{X: size / 2, Y: size / 2}
	t.check(t.canvas.FillEllipse(BoxOf(center.Sub(half), center.Add(half)), c))
	return nil
}
