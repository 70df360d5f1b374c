package turtle

import (
	"fmt"
	"image"
)

// Turtle is a cursor with a position, a heading and a pen that draws on
// a square raster canvas.
//
// The turtle lives in a Cartesian plane whose origin is the center of the
// canvas: X grows right, Y grows up, and headings are degrees
// counterclockwise from the positive X axis. Relative turns are not
// normalized, so Heading may leave [0, 360).
//
// Drawing errors reported by the canvas do not stop the turtle. The first
// one is kept and returned by Err and Save.
//
// A Turtle is not safe for concurrent use.
type Turtle struct {
	size    int
	pos     Vec2D
	heading float64

	penSize  int
	penColor Color
	penDown  bool
	visible  bool

	background Color
	output     string
	factory    CanvasFactory
	canvas     Canvas

	err error
}

// New creates a turtle at the origin facing east with a blank canvas.
//
//	t, err := turtle.New()
//	if err != nil {
//	    return err
//	}
//	t.Forward(100)
//	err = t.Save("line.png")
func New(opts ...Option) (*Turtle, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	factory := o.factory
	if factory == nil {
		factory = NewRasterCanvas
	}

	t := &Turtle{
		background: o.background,
		output:     o.output,
		factory:    factory,
	}
	if err := t.Reset(o.size); err != nil {
		return nil, err
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Turtle {
	t, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Reset restores the default state on a fresh size×size canvas: origin,
// heading 0, pen down, pen size 1, black pen, hidden.
func (t *Turtle) Reset(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	canvas, err := t.factory(size, t.background)
	if err != nil {
		return err
	}

	t.size = size
	t.pos = Vec2D{}
	t.heading = 0
	t.penSize = 1
	t.penColor = Black
	t.penDown = true
	t.visible = false
	t.canvas = canvas
	t.err = nil

	Logger().Debug("turtle: reset", "size", size)
	return nil
}

// Clear replaces the canvas with a blank one of the same size. Position,
// heading and pen are unchanged.
func (t *Turtle) Clear() error {
	canvas, err := t.factory(t.size, t.background)
	if err != nil {
		return err
	}
	t.canvas = canvas
	t.err = nil
	return nil
}

// Save writes the canvas to path, or to the configured output path when
// path is empty. The image format follows the file extension.
//
// If an earlier drawing command failed, that error is returned instead.
func (t *Turtle) Save(path string) error {
	if t.err != nil {
		return t.err
	}
	if path == "" {
		path = t.output
	}
	if err := t.canvas.Save(path); err != nil {
		return err
	}
	Logger().Info("turtle: saved", "path", path, "size", t.size)
	return nil
}

// Done is Save under its conventional name.
func (t *Turtle) Done(path string) error {
	return t.Save(path)
}

// Err returns the first error reported by the canvas since the last
// Reset or Clear.
func (t *Turtle) Err() error {
	return t.err
}

// Canvas returns the canvas the turtle currently draws on.
func (t *Turtle) Canvas() Canvas {
	return t.canvas
}

// Image returns the rendered canvas, or nil if the canvas has no pixels
// (for example a recording canvas).
func (t *Turtle) Image() image.Image {
	if c, ok := t.canvas.(interface{ Image() image.Image }); ok {
		return c.Image()
	}
	return nil
}

// toPixel maps a Cartesian point to pixel space.
func (t *Turtle) toPixel(p Vec2D) Vec2D {
	half := float64(t.size) / 2
	return Vec2D{X: half + p.X, Y: half - p.Y}
}

func (t *Turtle) pen() Pen {
	return Pen{Color: t.penColor, Width: t.penSize}
}

// check keeps the first drawing error.
func (t *Turtle) check(err error) {
	if err != nil && t.err == nil {
		Logger().Debug("turtle: draw failed", "err", err)
		t.err = err
	}
}
