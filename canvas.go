package turtle

// Canvas is the raster surface a Turtle draws on.
//
// All coordinates are in pixel space: origin at the top-left corner,
// X grows right, Y grows down. The turtle performs every conversion from
// its Cartesian plane before calling a Canvas.
//
// The default implementation renders with github.com/gogpu/gg
// (see [NewRasterCanvas]); package recording provides one that only
// records calls.
type Canvas interface {
	// Line strokes a straight segment.
	Line(from, to Vec2D, pen Pen) error

	// Arc strokes the part of the ellipse inscribed in box that lies
	// between start and end. Angles are in degrees, measured clockwise
	// from the positive X axis in pixel space; the arc runs clockwise
	// from start to end.
	Arc(box Box, start, end float64, pen Pen) error

	// FillEllipse fills the ellipse inscribed in box.
	FillEllipse(box Box, fill Color) error

	// MeasureText returns the width and line height of s in font.
	MeasureText(s string, font Font) (w, h float64)

	// Text draws s with its top-left corner at at.
	Text(at Vec2D, s string, font Font, fill Color) error

	// Save writes the canvas to path.
	Save(path string) error
}

// CanvasFactory creates a blank size×size canvas filled with background.
type CanvasFactory func(size int, background Color) (Canvas, error)

// Pen describes how lines and arcs are stroked.
type Pen struct {
	Color Color
	Width int
}

// Box is an axis-aligned pixel-space rectangle with Min as the top-left
// corner and Max as the bottom-right corner.
type Box struct {
	Min, Max Vec2D
}

// BoxOf returns the box spanned by two corners in any order.
func BoxOf(a, b Vec2D) Box {
	return Box{
		Min: Vec2D{X: min(a.X, b.X), Y: min(a.Y, b.Y)},
		Max: Vec2D{X: max(a.X, b.X), Y: max(a.Y, b.Y)},
	}
}

// Center returns the midpoint of the box.
func (b Box) Center() Vec2D {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the width and height of the box.
func (b Box) Size() (w, h float64) {
	return b.Max.X - b.Min.X, b.Max.Y - b.Min.Y
}

// Font requests a font face for [Turtle.Write].
type Font struct {
	// Name is a family name ("Arial") or a path to a font file.
	Name string
	// Size is the pixel size.
	Size float64
	// Style is "normal", "bold", "italic" or "bold italic".
	Style string
}

// DefaultFont is used by Write when no font is given.
var DefaultFont = Font{Name: "Arial", Size: 8, Style: "normal"}

// Align positions the lines of multi-line text written by
// [Turtle.Write]. The text block itself always starts at the turtle.
type Align int

const (
	// AlignLeft aligns every line to the left edge of the block.
	AlignLeft Align = iota
	// AlignCenter centers every line within the block.
	AlignCenter
	// AlignRight aligns every line to the right edge of the block.
	AlignRight
)

// String returns the lower-case name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// anchor returns the fraction of a line's spare width placed before it.
func (a Align) anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}
