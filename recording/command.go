package recording

import (
	"fmt"
	"math"

	"github.com/gogpu/turtle"
)

// Op identifies the canvas call a Command records.
type Op uint8

const (
	OpNew     Op = iota // A new blank canvas
	OpLine              // Canvas.Line
	OpArc               // Canvas.Arc
	OpEllipse           // Canvas.FillEllipse
	OpText              // Canvas.Text
	OpSave              // Canvas.Save
)

var opNames = [...]string{
	OpNew:     "New",
	OpLine:    "Line",
	OpArc:     "Arc",
	OpEllipse: "Ellipse",
	OpText:    "Text",
	OpSave:    "Save",
}

// String returns the name of the operation.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return "Unknown"
}

// Command is one recorded canvas call. Only the fields relevant to Op are
// set.
type Command struct {
	Op Op

	// Size is the canvas size (OpNew).
	Size int

	// From and To are the endpoints of a line (OpLine). From is also the
	// top-left corner of text (OpText).
	From, To turtle.Vec2D

	// Box bounds an arc or ellipse (OpArc, OpEllipse).
	Box turtle.Box

	// Start and End are the arc angles in canvas convention (OpArc).
	Start, End float64

	// Pen strokes lines and arcs (OpLine, OpArc).
	Pen turtle.Pen

	// Color is the background (OpNew) or fill (OpEllipse, OpText).
	Color turtle.Color

	// Text and Font describe drawn text (OpText).
	Text string
	Font turtle.Font

	// Path is the destination file (OpSave).
	Path string
}

// Sweep returns the clockwise span in degrees, in [0, 360), covered by an
// arc command.
func (c Command) Sweep() float64 {
	return math.Mod(math.Mod(c.End-c.Start, 360)+360, 360)
}

// String returns a compact, human-readable form of the command.
func (c Command) String() string {
	switch c.Op {
	case OpNew:
		return fmt.Sprintf("New size=%d background=%s", c.Size, c.Color)
	case OpLine:
		return fmt.Sprintf("Line %s-%s color=%s width=%d", c.From, c.To, c.Pen.Color, c.Pen.Width)
	case OpArc:
		return fmt.Sprintf("Arc box=%s-%s start=%.3f end=%.3f color=%s width=%d",
			c.Box.Min, c.Box.Max, c.Start, c.End, c.Pen.Color, c.Pen.Width)
	case OpEllipse:
		return fmt.Sprintf("Ellipse box=%s-%s fill=%s", c.Box.Min, c.Box.Max, c.Color)
	case OpText:
		return fmt.Sprintf("Text %q at=%s font=%s/%g fill=%s", c.Text, c.From, c.Font.Name, c.Font.Size, c.Color)
	case OpSave:
		return fmt.Sprintf("Save %s", c.Path)
	default:
		return c.Op.String()
	}
}
