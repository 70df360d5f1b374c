package recording

import (
	"slices"
	"unicode/utf8"

	"github.com/gogpu/turtle"
)

// Recorder collects the commands of every canvas it creates.
type Recorder struct {
	commands []Command

	// DrawErr, if set, is returned by every drawing call after it has
	// been recorded.
	DrawErr error

	// SaveErr, if set, is returned by Save after it has been recorded.
	SaveErr error
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{commands: make([]Command, 0, 64)}
}

// NewCanvas is a turtle.CanvasFactory that records into r.
func (r *Recorder) NewCanvas(size int, background turtle.Color) (turtle.Canvas, error) {
	r.record(Command{Op: OpNew, Size: size, Color: background})
	return &canvas{rec: r}, nil
}

// Commands returns a copy of the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	return slices.Clone(r.commands)
}

// Ops returns the recorded commands with the given operation.
func (r *Recorder) Ops(op Op) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Last returns the most recent command.
func (r *Recorder) Last() (Command, bool) {
	if len(r.commands) == 0 {
		return Command{}, false
	}
	return r.commands[len(r.commands)-1], true
}

// Len returns the number of recorded commands.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Replay draws the commands recorded since the last OpNew onto dst.
// Save commands are skipped.
func (r *Recorder) Replay(dst turtle.Canvas) error {
	first := 0
	for i, c := range r.commands {
		if c.Op == OpNew {
			first = i + 1
		}
	}
	for _, c := range r.commands[first:] {
		var err error
		switch c.Op {
		case OpLine:
			err = dst.Line(c.From, c.To, c.Pen)
		case OpArc:
			err = dst.Arc(c.Box, c.Start, c.End, c.Pen)
		case OpEllipse:
			err = dst.FillEllipse(c.Box, c.Color)
		case OpText:
			err = dst.Text(c.From, c.Text, c.Font, c.Color)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Recorder) record(c Command) {
	r.commands = append(r.commands, c)
}

// canvas is the turtle.Canvas handed out by NewCanvas.
type canvas struct {
	rec *Recorder
}

func (c *canvas) Line(from, to turtle.Vec2D, pen turtle.Pen) error {
	c.rec.record(Command{Op: OpLine, From: from, To: to, Pen: pen})
	return c.rec.DrawErr
}

func (c *canvas) Arc(box turtle.Box, start, end float64, pen turtle.Pen) error {
	c.rec.record(Command{Op: OpArc, Box: box, Start: start, End: end, Pen: pen})
	return c.rec.DrawErr
}

func (c *canvas) FillEllipse(box turtle.Box, fill turtle.Color) error {
	c.rec.record(Command{Op: OpEllipse, Box: box, Color: fill})
	return c.rec.DrawErr
}

// MeasureText estimates 0.6em per rune and a 1.2em line height.
func (c *canvas) MeasureText(s string, font turtle.Font) (w, h float64) {
	return 0.6 * font.Size * float64(utf8.RuneCountInString(s)), 1.2 * font.Size
}

func (c *canvas) Text(at turtle.Vec2D, s string, font turtle.Font, fill turtle.Color) error {
	c.rec.record(Command{Op: OpText, From: at, Text: s, Font: font, Color: fill})
	return c.rec.DrawErr
}

func (c *canvas) Save(path string) error {
	c.rec.record(Command{Op: OpSave, Path: path})
	return c.rec.SaveErr
}
