package script

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/gogpu/turtle"
)

// command is one entry of the command table. max < 0 means no upper
// bound on the argument count.
type command struct {
	min, max int
	run      func(r *Runner, args []string) error
}

func (c command) arity() string {
	switch {
	case c.min == c.max:
		return strconv.Itoa(c.min) + " argument(s)"
	case c.max < 0:
		return fmt.Sprintf("at least %d argument(s)", c.min)
	default:
		return fmt.Sprintf("%d to %d arguments", c.min, c.max)
	}
}

// aliases maps conventional short names to canonical command names.
var aliases = map[string]string{
	"fd":          "forward",
	"back":        "backward",
	"bk":          "backward",
	"rt":          "right",
	"lt":          "left",
	"setpos":      "goto",
	"setposition": "goto",
	"seth":        "setheading",
	"pd":          "pendown",
	"down":        "pendown",
	"pu":          "penup",
	"up":          "penup",
	"ht":          "hideturtle",
	"st":          "showturtle",
	"pos":         "position",
}

var commands = map[string]command{
	"reset": {0, 1, func(r *Runner, args []string) error {
		size := turtle.DefaultSize
		if len(args) == 1 {
			n, err := parseInt(args[0])
			if err != nil {
				return err
			}
			size = n
		}
		return r.t.Reset(size)
	}},
	"clear": {0, 0, func(r *Runner, _ []string) error { return r.t.Clear() }},
	"save":  {0, 1, func(r *Runner, args []string) error { return r.t.Save(optional(args, 0)) }},
	"done":  {0, 1, func(r *Runner, args []string) error { return r.t.Done(optional(args, 0)) }},

	"forward":    move((*turtle.Turtle).Forward),
	"backward":   move((*turtle.Turtle).Backward),
	"right":      move((*turtle.Turtle).Right),
	"left":       move((*turtle.Turtle).Left),
	"setx":       move((*turtle.Turtle).SetX),
	"sety":       move((*turtle.Turtle).SetY),
	"setheading": move((*turtle.Turtle).SetHeading),
	"goto": {2, 2, func(r *Runner, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		r.t.Goto(v[0], v[1])
		return nil
	}},
	"home": {0, 0, func(r *Runner, _ []string) error { r.t.Home(); return nil }},

	// circle radius [extent [steps]]; steps is accepted and ignored.
	"circle": {1, 3, func(r *Runner, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		extent := 360.0
		if len(v) > 1 {
			extent = v[1]
		}
		r.t.CircleExtent(v[0], extent)
		return nil
	}},

	// dot [size [color]]
	"dot": {0, 4, func(r *Runner, args []string) error {
		size := float64(turtle.DefaultDotSize)
		if len(args) > 0 {
			f, err := parseFloat(args[0])
			if err != nil {
				return err
			}
			size = f
		}
		var c turtle.Color
		if len(args) > 1 {
			var err error
			if c, err = parseColor(args[1:]); err != nil {
				return err
			}
		}
		return r.t.Dot(size, c)
	}},

	"pendown":    do((*turtle.Turtle).PenDown),
	"penup":      do((*turtle.Turtle).PenUp),
	"hideturtle": do((*turtle.Turtle).HideTurtle),
	"showturtle": do((*turtle.Turtle).ShowTurtle),
	"isdown":     show((*turtle.Turtle).IsDown),
	"isvisible":  show((*turtle.Turtle).IsVisible),

	"pensize": {0, 1, func(r *Runner, args []string) error {
		if len(args) == 0 {
			return r.printf("%d\n", r.t.PenSize())
		}
		w, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		return r.t.SetPenSize(w)
	}},
	"pencolor": {0, 3, func(r *Runner, args []string) error {
		if len(args) == 0 {
			return r.printf("%s\n", r.t.PenColor())
		}
		c, err := parseColor(args)
		if err != nil {
			return err
		}
		r.t.SetPenColor(c)
		return nil
	}},

	// Accepted for compatibility.
	"speed": {0, 1, func(*Runner, []string) error { return nil }},
	"color": {0, 3, func(*Runner, []string) error { return nil }},

	"position":      show((*turtle.Turtle).Position),
	"xcor":          showFloat((*turtle.Turtle).XCor),
	"ycor":          showFloat((*turtle.Turtle).YCor),
	"heading":       showFloat((*turtle.Turtle).Heading),
	"window_width":  show((*turtle.Turtle).WindowWidth),
	"window_height": show((*turtle.Turtle).WindowHeight),

	"towards":  measure((*turtle.Turtle).Towards),
	"distance": measure((*turtle.Turtle).Distance),

	// write text [move [align [font [size [style]]]]]
	"write": {1, 6, func(r *Runner, args []string) error {
		var (
			move  bool
			align = turtle.AlignLeft
			font  = turtle.DefaultFont
			err   error
		)
		if len(args) > 1 {
			if move, err = strconv.ParseBool(args[1]); err != nil {
				return fmt.Errorf("%w: move: %q", ErrArguments, args[1])
			}
		}
		if len(args) > 2 {
			if align, err = parseAlign(args[2]); err != nil {
				return err
			}
		}
		if len(args) > 3 {
			font.Name = args[3]
		}
		if len(args) > 4 {
			if font.Size, err = parseFloat(args[4]); err != nil {
				return err
			}
		}
		if len(args) > 5 {
			font.Style = args[5]
		}
		r.t.Write(args[0], move, align, font)
		return nil
	}},
}

// Commands returns the canonical command names in sorted order.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Aliases returns the alias table as alias → canonical name.
func Aliases() map[string]string {
	out := make(map[string]string, len(aliases))
	for k, v := range aliases {
		out[k] = v
	}
	return out
}

func move(f func(*turtle.Turtle, float64)) command {
	return command{1, 1, func(r *Runner, args []string) error {
		v, err := parseFloat(args[0])
		if err != nil {
			return err
		}
		f(r.t, v)
		return nil
	}}
}

func do(f func(*turtle.Turtle)) command {
	return command{0, 0, func(r *Runner, _ []string) error {
		f(r.t)
		return nil
	}}
}

func show[T any](f func(*turtle.Turtle) T) command {
	return command{0, 0, func(r *Runner, _ []string) error {
		return r.printf("%v\n", f(r.t))
	}}
}

func showFloat(f func(*turtle.Turtle) float64) command {
	return command{0, 0, func(r *Runner, _ []string) error {
		return r.printf("%.2f\n", f(r.t))
	}}
}

func measure(f func(*turtle.Turtle, turtle.Coordinate) (float64, error)) command {
	return command{1, -1, func(r *Runner, args []string) error {
		v, err := parseFloats(args)
		if err != nil {
			return err
		}
		target, err := turtle.ParseCoordinate(v)
		if err != nil {
			return err
		}
		res, err := f(r.t, target)
		if err != nil {
			return err
		}
		return r.printf("%.2f\n", res)
	}}
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
