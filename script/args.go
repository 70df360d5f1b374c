package script

import (
	"fmt"
	"strconv"

	"github.com/gogpu/turtle"
)

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: not a number: %q", ErrArguments, s)
	}
	return v, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := parseFloat(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: not an integer: %q", ErrArguments, s)
	}
	return v, nil
}

// parseColor reads a color from one word or three 0-255 components.
func parseColor(args []string) (turtle.Color, error) {
	switch len(args) {
	case 1:
		return turtle.Named(args[0]), nil
	case 3:
		var c [3]uint8
		for i, a := range args {
			v, err := strconv.ParseUint(a, 10, 8)
			if err != nil {
				return turtle.Color{}, fmt.Errorf("%w: color component %q not in 0-255", ErrArguments, a)
			}
			c[i] = uint8(v)
		}
		return turtle.RGB(c[0], c[1], c[2]), nil
	default:
		return turtle.Color{}, fmt.Errorf("%w: color needs 1 or 3 values, got %d", ErrArguments, len(args))
	}
}

func parseAlign(s string) (turtle.Align, error) {
	switch fold.String(s) {
	case "left":
		return turtle.AlignLeft, nil
	case "center", "centre":
		return turtle.AlignCenter, nil
	case "right":
		return turtle.AlignRight, nil
	default:
		return turtle.AlignLeft, fmt.Errorf("%w: align must be left, center or right, got %q", ErrArguments, s)
	}
}
