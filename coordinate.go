package turtle

import "fmt"

// Coordinate is a target for [Turtle.Towards] and [Turtle.Distance].
// It is implemented by [Vec2D] and by the value returned from [XY].
type Coordinate interface {
	coordinate() Vec2D
}

type xy struct{ x, y float64 }

func (p xy) coordinate() Vec2D { return Vec2D{X: p.x, Y: p.y} }

// XY returns the coordinate (x, y).
func XY(x, y float64) Coordinate {
	return xy{x: x, y: y}
}

// ParseCoordinate builds a Coordinate from exactly two numbers.
func ParseCoordinate(args []float64) (Coordinate, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: want 2 values, got %d", ErrInvalidCoordinate, len(args))
	}
	return XY(args[0], args[1]), nil
}

func resolve(c Coordinate) (Vec2D, error) {
	if c == nil {
		return Vec2D{}, ErrInvalidCoordinate
	}
	return c.coordinate(), nil
}
