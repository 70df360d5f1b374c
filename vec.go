package turtle

import (
	"fmt"
	"math"
)

// Vec2D is a 2D point or displacement in the turtle's Cartesian plane.
// Y grows upward and angles are measured counterclockwise from the
// positive X axis, in degrees.
type Vec2D struct {
	X, Y float64
}

// V is a convenience function to create a Vec2D.
func V(x, y float64) Vec2D {
	return Vec2D{X: x, Y: y}
}

// Direction returns the unit vector pointing at angle degrees.
func Direction(angle float64) Vec2D {
	s, c := math.Sincos(radians(angle))
	return Vec2D{X: c, Y: s}
}

// Add returns the sum of two vectors.
func (v Vec2D) Add(w Vec2D) Vec2D {
	return Vec2D{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2D) Sub(w Vec2D) Vec2D {
	return Vec2D{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vec2D) Mul(s float64) Vec2D {
	return Vec2D{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2D) Dot(w Vec2D) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Neg returns the negation of the vector.
func (v Vec2D) Neg() Vec2D {
	return Vec2D{X: -v.X, Y: -v.Y}
}

// Abs returns the Euclidean magnitude of the vector.
func (v Vec2D) Abs() float64 {
	return math.Hypot(v.X, v.Y)
}

// Rotate returns v rotated counterclockwise by angle degrees.
func (v Vec2D) Rotate(angle float64) Vec2D {
	perp := Vec2D{X: -v.Y, Y: v.X}
	s, c := math.Sincos(radians(angle))
	return v.Mul(c).Add(perp.Mul(s))
}

// Angle returns the direction of v in degrees, normalized to [0, 360).
// The zero vector has angle 0.
func (v Vec2D) Angle() float64 {
	return normAngle(degrees(math.Atan2(v.Y, v.X)))
}

// Approx reports whether v and w differ by at most eps on each axis.
func (v Vec2D) Approx(w Vec2D, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

// String formats the vector with two decimals, e.g. "(100.00,0.00)".
func (v Vec2D) String() string {
	return fmt.Sprintf("(%.2f,%.2f)", v.X, v.Y)
}

func (v Vec2D) coordinate() Vec2D { return v }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }

// normAngle maps a into [0, 360) using floored modulo.
func normAngle(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -tiny + 360 rounds to 360.
	if a >= 360 {
		a = 0
	}
	return a
}
