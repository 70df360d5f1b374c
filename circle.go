package turtle

import "math"

// arcEpsilon is the tolerance, in degrees, for treating an arc as a full
// circle.
const arcEpsilon = 1e-3

// Circle draws a full circle of the given radius. The circle starts at
// the turtle, tangent to its heading, with its center radius units to the
// turtle's left; a negative radius puts the center on the right.
func (t *Turtle) Circle(radius float64) {
	t.CircleExtent(radius, 360)
}

// CircleExtent draws an arc of extent degrees along a circle of the given
// radius, as in Circle, and leaves the turtle at the end of the arc facing
// along it.
func (t *Turtle) CircleExtent(radius, extent float64) {
	g := arcFor(t.pos, t.heading, radius, extent)
	if t.penDown {
		// Canvas arcs run clockwise in pixel space, i.e. counterclockwise
		// in turtle space, so a backward arc swaps its limits.
		lo, hi := g.start, g.end
		if extent < 0 {
			lo, hi = hi, lo
		}
		t.check(t.canvas.Arc(t.arcBox(g.center, radius), -hi, -lo, t.pen()))
	}
	t.heading = normAngle(t.heading + extent)
	t.pos = g.center.Add(Direction(g.end).Mul(math.Abs(radius)))
}

// arcGeometry is a circle arc in Cartesian terms: start and end are the
// angles of the turtle's first and last position seen from center, in
// [0, 360). The turtle moves counterclockwise from start to end for a
// positive extent and clockwise for a negative one.
type arcGeometry struct {
	center     Vec2D
	start, end float64
}

func arcFor(pos Vec2D, heading, radius, extent float64) arcGeometry {
	start := normAngle(heading - 90)
	if radius < 0 {
		// The center is on the right, so the turtle sits on the other side.
		start = normAngle(heading + 90)
	}
	end := normAngle(start + extent)

	// Equal start and end would render as an empty arc.
	if math.Abs(extent) >= 360-arcEpsilon && math.Abs(start-end) < arcEpsilon {
		if extent < 0 {
			end += arcEpsilon
		} else {
			end -= arcEpsilon
		}
	}

	return arcGeometry{
		center: pos.Add(Direction(heading + 90).Mul(radius)),
		start:  start,
		end:    end,
	}
}

// arcBox returns the pixel-space bounding box of the circle around center.
// The radius may be negative, so the corners are reordered after the Y flip.
func (t *Turtle) arcBox(center Vec2D, radius float64) Box {
	r := Vec2D{X: radius, Y: radius}
	return BoxOf(t.toPixel(center.Sub(r)), t.toPixel(center.Add(r)))
}
