package turtle

// Position returns the turtle's location.
func (t *Turtle) Position() Vec2D {
	return t.pos
}

// XCor returns the turtle's x coordinate.
func (t *Turtle) XCor() float64 {
	return t.pos.X
}

// YCor returns the turtle's y coordinate.
func (t *Turtle) YCor() float64 {
	return t.pos.Y
}

// Heading returns the turtle's heading in degrees. Relative turns are not
// normalized, so the value may fall outside [0, 360).
func (t *Turtle) Heading() float64 {
	return t.heading
}

// Size returns the canvas width and height in pixels.
func (t *Turtle) Size() int {
	return t.size
}

// WindowWidth returns the canvas width in pixels.
func (t *Turtle) WindowWidth() int {
	return t.size
}

// WindowHeight returns the canvas height in pixels.
func (t *Turtle) WindowHeight() int {
	return t.size
}

// Towards returns the angle, in [0, 360) and relative to the current
// heading, of the line from the turtle to target.
func (t *Turtle) Towards(target Coordinate) (float64, error) {
	p, err := resolve(target)
	if err != nil {
		return 0, err
	}
	return normAngle(p.Sub(t.pos).Angle() - t.heading), nil
}

// Distance returns the distance from the turtle to target.
func (t *Turtle) Distance(target Coordinate) (float64, error) {
	p, err := resolve(target)
	if err != nil {
		return 0, err
	}
	return p.Sub(t.pos).Abs(), nil
}
