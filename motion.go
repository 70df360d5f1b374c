package turtle

// Forward moves the turtle d units along its heading.
func (t *Turtle) Forward(d float64) {
	t.moveTo(t.pos.Add(Direction(t.heading).Mul(d)))
}

// Backward moves the turtle d units against its heading.
func (t *Turtle) Backward(d float64) {
	t.Forward(-d)
}

// Right turns the turtle clockwise by angle degrees.
func (t *Turtle) Right(angle float64) {
	t.heading -= angle
}

// Left turns the turtle counterclockwise by angle degrees.
func (t *Turtle) Left(angle float64) {
	t.heading += angle
}

// Goto moves the turtle to (x, y) without changing its heading.
func (t *Turtle) Goto(x, y float64) {
	t.moveTo(Vec2D{X: x, Y: y})
}

// SetX moves the turtle horizontally to x.
func (t *Turtle) SetX(x float64) {
	t.moveTo(Vec2D{X: x, Y: t.pos.Y})
}

// SetY moves the turtle vertically to y.
func (t *Turtle) SetY(y float64) {
	t.moveTo(Vec2D{X: t.pos.X, Y: y})
}

// SetHeading points the turtle at angle degrees.
func (t *Turtle) SetHeading(angle float64) {
	t.heading = angle
}

// Home moves the turtle to the origin and faces it east.
func (t *Turtle) Home() {
	t.Goto(0, 0)
	t.SetHeading(0)
}

// moveTo draws a line to p if the pen is down and moves there.
func (t *Turtle) moveTo(p Vec2D) {
	if t.penDown {
		t.check(t.canvas.Line(t.toPixel(t.pos), t.toPixel(p), t.pen()))
	}
	t.pos = p
}
