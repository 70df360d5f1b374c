package turtle

// Conventional short names for turtle commands.

// Fd is Forward.
func (t *Turtle) Fd(d float64) { t.Forward(d) }

// Back is Backward.
func (t *Turtle) Back(d float64) { t.Backward(d) }

// Bk is Backward.
func (t *Turtle) Bk(d float64) { t.Backward(d) }

// Rt is Right.
func (t *Turtle) Rt(angle float64) { t.Right(angle) }

// Lt is Left.
func (t *Turtle) Lt(angle float64) { t.Left(angle) }

// SetPos is Goto.
func (t *Turtle) SetPos(x, y float64) { t.Goto(x, y) }

// SetPosition is Goto.
func (t *Turtle) SetPosition(x, y float64) { t.Goto(x, y) }

// Seth is SetHeading.
func (t *Turtle) Seth(angle float64) { t.SetHeading(angle) }

// Pd is PenDown.
func (t *Turtle) Pd() { t.PenDown() }

// Down is PenDown.
func (t *Turtle) Down() { t.PenDown() }

// Pu is PenUp.
func (t *Turtle) Pu() { t.PenUp() }

// Up is PenUp.
func (t *Turtle) Up() { t.PenUp() }

// Ht is HideTurtle.
func (t *Turtle) Ht() { t.HideTurtle() }

// St is ShowTurtle.
func (t *Turtle) St() { t.ShowTurtle() }

// Pos is Position.
func (t *Turtle) Pos() Vec2D { return t.Position() }
