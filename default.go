package turtle

import "sync"

// The package-level functions below drive one shared Turtle, created on
// first use. Programs that use them should flush the drawing explicitly:
//
//	func main() {
//	    defer turtle.Shutdown()
//	    turtle.Forward(100)
//	    turtle.Left(90)
//	    turtle.Circle(50)
//	}
//
// All of them are safe for concurrent use; calls are serialized.

var (
	defaultMu     sync.Mutex
	defaultTurtle *Turtle
)

// Init creates the shared turtle with the given options. It replaces a
// shared turtle that already exists without saving it.
func Init(opts ...Option) error {
	t, err := New(opts...)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultTurtle = t
	defaultMu.Unlock()
	Logger().Info("turtle: default turtle initialized", "size", t.Size())
	return nil
}

// Default returns the shared turtle, creating it if needed. The returned
// Turtle is not guarded by the package lock.
func Default() *Turtle {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return current()
}

// Shutdown saves the shared turtle to its output path and discards it.
// It does nothing if the shared turtle was never created.
func Shutdown() error {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultTurtle == nil {
		return nil
	}
	t := defaultTurtle
	defaultTurtle = nil
	Logger().Info("turtle: default turtle shut down")
	return t.Save("")
}

// current returns the shared turtle. defaultMu must be held.
func current() *Turtle {
	if defaultTurtle == nil {
		defaultTurtle = MustNew()
		Logger().Info("turtle: default turtle created", "size", defaultTurtle.Size())
	}
	return defaultTurtle
}

func do(f func(t *Turtle)) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	f(current())
}

func query[T any](f func(t *Turtle) T) T {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return f(current())
}

// Reset resets the shared turtle on a size×size canvas.
func Reset(size int) error { return query(func(t *Turtle) error { return t.Reset(size) }) }

// Clear clears the shared turtle's canvas.
func Clear() error { return query((*Turtle).Clear) }

// Save saves the shared turtle's canvas.
func Save(path string) error { return query(func(t *Turtle) error { return t.Save(path) }) }

// Done saves the shared turtle's canvas.
func Done(path string) error { return query(func(t *Turtle) error { return t.Done(path) }) }

// Forward moves the shared turtle forward.
func Forward(d float64) { do(func(t *Turtle) { t.Forward(d) }) }

// Backward moves the shared turtle backward.
func Backward(d float64) { do(func(t *Turtle) { t.Backward(d) }) }

// Right turns the shared turtle clockwise.
func Right(angle float64) { do(func(t *Turtle) { t.Right(angle) }) }

// Left turns the shared turtle counterclockwise.
func Left(angle float64) { do(func(t *Turtle) { t.Left(angle) }) }

// Goto moves the shared turtle to (x, y).
func Goto(x, y float64) { do(func(t *Turtle) { t.Goto(x, y) }) }

// SetX moves the shared turtle horizontally.
func SetX(x float64) { do(func(t *Turtle) { t.SetX(x) }) }

// SetY moves the shared turtle vertically.
func SetY(y float64) { do(func(t *Turtle) { t.SetY(y) }) }

// SetHeading sets the shared turtle's heading.
func SetHeading(angle float64) { do(func(t *Turtle) { t.SetHeading(angle) }) }

// Home returns the shared turtle to the origin.
func Home() { do((*Turtle).Home) }

// Circle draws a circle with the shared turtle.
func Circle(radius float64) { do(func(t *Turtle) { t.Circle(radius) }) }

// CircleExtent draws an arc with the shared turtle.
func CircleExtent(radius, extent float64) {
	do(func(t *Turtle) { t.CircleExtent(radius, extent) })
}

// Dot draws a dot with the shared turtle.
func Dot(size float64, c Color) error {
	return query(func(t *Turtle) error { return t.Dot(size, c) })
}

// PenDown puts the shared turtle's pen down.
func PenDown() { do((*Turtle).PenDown) }

// PenUp lifts the shared turtle's pen.
func PenUp() { do((*Turtle).PenUp) }

// IsDown reports whether the shared turtle's pen is down.
func IsDown() bool { return query((*Turtle).IsDown) }

// PenSize returns the shared turtle's pen size.
func PenSize() int { return query((*Turtle).PenSize) }

// SetPenSize sets the shared turtle's pen size.
func SetPenSize(width float64) error {
	return query(func(t *Turtle) error { return t.SetPenSize(width) })
}

// PenColor returns the shared turtle's pen color.
func PenColor() Color { return query((*Turtle).PenColor) }

// SetPenColor sets the shared turtle's pen color.
func SetPenColor(c Color) { do(func(t *Turtle) { t.SetPenColor(c) }) }

// HideTurtle marks the shared turtle hidden.
func HideTurtle() { do((*Turtle).HideTurtle) }

// ShowTurtle marks the shared turtle visible.
func ShowTurtle() { do((*Turtle).ShowTurtle) }

// IsVisible reports whether the shared turtle is marked visible.
func IsVisible() bool { return query((*Turtle).IsVisible) }

// Position returns the shared turtle's position.
func Position() Vec2D { return query((*Turtle).Position) }

// XCor returns the shared turtle's x coordinate.
func XCor() float64 { return query((*Turtle).XCor) }

// YCor returns the shared turtle's y coordinate.
func YCor() float64 { return query((*Turtle).YCor) }

// Heading returns the shared turtle's heading.
func Heading() float64 { return query((*Turtle).Heading) }

// WindowWidth returns the shared turtle's canvas width.
func WindowWidth() int { return query((*Turtle).WindowWidth) }

// WindowHeight returns the shared turtle's canvas height.
func WindowHeight() int { return query((*Turtle).WindowHeight) }

// SetSpeed has no effect.
func SetSpeed(speed int) { do(func(t *Turtle) { t.SetSpeed(speed) }) }

// SetColor has no effect.
func SetColor(c Color) { do(func(t *Turtle) { t.SetColor(c) }) }

// Towards returns the angle from the shared turtle to target.
func Towards(target Coordinate) (float64, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return current().Towards(target)
}

// Distance returns the distance from the shared turtle to target.
func Distance(target Coordinate) (float64, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	return current().Distance(target)
}

// Write draws text with the shared turtle.
func Write(text string, move bool, align Align, font Font) {
	do(func(t *Turtle) { t.Write(text, move, align, font) })
}

// Fd is Forward.
func Fd(d float64) { Forward(d) }

// Back is Backward.
func Back(d float64) { Backward(d) }

// Bk is Backward.
func Bk(d float64) { Backward(d) }

// Rt is Right.
func Rt(angle float64) { Right(angle) }

// Lt is Left.
func Lt(angle float64) { Left(angle) }

// SetPos is Goto.
func SetPos(x, y float64) { Goto(x, y) }

// SetPosition is Goto.
func SetPosition(x, y float64) { Goto(x, y) }

// Seth is SetHeading.
func Seth(angle float64) { SetHeading(angle) }

// Pd is PenDown.
func Pd() { PenDown() }

// Down is PenDown.
func Down() { PenDown() }

// Pu is PenUp.
func Pu() { PenUp() }

// Up is PenUp.
func Up() { PenUp() }

// Ht is HideTurtle.
func Ht() { HideTurtle() }

// St is ShowTurtle.
func St() { ShowTurtle() }

// Pos is Position.
func Pos() Vec2D { return Position() }
