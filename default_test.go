package turtle_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/recording"
)

func initRecorded(t *testing.T, opts ...turtle.Option) *recording.Recorder {
	t.Helper()
	rec := recording.NewRecorder()
	if err := turtle.Init(append([]turtle.Option{turtle.WithCanvasFactory(rec.NewCanvas)}, opts...)...); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() {
		rec.SaveErr = nil
		_ = turtle.Shutdown()
	})
	return rec
}

func TestShutdown_WithoutTurtle(t *testing.T) {
	_ = turtle.Shutdown()
	if err := turtle.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v, want nil", err)
	}
}

func TestDefault_DrivesSharedTurtle(t *testing.T) {
	rec := initRecorded(t, turtle.WithOutput("shared.png"))

	turtle.Fd(100)
	turtle.Lt(90)
	turtle.Circle(20)
	turtle.Pu()
	turtle.Goto(-50, 0)
	if err := turtle.Dot(5, turtle.Named("green")); err != nil {
		t.Fatal(err)
	}

	if got := turtle.Pos(); !got.Approx(turtle.V(-50, 0), eps) {
		t.Errorf("Pos() = %v, want (-50.00,0.00)", got)
	}
	if turtle.IsDown() {
		t.Error("IsDown() = true after Pu")
	}
	if turtle.Default().Heading() != turtle.Heading() {
		t.Error("Default() is not the shared turtle")
	}
	if n := len(rec.Ops(recording.OpLine)); n != 1 {
		t.Errorf("recorded %d lines, want 1", n)
	}
	if n := len(rec.Ops(recording.OpArc)); n != 1 {
		t.Errorf("recorded %d arcs, want 1", n)
	}

	if err := turtle.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	last, _ := rec.Last()
	if last.Op != recording.OpSave || last.Path != "shared.png" {
		t.Errorf("last command = %v, want Save shared.png", last)
	}
}

func TestShutdown_ReportsSaveError(t *testing.T) {
	rec := initRecorded(t)
	errFull := errors.New("disk full")
	rec.SaveErr = errFull

	turtle.Forward(1)
	if err := turtle.Shutdown(); !errors.Is(err, errFull) {
		t.Errorf("Shutdown() error = %v, want %v", err, errFull)
	}
	if err := turtle.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v, want nil", err)
	}
}

func TestInit_InvalidSize(t *testing.T) {
	if err := turtle.Init(turtle.WithSize(-4)); !errors.Is(err, turtle.ErrInvalidSize) {
		t.Errorf("Init() error = %v, want ErrInvalidSize", err)
	}
}

func TestDefault_ConcurrentUse(t *testing.T) {
	rec := initRecorded(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				turtle.Forward(1)
				turtle.Backward(1)
				_ = turtle.Heading()
			}
		}()
	}
	wg.Wait()

	if n := len(rec.Ops(recording.OpLine)); n != 8*50*2 {
		t.Errorf("recorded %d lines, want %d", n, 8*50*2)
	}
}
