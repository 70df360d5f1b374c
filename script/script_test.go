package script

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/recording"
)

func newRunner(t *testing.T) (*Runner, *recording.Recorder, *bytes.Buffer) {
	t.Helper()
	rec := recording.NewRecorder()
	tt, err := turtle.New(turtle.WithCanvasFactory(rec.NewCanvas))
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	return NewRunner(tt, &out), rec, &out
}

func TestRun_Drawing(t *testing.T) {
	r, rec, _ := newRunner(t)
	src := `
# a square with a dot in each corner
pencolor red
pensize 3
forward 100
dot 6 blue
left 90
fd 100
dot 6 0 128 0
LT 90
forward 100
left 90
forward 100
circle 20 180 12
penup
goto -50 -50
write "hello world" true center Courier 12 bold
save out.png
`
	if err := r.Run(strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}

	lines := rec.Ops(recording.OpLine)
	if len(lines) != 4 {
		t.Fatalf("recorded %d lines, want 4", len(lines))
	}
	if lines[0].Pen != (turtle.Pen{Color: turtle.Named("red"), Width: 3}) {
		t.Errorf("pen = %+v", lines[0].Pen)
	}
	dots := rec.Ops(recording.OpEllipse)
	if len(dots) != 2 || dots[0].Color != turtle.Named("blue") || dots[1].Color != turtle.RGB(0, 128, 0) {
		t.Errorf("dots = %v", dots)
	}
	if arcs := rec.Ops(recording.OpArc); len(arcs) != 1 {
		t.Errorf("recorded %d arcs, want 1", len(arcs))
	}
	texts := rec.Ops(recording.OpText)
	wantFont := turtle.Font{Name: "Courier", Size: 12, Style: "bold"}
	if len(texts) != 1 || texts[0].Text != "hello world" || texts[0].Font != wantFont {
		t.Errorf("texts = %v", texts)
	}
	if last, _ := rec.Last(); last.Op != recording.OpSave || last.Path != "out.png" {
		t.Errorf("last command = %v", last)
	}
	if r.Turtle().IsDown() {
		t.Error("pen still down after penup")
	}
}

func TestRun_Queries(t *testing.T) {
	r, _, out := newRunner(t)
	src := strings.Join([]string{
		"position",
		"forward 10",
		"left 90",
		"forward 5",
		"pos",
		"xcor",
		"ycor",
		"heading",
		"isdown",
		"pu",
		"isdown",
		"isvisible",
		"pensize",
		"pensize 2.6",
		"pensize",
		"pencolor",
		"pencolor 1 2 3",
		"pencolor",
		"window_width",
		"window_height",
		"towards 10 15",
		"distance 13 9",
	}, "\n")
	if err := r.Run(strings.NewReader(src)); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"(0.00,0.00)",
		"(10.00,5.00)",
		"10.00",
		"5.00",
		"90.00",
		"true",
		"false",
		"false",
		"1",
		"3",
		"black",
		"(1,2,3)",
		"401",
		"401",
		"0.00",
		"5.00",
	}, "\n") + "\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_AliasesMatchCommands(t *testing.T) {
	canonical, recA, _ := newRunner(t)
	aliased, recB, _ := newRunner(t)

	if err := canonical.Run(strings.NewReader("forward 10\nright 30\nbackward 5\nleft 10\npenup\ngoto 1 2\npendown\nsetheading 45\nforward 1")); err != nil {
		t.Fatal(err)
	}
	if err := aliased.Run(strings.NewReader("fd 10\nrt 30\nbk 5\nlt 10\nup\nsetpos 1 2\ndown\nseth 45\nFD 1")); err != nil {
		t.Fatal(err)
	}
	opt := cmp.Comparer(func(a, b turtle.Color) bool { return a == b })
	if diff := cmp.Diff(recA.Commands(), recB.Commands(), opt); diff != "" {
		t.Errorf("aliases drew differently (-canonical +alias):\n%s", diff)
	}
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"forward", "forward", true},
		{"FD", "forward", true},
		{"Back", "backward", true},
		{"setposition", "goto", true},
		{"pos", "position", true},
		{"fly", "fly", false},
	}
	for _, tt := range tests {
		got, ok := Canonical(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Canonical(%q) = %q, %v, want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	for alias, canon := range Aliases() {
		if _, ok := commands[canon]; !ok {
			t.Errorf("alias %q points at unknown command %q", alias, canon)
		}
	}
	names := Commands()
	if len(names) != len(commands) {
		t.Errorf("Commands() returned %d names, want %d", len(names), len(commands))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Commands() not sorted at %q", names[i])
		}
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		line int
		want error
	}{
		{"unknown", "forward 1\nfly 3", 2, ErrUnknownCommand},
		{"too few", "forward", 1, ErrArguments},
		{"too many", "home 1", 1, ErrArguments},
		{"not a number", "\n\nleft ninety", 3, ErrArguments},
		{"bad quote", `write "open`, 1, ErrArguments},
		{"bad color arity", "pencolor 1 2", 1, ErrArguments},
		{"bad component", "dot 5 1 2 300", 1, ErrArguments},
		{"bad align", "write hi false middle", 1, ErrArguments},
		{"bad move", "write hi maybe", 1, ErrArguments},
		{"coordinate shape", "towards 1 2 3", 1, turtle.ErrInvalidCoordinate},
		{"reset size", "reset 0", 1, turtle.ErrInvalidSize},
		{"pen size", "pensize -2", 1, turtle.ErrInvalidPenSize},
		{"dot size", "dot 0", 1, turtle.ErrInvalidDotSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _, _ := newRunner(t)
			err := r.Run(strings.NewReader(tt.src))

			var serr *Error
			if !errors.As(err, &serr) {
				t.Fatalf("Run() error = %v, want *Error", err)
			}
			if serr.Line != tt.line {
				t.Errorf("Line = %d, want %d", serr.Line, tt.line)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Run() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestRun_StopsAtFirstError(t *testing.T) {
	r, rec, _ := newRunner(t)
	err := r.Run(strings.NewReader("forward 10\nbogus\nforward 10"))
	if err == nil {
		t.Fatal("Run() error = nil")
	}
	if !strings.HasPrefix(err.Error(), "line 2: bogus: ") {
		t.Errorf("Error() = %q", err.Error())
	}
	if n := len(rec.Ops(recording.OpLine)); n != 1 {
		t.Errorf("recorded %d lines, want 1", n)
	}
}

func TestExec_CommentsAndBlankLines(t *testing.T) {
	r, rec, _ := newRunner(t)
	for _, line := range []string{"", "   ", "# comment", "forward 5 # trailing comment", `pencolor "#ff0000"`} {
		if err := r.Exec(line); err != nil {
			t.Errorf("Exec(%q) error = %v", line, err)
		}
	}
	if n := len(rec.Ops(recording.OpLine)); n != 1 {
		t.Errorf("recorded %d lines, want 1", n)
	}
	if got := r.Turtle().PenColor(); got != turtle.Named("#ff0000") {
		t.Errorf("PenColor() = %v, want #ff0000", got)
	}
}

func TestExec_NoOpsAndReset(t *testing.T) {
	r, rec, _ := newRunner(t)
	for _, line := range []string{"speed 5", "color red", "color 1 2 3", "showturtle", "hideturtle", "home", "clear", "reset 200"} {
		if err := r.Exec(line); err != nil {
			t.Fatalf("Exec(%q) error = %v", line, err)
		}
	}
	news := rec.Ops(recording.OpNew)
	if len(news) != 3 || news[2].Size != 200 {
		t.Errorf("canvases = %v", news)
	}
	if r.Turtle().Size() != 200 {
		t.Errorf("Size() = %d, want 200", r.Turtle().Size())
	}
}

func TestNewRunner_NilWriter(t *testing.T) {
	tt, err := turtle.New(turtle.WithCanvasFactory(recording.NewRecorder().NewCanvas))
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(tt, nil)
	if err := r.Exec("position"); err != nil {
		t.Errorf("Exec() error = %v", err)
	}
}
