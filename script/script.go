package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/google/shlex"
	"golang.org/x/text/cases"

	"github.com/gogpu/turtle"
)

// Sentinel errors for script execution.
var (
	// ErrUnknownCommand is returned for a command name that is neither a
	// command nor an alias.
	ErrUnknownCommand = errors.New("script: unknown command")

	// ErrArguments is returned for a wrong number or type of arguments.
	ErrArguments = errors.New("script: bad arguments")
)

// Error describes a failed script line.
type Error struct {
	Line    int    // 1-based line number
	Command string // command name as written
	Err     error
}

func (e *Error) Error() string {
	if e.Command == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Command, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var fold = cases.Fold()

// Runner executes script commands on a turtle.
type Runner struct {
	t   *turtle.Turtle
	out io.Writer
}

// NewRunner returns a Runner driving t. Query results are written to out;
// a nil out discards them.
func NewRunner(t *turtle.Turtle, out io.Writer) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{t: t, out: out}
}

// Turtle returns the turtle the runner drives.
func (r *Runner) Turtle() *turtle.Turtle {
	return r.t
}

// Run executes every line of src and stops at the first failing line.
// The returned error is an *Error unless reading src failed.
func (r *Runner) Run(src io.Reader) error {
	sc := bufio.NewScanner(src)
	n := 0
	for sc.Scan() {
		n++
		if err := r.exec(n, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}

// Exec executes a single line.
func (r *Runner) Exec(line string) error {
	return r.exec(1, line)
}

func (r *Runner) exec(n int, line string) error {
	words, err := shlex.Split(line)
	if err != nil {
		return &Error{Line: n, Err: fmt.Errorf("%w: %w", ErrArguments, err)}
	}
	if len(words) == 0 {
		return nil
	}

	name, args := words[0], words[1:]
	canon, ok := Canonical(name)
	if !ok {
		return &Error{Line: n, Command: name, Err: ErrUnknownCommand}
	}
	cmd := commands[canon]
	if len(args) < cmd.min || (cmd.max >= 0 && len(args) > cmd.max) {
		return &Error{Line: n, Command: name, Err: fmt.Errorf("%w: want %s, got %d", ErrArguments, cmd.arity(), len(args))}
	}

	turtle.Logger().Debug("script: command", "line", n, "command", canon, "args", args)
	if err := cmd.run(r, args); err != nil {
		return &Error{Line: n, Command: name, Err: err}
	}
	return nil
}

// Canonical resolves a command name or alias, case-insensitively, to its
// canonical command name.
func Canonical(name string) (string, bool) {
	name = fold.String(name)
	if canon, ok := aliases[name]; ok {
		return canon, true
	}
	_, ok := commands[name]
	return name, ok
}

func (r *Runner) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(r.out, format, args...)
	return err
}
