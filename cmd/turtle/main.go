// Command turtle runs a turtle script and writes the drawing to an image.
//
//	turtle -s 300 -o star.png star.turtle
//	echo "circle 100" | turtle -o circle.png
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/recording"
	"github.com/gogpu/turtle/script"
)

type Draw struct {
	Size       int    `short:"s" default:"401" desc:"Canvas width and height in pixels"`
	Output     string `short:"o" default:"output.png" desc:"Output image, format from extension"`
	Background string `short:"b" default:"white" desc:"Background color"`
	DryRun     bool   `short:"n" desc:"Print drawing commands instead of writing an image"`
	Verbose    bool   `short:"v" desc:"Log debug output to stderr"`
	Input      string `index:"0" desc:"Script file, - or empty for stdin"`
}

func main() {
	root := argp.NewCmd(&Draw{}, "Turtle graphics on a raster canvas")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Draw) Run() error {
	if cmd.Verbose {
		turtle.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	var src io.Reader = os.Stdin
	if cmd.Input != "" && cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		src = f
	}

	opts := []turtle.Option{
		turtle.WithSize(cmd.Size),
		turtle.WithBackground(turtle.Named(cmd.Background)),
		turtle.WithOutput(cmd.Output),
	}
	var rec *recording.Recorder
	if cmd.DryRun {
		rec = recording.NewRecorder()
		opts = append(opts, turtle.WithCanvasFactory(rec.NewCanvas))
	}

	t, err := turtle.New(opts...)
	if err != nil {
		return err
	}
	if err := script.NewRunner(t, os.Stdout).Run(src); err != nil {
		return err
	}

	if rec != nil {
		for _, c := range rec.Commands() {
			fmt.Println(c)
		}
		return t.Err()
	}
	if err := t.Save(""); err != nil {
		return err
	}
	turtle.Logger().Info("image written", "path", cmd.Output, "size", cmd.Size)
	return nil
}
