package turtle

// Default configuration values.
const (
	// DefaultSize is the width and height of a new canvas.
	DefaultSize = 401

	// DefaultOutput is the file written by Save and Done with an empty path.
	DefaultOutput = "output.png"

	// DefaultDotSize is the conventional diameter of Dot.
	DefaultDotSize = 3
)

// Option configures a Turtle during creation.
//
// Example:
//
//	t, err := turtle.New(turtle.WithSize(200), turtle.WithOutput("star.png"))
type Option func(*options)

type options struct {
	size       int
	background Color
	output     string
	factory    CanvasFactory
}

func defaultOptions() options {
	return options{
		size:       DefaultSize,
		background: White,
		output:     DefaultOutput,
		factory:    nil, // NewRasterCanvas
	}
}

// WithSize sets the canvas width and height in pixels.
func WithSize(size int) Option {
	return func(o *options) {
		o.size = size
	}
}

// WithBackground sets the color a cleared canvas is filled with.
func WithBackground(c Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithOutput sets the path used by Save and Done when called with "".
func WithOutput(path string) Option {
	return func(o *options) {
		o.output = path
	}
}

// WithCanvasFactory replaces the raster canvas, e.g. with a recording
// canvas in tests.
//
//	rec := recording.NewRecorder()
//	t, _ := turtle.New(turtle.WithCanvasFactory(rec.NewCanvas))
func WithCanvasFactory(f CanvasFactory) Option {
	return func(o *options) {
		o.factory = f
	}
}
