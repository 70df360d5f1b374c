package turtle

import "fmt"

// Color is a pen or fill color. It is either a color string as accepted by
// [Named] or an explicit RGB triple built with [RGB]. The turtle never
// interprets colors; they are handed to the [Canvas] unchanged.
//
// The zero Color means "unset". Colors are comparable with ==.
type Color struct {
	name    string
	r, g, b uint8
	rgb     bool
}

// Common colors.
var (
	Black = Named("black")
	White = Named("white")
)

// Named returns a color described by a string: a color name ("Orange"),
// a hex value ("#FFA500", "#fa0", "#FFA500FF") or a functional notation
// ("rgb(255,165,0)", "hsl(39,100%,50%)", "hsv(39,100%,100%)").
func Named(s string) Color {
	return Color{name: s}
}

// RGB returns a color from 0-255 components.
func RGB(r, g, b uint8) Color {
	return Color{r: r, g: g, b: b, rgb: true}
}

// IsZero reports whether c is the unset color.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Name returns the color string, or "" for RGB colors.
func (c Color) Name() string {
	return c.name
}

// RGB returns the components of an RGB color. ok is false for named colors.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	return c.r, c.g, c.b, c.rgb
}

func (c Color) String() string {
	if c.rgb {
		return fmt.Sprintf("(%d,%d,%d)", c.r, c.g, c.b)
	}
	return c.name
}
