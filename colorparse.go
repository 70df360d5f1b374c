package turtle

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// fold compares names case-insensitively ("Orange" == "orange").
var fold = cases.Fold()

// ParseColor converts c to an opaque-or-translucent NRGBA color.
//
// Accepted strings, case-insensitive:
//
//	orange                 SVG/CSS color names
//	#fa0  #ffa500  #ffa500ff
//	rgb(255,165,0)  rgb(100%,65%,0%)  rgba(255,165,0,255)
//	hsl(39,100%,50%)
//	hsv(39,100%,100%)  hsb(39,100%,100%)
func ParseColor(c Color) (color.NRGBA, error) {
	if r, g, b, ok := c.RGB(); ok {
		return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
	}
	s := strings.TrimSpace(fold.String(c.Name()))
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("%w: empty color", ErrInvalidColor)
	}

	var (
		out color.NRGBA
		err error
	)
	switch {
	case strings.HasPrefix(s, "#"):
		out, err = parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb"):
		out, err = parseFunc(s, parseRGBArgs, "rgb", "rgba")
	case strings.HasPrefix(s, "hsl"):
		out, err = parseFunc(s, parseHSLArgs, "hsl")
	case strings.HasPrefix(s, "hsv"), strings.HasPrefix(s, "hsb"):
		out, err = parseFunc(s, parseHSVArgs, "hsv", "hsb")
	default:
		rgba, ok := colornames.Map[strings.ReplaceAll(s, " ", "")]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("%w: unknown color name %q", ErrInvalidColor, c.Name())
		}
		out = color.NRGBA{R: rgba.R, G: rgba.G, B: rgba.B, A: 255}
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, c.Name(), err)
	}
	return out, nil
}

func parseHexColor(hex string) (color.NRGBA, error) {
	if len(hex) == 3 || len(hex) == 4 {
		var b strings.Builder
		for _, d := range hex {
			b.WriteRune(d)
			b.WriteRune(d)
		}
		hex = b.String()
	}
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("hex color needs 3, 4, 6 or 8 digits, got %d", len(hex))
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("bad hex digits %q", hex)
	}
	if len(hex) == 6 {
		n = n<<8 | 0xff
	}
	return color.NRGBA{R: uint8(n >> 24), G: uint8(n >> 16), B: uint8(n >> 8), A: uint8(n)}, nil
}

// parseFunc splits "name(a,b,c)" and hands the arguments to parse.
func parseFunc(s string, parse func(args []string) (color.NRGBA, error), names ...string) (color.NRGBA, error) {
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return color.NRGBA{}, errors.New("malformed color function")
	}
	name := strings.TrimSpace(s[:open])
	known := false
	for _, n := range names {
		known = known || n == name
	}
	if !known {
		return color.NRGBA{}, fmt.Errorf("unknown color function %q", name)
	}
	args := strings.Split(s[open+1:len(s)-1], ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return parse(args)
}

func parseRGBArgs(args []string) (color.NRGBA, error) {
	if len(args) != 3 && len(args) != 4 {
		return color.NRGBA{}, fmt.Errorf("rgb needs 3 or 4 components, got %d", len(args))
	}
	var v [4]uint8
	v[3] = 255
	for i, a := range args {
		f, pct, err := parseComponent(a)
		if err != nil {
			return color.NRGBA{}, err
		}
		if pct {
			f = f * 255 / 100
		}
		v[i] = uint8(clamp(f, 0, 255) + 0.5)
	}
	return color.NRGBA{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

func parseHSLArgs(args []string) (color.NRGBA, error) {
	h, s, l, err := parseHueTriple(args)
	if err != nil {
		return color.NRGBA{}, err
	}
	return colorfulToNRGBA(colorful.Hsl(h, s, l)), nil
}

func parseHSVArgs(args []string) (color.NRGBA, error) {
	h, s, v, err := parseHueTriple(args)
	if err != nil {
		return color.NRGBA{}, err
	}
	return colorfulToNRGBA(colorful.Hsv(h, s, v)), nil
}

// parseHueTriple parses "h, s%, x%" into a hue in degrees and two
// fractions in [0, 1].
func parseHueTriple(args []string) (h, a, b float64, err error) {
	if len(args) != 3 {
		return 0, 0, 0, fmt.Errorf("need 3 components, got %d", len(args))
	}
	if h, _, err = parseComponent(args[0]); err != nil {
		return 0, 0, 0, err
	}
	if a, _, err = parseComponent(args[1]); err != nil {
		return 0, 0, 0, err
	}
	if b, _, err = parseComponent(args[2]); err != nil {
		return 0, 0, 0, err
	}
	return normAngle(h), clamp(a/100, 0, 1), clamp(b/100, 0, 1), nil
}

// parseComponent parses a number with an optional percent sign.
func parseComponent(s string) (v float64, percent bool, err error) {
	s, percent = strings.CutSuffix(s, "%")
	v, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, fmt.Errorf("bad component %q", s)
	}
	return v, percent, nil
}

func colorfulToNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func clamp(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
