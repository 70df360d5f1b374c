package turtle

import "strings"

// Write draws text in the pen color with its left edge at the turtle,
// vertically centered on the turtle. align only positions the lines of a
// multi-line text relative to each other, within the width of the widest
// line. A zero font means DefaultFont. If move is true the turtle
// advances to the right by the width of the text, without drawing a line.
//
// Fonts that cannot be found are replaced by a built-in font of the same
// size; Write never fails because of the font.
func (t *Turtle) Write(text string, move bool, align Align, font Font) {
	if font == (Font{}) {
		font = DefaultFont
	}
	if font.Size <= 0 {
		font.Size = DefaultFont.Size
	}

	lines := strings.Split(text, "\n")
	widths := make([]float64, len(lines))
	var w, lineHeight float64
	for i, line := range lines {
		lw, lh := t.canvas.MeasureText(line, font)
		widths[i] = lw
		w = max(w, lw)
		lineHeight = max(lineHeight, lh)
	}

	at := t.toPixel(t.pos)
	at.Y -= lineHeight * float64(len(lines)) / 2
	for i, line := range lines {
		if line == "" {
			continue
		}
		p := Vec2D{X: at.X + (w-widths[i])*align.anchor(), Y: at.Y + lineHeight*float64(i)}
		t.check(t.canvas.Text(p, line, font, t.penColor))
	}
	if move {
		t.pos.X += w
	}
}
