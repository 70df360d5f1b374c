package turtle

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// RasterCanvas is a Canvas that renders into memory with gogpu/gg.
type RasterCanvas struct {
	dc *gg.Context
}

var _ Canvas = (*RasterCanvas)(nil)

// NewRasterCanvas creates a size×size raster canvas filled with
// background. It is the default CanvasFactory.
func NewRasterCanvas(size int, background Color) (Canvas, error) {
	bg, err := ParseColor(background)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.FromColor(bg))
	Logger().Debug("turtle: raster canvas created", "size", size, "background", background.String())
	return &RasterCanvas{dc: dc}, nil
}

// Line implements Canvas.
func (c *RasterCanvas) Line(from, to Vec2D, pen Pen) error {
	if err := c.setPen(pen); err != nil {
		return err
	}
	c.dc.ClearPath()
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	return c.dc.Stroke()
}

// Arc implements Canvas.
func (c *RasterCanvas) Arc(box Box, start, end float64, pen Pen) error {
	if err := c.setPen(pen); err != nil {
		return err
	}
	for end < start {
		end += 360
	}
	center := box.Center()
	w, h := box.Size()

	c.dc.ClearPath()
	if w == h {
		c.dc.DrawArc(center.X, center.Y, w/2, radians(start), radians(end))
	} else {
		c.ellipticalArc(center, w/2, h/2, radians(start), radians(end))
	}
	return c.dc.Stroke()
}

// ellipticalArc approximates an arc of an axis-aligned ellipse with
// line segments of at most 2 degrees.
func (c *RasterCanvas) ellipticalArc(center Vec2D, rx, ry, a1, a2 float64) {
	n := max(1, int(math.Ceil((a2-a1)/radians(2))))
	for i := 0; i <= n; i++ {
		s, co := math.Sincos(a1 + (a2-a1)*float64(i)/float64(n))
		x, y := center.X+rx*co, center.Y+ry*s
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
}

// FillEllipse implements Canvas.
func (c *RasterCanvas) FillEllipse(box Box, fill Color) error {
	col, err := ParseColor(fill)
	if err != nil {
		return err
	}
	center := box.Center()
	w, h := box.Size()

	c.dc.SetColor(col)
	c.dc.ClearPath()
	c.dc.DrawEllipse(center.X, center.Y, w/2, h/2)
	return c.dc.Fill()
}

// MeasureText implements Canvas.
func (c *RasterCanvas) MeasureText(s string, font Font) (w, h float64) {
	face, err := fonts.face(font)
	if err != nil {
		return 0, 0
	}
	c.dc.SetFont(face)
	return c.dc.MeasureString(s)
}

// Text implements Canvas.
func (c *RasterCanvas) Text(at Vec2D, s string, font Font, fill Color) error {
	col, err := ParseColor(fill)
	if err != nil {
		return err
	}
	face, err := fonts.face(font)
	if err != nil {
		return err
	}
	c.dc.SetFont(face)
	c.dc.SetColor(col)
	// gg draws from the baseline.
	c.dc.DrawString(s, at.X, at.Y+face.Metrics().Ascent)
	return nil
}

// Save implements Canvas.
func (c *RasterCanvas) Save(path string) error {
	if err := c.dc.FlushGPU(); err != nil {
		return err
	}
	return saveImage(path, c.dc.Image())
}

// Image returns a snapshot of the canvas pixels.
func (c *RasterCanvas) Image() image.Image {
	// A failed flush leaves the pixels the CPU rasterizer already has.
	_ = c.dc.FlushGPU()
	return c.dc.Image()
}

func (c *RasterCanvas) setPen(pen Pen) error {
	col, err := ParseColor(pen.Color)
	if err != nil {
		return err
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(float64(max(1, pen.Width)))
	return nil
}
