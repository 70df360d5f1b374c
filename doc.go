// Package turtle provides turtle graphics on a raster canvas.
//
// # Overview
//
// A Turtle is a cursor with a position, a heading and a pen. Commands
// such as Forward, Left and Circle move it around a square canvas and,
// while the pen is down, leave lines and arcs behind. The finished canvas
// is written to an image file with Save.
//
// # Quick Start
//
//	t, err := turtle.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	t.SetPenColor(turtle.Named("orange"))
//	for range 5 {
//	    t.Forward(150)
//	    t.Right(144)
//	}
//	if err := t.Save("star.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// The package-level functions drive one shared turtle, as in classroom
// turtle libraries. Flush it with Shutdown:
//
//	defer turtle.Shutdown()
//	turtle.Forward(100)
//
// # Coordinate System
//
// Turtle coordinates are Cartesian with the origin at the center of the
// canvas:
//   - X increases right
//   - Y increases up
//   - Headings are degrees, 0 is east, increasing counterclockwise
//   - Right turns clockwise, Left turns counterclockwise
//
// A point (x, y) lands on pixel (size/2 + x, size/2 - y).
//
// # Rendering
//
// Drawing goes through the Canvas interface. The default canvas renders
// with github.com/gogpu/gg; package recording provides a canvas that
// records calls for inspection and testing.
package turtle
