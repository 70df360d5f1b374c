// Package recording provides a turtle.Canvas that records drawing calls
// instead of rasterizing them.
//
// A Recorder keeps one ordered command log for every canvas it creates,
// so a turtle that clears or resets its canvas keeps appending to the same
// log. Commands are plain structs and can be inspected directly, printed,
// or replayed onto another canvas.
//
// # Example
//
//	rec := recording.NewRecorder()
//	t, _ := turtle.New(turtle.WithCanvasFactory(rec.NewCanvas))
//	t.Forward(100)
//	for _, cmd := range rec.Commands() {
//	    fmt.Println(cmd)
//	}
//
// The Recorder is not safe for concurrent use.
package recording
