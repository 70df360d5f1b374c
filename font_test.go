package turtle

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/gg/text"
)

func TestFontKey(t *testing.T) {
	tests := []struct {
		a, b Font
		same bool
	}{
		{Font{Name: "Arial"}, Font{Name: "arial"}, true},
		{Font{Name: " Arial ", Style: "Bold"}, Font{Name: "ARIAL", Style: "bold"}, true},
		{Font{Name: "Arial", Size: 8}, Font{Name: "Arial", Size: 30}, true},
		{Font{Name: "Arial", Style: "bold"}, Font{Name: "Arial", Style: "italic"}, false},
		{Font{Name: "Arial"}, Font{Name: "Arial Bold"}, false},
	}
	for _, tt := range tests {
		if got := fontKey(tt.a) == fontKey(tt.b); got != tt.same {
			t.Errorf("fontKey(%+v) == fontKey(%+v) = %v, want %v", tt.a, tt.b, got, tt.same)
		}
	}
}

func TestFontCache_Fallback(t *testing.T) {
	c := &fontCache{sources: make(map[string]*text.FontSource)}
	f := Font{Name: filepath.Join(t.TempDir(), "no-such-font-family-7f3a.ttf"), Size: 12}

	face, err := c.face(f)
	if err != nil {
		t.Fatalf("face() error = %v", err)
	}
	if face == nil {
		t.Fatal("face() returned nil")
	}
	if c.fallback == nil {
		t.Error("fallback font not loaded")
	}
	if src, seen := c.sources[fontKey(f)]; !seen || src != nil {
		t.Errorf("missing font not cached as not found: %v %v", src, seen)
	}

	// A second lookup reuses the cached miss.
	if _, err := c.face(f); err != nil {
		t.Fatal(err)
	}
	if len(c.sources) != 1 {
		t.Errorf("cache has %d entries, want 1", len(c.sources))
	}
}

func TestFontCache_EmptyName(t *testing.T) {
	c := &fontCache{sources: make(map[string]*text.FontSource)}
	if paths := c.candidates(Font{Size: 10}); len(paths) != 0 {
		t.Errorf("candidates(empty) = %v, want none", paths)
	}
	face, err := c.face(Font{Size: 10})
	if err != nil || face == nil {
		t.Errorf("face(empty) = %v, %v", face, err)
	}
}

func TestScanLogger_ForwardsToDebug(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	scanLogger{}.Printf("skipped %d files in %s", 3, "/fonts")
	if out := buf.String(); !strings.Contains(out, "fontscan: skipped 3 files in /fonts") {
		t.Errorf("log output = %q", out)
	}
}
