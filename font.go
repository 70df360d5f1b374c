package turtle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// fonts is the process-wide font source cache. Font sources are
// immutable once parsed and shared by every raster canvas.
var fonts = &fontCache{sources: make(map[string]*text.FontSource)}

type fontCache struct {
	mu       sync.Mutex
	sources  map[string]*text.FontSource // by folded request key; nil = not found
	fallback *text.FontSource

	systemOnce sync.Once
	system     *fontscan.FontMap
}

// face returns a face for f, falling back to the built-in Go Regular font
// when f cannot be found.
func (c *fontCache) face(f Font) (text.Face, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := fontKey(f)
	src, seen := c.sources[key]
	if !seen {
		src = c.load(f)
		c.sources[key] = src
	}
	if src == nil {
		fb, err := c.fallbackSource()
		if err != nil {
			return nil, err
		}
		src = fb
	}
	return src.Face(f.Size), nil
}

func fontKey(f Font) string {
	return fold.String(strings.TrimSpace(f.Name)) + "\x00" + fold.String(strings.TrimSpace(f.Style))
}

// load resolves f to a font source, or returns nil if it is unavailable.
func (c *fontCache) load(f Font) *text.FontSource {
	for _, path := range c.candidates(f) {
		src, err := text.NewFontSourceFromFile(path)
		if err != nil {
			Logger().Warn("turtle: unreadable font file", "path", path, "err", err)
			continue
		}
		Logger().Debug("turtle: font resolved", "font", f.Name, "path", path)
		return src
	}
	Logger().Debug("turtle: font not found, using fallback", "font", f.Name, "style", f.Style)
	return nil
}

// candidates lists font files that may satisfy f, best first. A name with
// a font extension or a path separator is taken as a file name first;
// otherwise the system fonts are searched by family, trying the styled
// family ("Arial Bold") before the plain one.
func (c *fontCache) candidates(f Font) []string {
	name := strings.TrimSpace(f.Name)
	if name == "" {
		return nil
	}

	var paths []string
	ext := fold.String(filepath.Ext(name))
	if ext == ".ttf" || ext == ".otf" || ext == ".ttc" || strings.ContainsRune(name, os.PathSeparator) {
		if _, err := os.Stat(name); err == nil {
			paths = append(paths, name)
		}
		name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}

	fm := c.systemFonts()
	if fm == nil {
		return paths
	}
	families := []string{name}
	if style := strings.TrimSpace(f.Style); style != "" && fold.String(style) != "normal" {
		families = []string{name + " " + style, name}
	}
	for _, family := range families {
		if loc, ok := fm.FindSystemFont(family); ok {
			paths = append(paths, loc.File)
		}
	}
	return paths
}

// systemFonts scans the system font directories once. It returns nil if
// the scan fails.
func (c *fontCache) systemFonts() *fontscan.FontMap {
	c.systemOnce.Do(func() {
		fm := fontscan.NewFontMap(scanLogger{})
		if err := fm.UseSystemFonts(""); err != nil {
			Logger().Debug("turtle: system font scan failed", "err", err)
			return
		}
		c.system = fm
	})
	return c.system
}

func (c *fontCache) fallbackSource() (*text.FontSource, error) {
	if c.fallback == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("turtle: fallback font: %w", err)
		}
		c.fallback = src
	}
	return c.fallback, nil
}

// scanLogger forwards fontscan messages to the package logger.
type scanLogger struct{}

func (scanLogger) Printf(format string, args ...any) {
	Logger().Debug(fmt.Sprintf("fontscan: "+format, args...))
}
