package sketch

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Storage persists one serialized drawing.
type Storage interface {
	// Load returns the stored document. A missing document is reported as
	// an error wrapping fs.ErrNotExist, or as empty data.
	Load() ([]byte, error)
	Save(data []byte) error
}

// FileStorage stores the drawing in a single file.
type FileStorage struct {
	Path string
}

// Load reads the file.
func (f FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", f.Path, err)
	}
	return data, nil
}

// Save writes to a temporary file next to Path and renames it into place so
// a crash never leaves a truncated drawing.
func (f FileStorage) Save(data []byte) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("save %s: %w", f.Path, err)
	}
	return nil
}

// MemoryStorage keeps the drawing in memory. Useful for tests and previews.
type MemoryStorage struct {
	Data  []byte
	Saves int
}

// Load returns a copy of the stored data.
func (m *MemoryStorage) Load() ([]byte, error) {
	return bytes.Clone(m.Data), nil
}

// Save replaces the stored data.
func (m *MemoryStorage) Save(data []byte) error {
	m.Data = bytes.Clone(data)
	m.Saves++
	return nil
}

// errNoStorage is returned by Save and Restore when Config.Storage is nil.
var errNoStorage = errors.New("sketch: no storage configured")

// Save serializes the drawing as SVG into Config.Storage.
func (c *Canvas) Save() error {
	if c.cfg.Storage == nil {
		return errNoStorage
	}
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		return err
	}
	if err := c.cfg.Storage.Save(buf.Bytes()); err != nil {
		return err
	}
	c.debugf("saved %d shapes (%d bytes)", len(c.shapes), buf.Len())
	return nil
}

// Restore replaces the canvas content with the drawing in Config.Storage.
// A missing or empty document leaves an empty canvas and is not an error.
func (c *Canvas) Restore() error {
	if c.cfg.Storage == nil {
		return errNoStorage
	}
	data, err := c.cfg.Storage.Load()
	if errors.Is(err, fs.ErrNotExist) {
		c.Clear()
		return nil
	}
	if err != nil {
		return err
	}
	shapes, err := DecodeSVG(bytes.NewReader(data))
	if err != nil {
		return err
	}
	c.Clear()
	for _, s := range shapes {
		if err := c.Add(s); err != nil {
			c.debugf("restore: skip shape: %v", err)
		}
	}
	c.debugf("restored %d shapes", len(c.shapes))
	return nil
}

// DecodeSVG reads rect, line and ellipse elements from an SVG document, in
// document order. Other elements are ignored. The exact geometry in a
// data-geom attribute takes precedence over the element's coordinates. Elements without an id get
// "restored<N>" ids. Empty input yields no shapes.
func DecodeSVG(r io.Reader) ([]*Shape, error) {
	dec := xml.NewDecoder(r)
	var shapes []*Shape
	anon := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return shapes, nil
		}
		if err != nil {
			return nil, fmt.Errorf("decode svg: %w", err)
		}
		el, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		s, err := decodeShape(el)
		if err != nil {
			return nil, fmt.Errorf("decode svg: %w", err)
		}
		if s == nil {
			continue
		}
		if s.ID == "" {
			anon++
			s.ID = "restored" + strconv.Itoa(anon)
		}
		shapes = append(shapes, s)
	}
}

// decodeShape converts one element; it returns nil for unsupported elements.
func decodeShape(el xml.StartElement) (*Shape, error) {
	attrs := make(map[string]string, len(el.Attr))
	for _, a := range el.Attr {
		attrs[a.Name.Local] = a.Value
	}
	num := func(name string) (float64, error) {
		v, ok := attrs[name]
		if !ok {
			return 0, nil
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("<%s> %s=%q: %w", el.Name.Local, name, v, err)
		}
		return f, nil
	}
	var names []string
	switch el.Name.Local {
	case "rect":
		names = []string{"x", "y", "width", "height"}
	case "line":
		names = []string{"x1", "y1", "x2", "y2"}
	case "ellipse":
		names = []string{"cx", "cy", "rx", "ry"}
	default:
		return nil, nil
	}
	var v [4]float64
	if raw, ok := attrs[geomAttr]; ok {
		fields := strings.Fields(raw)
		if len(fields) != len(v) {
			return nil, fmt.Errorf("<%s> %s=%q: want 4 numbers", el.Name.Local, geomAttr, raw)
		}
		for i, f := range fields {
			n, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("<%s> %s=%q: %w", el.Name.Local, geomAttr, raw, err)
			}
			v[i] = n
		}
	} else {
		for i, n := range names {
			f, err := num(n)
			if err != nil {
				return nil, err
			}
			v[i] = f
		}
	}

	var g Geometry
	switch el.Name.Local {
	case "rect":
		g = RectGeometry{X: v[0], Y: v[1], Width: v[2], Height: v[3]}
	case "line":
		g = LineGeometry{X1: v[0], Y1: v[1], X2: v[2], Y2: v[3]}
	default:
		g = EllipseGeometry{CX: v[0], CY: v[1], RX: v[2], RY: v[3]}
	}

	s := NewShape(attrs["id"], g)
	s.Movable = hasClass(attrs["class"], movableClass)
	var err error
	if s.Fill, err = decodePaint(attrs, "fill", g.Kind() != KindLine); err != nil {
		return nil, err
	}
	if s.Stroke, err = decodePaint(attrs, "stroke", false); err != nil {
		return nil, err
	}
	if w, ok := attrs["stroke-width"]; ok {
		if s.StrokeWidth, err = strconv.ParseFloat(strings.TrimSpace(w), 64); err != nil {
			return nil, fmt.Errorf("<%s> stroke-width=%q: %w", el.Name.Local, w, err)
		}
	}
	return s, nil
}

// decodePaint parses a fill or stroke attribute. An absent attribute is black
// when defaultBlack is set (SVG's initial fill) and none otherwise.
func decodePaint(attrs map[string]string, name string, defaultBlack bool) (Color, error) {
	v, ok := attrs[name]
	if !ok {
		if defaultBlack {
			return ColorBlack, nil
		}
		return ColorNone, nil
	}
	return ParseColor(v)
}

func hasClass(list, class string) bool {
	for _, c := range strings.Fields(list) {
		if c == class {
			return true
		}
	}
	return false
}

// autosaver saves the canvas on a fixed period of frame time.
type autosaver struct {
	interval time.Duration
	elapsed  time.Duration
	lastErr  error
}

// tick accumulates frame time and saves when the interval has passed.
func (a *autosaver) tick(c *Canvas, dt time.Duration) {
	if a.interval <= 0 || c.cfg.Storage == nil {
		return
	}
	a.elapsed += dt
	if a.elapsed < a.interval {
		return
	}
	a.elapsed = 0
	c.debugf("autosave")
	a.lastErr = c.Save()
	if a.lastErr != nil {
		c.debugf("autosave failed: %v", a.lastErr)
	}
}

// AutosaveErr returns the error of the most recent failed autosave, or nil.
func (c *Canvas) AutosaveErr() error {
	return c.autosave.lastErr
}
