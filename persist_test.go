package sketch

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	store := &MemoryStorage{}
	c := NewCanvas(Config{Headless: true, Storage: store})
	c.SetColor(Color{1, 0, 0, 1})
	r := c.Create(KindRect)
	c.SetColor(Color{0, 0, 1, 1})
	l := c.Create(KindLine)
	e := c.Create(KindEllipse)
	e.Movable = false

	c.OnPointerDown(at(5, 5), r)
	c.OnPointerMove(at(15, 20))
	c.OnPointerUp()

	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	if store.Saves != 1 {
		t.Errorf("Saves = %d, want 1", store.Saves)
	}

	restored := NewCanvas(Config{Headless: true, Storage: store})
	if err := restored.Restore(); err != nil {
		t.Fatal(err)
	}
	got := restored.Shapes()
	if len(got) != 3 {
		t.Fatalf("restored %d shapes, want 3", len(got))
	}
	for i, want := range []*Shape{r, l, e} {
		s := got[i]
		if s.ID != want.ID {
			t.Errorf("shape %d ID = %q, want %q", i, s.ID, want.ID)
		}
		if s.Geometry() != want.Geometry() {
			t.Errorf("%s geometry = %+v, want %+v", s.ID, s.Geometry(), want.Geometry())
		}
		if s.Fill != want.Fill || s.Stroke != want.Stroke {
			t.Errorf("%s paint = %v/%v, want %v/%v", s.ID, s.Fill, s.Stroke, want.Fill, want.Stroke)
		}
		if s.StrokeWidth != want.StrokeWidth {
			t.Errorf("%s StrokeWidth = %v, want %v", s.ID, s.StrokeWidth, want.StrokeWidth)
		}
		if s.Movable != want.Movable {
			t.Errorf("%s Movable = %v, want %v", s.ID, s.Movable, want.Movable)
		}
	}
	if id := restored.Create(KindRect).ID; id != "shape4" {
		t.Errorf("next ID = %q, want shape4", id)
	}
}

func TestSaveRestoreKeepsExactGeometry(t *testing.T) {
	store := &MemoryStorage{}
	c := NewCanvas(Config{Headless: true, Storage: store})
	geoms := []Geometry{
		RectGeometry{X: 10.25, Y: 0.1, Width: -33.5, Height: 1e-3},
		LineGeometry{X1: 1.0 / 3, Y1: 2.5, X2: -7.75, Y2: 200},
		EllipseGeometry{CX: 99.9, CY: 50.05, RX: -12.5, RY: 0.3},
	}
	for _, g := range geoms {
		s := c.Create(g.Kind())
		if err := s.SetGeometry(g); err != nil {
			t.Fatal(err)
		}
	}

	for round := 0; round < 3; round++ {
		if err := c.Save(); err != nil {
			t.Fatal(err)
		}
		c = NewCanvas(Config{Headless: true, Storage: store})
		if err := c.Restore(); err != nil {
			t.Fatal(err)
		}
	}
	shapes := c.Shapes()
	if len(shapes) != len(geoms) {
		t.Fatalf("restored %d shapes, want %d", len(shapes), len(geoms))
	}
	for i, want := range geoms {
		if got := shapes[i].Geometry(); got != want {
			t.Errorf("shape %d geometry = %+v, want %+v", i, got, want)
		}
	}
}

func TestSaveWritesRoundedAndExactCoordinates(t *testing.T) {
	store := &MemoryStorage{}
	c := NewCanvas(Config{Headless: true, Storage: store})
	r := c.Create(KindRect)
	if err := r.SetGeometry(RectGeometry{X: 10.4, Y: 20.6, Width: 30, Height: 40}); err != nil {
		t.Fatal(err)
	}
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	doc := string(store.Data)
	for _, want := range []string{`x="10" y="21" width="30" height="40"`, `data-geom="10.4 20.6 30 40"`} {
		if !strings.Contains(doc, want) {
			t.Errorf("saved document missing %s\n%s", want, doc)
		}
	}
}

func TestRestoreReplacesContent(t *testing.T) {
	store := &MemoryStorage{}
	c := NewCanvas(Config{Headless: true, Storage: store})
	c.Create(KindRect)
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	c.Create(KindLine)
	c.Create(KindLine)
	if err := c.Restore(); err != nil {
		t.Fatal(err)
	}
	if n := len(c.Shapes()); n != 1 {
		t.Errorf("len(Shapes()) = %d, want 1", n)
	}
}

func TestRestoreEmptyStorage(t *testing.T) {
	c := NewCanvas(Config{Headless: true, Storage: &MemoryStorage{}})
	c.Create(KindRect)
	if err := c.Restore(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(c.Shapes()); n != 0 {
		t.Errorf("len(Shapes()) = %d, want 0", n)
	}
}

func TestSaveWithoutStorage(t *testing.T) {
	c := newTestCanvas()
	if err := c.Save(); !errors.Is(err, errNoStorage) {
		t.Errorf("Save err = %v, want errNoStorage", err)
	}
	if err := c.Restore(); !errors.Is(err, errNoStorage) {
		t.Errorf("Restore err = %v, want errNoStorage", err)
	}
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "drawing.svg")
	fs := FileStorage{Path: path}

	c := NewCanvas(Config{Headless: true, Storage: fs})
	if err := c.Restore(); err != nil {
		t.Fatalf("Restore of missing file: %v", err)
	}
	c.Create(KindEllipse)
	if err := c.Save(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<ellipse") {
		t.Errorf("saved file missing ellipse:\n%s", data)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want only the drawing", len(entries))
	}

	other := NewCanvas(Config{Headless: true, Storage: fs})
	if err := other.Restore(); err != nil {
		t.Fatal(err)
	}
	if n := len(other.Shapes()); n != 1 {
		t.Errorf("restored %d shapes, want 1", n)
	}
}

func TestDecodeSVG(t *testing.T) {
	doc := `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" width="900" height="600">
  <g>
    <rect x="1.5" y="2" width="30" height="40"/>
    <circle cx="1" cy="1" r="1"/>
    <line id="ln" class="movable thick" x1="0" y1="0" x2="5" y2="5" stroke="#00ff00" stroke-width="3"/>
  </g>
  <ellipse cx="10" cy="10" rx="4" ry="2" fill="none"/>
</svg>`
	shapes, err := DecodeSVG(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 3 {
		t.Fatalf("decoded %d shapes, want 3", len(shapes))
	}

	rect := shapes[0]
	if rect.ID != "restored1" || rect.Movable {
		t.Errorf("rect ID=%q Movable=%v, want restored1 not movable", rect.ID, rect.Movable)
	}
	if want := (RectGeometry{1.5, 2, 30, 40}); rect.Geometry() != want {
		t.Errorf("rect geometry = %+v, want %+v", rect.Geometry(), want)
	}
	if rect.Fill != ColorBlack {
		t.Errorf("rect fill = %v, want black default", rect.Fill)
	}

	line := shapes[1]
	if line.ID != "ln" || !line.Movable {
		t.Errorf("line ID=%q Movable=%v, want ln movable", line.ID, line.Movable)
	}
	if line.Stroke != (Color{0, 1, 0, 1}) || line.StrokeWidth != 3 || !line.Fill.IsNone() {
		t.Errorf("line paint = fill %v stroke %v width %v", line.Fill, line.Stroke, line.StrokeWidth)
	}

	ell := shapes[2]
	if ell.ID != "restored2" || !ell.Fill.IsNone() {
		t.Errorf("ellipse ID=%q fill=%v", ell.ID, ell.Fill)
	}
}

func TestDecodeSVGErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad number", `<svg><rect x="abc"/></svg>`},
		{"bad color", `<svg><rect fill="notacolor"/></svg>`},
		{"bad stroke width", `<svg><line stroke-width="wide"/></svg>`},
		{"malformed", `<svg><rect`},
		{"short data-geom", `<svg><rect data-geom="1 2 3"/></svg>`},
		{"bad data-geom", `<svg><line data-geom="1 2 x 4"/></svg>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSVG(strings.NewReader(tt.doc)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestDecodeSVGEmpty(t *testing.T) {
	shapes, err := DecodeSVG(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(shapes) != 0 {
		t.Errorf("decoded %d shapes, want 0", len(shapes))
	}
}

func TestAutosave(t *testing.T) {
	store := &MemoryStorage{}
	c := NewCanvas(Config{Headless: true, Storage: store, AutosaveInterval: time.Second})
	c.Create(KindRect)

	c.tick(0.5)
	if store.Saves != 0 {
		t.Fatalf("Saves = %d after 0.5s, want 0", store.Saves)
	}
	c.tick(0.5)
	if store.Saves != 1 {
		t.Fatalf("Saves = %d after 1s, want 1", store.Saves)
	}
	c.tick(0.5)
	c.tick(0.5)
	if store.Saves != 2 {
		t.Errorf("Saves = %d after 2s, want 2", store.Saves)
	}
	if err := c.AutosaveErr(); err != nil {
		t.Errorf("AutosaveErr = %v", err)
	}
}

type brokenStorage struct{}

var errDiskFull = errors.New("disk full")

func (brokenStorage) Load() ([]byte, error)  { return nil, nil }
func (brokenStorage) Save(data []byte) error { return errDiskFull }

func TestAutosaveError(t *testing.T) {
	c := NewCanvas(Config{Headless: true, Storage: brokenStorage{}, AutosaveInterval: time.Second})
	c.tick(1)
	if err := c.AutosaveErr(); !errors.Is(err, errDiskFull) {
		t.Errorf("AutosaveErr = %v, want errDiskFull", err)
	}
}

func TestAutosaveDisabled(t *testing.T) {
	store := &MemoryStorage{}
	c := NewCanvas(Config{Headless: true, Storage: store})
	for i := 0; i < 100; i++ {
		c.tick(1)
	}
	if store.Saves != 0 {
		t.Errorf("Saves = %d with autosave disabled, want 0", store.Saves)
	}
}
