package sketch

import (
	"fmt"
	"math"
)

// Geometry is the kind-specific position and size record of a Shape.
// Implementations are small value types; every mutation returns a new value.
type Geometry interface {
	Kind() ShapeKind
	// Anchor returns the primary position: top-left for rectangles, the
	// first endpoint for lines and the center for ellipses.
	Anchor() Vec2
	// WithAnchor returns a copy with the primary position set to p. No other
	// field changes.
	WithAnchor(p Vec2) Geometry
	// Bounds returns the normalized axis-aligned bounding box in canvas space.
	Bounds() Rect
	// Contains reports whether the canvas point lies on the shape. tolerance
	// widens thin shapes (lines) so they can be picked.
	Contains(x, y, tolerance float64) bool
}

// Resizable is implemented by geometries that expose corner resize handles.
// Their Anchor is the top-left corner of the box described by Size.
type Resizable interface {
	Geometry
	Size() Vec2
	WithSize(w, h float64) Geometry
}

// RectGeometry is the geometry of a rectangle. Width and Height may be
// negative after a resize; they are not clamped.
type RectGeometry struct {
	X, Y, Width, Height float64
}

func (g RectGeometry) Kind() ShapeKind { return KindRect }
func (g RectGeometry) Anchor() Vec2    { return Vec2{g.X, g.Y} }
func (g RectGeometry) Size() Vec2      { return Vec2{g.Width, g.Height} }

func (g RectGeometry) WithAnchor(p Vec2) Geometry {
	g.X, g.Y = p.X, p.Y
	return g
}

func (g RectGeometry) WithSize(w, h float64) Geometry {
	g.Width, g.Height = w, h
	return g
}

func (g RectGeometry) Bounds() Rect {
	return Rect{g.X, g.Y, g.Width, g.Height}.Normalized()
}

func (g RectGeometry) Contains(x, y, _ float64) bool {
	return g.Bounds().Contains(x, y)
}

// LineGeometry is the geometry of a line segment.
type LineGeometry struct {
	X1, Y1, X2, Y2 float64
}

func (g LineGeometry) Kind() ShapeKind { return KindLine }
func (g LineGeometry) Anchor() Vec2    { return Vec2{g.X1, g.Y1} }

// WithAnchor moves the first endpoint only; the second endpoint stays put.
func (g LineGeometry) WithAnchor(p Vec2) Geometry {
	g.X1, g.Y1 = p.X, p.Y
	return g
}

func (g LineGeometry) Bounds() Rect {
	minX, maxX := math.Min(g.X1, g.X2), math.Max(g.X1, g.X2)
	minY, maxY := math.Min(g.Y1, g.Y2), math.Max(g.Y1, g.Y2)
	return Rect{minX, minY, maxX - minX, maxY - minY}
}

// Contains tests the distance from (x, y) to the segment against tolerance.
func (g LineGeometry) Contains(x, y, tolerance float64) bool {
	return segmentDistance(g.X1, g.Y1, g.X2, g.Y2, x, y) <= tolerance
}

// segmentDistance returns the distance from (px, py) to segment a-b.
func segmentDistance(ax, ay, bx, by, px, py float64) float64 {
	dx, dy := bx-ax, by-ay
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(px-ax, py-ay)
	}
	t := ((px-ax)*dx + (py-ay)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}

// EllipseGeometry is the geometry of an axis-aligned ellipse.
type EllipseGeometry struct {
	CX, CY, RX, RY float64
}

func (g EllipseGeometry) Kind() ShapeKind { return KindEllipse }
func (g EllipseGeometry) Anchor() Vec2    { return Vec2{g.CX, g.CY} }

func (g EllipseGeometry) WithAnchor(p Vec2) Geometry {
	g.CX, g.CY = p.X, p.Y
	return g
}

func (g EllipseGeometry) Bounds() Rect {
	rx, ry := math.Abs(g.RX), math.Abs(g.RY)
	return Rect{g.CX - rx, g.CY - ry, 2 * rx, 2 * ry}
}

func (g EllipseGeometry) Contains(x, y, _ float64) bool {
	rx, ry := math.Abs(g.RX), math.Abs(g.RY)
	if rx == 0 || ry == 0 {
		return false
	}
	dx := (x - g.CX) / rx
	dy := (y - g.CY) / ry
	return dx*dx+dy*dy <= 1
}

// Shape is a drawable element owned by a Canvas. The geometry is kind-tagged;
// the kind never changes after construction.
type Shape struct {
	// ID is stable for the lifetime of the shape and survives save/restore.
	ID string
	// Movable shapes take part in move and resize gestures.
	Movable bool

	Fill        Color
	Stroke      Color
	StrokeWidth float64

	geom   Geometry
	canvas *Canvas
}

// NewShape creates a detached, movable shape with the given geometry.
// Add it to a Canvas to make it visible and interactive.
func NewShape(id string, g Geometry) *Shape {
	return &Shape{
		ID:          id,
		Movable:     true,
		StrokeWidth: 1,
		geom:        g,
	}
}

// Kind returns the shape's kind.
func (s *Shape) Kind() ShapeKind {
	return s.geom.Kind()
}

// Geometry returns a copy of the current geometry.
func (s *Shape) Geometry() Geometry {
	return s.geom
}

// SetGeometry replaces the geometry. Once a shape has a geometry the new one
// must be of the same kind.
func (s *Shape) SetGeometry(g Geometry) error {
	if g == nil {
		return fmt.Errorf("set geometry on %q: nil geometry", s.ID)
	}
	if s.geom != nil && g.Kind() != s.geom.Kind() {
		return fmt.Errorf("set geometry on %s %q: kind mismatch", s.geom.Kind(), s.ID)
	}
	s.geom = g
	return nil
}

// Canvas returns the owning canvas, or nil once the shape has been deleted.
func (s *Shape) Canvas() *Canvas {
	return s.canvas
}

// Resizable reports whether the shape exposes corner resize handles.
func (s *Shape) Resizable() bool {
	_, ok := s.geom.(Resizable)
	return ok
}
