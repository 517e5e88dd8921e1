package sketch

import (
	"math"
	"testing"
)

// These tests cover the draw helpers that need no ebiten.Image.

func TestHandleTarget(t *testing.T) {
	c := newTestCanvas()
	r := c.Create(KindRect)
	l := c.Create(KindLine)

	if c.handleTarget() != nil {
		t.Error("no handles without hover or session")
	}
	c.OnPointerOver(r)
	if c.handleTarget() != r {
		t.Error("hovered rect should show handles")
	}
	c.OnPointerOver(l)
	if c.handleTarget() != nil {
		t.Error("lines have no handles")
	}

	// The session target wins over the hovered shape.
	c.OnPointerDown(at(5, 5), r)
	if c.handleTarget() != r {
		t.Error("session target should show handles")
	}

	r.Movable = false
	c.OnPointerUp()
	c.OnPointerOver(r)
	if c.handleTarget() != nil {
		t.Error("non-movable rect should not show handles")
	}
}

func TestEllipsePoints(t *testing.T) {
	c := newTestCanvas()
	c.SetViewport(&Viewport{OriginX: 10, OriginY: 20, ScaleX: 2, ScaleY: 2, Width: 100, Height: 100})
	pts := c.ellipsePoints(EllipseGeometry{CX: 0, CY: 0, RX: 5, RY: -3})
	if len(pts) != ellipseSegments {
		t.Fatalf("len = %d, want %d", len(pts), ellipseSegments)
	}
	// First point is at angle 0: (cx+rx, cy) in canvas space.
	if pts[0] != (Vec2{20, 20}) {
		t.Errorf("pts[0] = %v, want (20,20)", pts[0])
	}
	quarter := pts[ellipseSegments/4]
	if math.Abs(quarter.X-10) > 1e-9 || math.Abs(quarter.Y-26) > 1e-9 {
		t.Errorf("pts[%d] = %v, want (10,26)", ellipseSegments/4, quarter)
	}
}
