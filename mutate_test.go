package sketch

import "testing"

func TestResizeFromGrowIgnoresCorner(t *testing.T) {
	r := RectGeometry{X: 10, Y: 20, Width: 100, Height: 50}
	d := Vec2{5, -10}
	want := RectGeometry{X: 10, Y: 20, Width: 105, Height: 40}
	for _, corner := range cornerOrder {
		if got := resizeFrom(r, corner, d, ResizeGrow); got != want {
			t.Errorf("%v: resizeFrom = %+v, want %+v", corner, got, want)
		}
	}
}

func TestResizeFromAnchoredKeepsOppositeCorner(t *testing.T) {
	r := RectGeometry{X: 0, Y: 0, Width: 100, Height: 100}
	d := Vec2{20, 30}
	tests := []struct {
		corner Corner
		fixed  Vec2
	}{
		{CornerTopLeft, Vec2{100, 100}},
		{CornerTopRight, Vec2{0, 100}},
		{CornerBottomLeft, Vec2{100, 0}},
		{CornerBottomRight, Vec2{0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			g := resizeFrom(r, tt.corner, d, ResizeAnchored).(RectGeometry)
			var opp Vec2
			switch tt.corner {
			case CornerTopLeft:
				opp = Vec2{g.X + g.Width, g.Y + g.Height}
			case CornerTopRight:
				opp = Vec2{g.X, g.Y + g.Height}
			case CornerBottomLeft:
				opp = Vec2{g.X + g.Width, g.Y}
			case CornerBottomRight:
				opp = Vec2{g.X, g.Y}
			}
			if opp != tt.fixed {
				t.Errorf("opposite corner = %v, want %v", opp, tt.fixed)
			}
		})
	}
}

func TestApplyDoesNotModifySession(t *testing.T) {
	s := NewShape("a", RectGeometry{Width: 200, Height: 200})
	sess := &GestureSession{
		Target:         s,
		Mode:           GestureResize,
		Corner:         CornerBottomRight,
		AnchorGeometry: s.Geometry(),
		AnchorPointer:  Vec2{195, 195},
	}
	before := *sess
	got := sess.apply(Vec2{205, 215}, ResizeGrow, false)
	if *sess != before {
		t.Error("apply modified the session")
	}
	if want := (RectGeometry{Width: 210, Height: 220}); got != want {
		t.Errorf("apply = %+v, want %+v", got, want)
	}
}

func TestApplyResizeOnNonResizableAnchor(t *testing.T) {
	s := NewShape("l", LineGeometry{X2: 10, Y2: 10})
	sess := &GestureSession{Target: s, Mode: GestureResize, AnchorGeometry: s.Geometry()}
	if got := sess.apply(Vec2{50, 50}, ResizeGrow, false); got != s.Geometry() {
		t.Errorf("apply = %+v, want unchanged", got)
	}
}

func TestMirrorCorner(t *testing.T) {
	tests := []struct {
		c            Corner
		flipX, flipY bool
		want         Corner
	}{
		{CornerTopLeft, false, false, CornerTopLeft},
		{CornerTopLeft, true, false, CornerTopRight},
		{CornerTopLeft, false, true, CornerBottomLeft},
		{CornerTopLeft, true, true, CornerBottomRight},
		{CornerBottomRight, true, false, CornerBottomLeft},
		{CornerBottomRight, false, true, CornerTopRight},
		{CornerTopRight, true, true, CornerBottomLeft},
		{CornerBottomLeft, true, true, CornerTopRight},
	}
	for _, tt := range tests {
		if got := mirrorCorner(tt.c, tt.flipX, tt.flipY); got != tt.want {
			t.Errorf("mirrorCorner(%v, %v, %v) = %v, want %v", tt.c, tt.flipX, tt.flipY, got, tt.want)
		}
	}
}
