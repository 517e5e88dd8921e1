package sketch

// DefaultHandleSize is the side of the square resize zone at each corner,
// in screen units.
const DefaultHandleSize = 10.0

// cornerOrder is the hit-test priority for overlapping zones on tiny shapes.
var cornerOrder = [4]Corner{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight}

// GestureSession is the state of one move or resize interaction. It exists
// from a qualifying pointer-down until the next pointer-up or pointer-leave.
type GestureSession struct {
	Target *Shape
	Mode   GestureMode
	// Corner is the grabbed handle. Only meaningful when Mode is GestureResize.
	Corner Corner
	// AnchorGeometry is the target's geometry when the session started.
	AnchorGeometry Geometry
	// AnchorPointer is the canvas-local pointer position at pointer-down.
	AnchorPointer Vec2
	// GrabOffset is the anchor point minus AnchorPointer, used when moves
	// preserve the grab offset.
	GrabOffset Vec2
}

// CornerZone returns the screen-space square for corner c of bounds, flush to
// the corner and extending size units inward.
func CornerZone(bounds Rect, c Corner, size float64) Rect {
	x, y := bounds.X, bounds.Y
	switch c {
	case CornerTopRight:
		x = bounds.X + bounds.Width - size
	case CornerBottomLeft:
		y = bounds.Y + bounds.Height - size
	case CornerBottomRight:
		x = bounds.X + bounds.Width - size
		y = bounds.Y + bounds.Height - size
	}
	return Rect{X: x, Y: y, Width: size, Height: size}
}

// Classify decides the gesture for a pointer-down at screen point (sx, sy) on
// a shape whose screen-space bounding box is bounds. Non-resizable shapes
// always move. Zone edges are inclusive; ties go to the first corner in
// top-left, top-right, bottom-left, bottom-right order.
func Classify(bounds Rect, sx, sy float64, resizable bool, handleSize float64) (GestureMode, Corner) {
	if !resizable {
		return GestureMove, CornerTopLeft
	}
	for _, c := range cornerOrder {
		if CornerZone(bounds, c, handleSize).Contains(sx, sy) {
			return GestureResize, c
		}
	}
	return GestureMove, CornerTopLeft
}
