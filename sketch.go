package sketch

// Vec2 is a 2D vector used for points, offsets and sizes throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Normalized returns r with non-negative Width and Height, moving the origin
// so the covered area is unchanged.
func (r Rect) Normalized() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// ShapeKind identifies the geometry carried by a Shape.
type ShapeKind uint8

const (
	KindRect    ShapeKind = iota // {X, Y, Width, Height}
	KindLine                     // {X1, Y1, X2, Y2}
	KindEllipse                  // {CX, CY, RX, RY}
)

// String returns the SVG element name for the kind.
func (k ShapeKind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindLine:
		return "line"
	case KindEllipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Corner names one of the four resize handles of a shape's bounding box.
type Corner uint8

const (
	CornerTopLeft Corner = iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight
)

// String returns a readable name for the corner.
func (c Corner) String() string {
	switch c {
	case CornerTopLeft:
		return "top-left"
	case CornerTopRight:
		return "top-right"
	case CornerBottomLeft:
		return "bottom-left"
	case CornerBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// GestureMode selects how pointer movement is applied to the target shape.
type GestureMode uint8

const (
	GestureMove   GestureMode = iota // anchor point follows the pointer
	GestureResize                    // size grows by the pointer displacement
)

// String returns a readable name for the mode.
func (m GestureMode) String() string {
	if m == GestureResize {
		return "resize"
	}
	return "move"
}

// ResizeMode selects the resize arithmetic applied to rectangles.
type ResizeMode uint8

const (
	// ResizeGrow adds the pointer displacement to the anchor size regardless
	// of which corner was grabbed. The position is never changed.
	ResizeGrow ResizeMode = iota
	// ResizeAnchored moves the grabbed corner with the pointer and keeps the
	// opposite corner fixed.
	ResizeAnchored
)

// EventType identifies a kind of gesture or registry event.
type EventType uint8

const (
	EventGestureStart  EventType = iota // fires when a pointer-down opens a session
	EventGestureUpdate                  // fires after each pointer-move applied to the target
	EventGestureEnd                     // fires when pointer-up/leave closes the session
	EventShapeDelete                    // fires when a shape is removed from the canvas
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
