package sketch

import (
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// PointerEvent is a pointer sample in screen coordinates.
type PointerEvent struct {
	ScreenX, ScreenY float64
	Button           MouseButton
	Modifiers        KeyModifiers
}

// GestureContext carries gesture data to scene-level callbacks.
type GestureContext struct {
	Shape  *Shape
	Mode   GestureMode
	Corner Corner
	// CanvasX and CanvasY are the canvas-local pointer position.
	CanvasX, CanvasY float64
	// DeltaX and DeltaY are the displacement since the session started.
	DeltaX, DeltaY float64
	Modifiers      KeyModifiers
}

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	inside bool
	lastX  float64
	lastY  float64
}

// --- Handler registry ---

type gestureHandler struct {
	id uint32
	fn func(GestureContext)
}

type keyHandler struct {
	id uint32
	fn func(rune)
}

type handlerRegistry struct {
	gestureStart  []gestureHandler
	gestureUpdate []gestureHandler
	gestureEnd    []gestureHandler
	key           []keyHandler
	nextID        uint32
}

// handlerKind selects the slice a CallbackHandle refers to.
type handlerKind uint8

const (
	handlerGestureStart handlerKind = iota
	handlerGestureUpdate
	handlerGestureEnd
	handlerKey
)

// CallbackHandle allows removing a registered canvas-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerGestureStart:
		h.reg.gestureStart = removeGestureHandler(h.reg.gestureStart, h.id)
	case handlerGestureUpdate:
		h.reg.gestureUpdate = removeGestureHandler(h.reg.gestureUpdate, h.id)
	case handlerGestureEnd:
		h.reg.gestureEnd = removeGestureHandler(h.reg.gestureEnd, h.id)
	case handlerKey:
		for i := range h.reg.key {
			if h.reg.key[i].id == h.id {
				copy(h.reg.key[i:], h.reg.key[i+1:])
				h.reg.key[len(h.reg.key)-1] = keyHandler{}
				h.reg.key = h.reg.key[:len(h.reg.key)-1]
				return
			}
		}
	}
}

func removeGestureHandler(s []gestureHandler, id uint32) []gestureHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = gestureHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (c *Canvas) addGestureHandler(kind handlerKind, fn func(GestureContext)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	h := gestureHandler{id: id, fn: fn}
	switch kind {
	case handlerGestureStart:
		c.handlers.gestureStart = append(c.handlers.gestureStart, h)
	case handlerGestureUpdate:
		c.handlers.gestureUpdate = append(c.handlers.gestureUpdate, h)
	case handlerGestureEnd:
		c.handlers.gestureEnd = append(c.handlers.gestureEnd, h)
	}
	return CallbackHandle{id: id, reg: &c.handlers, kind: kind}
}

// OnGestureStart registers a callback fired when a pointer-down opens a session.
func (c *Canvas) OnGestureStart(fn func(GestureContext)) CallbackHandle {
	return c.addGestureHandler(handlerGestureStart, fn)
}

// OnGestureUpdate registers a callback fired after each pointer-move applied
// to the session target.
func (c *Canvas) OnGestureUpdate(fn func(GestureContext)) CallbackHandle {
	return c.addGestureHandler(handlerGestureUpdate, fn)
}

// OnGestureEnd registers a callback fired when the session closes.
func (c *Canvas) OnGestureEnd(fn func(GestureContext)) CallbackHandle {
	return c.addGestureHandler(handlerGestureEnd, fn)
}

// OnKey registers a callback fired for every typed character, after the
// built-in bindings have run.
func (c *Canvas) OnKey(fn func(rune)) CallbackHandle {
	c.handlers.nextID++
	id := c.handlers.nextID
	c.handlers.key = append(c.handlers.key, keyHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &c.handlers, kind: handlerKey}
}

// --- Pointer entry points ---

// Session returns the active gesture session, or nil.
func (c *Canvas) Session() *GestureSession {
	return c.session
}

// Hovered returns the shape last reported under the pointer, or nil.
func (c *Canvas) Hovered() *Shape {
	return c.hovered
}

// OnPointerDown classifies a pointer-down over hit and opens a session.
// hit is the topmost shape under the pointer as determined by the host (see
// ShapeAt). A nil, non-movable or foreign hit opens no session. Any session
// still open is closed first. Reports whether a session was opened.
func (c *Canvas) OnPointerDown(ev PointerEvent, hit *Shape) bool {
	if c.session != nil {
		c.endSession()
	}
	if hit == nil || !hit.Movable || hit.canvas != c {
		return false
	}
	cx, cy, err := c.viewport.ScreenToCanvas(ev.ScreenX, ev.ScreenY)
	if err != nil {
		c.debugf("pointer down ignored: %v", err)
		return false
	}
	bounds, err := c.viewport.ScreenBounds(hit.geom.Bounds())
	if err != nil {
		c.debugf("pointer down ignored: %v", err)
		return false
	}

	mode, corner := Classify(bounds, ev.ScreenX, ev.ScreenY, hit.Resizable(), c.cfg.HandleSize)
	anchor := hit.geom.Anchor()
	c.session = &GestureSession{
		Target:         hit,
		Mode:           mode,
		Corner:         corner,
		AnchorGeometry: hit.geom,
		AnchorPointer:  Vec2{cx, cy},
		GrabOffset:     Vec2{anchor.X - cx, anchor.Y - cy},
	}
	c.debugf("%s %q start at (%.1f, %.1f) corner=%s", mode, hit.ID, cx, cy, corner)
	c.fireGesture(c.handlers.gestureStart, EventGestureStart, cx, cy, ev.Modifiers)
	return true
}

// OnPointerMove applies the pointer position to the session target. Without a
// session, or when the canvas geometry is unavailable, it does nothing.
// Reports whether the target's geometry changed.
func (c *Canvas) OnPointerMove(ev PointerEvent) bool {
	if c.session == nil {
		return false
	}
	cx, cy, err := c.viewport.ScreenToCanvas(ev.ScreenX, ev.ScreenY)
	if err != nil {
		c.debugf("pointer move ignored: %v", err)
		return false
	}
	target := c.session.Target
	next := c.session.apply(Vec2{cx, cy}, c.cfg.Resize, c.cfg.PreserveGrabOffset)
	changed := next != target.geom
	target.geom = next
	c.fireGesture(c.handlers.gestureUpdate, EventGestureUpdate, cx, cy, ev.Modifiers)
	return changed
}

// OnPointerUp closes the active session, if any.
func (c *Canvas) OnPointerUp() {
	c.endSession()
}

// OnPointerLeave closes the active session, if any, and clears the hover.
func (c *Canvas) OnPointerLeave() {
	c.endSession()
	c.hovered = nil
}

// OnPointerOver records the shape under the pointer for delete-on-hover.
func (c *Canvas) OnPointerOver(hit *Shape) {
	if hit != nil && hit.canvas != c {
		hit = nil
	}
	c.hovered = hit
}

// OnKeyPress handles a typed character: 'd' deletes the hovered shape.
// Registered OnKey callbacks run afterwards. Reports whether a shape was
// deleted.
func (c *Canvas) OnKeyPress(r rune) bool {
	deleted := false
	if r == 'd' && c.hovered != nil && strings.HasPrefix(c.hovered.ID, shapeIDPrefix) {
		deleted = c.Delete(c.hovered)
	}
	for _, h := range c.handlers.key {
		h.fn(r)
	}
	return deleted
}

func (c *Canvas) endSession() {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	c.debugf("%s %q end", s.Mode, s.Target.ID)

	ctx := GestureContext{Shape: s.Target, Mode: s.Mode, Corner: s.Corner}
	for _, h := range c.handlers.gestureEnd {
		h.fn(ctx)
	}
	c.emitEvent(GestureEvent{
		Type: EventGestureEnd, ShapeID: s.Target.ID, Kind: s.Target.Kind(),
		Mode: s.Mode, Corner: s.Corner, Geometry: s.Target.geom,
	})
}

func (c *Canvas) fireGesture(handlers []gestureHandler, typ EventType, cx, cy float64, mods KeyModifiers) {
	s := c.session
	ctx := GestureContext{
		Shape: s.Target, Mode: s.Mode, Corner: s.Corner,
		CanvasX: cx, CanvasY: cy,
		DeltaX: cx - s.AnchorPointer.X, DeltaY: cy - s.AnchorPointer.Y,
		Modifiers: mods,
	}
	for _, h := range handlers {
		h.fn(ctx)
	}
	c.emitEvent(GestureEvent{
		Type: typ, ShapeID: s.Target.ID, Kind: s.Target.Kind(),
		Mode: s.Mode, Corner: s.Corner, CanvasX: cx, CanvasY: cy,
		Geometry: s.Target.geom,
	})
}

// --- Hit testing ---

// ShapeAt finds the topmost shape under the screen point (sx, sy).
// Returns nil if nothing is hit or the canvas geometry is unavailable.
func (c *Canvas) ShapeAt(sx, sy float64) *Shape {
	x, y, err := c.viewport.ScreenToCanvas(sx, sy)
	if err != nil {
		return nil
	}
	tol := c.cfg.LineHitTolerance
	if sc := math.Min(math.Abs(c.viewport.ScaleX), math.Abs(c.viewport.ScaleY)); sc > 0 {
		tol /= sc
	}
	// Iterate backward (reverse paint order): topmost shape first.
	for i := len(c.shapes) - 1; i >= 0; i-- {
		s := c.shapes[i]
		if s.geom.Contains(x, y, math.Max(tol, s.StrokeWidth/2)) {
			return s
		}
	}
	return nil
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Canvas.Update() to handle mouse and keyboard
// input. Injected events take priority over real input for the frame.
func (c *Canvas) processInput() {
	if c.processInjectedInput() {
		return
	}
	if c.cfg.Headless {
		return
	}

	mods := readModifiers()
	mx, my := ebiten.CursorPosition()
	sx, sy := float64(mx), float64(my)
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	c.processPointer(sx, sy, pressed, c.insideCanvas(sx, sy), mods)

	c.charBuf = ebiten.AppendInputChars(c.charBuf[:0])
	for _, r := range c.charBuf {
		c.OnKeyPress(r)
	}
}

// insideCanvas reports whether a screen point is over the canvas area.
func (c *Canvas) insideCanvas(sx, sy float64) bool {
	v := c.viewport
	if !v.usable() {
		return false
	}
	return Rect{X: v.OriginX, Y: v.OriginY, Width: v.Width, Height: v.Height}.Contains(sx, sy)
}

// processPointer turns a raw pointer sample into entry-point calls: the four
// handlers are driven from here exactly once per sample.
func (c *Canvas) processPointer(sx, sy float64, pressed, inside bool, mods KeyModifiers) {
	ps := &c.pointer
	if !inside {
		if ps.inside {
			c.OnPointerLeave()
		}
		ps.inside = false
		ps.down = pressed
		return
	}
	ps.inside = true

	ev := PointerEvent{ScreenX: sx, ScreenY: sy, Button: MouseButtonLeft, Modifiers: mods}
	moved := sx != ps.lastX || sy != ps.lastY
	switch {
	case pressed && !ps.down:
		hit := c.ShapeAt(sx, sy)
		c.OnPointerOver(hit)
		c.OnPointerDown(ev, hit)
	case !pressed && ps.down:
		c.OnPointerUp()
	case moved:
		if c.session == nil {
			c.OnPointerOver(c.ShapeAt(sx, sy))
		}
		c.OnPointerMove(ev)
	}
	ps.down = pressed
	ps.lastX = sx
	ps.lastY = sy
}
