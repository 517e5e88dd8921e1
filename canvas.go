package sketch

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Canvas, gesture events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries gesture data for the ECS bridge.
type GestureEvent struct {
	Type    EventType
	ShapeID string
	Kind    ShapeKind
	Mode    GestureMode
	Corner  Corner
	// Canvas-local pointer position (zero for EventShapeDelete).
	CanvasX float64
	CanvasY float64
	// Geometry of the shape after the event.
	Geometry Geometry
}

// Config holds the canvas behavior settings. Start from DefaultConfig.
type Config struct {
	// Width and Height are the drawing size in canvas units, used for the
	// initial viewport and for export.
	Width, Height int
	// HandleSize is the side of each corner resize zone in screen units.
	HandleSize float64
	// LineHitTolerance is how far (screen units) a pointer may be from a
	// line and still pick it.
	LineHitTolerance float64
	// Resize selects the rectangle resize arithmetic.
	Resize ResizeMode
	// PreserveGrabOffset keeps the distance between the pointer and the
	// shape's anchor during a move. When false the anchor snaps to the
	// pointer on the first move.
	PreserveGrabOffset bool
	// AutosaveInterval is the period between automatic saves to Storage.
	// Zero disables autosave.
	AutosaveInterval time.Duration
	// Storage persists the drawing. Nil disables Save, Restore and autosave.
	Storage Storage
	// Headless skips reading Ebitengine input in Update. Injected input is
	// still processed.
	Headless bool
}

// Default drawing size, matching the PNG export size.
const (
	DefaultWidth  = 900
	DefaultHeight = 600
)

// DefaultConfig returns the standard settings: 900x600, 10-unit handles,
// grow-style resize, snapping moves and a 10 second autosave.
func DefaultConfig() Config {
	return Config{
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		HandleSize:       DefaultHandleSize,
		LineHitTolerance: 4,
		Resize:           ResizeGrow,
		AutosaveInterval: 10 * time.Second,
	}
}

// withDefaults fills zero sizes so a partially populated Config is usable.
func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.HandleSize <= 0 {
		c.HandleSize = DefaultHandleSize
	}
	if c.LineHitTolerance < 0 {
		c.LineHitTolerance = 0
	}
	return c
}

// shapeIDPrefix marks shapes created by the canvas; delete-on-hover only
// removes shapes carrying it.
const shapeIDPrefix = "shape"

// Canvas is the top-level object that owns the shapes, the viewport, the
// gesture state and persistence. It is not safe for concurrent use; all calls
// must come from the goroutine running the game loop.
type Canvas struct {
	cfg      Config
	shapes   []*Shape
	nextID   int
	viewport *Viewport
	color    Color
	store    EntityStore

	debug    bool
	debugOut io.Writer

	// Input state
	handlers    handlerRegistry
	session     *GestureSession
	hovered     *Shape
	pointer     pointerState
	injectQueue []syntheticEvent
	charBuf     []rune
	testRunner  *TestRunner

	autosave autosaver
}

// NewCanvas creates an empty canvas with an identity viewport of
// cfg.Width x cfg.Height.
func NewCanvas(cfg Config) *Canvas {
	cfg = cfg.withDefaults()
	return &Canvas{
		cfg:      cfg,
		viewport: NewViewport(float64(cfg.Width), float64(cfg.Height)),
		color:    ColorBlack,
		debugOut: os.Stderr,
		autosave: autosaver{interval: cfg.AutosaveInterval},
	}
}

// Config returns the canvas settings.
func (c *Canvas) Config() Config {
	return c.cfg
}

// Viewport returns the current viewport, or nil when detached.
func (c *Canvas) Viewport() *Viewport {
	return c.viewport
}

// SetViewport replaces the viewport. A nil viewport detaches the canvas:
// pointer events are ignored until a viewport is set again.
func (c *Canvas) SetViewport(v *Viewport) {
	c.viewport = v
}

// SetEntityStore sets the optional ECS bridge.
func (c *Canvas) SetEntityStore(store EntityStore) {
	c.store = store
}

// SetColor selects the color applied to newly created shapes.
func (c *Canvas) SetColor(col Color) {
	c.color = col
}

// SelectedColor returns the color applied to newly created shapes.
func (c *Canvas) SelectedColor() Color {
	return c.color
}

// Update advances viewport tweens, runs the attached test runner, processes
// input and autosaves when due. Call once per Ebitengine tick.
func (c *Canvas) Update() {
	c.tick(float32(1.0 / float64(ebiten.TPS())))
}

// tick is Update with an explicit frame duration in seconds.
func (c *Canvas) tick(dt float32) {
	if c.viewport != nil {
		c.viewport.update(dt)
	}
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInput()
	c.autosave.tick(c, time.Duration(float64(dt)*float64(time.Second)))
}

// --- Shape registry ---

// Create adds a new shape of the given kind with the default geometry and the
// selected color, and returns it. Rectangles and ellipses are filled with the
// color; lines are stroked with it.
func (c *Canvas) Create(kind ShapeKind) *Shape {
	var s *Shape
	id := c.newID()
	switch kind {
	case KindLine:
		s = NewShape(id, LineGeometry{X1: 10, Y1: 10, X2: 200, Y2: 200})
		s.Stroke = c.color
		s.StrokeWidth = 2
	case KindEllipse:
		s = NewShape(id, EllipseGeometry{CX: 100, CY: 50, RX: 100, RY: 50})
		s.Fill = c.color
	default:
		s = NewShape(id, RectGeometry{X: 0, Y: 0, Width: 200, Height: 200})
		s.Fill = c.color
	}
	c.attach(s)
	c.debugf("create %s %q", kind, id)
	return s
}

// Add attaches an existing shape. The ID must be non-empty and unique on this
// canvas, and the shape must not belong to another canvas.
func (c *Canvas) Add(s *Shape) error {
	if s == nil || s.geom == nil {
		return fmt.Errorf("add shape: nil shape or geometry")
	}
	if s.ID == "" {
		return fmt.Errorf("add shape: empty id")
	}
	if s.canvas != nil {
		return fmt.Errorf("add shape %q: already on a canvas", s.ID)
	}
	if c.Get(s.ID) != nil {
		return fmt.Errorf("add shape %q: duplicate id", s.ID)
	}
	c.attach(s)
	c.reserveID(s.ID)
	return nil
}

func (c *Canvas) attach(s *Shape) {
	s.canvas = c
	c.shapes = append(c.shapes, s)
	if c.debug {
		debugCheckShapeCount(c)
	}
}

// Delete removes s from the canvas. Deleting the target of the active session
// ends the session. Reports whether s was on the canvas.
func (c *Canvas) Delete(s *Shape) bool {
	if s == nil || s.canvas != c {
		return false
	}
	for i, e := range c.shapes {
		if e == s {
			copy(c.shapes[i:], c.shapes[i+1:])
			c.shapes[len(c.shapes)-1] = nil
			c.shapes = c.shapes[:len(c.shapes)-1]
			break
		}
	}
	if c.session != nil && c.session.Target == s {
		c.endSession()
	}
	if c.hovered == s {
		c.hovered = nil
	}
	s.canvas = nil
	c.emitEvent(GestureEvent{Type: EventShapeDelete, ShapeID: s.ID, Kind: s.Kind(), Geometry: s.geom})
	c.debugf("delete %s %q", s.Kind(), s.ID)
	return true
}

// Shapes returns the shapes in paint order (first is bottom-most).
// The returned slice MUST NOT be mutated.
func (c *Canvas) Shapes() []*Shape {
	return c.shapes
}

// Get returns the shape with the given ID, or nil.
func (c *Canvas) Get(id string) *Shape {
	for _, s := range c.shapes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Clear deletes every shape.
func (c *Canvas) Clear() {
	for len(c.shapes) > 0 {
		c.Delete(c.shapes[len(c.shapes)-1])
	}
}

// newID returns the next unused "shape<N>" identifier.
func (c *Canvas) newID() string {
	for {
		c.nextID++
		id := shapeIDPrefix + strconv.Itoa(c.nextID)
		if c.Get(id) == nil {
			return id
		}
	}
}

// reserveID advances the ID counter past a numeric "shape<N>" id.
func (c *Canvas) reserveID(id string) {
	n, err := strconv.Atoi(strings.TrimPrefix(id, shapeIDPrefix))
	if err == nil && strings.HasPrefix(id, shapeIDPrefix) && n > c.nextID {
		c.nextID = n
	}
}

// emitEvent forwards an event to the ECS bridge, if any.
func (c *Canvas) emitEvent(ev GestureEvent) {
	if c.store == nil {
		return
	}
	c.store.EmitEvent(ev)
}
