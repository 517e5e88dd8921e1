package sketch

import (
	"errors"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ErrGeometryUnavailable is returned by coordinate conversion when the canvas
// is detached, zero-sized or has a degenerate scale. It can occur transiently
// during layout; pointer handlers treat it as "ignore this event".
var ErrGeometryUnavailable = errors.New("sketch: canvas geometry unavailable")

// viewAnim holds an active tween pair for one viewport property.
type viewAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// update advances both tweens and returns the current values.
func (a *viewAnim) update(dt float32, x, y float64) (float64, float64) {
	if !a.doneX {
		val, done := a.tweenX.Update(dt)
		x = float64(val)
		a.doneX = done
	}
	if !a.doneY {
		val, done := a.tweenY.Update(dt)
		y = float64(val)
		a.doneY = done
	}
	return x, y
}

func (a *viewAnim) finished() bool {
	return a.doneX && a.doneY
}

// Viewport maps screen coordinates onto the canvas: a canvas point (x, y) is
// drawn at (OriginX + x*ScaleX, OriginY + y*ScaleY).
type Viewport struct {
	// OriginX and OriginY are the screen position of the canvas origin.
	OriginX, OriginY float64
	// ScaleX and ScaleY are the screen units per canvas unit.
	ScaleX, ScaleY float64
	// Width and Height are the on-screen size of the canvas. A zero size
	// means the canvas is not laid out yet.
	Width, Height float64

	panAnim  *viewAnim
	zoomAnim *viewAnim
}

// NewViewport creates an identity viewport of the given screen size.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{ScaleX: 1, ScaleY: 1, Width: width, Height: height}
}

// usable reports whether conversions through v are well defined.
func (v *Viewport) usable() bool {
	if v == nil || v.Width <= 0 || v.Height <= 0 {
		return false
	}
	return finiteNonZero(v.ScaleX) && finiteNonZero(v.ScaleY) &&
		!math.IsNaN(v.OriginX) && !math.IsNaN(v.OriginY)
}

func finiteNonZero(f float64) bool {
	return f != 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

// ScreenToCanvas converts screen coordinates to canvas-local coordinates.
// Call it once per pointer event so pan and zoom are never stale.
func (v *Viewport) ScreenToCanvas(sx, sy float64) (x, y float64, err error) {
	if !v.usable() {
		return 0, 0, ErrGeometryUnavailable
	}
	return (sx - v.OriginX) / v.ScaleX, (sy - v.OriginY) / v.ScaleY, nil
}

// CanvasToScreen converts canvas-local coordinates to screen coordinates.
func (v *Viewport) CanvasToScreen(x, y float64) (sx, sy float64) {
	return v.OriginX + x*v.ScaleX, v.OriginY + y*v.ScaleY
}

// ScreenBounds converts a canvas-space rectangle to its normalized
// screen-space bounding box.
func (v *Viewport) ScreenBounds(r Rect) (Rect, error) {
	if !v.usable() {
		return Rect{}, ErrGeometryUnavailable
	}
	x0, y0 := v.CanvasToScreen(r.X, r.Y)
	x1, y1 := v.CanvasToScreen(r.X+r.Width, r.Y+r.Height)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}.Normalized(), nil
}

// PanTo animates the canvas origin to (x, y) screen units over duration seconds.
func (v *Viewport) PanTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.panAnim = &viewAnim{
		tweenX: gween.New(float32(v.OriginX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.OriginY), float32(y), duration, easeFn),
	}
}

// ZoomTo animates both scale factors to scale over duration seconds.
func (v *Viewport) ZoomTo(scale float64, duration float32, easeFn ease.TweenFunc) {
	v.zoomAnim = &viewAnim{
		tweenX: gween.New(float32(v.ScaleX), float32(scale), duration, easeFn),
		tweenY: gween.New(float32(v.ScaleY), float32(scale), duration, easeFn),
	}
}

// Animating reports whether a pan or zoom tween is in progress.
func (v *Viewport) Animating() bool {
	return v.panAnim != nil || v.zoomAnim != nil
}

// update advances pan and zoom tweens. Called from Canvas.Update().
func (v *Viewport) update(dt float32) {
	if v.panAnim != nil {
		v.OriginX, v.OriginY = v.panAnim.update(dt, v.OriginX, v.OriginY)
		if v.panAnim.finished() {
			v.panAnim = nil
		}
	}
	if v.zoomAnim != nil {
		v.ScaleX, v.ScaleY = v.zoomAnim.update(dt, v.ScaleX, v.ScaleY)
		if v.zoomAnim.finished() {
			v.zoomAnim = nil
		}
	}
}
