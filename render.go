package sketch

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ellipseSegments is the polygon resolution used for ellipses on screen.
const ellipseSegments = 64

// handleColor is the fill of the corner resize handles.
var handleColor = Color{1, 0, 0, 1}

// whiteSubImage is the 1x1 source texture for solid-color triangles. Created
// on first Draw so importing the package never touches the GPU.
var whiteSubImage *ebiten.Image

func solidTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// Draw renders the canvas background, every shape in paint order and the
// resize handles of the rectangle under the pointer or being dragged.
func (c *Canvas) Draw(screen *ebiten.Image) {
	v := c.viewport
	if !v.usable() {
		return
	}
	vector.DrawFilledRect(screen, float32(v.OriginX), float32(v.OriginY),
		float32(v.Width), float32(v.Height), color.White, false)

	for _, s := range c.shapes {
		c.drawShape(screen, s)
	}
	if s := c.handleTarget(); s != nil {
		c.drawHandles(screen, s)
	}
}

// handleTarget returns the resizable shape whose handles should be shown.
func (c *Canvas) handleTarget() *Shape {
	s := c.hovered
	if c.session != nil {
		s = c.session.Target
	}
	if s == nil || !s.Movable || !s.Resizable() {
		return nil
	}
	return s
}

func (c *Canvas) drawShape(screen *ebiten.Image, s *Shape) {
	v := c.viewport
	sw := float32(s.StrokeWidth * math.Abs(v.ScaleX))

	switch g := s.geom.(type) {
	case RectGeometry:
		b, _ := v.ScreenBounds(g.Bounds())
		x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
		if !s.Fill.IsNone() {
			vector.DrawFilledRect(screen, x, y, w, h, s.Fill.toRGBA(), true)
		}
		if !s.Stroke.IsNone() && sw > 0 {
			vector.StrokeRect(screen, x, y, w, h, sw, s.Stroke.toRGBA(), true)
		}
	case LineGeometry:
		if s.Stroke.IsNone() || sw <= 0 {
			return
		}
		x0, y0 := v.CanvasToScreen(g.X1, g.Y1)
		x1, y1 := v.CanvasToScreen(g.X2, g.Y2)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1),
			sw, s.Stroke.toRGBA(), true)
	case EllipseGeometry:
		pts := c.ellipsePoints(g)
		if !s.Fill.IsNone() {
			fillConvex(screen, pts, s.Fill)
		}
		if !s.Stroke.IsNone() && sw > 0 {
			clr := s.Stroke.toRGBA()
			for i := range pts {
				a, b := pts[i], pts[(i+1)%len(pts)]
				vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), sw, clr, true)
			}
		}
	}
}

// ellipsePoints returns the screen-space outline of g.
func (c *Canvas) ellipsePoints(g EllipseGeometry) []Vec2 {
	pts := make([]Vec2, ellipseSegments)
	rx, ry := math.Abs(g.RX), math.Abs(g.RY)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / ellipseSegments)
		x, y := c.viewport.CanvasToScreen(g.CX+rx*cos, g.CY+ry*sin)
		pts[i] = Vec2{x, y}
	}
	return pts
}

// fillConvex fills a convex polygon with a triangle fan.
func fillConvex(screen *ebiten.Image, pts []Vec2, col Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := float32(col.R*col.A), float32(col.G*col.A), float32(col.B*col.A), float32(col.A)
	verts := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		verts[i] = ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	indices := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i < len(pts)-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1))
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(verts, indices, solidTexture(), op)
}

// drawHandles draws the four corner zones of s as solid squares.
func (c *Canvas) drawHandles(screen *ebiten.Image, s *Shape) {
	b, err := c.viewport.ScreenBounds(s.geom.Bounds())
	if err != nil {
		return
	}
	for _, corner := range cornerOrder {
		z := CornerZone(b, corner, c.cfg.HandleSize)
		vector.DrawFilledRect(screen, float32(z.X), float32(z.Y),
			float32(z.Width), float32(z.Height), handleColor.toRGBA(), false)
	}
}
