package sketch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
)

// toFixed converts a float to 26.6 fixed point.
func toFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(f * 64)
}

// toFixedP converts two floats to a fixed point.
func toFixedP(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
}

// RenderImage rasterizes the drawing onto a white Config.Width x
// Config.Height image, in canvas units.
func (c *Canvas) RenderImage() *image.RGBA {
	w, h := c.cfg.Width, c.cfg.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	filler := rasterx.NewFiller(w, h, scanner)
	dasher := rasterx.NewDasher(w, h, scanner)
	for _, s := range c.shapes {
		rasterShape(filler, dasher, s)
	}
	return img
}

// WritePNG encodes the rasterized drawing as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.RenderImage()); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// rasterShape fills then strokes one shape.
func rasterShape(filler *rasterx.Filler, dasher *rasterx.Dasher, s *Shape) {
	if !s.Fill.IsNone() && s.Kind() != KindLine {
		filler.Clear()
		filler.SetColor(s.Fill.toRGBA())
		addShapePath(filler, s.geom)
		filler.Draw()
	}
	if !s.Stroke.IsNone() && s.StrokeWidth > 0 {
		dasher.Clear()
		dasher.SetStroke(toFixed(s.StrokeWidth), toFixed(4), rasterx.ButtCap, rasterx.ButtCap,
			rasterx.FlatGap, rasterx.Miter, nil, 0)
		dasher.SetColor(s.Stroke.toRGBA())
		addShapePath(dasher, s.geom)
		dasher.Draw()
	}
}

// addShapePath appends the outline of g to p.
func addShapePath(p rasterx.Adder, g Geometry) {
	switch g := g.(type) {
	case RectGeometry:
		b := g.Bounds()
		rasterx.AddRect(b.X, b.Y, b.X+b.Width, b.Y+b.Height, 0, p)
	case EllipseGeometry:
		rasterx.AddEllipse(g.CX, g.CY, math.Abs(g.RX), math.Abs(g.RY), 0, p)
	case LineGeometry:
		p.Start(toFixedP(g.X1, g.Y1))
		p.Line(toFixedP(g.X2, g.Y2))
		p.Stop(false)
	}
}
