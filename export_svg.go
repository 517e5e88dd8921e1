package sketch

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// movableClass marks shapes that take part in gestures.
const movableClass = "movable"

// geomAttr carries the exact geometry next to svgo's integer coordinates:
// four space-separated floats in the order of the element's own
// coordinates, un-normalized.
const geomAttr = "data-geom"

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

// attr formats a raw name="value" attribute for svgo.
func attr(name, value string) string {
	return name + `="` + attrEscaper.Replace(value) + `"`
}

// WriteSVG writes the drawing as an SVG document of Config.Width x
// Config.Height. Element coordinates are rounded to whole canvas units, with
// the exact geometry kept in a data-geom attribute, and rectangles
// with a negative size are written normalized.
func (c *Canvas) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}
	doc := svg.New(ew)
	doc.Start(c.cfg.Width, c.cfg.Height)
	for _, s := range c.shapes {
		writeShapeSVG(doc, s)
	}
	doc.End()
	if ew.err != nil {
		return fmt.Errorf("write svg: %w", ew.err)
	}
	return nil
}

func writeShapeSVG(doc *svg.SVG, s *Shape) {
	attrs := []string{attr("id", s.ID)}
	if s.Movable {
		attrs = append(attrs, attr("class", movableClass))
	}
	attrs = append(attrs, attr("fill", s.Fill.Hex()))
	if !s.Stroke.IsNone() {
		attrs = append(attrs,
			attr("stroke", s.Stroke.Hex()),
			attr("stroke-width", fmt.Sprintf("%g", s.StrokeWidth)))
	}

	attrs = append(attrs, attr(geomAttr, formatGeom(s.geom)))

	switch g := s.geom.(type) {
	case RectGeometry:
		b := g.Bounds()
		doc.Rect(round(b.X), round(b.Y), round(b.Width), round(b.Height), attrs...)
	case LineGeometry:
		doc.Line(round(g.X1), round(g.Y1), round(g.X2), round(g.Y2), attrs...)
	case EllipseGeometry:
		doc.Ellipse(round(g.CX), round(g.CY), round(math.Abs(g.RX)), round(math.Abs(g.RY)), attrs...)
	}
}

// formatGeom writes the four geometry fields with full precision.
func formatGeom(g Geometry) string {
	var v [4]float64
	switch g := g.(type) {
	case RectGeometry:
		v = [4]float64{g.X, g.Y, g.Width, g.Height}
	case LineGeometry:
		v = [4]float64{g.X1, g.Y1, g.X2, g.Y2}
	case EllipseGeometry:
		v = [4]float64{g.CX, g.CY, g.RX, g.RY}
	}
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, " ")
}

func round(f float64) int {
	return int(math.Round(f))
}
