package sketch

// apply computes the target geometry for a pointer at canvas point p.
// The session itself is never modified.
func (s *GestureSession) apply(p Vec2, resize ResizeMode, preserveOffset bool) Geometry {
	current := s.Target.geom
	switch s.Mode {
	case GestureMove:
		if preserveOffset {
			p = p.Add(s.GrabOffset)
		}
		return current.WithAnchor(p)
	case GestureResize:
		r, ok := s.AnchorGeometry.(Resizable)
		if !ok {
			return current
		}
		d := p.Sub(s.AnchorPointer)
		return resizeFrom(r, s.Corner, d, resize)
	}
	return current
}

// resizeFrom applies displacement d to the anchor geometry r.
// Sizes are not clamped and may become zero or negative.
func resizeFrom(r Resizable, corner Corner, d Vec2, mode ResizeMode) Geometry {
	size := r.Size()
	if mode == ResizeGrow {
		return r.WithSize(size.X+d.X, size.Y+d.Y)
	}

	// corner names the grabbed corner of the normalized box; a flipped
	// rectangle has that corner on the opposite side of its raw geometry.
	corner = mirrorCorner(corner, size.X < 0, size.Y < 0)

	pos := r.Anchor()
	w, h := size.X, size.Y
	switch corner {
	case CornerTopLeft:
		pos = pos.Add(d)
		w -= d.X
		h -= d.Y
	case CornerTopRight:
		pos.Y += d.Y
		w += d.X
		h -= d.Y
	case CornerBottomLeft:
		pos.X += d.X
		w -= d.X
		h += d.Y
	case CornerBottomRight:
		w += d.X
		h += d.Y
	}
	return r.WithSize(w, h).WithAnchor(pos)
}

// mirrorCorner swaps left/right when flipX is set and top/bottom when flipY
// is set.
func mirrorCorner(c Corner, flipX, flipY bool) Corner {
	if flipX {
		switch c {
		case CornerTopLeft:
			c = CornerTopRight
		case CornerTopRight:
			c = CornerTopLeft
		case CornerBottomLeft:
			c = CornerBottomRight
		case CornerBottomRight:
			c = CornerBottomLeft
		}
	}
	if flipY {
		switch c {
		case CornerTopLeft:
			c = CornerBottomLeft
		case CornerBottomLeft:
			c = CornerTopLeft
		case CornerTopRight:
			c = CornerBottomRight
		case CornerBottomRight:
			c = CornerTopRight
		}
	}
	return c
}
