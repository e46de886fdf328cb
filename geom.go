package callout

import "math"

type point struct {
	X, Y float32
}

type rect struct {
	X0, Y0, X1, Y1 float32
}

// line is a 2D segment. Degenerate segments (start == end) are valid.
type line struct {
	Start, End point
}

// Exported aliases for library consumers.

type Point = point

type Rect = rect

func pointAdd(a, b point) point {
	return point{X: a.X + b.X, Y: a.Y + b.Y}
}

func pointSub(a, b point) point {
	return point{X: a.X - b.X, Y: a.Y - b.Y}
}

func (p point) distanceTo(o point) float32 {
	dx := float64(o.X - p.X)
	dy := float64(o.Y - p.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}

// NewRect builds a rect from a top-left position and a size.
func NewRect(x, y, w, h float32) rect {
	return rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

func (r rect) width() float32  { return r.X1 - r.X0 }
func (r rect) height() float32 { return r.Y1 - r.Y0 }

func (r rect) centre() point {
	return point{X: (r.X0 + r.X1) / 2, Y: (r.Y0 + r.Y1) / 2}
}

func (r rect) containsPoint(p point) bool {
	return p.X >= r.X0 && p.Y >= r.Y0 && p.X < r.X1 && p.Y < r.Y1
}

// reduced insets the rect by dx and dy on each side. The result may be
// inverted when the rect is too small; callers treat that as an empty area
// rather than an error.
func (r rect) reduced(dx, dy float32) rect {
	return rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 - dx, Y1: r.Y1 - dy}
}

func (r rect) expanded(d float32) rect {
	return r.reduced(-d, -d)
}

// constrainedPoint clamps p into the rect coordinate-wise. For an inverted
// rect the upper bound wins, which keeps the result deterministic.
func (r rect) constrainedPoint(p point) point {
	if p.X < r.X0 {
		p.X = r.X0
	}
	if p.X > r.X1 {
		p.X = r.X1
	}
	if p.Y < r.Y0 {
		p.Y = r.Y0
	}
	if p.Y > r.Y1 {
		p.Y = r.Y1
	}
	return p
}

// nearestPointTo returns the point on the segment closest to p.
func (l line) nearestPointTo(p point) point {
	d := pointSub(l.End, l.Start)
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq <= 0 {
		return l.Start
	}
	t := ((p.X-l.Start.X)*d.X + (p.Y-l.Start.Y)*d.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return point{X: l.Start.X + d.X*t, Y: l.Start.Y + d.Y*t}
}

func (l line) distanceTo(p point) float32 {
	return l.nearestPointTo(p).distanceTo(p)
}
