package callout

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// outlineGap is how far the bubble body extends past the content so the
	// stroke has room.
	outlineGap = 4.5
	// cornerRadius of the bubble body.
	cornerRadius = 9
	// arcSegments is the flattening resolution for one corner in the
	// hit-test polygon.
	arcSegments = 8
)

// bubblePath is the closed outline of a callout: a rounded rectangle with a
// triangular notch pointing at the arrow tip. The same value feeds both
// painting (appendTo) and hit-testing (contains), so the transparent area
// outside the rounded corners never swallows clicks.
type bubblePath struct {
	body   rect
	tip    point
	radius float32
	halfW  float32
	edge   int

	base0, base1 point
	pts          []point
}

// buildBubble derives the outline for a body rect, clamping the tip into
// limits (the popup's local bounds). Identical inputs produce identical
// paths.
func buildBubble(body, limits rect, tip point, radius, arrowHalfWidth float32) *bubblePath {
	maxRadius := body.width() / 2
	if h := body.height() / 2; h < maxRadius {
		maxRadius = h
	}
	if radius > maxRadius {
		radius = maxRadius
	}

	b := &bubblePath{
		body:   body,
		tip:    limits.constrainedPoint(tip),
		radius: radius,
		halfW:  arrowHalfWidth,
		edge:   nearestEdge(body, tip),
	}
	b.base0, b.base1 = b.notchBase()
	b.pts = b.flatten()
	return b
}

// nearestEdge picks the body edge closest to the arrow apex, scanning in the
// same fixed order as the placement solver.
func nearestEdge(body rect, tip point) int {
	edges := [edgeCount]line{
		edgeBottom: {Start: point{X: body.X0, Y: body.Y1}, End: point{X: body.X1, Y: body.Y1}},
		edgeRight:  {Start: point{X: body.X1, Y: body.Y0}, End: point{X: body.X1, Y: body.Y1}},
		edgeLeft:   {Start: point{X: body.X0, Y: body.Y0}, End: point{X: body.X0, Y: body.Y1}},
		edgeTop:    {Start: point{X: body.X0, Y: body.Y0}, End: point{X: body.X1, Y: body.Y0}},
	}
	nearest := edgeBottom
	best := float32(math.MaxFloat32)
	for i := 0; i < edgeCount; i++ {
		if d := edges[i].distanceTo(tip); d < best {
			best = d
			nearest = i
		}
	}
	return nearest
}

// notchBase returns the two notch base corners on the carrying edge, in the
// clockwise travel order of the outline. The base centre follows the apex
// but stays clear of the corner arcs.
func (b *bubblePath) notchBase() (point, point) {
	switch b.edge {
	case edgeBottom:
		c := clampSpan(b.tip.X, b.body.X0, b.body.X1, b.radius+b.halfW)
		// bottom edge runs right to left
		return point{X: c + b.halfW, Y: b.body.Y1}, point{X: c - b.halfW, Y: b.body.Y1}
	case edgeRight:
		c := clampSpan(b.tip.Y, b.body.Y0, b.body.Y1, b.radius+b.halfW)
		return point{X: b.body.X1, Y: c - b.halfW}, point{X: b.body.X1, Y: c + b.halfW}
	case edgeLeft:
		c := clampSpan(b.tip.Y, b.body.Y0, b.body.Y1, b.radius+b.halfW)
		// left edge runs bottom to top
		return point{X: b.body.X0, Y: c + b.halfW}, point{X: b.body.X0, Y: c - b.halfW}
	default: // edgeTop
		c := clampSpan(b.tip.X, b.body.X0, b.body.X1, b.radius+b.halfW)
		return point{X: c - b.halfW, Y: b.body.Y0}, point{X: c + b.halfW, Y: b.body.Y0}
	}
}

// clampSpan limits v to [lo+inset, hi-inset], falling back to the midpoint
// when the span is too short for the inset.
func clampSpan(v, lo, hi, inset float32) float32 {
	min := lo + inset
	max := hi - inset
	if min > max {
		return (lo + hi) / 2
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// flatten walks the outline clockwise from the end of the top-left corner
// arc, approximating each corner with arcSegments chords.
func (b *bubblePath) flatten() []point {
	r := b.radius
	body := b.body
	pts := make([]point, 0, 4*(arcSegments+2)+3)

	pts = append(pts, point{X: body.X0 + r, Y: body.Y0})
	pts = b.appendEdge(pts, edgeTop, point{X: body.X1 - r, Y: body.Y0})
	pts = appendArc(pts, body.X1-r, body.Y0+r, r, -math.Pi/2, 0)
	pts = b.appendEdge(pts, edgeRight, point{X: body.X1, Y: body.Y1 - r})
	pts = appendArc(pts, body.X1-r, body.Y1-r, r, 0, math.Pi/2)
	pts = b.appendEdge(pts, edgeBottom, point{X: body.X0 + r, Y: body.Y1})
	pts = appendArc(pts, body.X0+r, body.Y1-r, r, math.Pi/2, math.Pi)
	pts = b.appendEdge(pts, edgeLeft, point{X: body.X0, Y: body.Y0 + r})
	pts = appendArc(pts, body.X0+r, body.Y0+r, r, math.Pi, 3*math.Pi/2)
	return pts
}

func (b *bubblePath) appendEdge(pts []point, edge int, end point) []point {
	if b.edge == edge {
		pts = append(pts, b.base0, b.tip, b.base1)
	}
	return append(pts, end)
}

func appendArc(pts []point, cx, cy, r float32, a0, a1 float64) []point {
	for i := 1; i <= arcSegments; i++ {
		a := a0 + (a1-a0)*float64(i)/arcSegments
		pts = append(pts, point{
			X: cx + r*float32(math.Cos(a)),
			Y: cy + r*float32(math.Sin(a)),
		})
	}
	return pts
}

// contains reports whether p lies inside the outline, using an even-odd
// crossing test over the flattened polygon.
func (b *bubblePath) contains(p point) bool {
	in := false
	n := len(b.pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := b.pts[i], b.pts[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
	}
	return in
}

// appendTo emits the outline into an Ebitengine vector path with true corner
// arcs for painting.
func (b *bubblePath) appendTo(path *vector.Path) {
	r := b.radius
	body := b.body

	path.MoveTo(body.X0+r, body.Y0)
	b.lineEdge(path, edgeTop, point{X: body.X1 - r, Y: body.Y0})
	path.Arc(body.X1-r, body.Y0+r, r, -math.Pi/2, 0, vector.Clockwise)
	b.lineEdge(path, edgeRight, point{X: body.X1, Y: body.Y1 - r})
	path.Arc(body.X1-r, body.Y1-r, r, 0, math.Pi/2, vector.Clockwise)
	b.lineEdge(path, edgeBottom, point{X: body.X0 + r, Y: body.Y1})
	path.Arc(body.X0+r, body.Y1-r, r, math.Pi/2, math.Pi, vector.Clockwise)
	b.lineEdge(path, edgeLeft, point{X: body.X0, Y: body.Y0 + r})
	path.Arc(body.X0+r, body.Y0+r, r, math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()
}

func (b *bubblePath) lineEdge(path *vector.Path, edge int, end point) {
	if b.edge == edge {
		path.LineTo(b.base0.X, b.base0.Y)
		path.LineTo(b.tip.X, b.tip.Y)
		path.LineTo(b.base1.X, b.base1.Y)
	}
	path.LineTo(end.X, end.Y)
}
