package callout

// The four edges of the target a callout's arrow can emerge from, in the
// order candidates are scored. The first edge wins ties because the scan
// compares with strict less-than.
const (
	edgeBottom = iota
	edgeRight
	edgeLeft
	edgeTop
	edgeCount
)

// offscreenPenalty is added to an edge's score when its probe segment falls
// entirely outside the fittable centre area. Penalized edges stay eligible
// so a usable rectangle comes back even when nothing fits.
const offscreenPenalty = 1000

// solvePlacement picks where a callout of the given content size should sit
// so that its arrow points at target while the box stays inside available
// when possible. It returns the callout's bounding rect and the arrow tip,
// both in the same coordinate space as target. The function is total: when
// available is too small the result simply overflows it.
func solvePlacement(target, available rect, contentSize point, borderSpace, arrowSize float32) (rect, point) {
	size := point{X: contentSize.X + borderSpace*2, Y: contentSize.Y + borderSpace*2}
	hw := size.X / 2
	hh := size.Y / 2
	hwReduced := hw - borderSpace*3
	hhReduced := hh - borderSpace*3
	arrowIndent := borderSpace - arrowSize

	targetCentre := target.centre()

	// Edge midpoints of the target; the winning one becomes the arrow tip.
	anchors := [edgeCount]point{
		edgeBottom: {X: targetCentre.X, Y: target.Y1},
		edgeRight:  {X: target.X1, Y: targetCentre.Y},
		edgeLeft:   {X: target.X0, Y: targetCentre.Y},
		edgeTop:    {X: targetCentre.X, Y: target.Y0},
	}

	// Each probe segment is the band of centre positions that keeps the
	// arrow attached near its anchor: offset from the edge by
	// borderSpace-arrowSize along the normal, spanning hw/hh minus three
	// border widths along the tangent.
	probes := [edgeCount]line{
		edgeBottom: {
			Start: pointAdd(anchors[edgeBottom], point{X: -hwReduced, Y: hh - arrowIndent}),
			End:   pointAdd(anchors[edgeBottom], point{X: hwReduced, Y: hh - arrowIndent}),
		},
		edgeRight: {
			Start: pointAdd(anchors[edgeRight], point{X: hw - arrowIndent, Y: -hhReduced}),
			End:   pointAdd(anchors[edgeRight], point{X: hw - arrowIndent, Y: hhReduced}),
		},
		edgeLeft: {
			Start: pointAdd(anchors[edgeLeft], point{X: -(hw - arrowIndent), Y: -hhReduced}),
			End:   pointAdd(anchors[edgeLeft], point{X: -(hw - arrowIndent), Y: hhReduced}),
		},
		edgeTop: {
			Start: pointAdd(anchors[edgeTop], point{X: -hwReduced, Y: -(hh - arrowIndent)}),
			End:   pointAdd(anchors[edgeTop], point{X: hwReduced, Y: -(hh - arrowIndent)}),
		},
	}

	// Valid centres for a box of this size that stays fully inside
	// available. May be inverted when available is smaller than the box;
	// constrainedPoint still yields usable centres and the penalty below
	// deprioritizes such edges.
	centreArea := available.reduced(hw, hh)

	best := float32(1e9)
	var bounds rect
	var tip point

	for i := 0; i < edgeCount; i++ {
		clamped := line{
			Start: centreArea.constrainedPoint(probes[i].Start),
			End:   centreArea.constrainedPoint(probes[i].End),
		}
		centre := clamped.nearestPointTo(targetCentre)

		score := centre.distanceTo(anchors[i])
		if !centreArea.containsPoint(probes[i].Start) && !centreArea.containsPoint(probes[i].End) {
			score += offscreenPenalty
		}

		if score < best {
			best = score
			tip = anchors[i]
			bounds = rect{X0: centre.X - hw, Y0: centre.Y - hh, X1: centre.X + hw, Y1: centre.Y + hh}
		}
	}

	return bounds, tip
}
