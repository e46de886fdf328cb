package callout

import "testing"

func TestBubbleIdempotent(t *testing.T) {
	body := NewRect(20, 20, 200, 100)
	local := NewRect(0, 0, 260, 180)
	tip := point{X: 120, Y: 140}

	a := buildBubble(body, local, tip, 9, 11.2)
	b := buildBubble(body, local, tip, 9, 11.2)

	if len(a.pts) != len(b.pts) {
		t.Fatalf("polygon sizes differ: %d vs %d", len(a.pts), len(b.pts))
	}
	for i := range a.pts {
		if a.pts[i] != b.pts[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a.pts[i], b.pts[i])
		}
	}

	probe := point{X: 30, Y: 30}
	if a.contains(probe) != b.contains(probe) {
		t.Errorf("hit-test not stable for %+v", probe)
	}
}

func TestBubbleHitTest(t *testing.T) {
	body := NewRect(20, 20, 200, 100)
	local := NewRect(0, 0, 260, 180)
	b := buildBubble(body, local, point{X: 120, Y: 140}, 9, 11.2)

	if b.edge != edgeBottom {
		t.Fatalf("edge = %d, want bottom", b.edge)
	}
	if !b.contains(point{X: 120, Y: 70}) {
		t.Errorf("body centre should be inside")
	}
	if !b.contains(point{X: 120, Y: 130}) {
		t.Errorf("notch interior should be inside")
	}
	// Inside the bounding rect but outside the corner arc.
	if b.contains(point{X: 21, Y: 21}) {
		t.Errorf("square corner outside the rounded outline should miss")
	}
	if b.contains(point{X: 219, Y: 119}) {
		t.Errorf("bottom-right square corner should miss")
	}
	if b.contains(point{X: 120, Y: 145}) {
		t.Errorf("below the apex should miss")
	}
	if b.contains(point{X: 10, Y: 70}) {
		t.Errorf("left of the body should miss")
	}
}

func TestBubbleEdgeSelection(t *testing.T) {
	body := NewRect(20, 20, 200, 100)
	local := NewRect(0, 0, 260, 180)

	cases := []struct {
		tip  point
		edge int
	}{
		{point{X: 120, Y: 140}, edgeBottom},
		{point{X: 240, Y: 70}, edgeRight},
		{point{X: 5, Y: 70}, edgeLeft},
		{point{X: 120, Y: 5}, edgeTop},
	}
	for _, c := range cases {
		b := buildBubble(body, local, c.tip, 9, 11.2)
		if b.edge != c.edge {
			t.Errorf("tip %+v chose edge %d, want %d", c.tip, b.edge, c.edge)
		}
	}
}

func TestBubbleNotchStaysClearOfCorners(t *testing.T) {
	body := NewRect(20, 20, 200, 100)
	local := NewRect(0, 0, 260, 180)

	// Apex almost on the bottom-left corner: the notch base must still sit
	// between the corner arcs.
	b := buildBubble(body, local, point{X: 22, Y: 140}, 9, 11.2)
	if b.edge != edgeBottom {
		t.Fatalf("edge = %d, want bottom", b.edge)
	}
	const eps = 1e-3
	min := body.X0 + b.radius - eps
	max := body.X1 - b.radius + eps
	for _, base := range []point{b.base0, b.base1} {
		if base.X < min || base.X > max {
			t.Errorf("notch base %+v leaves the flat edge span [%v,%v]", base, min, max)
		}
	}
}

func TestBubbleRadiusClampedToBody(t *testing.T) {
	// A body thinner than the corner diameter must not fold the outline.
	body := NewRect(20, 20, 200, 12)
	local := NewRect(0, 0, 260, 180)
	b := buildBubble(body, local, point{X: 120, Y: 50}, 9, 6)
	if b.radius > body.height()/2 {
		t.Fatalf("radius %v exceeds half body height", b.radius)
	}
	if !b.contains(body.centre()) {
		t.Errorf("body centre should still be inside")
	}
}
