package callout

import (
	"math"
	"testing"
)

func TestSolvePicksBottomEdgeNearCorner(t *testing.T) {
	target := NewRect(100, 100, 50, 20)
	available := NewRect(0, 0, 800, 600)

	bounds, tip := solvePlacement(target, available, point{X: 200, Y: 100}, 20, 16)

	if bounds.width() != 240 || bounds.height() != 140 {
		t.Fatalf("bounds size %vx%v, want 240x140", bounds.width(), bounds.height())
	}
	if tip != (point{X: 125, Y: 120}) {
		t.Fatalf("tip %+v, want bottom-centre of target (125,120)", tip)
	}
	if bounds.X0 < available.X0 || bounds.Y0 < available.Y0 ||
		bounds.X1 > available.X1 || bounds.Y1 > available.Y1 {
		t.Errorf("bounds %+v overflow available %+v", bounds, available)
	}
}

func TestSolveTieBreakPrefersBottom(t *testing.T) {
	// Target dead centre: bottom and top score identically, so the first
	// candidate in enumeration order must win.
	target := NewRect(375, 290, 50, 20)
	available := NewRect(0, 0, 800, 600)

	bounds, tip := solvePlacement(target, available, point{X: 200, Y: 100}, 20, 16)

	if tip != (point{X: 400, Y: 310}) {
		t.Fatalf("tip %+v, want bottom anchor (400,310)", tip)
	}
	if c := bounds.centre(); c.X != 400 || c.Y <= target.Y1 {
		t.Errorf("popup should hang below the target, got centre %+v", c)
	}
	if tip.Y < bounds.Y0 || tip.Y > bounds.Y0+20 {
		t.Errorf("tip %+v should land in the popup's top border band %+v", tip, bounds)
	}
}

func TestSolveBoundsAlwaysTwoBorders(t *testing.T) {
	targets := []rect{
		NewRect(0, 0, 10, 10),
		NewRect(790, 590, 10, 10),
		NewRect(400, 300, 0, 0),
	}
	sizes := []point{{}, {X: 50, Y: 10}, {X: 600, Y: 500}}
	available := NewRect(0, 0, 800, 600)

	for _, target := range targets {
		for _, size := range sizes {
			bounds, _ := solvePlacement(target, available, size, 20, 16)
			if bounds.width() < 40 || bounds.height() < 40 {
				t.Errorf("target %+v size %+v: bounds %vx%v below 2*borderSpace",
					target, size, bounds.width(), bounds.height())
			}
		}
	}
}

func TestSolveTooSmallAvailableStillReturns(t *testing.T) {
	target := NewRect(40, 30, 20, 10)
	available := NewRect(0, 0, 100, 80)

	bounds, tip := solvePlacement(target, available, point{X: 200, Y: 100}, 20, 16)

	if bounds.width() != 240 || bounds.height() != 140 {
		t.Fatalf("bounds size %vx%v, want 240x140 even when nothing fits",
			bounds.width(), bounds.height())
	}

	centre := target.centre()
	anchors := []point{
		{X: centre.X, Y: target.Y1},
		{X: target.X1, Y: centre.Y},
		{X: target.X0, Y: centre.Y},
		{X: centre.X, Y: target.Y0},
	}
	found := false
	for _, a := range anchors {
		if tip == a {
			found = true
		}
	}
	if !found {
		t.Errorf("tip %+v is not an edge anchor of the target", tip)
	}
}

func TestSolvePenalizesOffscreenEdges(t *testing.T) {
	// A target hugging the left edge: attaching on the target's left would
	// push the popup off-screen, so that edge must lose even though its
	// anchor can be closer than the winner's.
	target := NewRect(0, 280, 30, 40)
	available := NewRect(0, 0, 800, 600)

	bounds, tip := solvePlacement(target, available, point{X: 200, Y: 100}, 20, 16)

	if tip == (point{X: 0, Y: 300}) {
		t.Fatalf("left edge won despite being unfittable, bounds %+v", bounds)
	}
	if bounds.X0 < 0 {
		t.Errorf("bounds %+v overflow the left screen edge", bounds)
	}
}

func TestSolveDeterministic(t *testing.T) {
	target := NewRect(320, 200, 60, 24)
	available := NewRect(0, 0, 1024, 768)

	b1, t1 := solvePlacement(target, available, point{X: 180, Y: 90}, 20, 16)
	b2, t2 := solvePlacement(target, available, point{X: 180, Y: 90}, 20, 16)
	if b1 != b2 || t1 != t2 {
		t.Fatalf("placement not deterministic: %+v/%+v vs %+v/%+v", b1, t1, b2, t2)
	}

	if d := t1.distanceTo(b1.centre()); math.IsNaN(float64(d)) {
		t.Errorf("degenerate geometry: tip %+v bounds %+v", t1, b1)
	}
}
