package callout

import "testing"

func TestOutsideClickDismissesSynchronously(t *testing.T) {
	setupSession(t)

	dismissed := false
	p := Launch(&stubContent{w: 200, h: 100}, NewRect(100, 100, 50, 20), nil)
	p.OnDismiss = func() { dismissed = true }

	stubInput(700, 500, true, false)
	if err := Update(); err != nil {
		t.Fatal(err)
	}

	if p.Visible() {
		t.Fatalf("popup should hide within the same update turn")
	}
	if IsActive() {
		t.Fatalf("session should end within the same update turn")
	}
	if !dismissed {
		t.Errorf("OnDismiss should have fired")
	}
}

func TestTargetClickDefersDismissal(t *testing.T) {
	setupSession(t)

	p := Launch(&stubContent{w: 200, h: 100}, NewRect(100, 100, 50, 20), nil)

	// Pointer inside the original target: the click must finish dispatching
	// before the popup goes away.
	stubInput(110, 105, true, false)
	if err := Update(); err != nil {
		t.Fatal(err)
	}

	if !p.Visible() {
		t.Fatalf("popup must not hide synchronously for a target click")
	}
	if len(pendingCommands) != 1 {
		t.Fatalf("expected one posted dismiss command, got %d", len(pendingCommands))
	}

	// The next turn drains the posted command.
	stubInput(110, 105, false, false)
	if err := Update(); err != nil {
		t.Fatal(err)
	}
	if p.Visible() || IsActive() {
		t.Errorf("deferred dismissal should complete on the following turn")
	}
}

func TestClickInsidePopupKeepsSession(t *testing.T) {
	setupSession(t)

	p := Launch(&stubContent{w: 200, h: 100}, NewRect(100, 100, 50, 20), nil)
	c := p.Bounds().centre()

	stubInput(int(c.X), int(c.Y), true, false)
	if err := Update(); err != nil {
		t.Fatal(err)
	}

	if !p.Visible() || !IsActive() {
		t.Errorf("a click inside the bubble must not dismiss it")
	}
}

func TestEscapeActsAsInputAttempt(t *testing.T) {
	setupSession(t)

	p := Launch(&stubContent{w: 200, h: 100}, NewRect(100, 100, 50, 20), nil)

	// Escape with the pointer away from everything: immediate dismissal.
	stubInput(700, 500, false, true)
	if err := Update(); err != nil {
		t.Fatal(err)
	}
	if p.Visible() || IsActive() {
		t.Fatalf("escape should dismiss via the input-attempt path")
	}
}

func TestEscapeOverTargetDefers(t *testing.T) {
	setupSession(t)

	p := Launch(&stubContent{w: 200, h: 100}, NewRect(100, 100, 50, 20), nil)

	stubInput(110, 105, false, true)
	if err := Update(); err != nil {
		t.Fatal(err)
	}

	if !p.Visible() {
		t.Fatalf("escape over the target must defer like a click there")
	}
	if len(pendingCommands) != 1 {
		t.Fatalf("expected one posted dismiss command, got %d", len(pendingCommands))
	}
}

func TestDuplicateDismissCommandsAreHarmless(t *testing.T) {
	setupSession(t)

	p := Launch(&stubContent{w: 200, h: 100}, NewRect(100, 100, 50, 20), nil)
	calls := 0
	p.OnDismiss = func() { calls++ }

	p.dismissLater()
	p.dismissLater()
	stubInput(0, 0, false, false)
	if err := Update(); err != nil {
		t.Fatal(err)
	}

	if calls != 1 {
		t.Fatalf("OnDismiss fired %d times, want 1", calls)
	}
	if IsActive() {
		t.Errorf("session should have ended")
	}
}

func TestScreenResizeRepositionsParentlessPopup(t *testing.T) {
	setupSession(t)

	p := Launch(&stubContent{w: 200, h: 100}, NewRect(700, 100, 50, 20), nil)

	SetScreenSize(400, 300)

	b := p.Bounds()
	if b.width() != 240 || b.height() != 140 {
		t.Fatalf("bounds %vx%v after resize", b.width(), b.height())
	}
	if p.available != (rect{X1: 400, Y1: 300}) {
		t.Errorf("available area %+v not tracking the screen", p.available)
	}
}
