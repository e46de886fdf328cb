package callout

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	screenWidth  = 1024
	screenHeight = 768

	// active is the exclusive-session stack; the last entry captures all
	// input until it dismisses.
	active []*Popup

	// pendingCommands are same-thread messages posted during one update
	// turn and handled at the top of the next, so the event that posted
	// them finishes dispatching first.
	pendingCommands []command

	// Input seams. Tests swap these to inject pointer and key state.
	pointerPositionFn    = pointerPosition
	pointerJustPressedFn = pointerJustPressed
	escapeJustPressedFn  = escapeJustPressed
)

type command struct {
	popup *Popup
	id    int
}

const cmdDismiss = 1

func postCommand(p *Popup, id int) {
	pendingCommands = append(pendingCommands, command{popup: p, id: id})
}

func drainCommands() {
	if len(pendingCommands) == 0 {
		return
	}
	cmds := pendingCommands
	pendingCommands = nil
	for _, c := range cmds {
		c.popup.handleCommand(c.id)
	}
}

func enterSession(p *Popup) {
	for _, q := range active {
		if q == p {
			log.Println("enterSession: popup already active")
			return
		}
	}
	active = append(active, p)
}

func exitSession(p *Popup) {
	for i, q := range active {
		if q == p {
			active = append(active[:i], active[i+1:]...)
			return
		}
	}
}

// activePopup returns the popup currently holding the exclusive session.
func activePopup() *Popup {
	if len(active) == 0 {
		return nil
	}
	return active[len(active)-1]
}

// IsActive reports whether a callout currently captures input.
func IsActive() bool { return activePopup() != nil }

// Update drives the callout session for one turn of the event loop. Call it
// from your Ebiten Update handler before your own input handling; while a
// callout is active it consumes pointer and Escape input.
func Update() error {
	drainCommands()

	p := activePopup()
	if p == nil {
		return nil
	}

	p.reflowIfNeeded()

	mx, my := pointerPositionFn()
	mpos := point{X: float32(mx), Y: float32(my)}

	if escapeJustPressedFn() {
		p.keyPressed(true, mpos)
		return nil
	}

	if pointerJustPressedFn() && !p.Contains(mpos.X, mpos.Y) {
		p.inputAttempt(mpos)
	}
	return nil
}

// SetScreenSize sets the display size used as the available area for
// popups without a parent. Active parentless popups are repositioned.
func SetScreenSize(w, h int) {
	if w == screenWidth && h == screenHeight {
		return
	}
	screenWidth = w
	screenHeight = h
	for _, p := range active {
		if p.parent == nil {
			p.available = displayArea(p.target.centre())
			p.updatePosition()
		}
	}
}

// RenderSize updates the screen size from Ebiten's layout values. Pass your
// Layout function's outside size here.
func RenderSize(outsideWidth, outsideHeight int) {
	SetScreenSize(outsideWidth, outsideHeight)
}

// ScreenSize returns the current screen size.
func ScreenSize() (int, int) { return screenWidth, screenHeight }

// displayArea returns the usable area of the display containing the point.
// A single logical display is modeled; the whole screen is usable.
func displayArea(point) rect {
	return rect{X1: float32(screenWidth), Y1: float32(screenHeight)}
}

var touchIDs []ebiten.TouchID

// pointerPosition returns the current pointer position. The first active
// touch wins over the mouse cursor.
func pointerPosition() (int, int) {
	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		return ebiten.TouchPosition(touchIDs[0])
	}
	return ebiten.CursorPosition()
}

// pointerJustPressed reports whether the primary pointer was just pressed.
func pointerJustPressed() bool {
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		return true
	}
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0)
}

func escapeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
