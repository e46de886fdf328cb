package callout

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	defaultBorderSpace = 20
	defaultArrowSize   = 16
)

// Content is the component hosted inside a callout. The popup owns the
// content for its lifetime and positions it borderSpace pixels inside its
// bounds.
type Content interface {
	// Size returns the content's current width and height in pixels. A size
	// change is picked up on the next Update and triggers a reflow.
	Size() (w, h float32)
	// Draw renders the content with its top-left corner at pos, in screen
	// coordinates.
	Draw(dst *ebiten.Image, pos Point)
}

// Popup is a transient bubble that points at a target rectangle with a
// triangular arrow. Construct one with New or Launch; a launched popup lives
// in the package's exclusive session until an input attempt outside it
// dismisses it.
type Popup struct {
	content   Content
	target    rect
	available rect
	parent    *rect

	borderSpace float32
	arrowSize   float32

	bounds  rect
	tip     point
	outline *bubblePath

	lastW, lastH float32

	visible   bool
	dismissed bool

	background *ebiten.Image
	dirty      bool

	// OnDismiss runs once, after the popup has left its exclusive session.
	OnDismiss func()
}

// New builds a popup pointing at target. When parent is non-nil the popup is
// kept inside it; otherwise it is kept inside the display containing the
// target's centre. A nil content is a programming error and panics
// immediately: there is no meaningful popup without content.
func New(content Content, target Rect, parent *Rect) *Popup {
	if content == nil {
		panic("callout: New called with nil content")
	}
	p := &Popup{
		content:     content,
		target:      target,
		borderSpace: defaultBorderSpace,
		arrowSize:   defaultArrowSize,
	}
	if parent != nil {
		r := *parent
		p.parent = &r
		p.available = r
	} else {
		p.available = displayArea(target.centre())
	}
	p.updatePosition()
	return p
}

// Launch builds the popup and enters the exclusive session in one step. The
// session owns the popup's lifetime: the returned reference is only borrowed
// and becomes inert once the popup dismisses itself. Use OnDismiss to learn
// when that happens.
func Launch(content Content, target Rect, parent *Rect) *Popup {
	p := New(content, target, parent)
	p.Show()
	return p
}

// Show makes the popup visible and enters the exclusive session. Calling it
// on an already shown or dismissed popup does nothing.
func (p *Popup) Show() {
	if p.visible || p.dismissed {
		return
	}
	p.visible = true
	enterSession(p)
}

// Dismiss hides the popup and exits the exclusive session synchronously.
func (p *Popup) Dismiss() {
	if p.dismissed {
		return
	}
	p.dismissed = true
	p.visible = false
	exitSession(p)
	if p.OnDismiss != nil {
		p.OnDismiss()
	}
}

// dismissLater posts a same-thread dismiss command handled on the next
// Update turn.
func (p *Popup) dismissLater() {
	postCommand(p, cmdDismiss)
}

func (p *Popup) handleCommand(id int) {
	if id == cmdDismiss {
		p.Dismiss()
	}
}

// inputAttempt routes a pointer or key event that reached the popup while it
// held the exclusive session. Events landing on the original target are
// deferred: dismissing here would let the click fall through and probably
// re-trigger whatever opened the callout, so the click must finish
// dispatching first.
func (p *Popup) inputAttempt(mpos point) {
	if p.target.containsPoint(mpos) {
		p.dismissLater()
		return
	}
	p.Dismiss()
}

// keyPressed handles a key while the popup is modal. Escape is treated as an
// input attempt at the current pointer position. Reports whether the key was
// consumed.
func (p *Popup) keyPressed(escape bool, mpos point) bool {
	if !escape {
		return false
	}
	p.inputAttempt(mpos)
	return true
}

// SetTarget repoints the popup at a new target rectangle using the same
// available area.
func (p *Popup) SetTarget(target Rect) {
	p.target = target
	p.updatePosition()
}

// SetArrowSize changes the arrow protrusion length. The border space grows
// with it (never below the default), so bounds and outline are recomputed.
func (p *Popup) SetArrowSize(size float32) {
	p.arrowSize = size
	p.borderSpace = defaultBorderSpace
	if s := float32(int(size)); s > p.borderSpace {
		p.borderSpace = s
	}
	p.updatePosition()
}

// ArrowSize returns the arrow protrusion length.
func (p *Popup) ArrowSize() float32 { return p.arrowSize }

// Bounds returns the popup's bounding rect in screen coordinates.
func (p *Popup) Bounds() Rect { return p.bounds }

// ArrowTip returns the arrow tip in screen coordinates.
func (p *Popup) ArrowTip() Point { return p.tip }

// Visible reports whether the popup is currently shown.
func (p *Popup) Visible() bool { return p.visible }

// Contains reports whether the screen point lies inside the bubble outline.
// Points in the bounding rect's corners outside the rounded outline are
// reported as outside, so clicks there pass through to the dismiss path.
func (p *Popup) Contains(x, y float32) bool {
	if p.outline == nil {
		return false
	}
	return p.outline.contains(point{X: x - p.bounds.X0, Y: y - p.bounds.Y0})
}

// updatePosition runs one placement pass with the current target/available
// pair and rebuilds the outline from the result.
func (p *Popup) updatePosition() {
	w, h := p.content.Size()
	p.lastW, p.lastH = w, h
	p.bounds, p.tip = solvePlacement(p.target, p.available, point{X: w, Y: h}, p.borderSpace, p.arrowSize)
	p.refreshOutline()
}

// refreshOutline rebuilds the bubble path wholesale in popup-local
// coordinates and drops the cached background so the next draw repaints.
func (p *Popup) refreshOutline() {
	body := p.contentBounds().expanded(outlineGap)
	local := rect{X1: p.bounds.width(), Y1: p.bounds.height()}
	tip := pointSub(p.tip, point{X: p.bounds.X0, Y: p.bounds.Y0})
	p.outline = buildBubble(body, local, tip, cornerRadius, p.arrowSize*0.7)
	p.invalidateBackground()
}

// contentBounds is the content rect in popup-local coordinates.
func (p *Popup) contentBounds() rect {
	return rect{
		X0: p.borderSpace,
		Y0: p.borderSpace,
		X1: p.borderSpace + p.lastW,
		Y1: p.borderSpace + p.lastH,
	}
}

// reflowIfNeeded re-solves placement when the hosted content changed size
// since the last pass, using the same target/available pair.
func (p *Popup) reflowIfNeeded() {
	w, h := p.content.Size()
	if w == p.lastW && h == p.lastH {
		return
	}
	p.updatePosition()
}

func (p *Popup) invalidateBackground() {
	if p.background != nil {
		p.background.Deallocate()
		p.background = nil
	}
	p.dirty = true
}

// CacheSize returns the memory held by the cached background, in bytes.
func (p *Popup) CacheSize() int {
	if p.background == nil {
		return 0
	}
	b := p.background.Bounds()
	return b.Dx() * b.Dy() * 4
}
