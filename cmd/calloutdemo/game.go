package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/time/rate"

	"github.com/assassindesign/callout"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

// wheelLimiter keeps wheel-driven arrow resizing from thrashing the
// placement solver on high-resolution scroll devices.
var wheelLimiter = rate.NewLimiter(rate.Every(100*time.Millisecond), 1)

type Game struct {
	popup    *callout.Popup
	openedAt time.Time
	lastOpen time.Duration
}

func (g *Game) Update() error {
	if err := callout.Update(); err != nil {
		return err
	}

	if callout.IsActive() && g.popup != nil {
		_, wy := ebiten.Wheel()
		if wy != 0 && wheelLimiter.Allow() {
			size := g.popup.ArrowSize() + float32(wy)*2
			if size < 8 {
				size = 8
			}
			if size > 48 {
				size = 48
			}
			g.popup.SetArrowSize(size)
			gs.ArrowSize = float64(size)
			settingsDirty = true
		}
		return nil
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButton0) {
		mx, my := ebiten.CursorPosition()
		p := callout.Point{X: float32(mx), Y: float32(my)}
		for _, page := range tipPages {
			if !rectContains(page.target, p) {
				continue
			}
			g.launch(page)
			break
		}
	}
	return nil
}

func (g *Game) launch(page *tipPage) {
	g.openedAt = time.Now()
	p := callout.Launch(page.content, page.target, nil)
	p.SetArrowSize(float32(gs.ArrowSize))
	p.OnDismiss = func() {
		g.lastOpen = time.Since(g.openedAt)
		g.popup = nil
		logDebug("callout %q dismissed after %v", page.label, g.lastOpen)
	}
	g.popup = p
	logDebug("callout %q launched, bounds %+v", page.label, p.Bounds())
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.NRGBA{0x20, 0x24, 0x28, 0xff})

	for _, page := range tipPages {
		drawChip(screen, page)
	}

	callout.Draw(screen)

	g.drawStatus(screen)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	var status string
	switch {
	case g.popup != nil:
		open := durafmt.Parse(time.Since(g.openedAt)).LimitFirstN(2).Format(shortUnits)
		status = fmt.Sprintf("callout open for %s - click outside or press Escape to dismiss", open)
		if debug {
			status += fmt.Sprintf(" - background cache %s", humanize.Bytes(uint64(g.popup.CacheSize())))
		}
	case g.lastOpen > 0:
		status = fmt.Sprintf("last callout was open for %s - click a button to relaunch",
			durafmt.Parse(g.lastOpen).LimitFirstN(2).Format(shortUnits))
	default:
		status = "click a button to launch a callout"
	}

	_, sh := callout.ScreenSize()
	op := &text.DrawOptions{}
	op.GeoM.Translate(8, float64(sh)-18)
	op.ColorScale.ScaleWithColor(color.NRGBA{0xb0, 0xb0, 0xb0, 0xff})
	text.Draw(screen, status, uiFace, op)
}

func drawChip(screen *ebiten.Image, page *tipPage) {
	r := page.target
	vector.DrawFilledRect(screen, r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0,
		color.NRGBA{0x3a, 0x42, 0x4c, 0xff}, true)
	vector.StrokeRect(screen, r.X0, r.Y0, r.X1-r.X0, r.Y1-r.Y0, 1,
		color.NRGBA{0x6a, 0x74, 0x80, 0xff}, true)

	w, h := text.Measure(page.label, uiFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(
		float64(r.X0)+(float64(r.X1-r.X0)-w)/2,
		float64(r.Y0)+(float64(r.Y1-r.Y0)-h)/2,
	)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, page.label, uiFace, op)
}

func rectContains(r callout.Rect, p callout.Point) bool {
	return p.X >= r.X0 && p.Y >= r.Y0 && p.X < r.X1 && p.Y < r.Y1
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	callout.RenderSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
