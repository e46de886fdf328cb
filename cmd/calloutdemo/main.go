package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/remeh/sizedwaitgroup"
	"golang.org/x/image/font/basicfont"

	"github.com/assassindesign/callout"
)

var (
	baseDir string
	debug   bool

	uiFace text.Face
)

type tipPage struct {
	label   string
	message string
	target  callout.Rect

	content *textContent
}

var tipPages = []*tipPage{
	{
		label:   "Placement",
		message: "The callout picks whichever side of its target leaves the bubble fully on screen, preferring the side whose arrow stays closest to the target. Drag the window smaller and relaunch to watch the edge change.",
		target:  callout.NewRect(80, 80, 120, 36),
	},
	{
		label:   "Dismissal",
		message: "Click anywhere outside the bubble to dismiss it. Clicking the button that opened it defers the dismissal one frame so the click cannot instantly re-open the callout. Escape works too.",
		target:  callout.NewRect(560, 120, 120, 36),
	},
	{
		label:   "Arrow",
		message: "While a callout is open, the mouse wheel grows or shrinks the arrow. The border band grows with it and the bubble is re-placed and repainted from scratch each time.",
		target:  callout.NewRect(320, 430, 120, 36),
	},
}

func main() {
	flag.BoolVar(&debug, "debug", false, "verbose/debug logging")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	loadSettings()
	setupLogging(debug)
	applySettings()

	uiFace = text.NewGoXFace(basicfont.Face7x13)
	textCol := callout.CurrentTheme().Text

	// Wrapping is pure measurement, so the pages can be prepared in
	// parallel before the game loop starts.
	swg := sizedwaitgroup.New(4)
	for _, page := range tipPages {
		swg.Add()
		go func(p *tipPage) {
			defer swg.Done()
			p.content = newTextContent(p.message, uiFace, 220, textCol)
		}(page)
	}
	swg.Wait()

	ebiten.SetWindowSize(760, 520)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("callout demo")

	if err := ebiten.RunGame(&Game{}); err != nil {
		logError("run: %v", err)
		os.Exit(1)
	}
	saveSettings()
}
