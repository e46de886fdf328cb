package main

import (
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/assassindesign/callout"
)

// textContent hosts wrapped text inside a callout. The size is fixed at
// construction, so the popup never reflows for it.
type textContent struct {
	lines      []string
	face       text.Face
	lineHeight float32
	w, h       float32
	color      color.Color
}

func newTextContent(msg string, face text.Face, maxWidth float64, col color.Color) *textContent {
	width, lines := wrapText(msg, face, maxWidth)
	m := face.Metrics()
	lh := float32(math.Ceil(m.HAscent) + math.Ceil(m.HDescent) + math.Ceil(m.HLineGap))
	return &textContent{
		lines:      lines,
		face:       face,
		lineHeight: lh,
		w:          float32(width),
		h:          lh * float32(len(lines)),
		color:      col,
	}
}

func (c *textContent) Size() (float32, float32) { return c.w, c.h }

func (c *textContent) Draw(dst *ebiten.Image, pos callout.Point) {
	for i, line := range c.lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(pos.X), float64(pos.Y)+float64(c.lineHeight)*float64(i))
		op.ColorScale.ScaleWithColor(c.color)
		text.Draw(dst, line, c.face, op)
	}
}

// wrapText splits s into lines no wider than maxWidth in the given face and
// returns the widest line's width. Words wider than maxWidth land on their
// own line rather than being broken apart.
func wrapText(s string, face text.Face, maxWidth float64) (int, []string) {
	var lines []string
	widest := 0.0
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			cand := cur + " " + w
			if width, _ := text.Measure(cand, face, 0); width <= maxWidth {
				cur = cand
				continue
			}
			lines = append(lines, cur)
			cur = w
		}
		lines = append(lines, cur)
	}
	for _, line := range lines {
		if width, _ := text.Measure(line, face, 0); width > widest {
			widest = width
		}
	}
	return int(math.Ceil(widest)), lines
}
