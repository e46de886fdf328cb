package callout

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	strokeWidth   = 2
	shadowOffsetX = 2
	shadowOffsetY = 3
)

var whitePixel *ebiten.Image

func whiteImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Draw renders the active callouts, oldest first. Call this from your Ebiten
// Draw handler after your own content so callouts sit on top.
func Draw(screen *ebiten.Image) {
	for _, p := range active {
		if p.visible {
			p.draw(screen)
		}
	}
}

func (p *Popup) draw(screen *ebiten.Image) {
	if p.dirty || p.background == nil {
		p.renderBackground()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.bounds.X0), float64(p.bounds.Y0))
	screen.DrawImage(p.background, op)

	p.content.Draw(screen, point{
		X: p.bounds.X0 + p.borderSpace,
		Y: p.bounds.Y0 + p.borderSpace,
	})
}

// renderBackground repaints the bubble into the popup-sized cache image.
// The cache lives until the outline is rebuilt.
func (p *Popup) renderBackground() {
	w := int(math.Ceil(float64(p.bounds.width())))
	h := int(math.Ceil(float64(p.bounds.height())))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if p.background != nil {
		b := p.background.Bounds()
		if b.Dx() != w || b.Dy() != h {
			p.background.Deallocate()
			p.background = nil
		}
	}
	if p.background == nil {
		p.background = ebiten.NewImage(w, h)
	} else {
		p.background.Clear()
	}

	theme := themeOrDefault()

	var path vector.Path
	p.outline.appendTo(&path)

	op := &ebiten.DrawTrianglesOptions{ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha}

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	colorVertices(vs, theme.Shadow)
	for i := range vs {
		vs[i].DstX += shadowOffsetX
		vs[i].DstY += shadowOffsetY
	}
	p.background.DrawTriangles(vs, is, whiteImage(), op)

	for i := range vs {
		vs[i].DstX -= shadowOffsetX
		vs[i].DstY -= shadowOffsetY
	}
	colorVertices(vs, theme.Background)
	p.background.DrawTriangles(vs, is, whiteImage(), op)

	vs, is = path.AppendVerticesAndIndicesForStroke(vs[:0], is[:0], &vector.StrokeOptions{Width: strokeWidth})
	colorVertices(vs, theme.Border)
	p.background.DrawTriangles(vs, is, whiteImage(), op)

	p.dirty = false
}

func colorVertices(vs []ebiten.Vertex, col color.Color) {
	r, g, b, a := col.RGBA()
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
}
