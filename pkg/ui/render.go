package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/northharbor/blankisland/pkg/config"
)

// Renderer draws widget trees as flat colored boxes with labels.
type Renderer struct {
	face text.Face
	// Scale multiplies the label size; basicfont is 7x13.
	Scale float64
}

// NewRenderer creates a renderer using the built-in basic font.
func NewRenderer() *Renderer {
	return &Renderer{
		face:  text.NewGoXFace(basicfont.Face7x13),
		Scale: 2,
	}
}

// Face returns the label font.
func (r *Renderer) Face() text.Face {
	return r.face
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Draw renders root and its active descendants. Widgets with empty bounds
// are containers only.
func (r *Renderer) Draw(screen *ebiten.Image, root *Widget, fm *FocusManager) {
	r.draw(screen, root, fm)
}

func (r *Renderer) draw(screen *ebiten.Image, w *Widget, fm *FocusManager) {
	if w == nil || !w.Active() {
		return
	}

	if !w.Bounds.Empty() {
		focused := fm != nil && fm.Selected() == w
		r.drawWidget(screen, w, focused)
	}

	for _, c := range w.Children() {
		r.draw(screen, c, fm)
	}
}

func (r *Renderer) drawWidget(screen *ebiten.Image, w *Widget, focused bool) {
	b := w.Bounds
	x, y := float32(b.Min.X), float32(b.Min.Y)
	width, height := float32(b.Dx()), float32(b.Dy())

	if !w.Focusable() {
		vector.DrawFilledRect(screen, x, y, width, height, rgba(config.PanelColor), false)
		if w.Label != "" {
			r.DrawLabel(screen, w.Label, float64(b.Min.X+b.Dx()/2), float64(b.Min.Y+28), rgba(config.TextColor))
		}
		return
	}

	fill := rgba(config.ButtonIdleColor)
	switch {
	case !w.Interactable():
		fill = rgba(config.ButtonDisabledColor)
	case focused:
		fill = rgba(config.ButtonFocusColor)
	}
	vector.DrawFilledRect(screen, x, y, width, height, fill, false)

	if w.Progress != nil {
		p := float32(w.Progress())
		inset := float32(6)
		vector.DrawFilledRect(screen, x+inset, y+height-inset-6, (width-2*inset)*p, 6, rgba(config.SliderFillColor), false)
	}

	label := w.Label
	if w.Progress != nil {
		label = label + "  " + percent(w.Progress())
	}
	textColor := rgba(config.TextColor)
	if !w.Interactable() {
		textColor.A = 120
	}
	r.DrawLabel(screen, label, float64(b.Min.X+b.Dx()/2), float64(b.Min.Y+b.Dy()/2), textColor)
}

// DrawLabel draws s centered on (cx, cy).
func (r *Renderer) DrawLabel(screen *ebiten.Image, s string, cx, cy float64, clr color.Color) {
	r.DrawLabelAlpha(screen, s, cx, cy, clr, 1)
}

// DrawLabelAlpha draws s centered on (cx, cy) with extra opacity alpha.
func (r *Renderer) DrawLabelAlpha(screen *ebiten.Image, s string, cx, cy float64, clr color.Color, alpha float64) {
	w, h := text.Measure(s, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(r.Scale, r.Scale)
	op.GeoM.Translate(cx-w*r.Scale/2, cy-h*r.Scale/2)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, r.face, op)
}

// percent formats v in [0,1] as a whole percentage.
func percent(v float64) string {
	return strconv.Itoa(int(math.Round(v*100))) + "%"
}

// DimScreen covers the whole screen with the overlay dim color.
func (r *Renderer) DimScreen(screen *ebiten.Image) {
	b := screen.Bounds()
	FillRect(screen, b, config.OverlayDimColor)
}

// FillRect fills rect with c.
func FillRect(screen *ebiten.Image, rect image.Rectangle, c [4]uint8) {
	vector.DrawFilledRect(screen, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()), rgba(c), false)
}
