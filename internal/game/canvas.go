package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// screenCanvas draws scene primitives onto an ebiten image.
type screenCanvas struct {
	dst       *ebiten.Image
	antialias bool
}

func (c screenCanvas) Size() (float32, float32) {
	b := c.dst.Bounds()
	return float32(b.Dx()), float32(b.Dy())
}

func (c screenCanvas) Clear(clr color.Color) {
	c.dst.Fill(clr)
}

func (c screenCanvas) DrawCircle(x, y, r float32, clr color.Color) {
	vector.DrawFilledCircle(c.dst, x, y, r, clr, c.antialias)
}

func (c screenCanvas) DrawCircleLines(x, y, r, width float32, clr color.Color) {
	vector.StrokeCircle(c.dst, x, y, r, width, clr, c.antialias)
}

func (c screenCanvas) DrawLine(x0, y0, x1, y1, width float32, clr color.Color) {
	vector.StrokeLine(c.dst, x0, y0, x1, y1, width, clr, c.antialias)
}
