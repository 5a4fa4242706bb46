// Package raster renders the Lissajous table offscreen with the gg software
// rasterizer, for PNG snapshots and frame streams.
package raster

import (
	"image/color"
	"io"

	"github.com/gogpu/gg"
)

// Canvas implements scene.Canvas on a gg drawing context. Drawing errors
// from gg are kept and reported by Err; the first one wins.
type Canvas struct {
	dc  *gg.Context
	err error
}

// NewCanvas creates a w x h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{dc: gg.NewContext(w, h)}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Err returns the first drawing error, if any.
func (c *Canvas) Err() error { return c.err }

// Close releases the context.
func (c *Canvas) Close() error { return c.dc.Close() }

func (c *Canvas) Size() (float32, float32) {
	return float32(c.dc.Width()), float32(c.dc.Height())
}

func (c *Canvas) Clear(clr color.Color) {
	c.dc.ClearWithColor(gg.FromColor(clr))
}

func (c *Canvas) DrawCircle(x, y, r float32, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.DrawCircle(float64(x), float64(y), float64(r))
	c.keep(c.dc.Fill())
}

func (c *Canvas) DrawCircleLines(x, y, r, width float32, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawCircle(float64(x), float64(y), float64(r))
	c.keep(c.dc.Stroke())
}

func (c *Canvas) DrawLine(x0, y0, x1, y1, width float32, clr color.Color) {
	c.dc.SetColor(clr)
	c.dc.SetLineWidth(float64(width))
	c.dc.DrawLine(float64(x0), float64(y0), float64(x1), float64(y1))
	c.keep(c.dc.Stroke())
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// WritePNG encodes the current image as PNG.
func (c *Canvas) WritePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}
