package scene

import "image/color"

// ColoredPoint is one vertex of a traced curve.
type ColoredPoint struct {
	X, Y  float32
	Color color.RGBA
}

// Curve accumulates the path traced by one cell of the table.
//
// Each frame the column pass calls SetX and the row pass calls SetY, then Add
// commits the staged coordinates as a single point.
type Curve struct {
	path   []ColoredPoint
	curX   float32
	curY   float32
	colorX color.RGBA
	colorY color.RGBA

	lineWidth       float32
	highlightRadius float32
}

// NewCurve creates an empty curve.
func NewCurve() *Curve {
	return &Curve{
		colorX:          white,
		colorY:          white,
		lineWidth:       1,
		highlightRadius: 2,
	}
}

// SetX stages the x value of the next point and the color paired with it.
func (c *Curve) SetX(x float32, clr color.RGBA) {
	c.curX = x
	c.colorX = clr
}

// SetY stages the y value of the next point and the color paired with it.
func (c *Curve) SetY(y float32, clr color.RGBA) {
	c.curY = y
	c.colorY = clr
}

// Add appends the staged point, colored by the blend of both staged colors.
func (c *Curve) Add() {
	c.path = append(c.path, ColoredPoint{
		X:     c.curX,
		Y:     c.curY,
		Color: Blend(c.colorX, c.colorY),
	})
}

// Reset drops every point but keeps the allocated storage.
func (c *Curve) Reset() {
	c.path = c.path[:0]
}

// Len returns the number of points on the path.
func (c *Curve) Len() int { return len(c.path) }

// Path returns the traced points. The slice is only valid until the next Add
// or Reset.
func (c *Curve) Path() []ColoredPoint { return c.path }

// Show draws the path as a closed polyline, each segment in the color of its
// destination point, followed by a highlight on the newest point.
func (c *Curve) Show(cv Canvas) {
	n := len(c.path)
	if n >= 2 {
		for i := 0; i < n; i++ {
			p := c.path[i]
			q := c.path[(i+1)%n]
			cv.DrawLine(p.X, p.Y, q.X, q.Y, c.lineWidth, q.Color)
		}
	}

	if n > 0 {
		q := c.path[n-1]
		cv.DrawCircle(q.X, q.Y, c.highlightRadius, white)
	}
}
