package scene

import (
	"image/color"
	"math"
)

// Circle is a driver on the row or column axis. D is the radius the circle
// is drawn with and the distance of its marker from the center.
type Circle struct {
	X, Y  float32
	D     float32
	Color color.RGBA
}

// Marker returns the marker position of the k-th driver (0-based) at the
// given global angle. The harmonic multiplier is k+1, and a zero angle puts
// the marker at the bottom of the circle in screen coordinates.
func (c Circle) Marker(angle float64, k int) (x, y float32) {
	a := angle*float64(k+1) + math.Pi/2
	x = c.X + c.D*float32(math.Cos(a))
	y = c.Y + c.D*float32(math.Sin(a))
	return x, y
}
