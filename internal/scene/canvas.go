package scene

import "image/color"

// Canvas is the immediate-mode drawing surface a Scene renders onto.
// Coordinates are in screen units with the origin at the top-left corner.
type Canvas interface {
	Size() (w, h float32)
	Clear(clr color.Color)
	DrawCircle(x, y, r float32, clr color.Color)
	DrawCircleLines(x, y, r, width float32, clr color.Color)
	DrawLine(x0, y0, x1, y1, width float32, clr color.Color)
}
