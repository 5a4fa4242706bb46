package scene

import "math"

// Layout is the square grid that fits a viewport. One cell along each edge
// is reserved for the driver circles.
type Layout struct {
	N    int
	Cell float32
}

// NewLayout computes the grid for a viewport. Viewports narrower than two
// cells produce an empty grid.
func NewLayout(viewW, viewH, cell float32) Layout {
	if cell <= 0 {
		return Layout{Cell: cell}
	}
	cols := int(math.Floor(float64(viewW/cell))) - 1
	rows := int(math.Floor(float64(viewH/cell))) - 1
	n := min(cols, rows)
	if n < 0 {
		n = 0
	}
	return Layout{N: n, Cell: cell}
}

// Radius returns the drawing radius shared by all driver circles.
func (l Layout) Radius() float32 {
	return l.Cell/2 - 10
}

// Column returns the center of the i-th column driver.
func (l Layout) Column(i int) (x, y float32) {
	return (float32(i) + 1.5) * l.Cell, l.Cell / 2
}

// Row returns the center of the j-th row driver.
func (l Layout) Row(j int) (x, y float32) {
	return l.Cell / 2, (float32(j) + 1.5) * l.Cell
}
