// Package scene models a Lissajous curve table: a square grid of curves
// whose x coordinates come from a row of driver circles along the top edge
// and whose y coordinates come from a column of drivers along the left edge.
package scene

import (
	"image/color"
	"math"

	"github.com/iburimskiy/lissajous-table/internal/config"
)

// Scene owns the driver circles, the curve grid and the global angle.
// It is not safe for concurrent use.
type Scene struct {
	width, height float32
	layout        Layout

	rows   []Circle
	cols   []Circle
	curves [][]*Curve

	angle    float64
	tick     int
	step     float64
	ticksRev int

	markerRadius    float32
	highlightRadius float32
	lineWidth       float32
	guideAlpha      float32
}

// Option configures a Scene.
type Option func(*options)

type options struct {
	cell            float32
	step            float64
	markerRadius    float32
	highlightRadius float32
	lineWidth       float32
	guideAlpha      float32
}

func defaultOptions() options {
	return options{
		cell:            config.CellSize,
		step:            config.AngleStep,
		markerRadius:    config.MarkerRadius,
		highlightRadius: config.HighlightRadius,
		lineWidth:       config.LineWidth,
		guideAlpha:      config.GuideAlpha,
	}
}

// WithCellSize sets the grid cell size in screen units.
func WithCellSize(cell float32) Option {
	return func(o *options) { o.cell = cell }
}

// WithAngleStep sets the per-update angle decrement in radians.
// Non-positive values are ignored.
func WithAngleStep(step float64) Option {
	return func(o *options) {
		if step > 0 {
			o.step = step
		}
	}
}

// WithMarkerRadius sets the radius of the dot drawn on each driver.
func WithMarkerRadius(r float32) Option {
	return func(o *options) { o.markerRadius = r }
}

// WithHighlightRadius sets the radius of the dot drawn on each curve head.
func WithHighlightRadius(r float32) Option {
	return func(o *options) { o.highlightRadius = r }
}

// WithGuideAlpha sets the opacity of the guide lines through the markers.
func WithGuideAlpha(a float32) Option {
	return func(o *options) { o.guideAlpha = a }
}

// New builds a scene sized for a viewport of viewW x viewH.
func New(viewW, viewH float32, opts ...Option) *Scene {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	o.step = max(o.step, minAngleStep)
	l := NewLayout(viewW, viewH, o.cell)
	s := &Scene{
		width:           viewW,
		height:          viewH,
		layout:          l,
		step:            o.step,
		ticksRev:        ticksPerRevolution(o.step),
		markerRadius:    o.markerRadius,
		highlightRadius: o.highlightRadius,
		lineWidth:       o.lineWidth,
		guideAlpha:      o.guideAlpha,
	}

	n := l.N
	d := l.Radius()
	s.cols = make([]Circle, n)
	for i := range s.cols {
		x, y := l.Column(i)
		s.cols[i] = Circle{X: x, Y: y, D: d, Color: rgba(gradient(i, n), 255, 0)}
	}
	// The row gradient is also scaled by the column count; the grid is square.
	s.rows = make([]Circle, n)
	for j := range s.rows {
		x, y := l.Row(j)
		s.rows[j] = Circle{X: x, Y: y, D: d, Color: rgba(255, 0, gradient(j, n))}
	}

	s.curves = make([][]*Curve, n)
	for j := range s.curves {
		row := make([]*Curve, n)
		for i := range row {
			c := NewCurve()
			c.lineWidth = s.lineWidth
			c.highlightRadius = s.highlightRadius
			row[i] = c
		}
		s.curves[j] = row
	}

	return s
}

// Size returns the viewport the scene was laid out for.
func (s *Scene) Size() (w, h float32) { return s.width, s.height }

// Layout returns the grid layout.
func (s *Scene) Layout() Layout { return s.layout }

// Rows returns the row drivers, top to bottom.
func (s *Scene) Rows() []Circle { return s.rows }

// Cols returns the column drivers, left to right.
func (s *Scene) Cols() []Circle { return s.cols }

// Curve returns the curve at the given row and column.
func (s *Scene) Curve(row, col int) *Curve { return s.curves[row][col] }

// Angle returns the current global angle in radians. It is never positive.
func (s *Scene) Angle() float64 { return s.angle }

// Tick returns the number of updates since the last reset.
func (s *Scene) Tick() int { return s.tick }

// TicksPerRevolution returns how many updates make up one animation cycle.
func (s *Scene) TicksPerRevolution() int { return s.ticksRev }

// Show samples every driver at the current angle, extends every curve by one
// point and draws the whole table.
//
// Columns are processed before rows and curves are committed only after both
// passes, so every curve sees both of this frame's coordinates.
func (s *Scene) Show(cv Canvas) {
	sw, sh := cv.Size()

	for i, c := range s.cols {
		cv.DrawCircleLines(c.X, c.Y, c.D, s.lineWidth, c.Color)
		x, y := c.Marker(s.angle, i)
		cv.DrawCircle(x, y, s.markerRadius, white)
		cv.DrawLine(x, 0, x, sh, s.lineWidth, withAlpha(white, s.guideAlpha))

		for j := range s.rows {
			s.curves[j][i].SetX(x, s.rows[j].Color)
		}
	}

	for j, c := range s.rows {
		cv.DrawCircleLines(c.X, c.Y, c.D, s.lineWidth, c.Color)
		x, y := c.Marker(s.angle, j)
		cv.DrawCircle(x, y, s.markerRadius, white)
		cv.DrawLine(0, y, sw, y, s.lineWidth, withAlpha(white, s.guideAlpha))

		for i := range s.cols {
			s.curves[j][i].SetY(y, s.cols[i].Color)
		}
	}

	for _, row := range s.curves {
		for _, c := range row {
			c.Add()
			c.Show(cv)
		}
	}
}

// Update advances the angle by one step. Once a full revolution has been
// traced every curve is cleared and the angle returns to zero; Update
// reports whether that happened.
func (s *Scene) Update() bool {
	s.tick++
	s.angle = -float64(s.tick) * s.step
	if s.tick < s.ticksRev {
		return false
	}
	s.Reset()
	return true
}

// Reset clears every curve and rewinds the angle to zero.
func (s *Scene) Reset() {
	for _, row := range s.curves {
		for _, c := range row {
			c.Reset()
		}
	}
	s.angle = 0
	s.tick = 0
}

// minAngleStep bounds the revolution length so the tick count fits an int.
const minAngleStep = 1e-6

// ticksPerRevolution returns the first tick whose angle lies below -2π.
// Steps that divide 2π land on -2π exactly at the last tick, which counts
// as crossing.
func ticksPerRevolution(step float64) int {
	return max(1, int(math.Ceil(2*math.Pi/step-1e-9)))
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
