package scene

import "image/color"

type drawCall struct {
	op             string
	x0, y0, x1, y1 float32
	r, width       float32
	clr            color.Color
}

// recorder is a Canvas that remembers every call in order.
type recorder struct {
	w, h  float32
	calls []drawCall
}

func newRecorder(w, h float32) *recorder { return &recorder{w: w, h: h} }

func (r *recorder) Size() (float32, float32) { return r.w, r.h }

func (r *recorder) Clear(clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "clear", clr: clr})
}

func (r *recorder) DrawCircle(x, y, rad float32, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "circle", x0: x, y0: y, r: rad, clr: clr})
}

func (r *recorder) DrawCircleLines(x, y, rad, width float32, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "ring", x0: x, y0: y, r: rad, width: width, clr: clr})
}

func (r *recorder) DrawLine(x0, y0, x1, y1, width float32, clr color.Color) {
	r.calls = append(r.calls, drawCall{op: "line", x0: x0, y0: y0, x1: x1, y1: y1, width: width, clr: clr})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}
