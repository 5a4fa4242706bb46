package scene

import (
	"image/color"
	"testing"
)

func TestCurve_AddUsesStagedValues(t *testing.T) {
	c := NewCurve()
	c.SetX(12, rgba(255, 0, 0))
	c.SetY(34, rgba(0, 0, 255))
	c.Add()

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	p := c.Path()[0]
	if p.X != 12 || p.Y != 34 {
		t.Errorf("point = (%v, %v), want (12, 34)", p.X, p.Y)
	}
	if want := Blend(rgba(255, 0, 0), rgba(0, 0, 255)); p.Color != want {
		t.Errorf("point color = %v, want %v", p.Color, want)
	}
}

func TestCurve_ResetThenAdd(t *testing.T) {
	c := NewCurve()
	for i := 0; i < 10; i++ {
		c.SetX(float32(i), rgba(0, 255, 0))
		c.SetY(float32(i), rgba(255, 0, 0))
		c.Add()
	}
	capBefore := cap(c.path)

	c.Reset()
	if c.Len() != 0 {
		t.Fatalf("Len() after Reset = %d, want 0", c.Len())
	}
	if cap(c.path) != capBefore {
		t.Errorf("Reset reallocated: cap %d -> %d", capBefore, cap(c.path))
	}

	cx, cy := rgba(10, 20, 30), rgba(50, 60, 70)
	c.SetX(1, cx)
	c.SetY(2, cy)
	c.Add()
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if got, want := c.Path()[0].Color, Blend(cx, cy); got != want {
		t.Errorf("color = %v, want %v", got, want)
	}
}

func TestCurve_DefaultColorsAreWhite(t *testing.T) {
	c := NewCurve()
	c.Add()
	if got := c.Path()[0].Color; got != white {
		t.Errorf("color = %v, want white", got)
	}
}

func TestCurve_Show(t *testing.T) {
	tests := []struct {
		name      string
		points    [][2]float32
		wantLines int
		wantDots  int
	}{
		{name: "empty", points: nil, wantLines: 0, wantDots: 0},
		{name: "single point", points: [][2]float32{{1, 1}}, wantLines: 0, wantDots: 1},
		{name: "two points", points: [][2]float32{{1, 1}, {2, 2}}, wantLines: 2, wantDots: 1},
		{name: "four points", points: [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, wantLines: 4, wantDots: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCurve()
			for _, p := range tt.points {
				c.SetX(p[0], white)
				c.SetY(p[1], white)
				c.Add()
			}
			r := newRecorder(100, 100)
			c.Show(r)

			if got := r.count("line"); got != tt.wantLines {
				t.Errorf("lines = %d, want %d", got, tt.wantLines)
			}
			if got := r.count("circle"); got != tt.wantDots {
				t.Errorf("dots = %d, want %d", got, tt.wantDots)
			}
		})
	}
}

func TestCurve_ShowClosesPathWithDestinationColors(t *testing.T) {
	c := NewCurve()
	colors := []color.RGBA{rgba(255, 0, 0), rgba(0, 255, 0), rgba(0, 0, 255)}
	for i, clr := range colors {
		c.SetX(float32(i*10), clr)
		c.SetY(float32(i*10), clr)
		c.Add()
	}

	r := newRecorder(100, 100)
	c.Show(r)

	if len(r.calls) != 4 {
		t.Fatalf("calls = %d, want 4", len(r.calls))
	}
	closing := r.calls[2]
	if closing.x0 != 20 || closing.y0 != 20 || closing.x1 != 0 || closing.y1 != 0 {
		t.Errorf("closing segment = (%v,%v)->(%v,%v), want (20,20)->(0,0)",
			closing.x0, closing.y0, closing.x1, closing.y1)
	}
	for i, call := range r.calls[:3] {
		want := colors[(i+1)%3]
		if call.clr != want {
			t.Errorf("segment %d color = %v, want %v", i, call.clr, want)
		}
	}
	head := r.calls[3]
	if head.op != "circle" || head.x0 != 20 || head.y0 != 20 || head.r != 2 {
		t.Errorf("highlight = %+v, want circle r=2 at (20,20)", head)
	}
}
