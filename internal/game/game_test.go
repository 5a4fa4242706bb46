package game

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// drawFrame stands in for ebiten calling Draw, which needs a running window.
func drawFrame(g *Game) {
	g.drawn = true
}

func TestGame_UpdateWaitsForDraw(t *testing.T) {
	g := New(context.Background(), Options{Width: 700, Height: 700})

	for i := 0; i < 3; i++ {
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if tick := g.Driver().Scene().Tick(); tick != 0 {
		t.Fatalf("Tick() before any Draw = %d, want 0", tick)
	}

	drawFrame(g)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if tick := g.Driver().Scene().Tick(); tick != 1 {
		t.Errorf("Tick() after one Draw and two Updates = %d, want 1", tick)
	}

	for i := 0; i < 5; i++ {
		drawFrame(g)
		if err := g.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if tick := g.Driver().Scene().Tick(); tick != 6 {
		t.Errorf("Tick() = %d, want 6", tick)
	}
}

func TestGame_LayoutTriggersRebuild(t *testing.T) {
	g := New(context.Background(), Options{Width: 700, Height: 700})

	if w, h := g.Layout(700, 700); w != 700 || h != 700 {
		t.Fatalf("Layout = %dx%d, want 700x700", w, h)
	}
	drawFrame(g)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Driver().Rebuilds() != 0 {
		t.Fatalf("Rebuilds() = %d without resize", g.Driver().Rebuilds())
	}

	if w, h := g.Layout(500, 420); w != 500 || h != 420 {
		t.Fatalf("Layout = %dx%d, want 500x420", w, h)
	}
	// The new size is only picked up after the next drawn frame.
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Driver().Rebuilds() != 0 {
		t.Fatalf("Rebuilds() = %d before Draw", g.Driver().Rebuilds())
	}

	drawFrame(g)
	if err := g.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if g.Driver().Rebuilds() != 1 {
		t.Errorf("Rebuilds() = %d, want 1", g.Driver().Rebuilds())
	}
	if w, h := g.Driver().Size(); w != 500 || h != 420 {
		t.Errorf("Driver().Size() = %dx%d, want 500x420", w, h)
	}
	s := g.Driver().Scene()
	if s.Tick() != 0 || s.Angle() != 0 || s.Layout().N != 4 {
		t.Errorf("rebuilt scene tick=%d angle=%v grid=%d, want 0/0/4", s.Tick(), s.Angle(), s.Layout().N)
	}
}

func TestGame_CancelledContextTerminates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := New(ctx, Options{Width: 300, Height: 300})

	if err := g.Update(); err != nil {
		t.Fatalf("Update before Draw: %v", err)
	}

	cancel()
	drawFrame(g)
	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update error = %v, want ebiten.Termination", err)
	}
}

func TestGame_Status(t *testing.T) {
	g := New(context.Background(), Options{Width: 700, Height: 700, TargetFPS: 50})
	s := g.status()
	for _, want := range []string{"target 20.0ms", "tick 0/800", "grid 7x7", "view 700x700"} {
		if !strings.Contains(s, want) {
			t.Errorf("status %q missing %q", s, want)
		}
	}
}

func TestFormatFrameTime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0.0ms"},
		{16666667 * time.Nanosecond, "16.7ms"},
		{time.Second, "1000.0ms"},
	}
	for _, tt := range tests {
		if got := formatFrameTime(tt.d); got != tt.want {
			t.Errorf("formatFrameTime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
