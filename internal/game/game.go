// Package game hosts the Lissajous table in an ebiten window.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/lissajous-table/internal/loop"
)

// Options configures the windowed game.
type Options struct {
	Width, Height int
	TargetFPS     int
	Antialias     bool
	Debug         bool
	OnRevolution  func()
}

// Game adapts a loop.Driver to ebiten.Game.
//
// Ebiten calls Update before Draw on every tick. The driver must show a
// frame before it updates, so Update only advances after a Draw.
type Game struct {
	ctx    context.Context
	driver *loop.Driver

	antialias bool
	debug     bool

	outsideW, outsideH int
	drawn              bool
	drawTime           time.Duration
}

// New creates a game whose scene is sized for opts.Width x opts.Height.
// Cancelling ctx ends the run at the next frame.
func New(ctx context.Context, opts Options) *Game {
	dopts := []loop.DriverOption{loop.WithTargetFPS(opts.TargetFPS)}
	if opts.OnRevolution != nil {
		dopts = append(dopts, loop.WithRevolutionHook(opts.OnRevolution))
	}
	return &Game{
		ctx:       ctx,
		driver:    loop.NewDriver(opts.Width, opts.Height, dopts...),
		antialias: opts.Antialias,
		debug:     opts.Debug,
		outsideW:  opts.Width,
		outsideH:  opts.Height,
	}
}

// Driver returns the frame driver behind the game.
func (g *Game) Driver() *loop.Driver { return g.driver }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if !g.drawn {
		return nil
	}
	g.drawn = false

	if err := g.driver.Advance(g.ctx, g.outsideW, g.outsideH); err != nil {
		if errors.Is(err, context.Canceled) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.driver.Render(screenCanvas{dst: screen, antialias: g.antialias})
	g.drawTime = time.Since(start)
	g.drawn = true

	if g.debug {
		ebitenutil.DebugPrint(screen, g.status())
	}
}

// Layout keeps one logical pixel per window unit and records the window
// size for resize detection.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) status() string {
	s := g.driver.Scene()
	w, h := g.driver.Size()
	n := s.Layout().N
	target := "uncapped"
	if f := g.driver.Pacer().Frame(); f > 0 {
		target = formatFrameTime(f)
	}
	return fmt.Sprintf("TPS %.1f  FPS %.1f\ndraw %s  target %s\ntick %d/%d  grid %dx%d  view %dx%d",
		ebiten.ActualTPS(), ebiten.ActualFPS(),
		formatFrameTime(g.drawTime), target,
		s.Tick(), s.TicksPerRevolution(), n, n, w, h)
}
