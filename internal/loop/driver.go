// Package loop drives a scene frame by frame independently of the window
// host: render, update, pace and rebuild on resize.
package loop

import (
	"context"
	"fmt"

	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/scene"
)

// Driver owns a scene and the viewport it was built for. It is driven by a
// single frame loop.
type Driver struct {
	scene  *scene.Scene
	width  int
	height int

	pacer        *Pacer
	sceneOpts    []scene.Option
	onRevolution func()

	frames  uint64
	rebuilt int
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithTargetFPS caps the frame rate. fps <= 0 leaves it uncapped.
func WithTargetFPS(fps int) DriverOption {
	return func(d *Driver) { d.pacer = NewPacer(fps) }
}

// WithSceneOptions forwards options to every scene the driver builds.
func WithSceneOptions(opts ...scene.Option) DriverOption {
	return func(d *Driver) { d.sceneOpts = append(d.sceneOpts, opts...) }
}

// WithRevolutionHook registers fn to run every time the scene completes a
// revolution and clears its curves.
func WithRevolutionHook(fn func()) DriverOption {
	return func(d *Driver) { d.onRevolution = fn }
}

// NewDriver builds a driver and its first scene for a w x h viewport.
func NewDriver(w, h int, opts ...DriverOption) *Driver {
	d := &Driver{pacer: NewPacer(config.TargetFPS)}
	for _, opt := range opts {
		opt(d)
	}
	d.build(w, h)
	return d
}

// Scene returns the current scene. It changes after a resize.
func (d *Driver) Scene() *scene.Scene { return d.scene }

// Size returns the viewport the current scene was built for.
func (d *Driver) Size() (w, h int) { return d.width, d.height }

// Frames returns the number of frames rendered so far.
func (d *Driver) Frames() uint64 { return d.frames }

// Rebuilds returns how many times the scene was rebuilt after a resize.
func (d *Driver) Rebuilds() int { return d.rebuilt }

// Pacer returns the frame pacer.
func (d *Driver) Pacer() *Pacer { return d.pacer }

// Render starts a frame: it clears the canvas and shows the scene.
func (d *Driver) Render(cv scene.Canvas) {
	d.pacer.Begin()
	cv.Clear(scene.Black)
	d.scene.Show(cv)
	d.frames++
}

// Advance finishes a frame after it has been presented. It updates the
// scene, waits out the rest of the frame if a target rate is set and
// rebuilds the scene when the viewport is no longer w x h.
func (d *Driver) Advance(ctx context.Context, w, h int) error {
	if d.scene.Update() {
		Logger().Debug("revolution complete, curves cleared", "frame", d.frames)
		if d.onRevolution != nil {
			d.onRevolution()
		}
	}

	if err := d.pacer.Wait(ctx); err != nil {
		return fmt.Errorf("pace frame %d: %w", d.frames, err)
	}

	if w != d.width || h != d.height {
		Logger().Info("viewport resized, rebuilding scene",
			"from", fmt.Sprintf("%dx%d", d.width, d.height),
			"to", fmt.Sprintf("%dx%d", w, h))
		d.build(w, h)
		d.rebuilt++
	}
	return nil
}

func (d *Driver) build(w, h int) {
	d.width, d.height = w, h
	d.scene = scene.New(float32(w), float32(h), d.sceneOpts...)
	n := d.scene.Layout().N
	Logger().Info("scene built", "viewport", fmt.Sprintf("%dx%d", w, h), "rows", n, "cols", n)
}
