package raster

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iburimskiy/lissajous-table/internal/loop"
)

// Options configures an offscreen recording.
type Options struct {
	Width, Height int
	Frames        int
	// Every writes every Nth frame; 0 writes only the last one.
	Every     int
	TargetFPS int
}

// Sink receives the frames selected for output.
type Sink func(frame int, c *Canvas) error

// Record renders opts.Frames frames through a loop.Driver and hands the
// selected ones to sink. It returns the driver so callers can inspect the
// final scene.
func Record(ctx context.Context, opts Options, sink Sink) (*loop.Driver, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("invalid frame count %d", opts.Frames)
	}

	cv := NewCanvas(opts.Width, opts.Height)
	defer cv.Close()

	d := loop.NewDriver(opts.Width, opts.Height, loop.WithTargetFPS(opts.TargetFPS))
	for i := 1; i <= opts.Frames; i++ {
		d.Render(cv)
		if err := cv.Err(); err != nil {
			return d, fmt.Errorf("render frame %d: %w", i, err)
		}

		if selected(i, opts) {
			if err := sink(i, cv); err != nil {
				return d, fmt.Errorf("write frame %d: %w", i, err)
			}
		}

		if err := d.Advance(ctx, opts.Width, opts.Height); err != nil {
			return d, err
		}
	}

	loop.Logger().Info("recording finished", "frames", opts.Frames, "rows", d.Scene().Layout().N)
	return d, nil
}

func selected(i int, opts Options) bool {
	if opts.Every <= 0 {
		return i == opts.Frames
	}
	return i%opts.Every == 0
}

// DirSink writes each frame to dir as frame-00042.png.
func DirSink(dir string) Sink {
	return func(frame int, c *Canvas) error {
		name := filepath.Join(dir, fmt.Sprintf("frame-%05d.png", frame))
		f, err := os.Create(name)
		if err != nil {
			return err
		}
		if err := c.WritePNG(f); err != nil {
			_ = f.Close()
			return err
		}
		loop.Logger().Debug("frame written", "path", name)
		return f.Close()
	}
}

// StreamSink writes frames back to back as PNG images, the format
// ffmpeg reads with -f image2pipe.
func StreamSink(w io.Writer) Sink {
	return func(_ int, c *Canvas) error {
		return c.WritePNG(w)
	}
}
