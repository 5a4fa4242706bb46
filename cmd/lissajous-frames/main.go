// Command lissajous-frames renders the Lissajous curve table offscreen and
// writes PNG frames, either into a directory or as a stream for
// ffmpeg -f image2pipe.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/loop"
	"github.com/iburimskiy/lissajous-table/internal/raster"
)

func main() {
	var (
		width   = flag.Int("width", config.WindowWidth, "image width")
		height  = flag.Int("height", config.WindowHeight, "image height")
		frames  = flag.Int("frames", 800, "number of frames to render")
		every   = flag.Int("every", 0, "write every Nth frame (0 writes only the last)")
		fps     = flag.Int("fps", 0, "pace rendering to this frame rate (0 renders as fast as possible)")
		out     = flag.String("out", ".", "output directory, or - to stream PNGs to stdout")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	loop.SetLogger(logger)
	gg.SetLogger(logger)

	opts := raster.Options{
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		Every:     *every,
		TargetFPS: *fps,
	}
	if err := run(opts, *out); err != nil {
		logger.Error("render failed", "err", err)
		os.Exit(1)
	}
}

func run(opts raster.Options, out string) error {
	var sink raster.Sink
	if out == "-" {
		sink = raster.StreamSink(os.Stdout)
	} else {
		if err := os.MkdirAll(out, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", out, err)
		}
		sink = raster.DirSink(out)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	_, err := raster.Record(ctx, opts, sink)
	return err
}
