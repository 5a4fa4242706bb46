package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/lissajous-table/internal/chime"
	"github.com/iburimskiy/lissajous-table/internal/config"
	"github.com/iburimskiy/lissajous-table/internal/game"
	"github.com/iburimskiy/lissajous-table/internal/loop"
)

func main() {
	var (
		fps       = flag.Int("fps", config.TargetFPS, "target frame rate (0 is uncapped)")
		withChime = flag.Bool("chime", false, "play a tone at the end of every revolution")
		debug     = flag.Bool("debug", false, "show frame statistics")
		verbose   = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	loop.SetLogger(logger)

	if err := run(logger, *fps, *withChime, *debug); err != nil {
		logger.Error("lissajous table stopped", "err", err)
		_ = zenity.Error(err.Error(), zenity.Title(config.Title), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, fps int, withChime, debug bool) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := game.Options{
		Width:     config.WindowWidth,
		Height:    config.WindowHeight,
		TargetFPS: fps,
		Antialias: true,
		Debug:     debug,
	}

	if withChime {
		c, err := chime.New(chime.Output{Init: speaker.Init, Play: speaker.Play}, logger)
		if err != nil {
			// The table still runs without sound.
			logger.Warn("chime disabled", "err", err)
		} else {
			opts.OnRevolution = c.Play
		}
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// One update per presented frame; the angle advances per frame, not per
	// wall-clock tick.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	if fps > 0 {
		ebiten.SetVsyncEnabled(false)
	}

	g := game.New(ctx, opts)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
