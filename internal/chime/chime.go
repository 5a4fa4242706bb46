// Package chime plays a short tone each time the curve table completes a
// revolution.
package chime

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"

	"github.com/iburimskiy/lissajous-table/internal/config"
)

// Output is the audio device tones are played on. The speaker package
// satisfies it with speaker.Init and speaker.Play.
type Output struct {
	Init func(sr beep.SampleRate, bufferSize int) error
	Play func(s ...beep.Streamer)
}

// Chime plays tones on an Output. Play never blocks; mixing happens on the
// output's own goroutine.
type Chime struct {
	out    Output
	rate   beep.SampleRate
	freq   float64
	length int
	volume float64
	logger *slog.Logger
	played int
}

// New initialises out at the configured sample rate.
func New(out Output, logger *slog.Logger) (*Chime, error) {
	if out.Init == nil || out.Play == nil {
		return nil, errors.New("chime: incomplete output")
	}
	if logger == nil {
		logger = slog.Default()
	}

	rate := beep.SampleRate(config.ChimeSampleRate)
	c := &Chime{
		out:    out,
		rate:   rate,
		freq:   config.ChimeFrequency,
		length: rate.N(time.Duration(config.ChimeDuration * float64(time.Second))),
		volume: config.ChimeVolume,
		logger: logger,
	}

	bufferSize := rate.N(time.Second / 20)
	if err := out.Init(rate, bufferSize); err != nil {
		return nil, fmt.Errorf("init audio output at %d Hz: %w", int(rate), err)
	}
	logger.Info("chime ready", "sampleRate", int(rate), "bufferSize", bufferSize)
	return c, nil
}

// Play queues one tone.
func (c *Chime) Play() {
	c.played++
	c.out.Play(&effects.Volume{
		Streamer: newTone(c.rate, c.freq, c.length),
		Base:     2,
		Volume:   c.volume,
	})
	c.logger.Debug("chime", "count", c.played)
}

// Played returns how many tones have been queued.
func (c *Chime) Played() int { return c.played }
