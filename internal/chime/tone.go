package chime

import (
	"math"

	"github.com/faiface/beep"
)

// tone is a beep.Streamer producing a sine wave that fades out linearly
// over length samples.
type tone struct {
	freq   float64
	rate   beep.SampleRate
	length int
	pos    int
}

func newTone(rate beep.SampleRate, freq float64, length int) *tone {
	return &tone{freq: freq, rate: rate, length: length}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.length {
		return 0, false
	}

	n := 0
	for n < len(samples) && t.pos < t.length {
		env := 1 - float64(t.pos)/float64(t.length)
		v := env * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(t.rate))
		samples[n] = [2]float64{v, v}
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
