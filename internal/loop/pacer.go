package loop

import (
	"context"
	"time"
)

// Pacer holds frames to a target duration. A zero Pacer is uncapped.
type Pacer struct {
	frame time.Duration
	start time.Time
	now   func() time.Time
}

// NewPacer returns a pacer for the given frame rate. fps <= 0 disables pacing.
func NewPacer(fps int) *Pacer {
	p := &Pacer{now: time.Now}
	if fps > 0 {
		p.frame = time.Second / time.Duration(fps)
	}
	return p
}

// Frame returns the target frame duration, zero when uncapped.
func (p *Pacer) Frame() time.Duration { return p.frame }

// Begin marks the start of a frame.
func (p *Pacer) Begin() {
	p.start = p.now()
}

// Remaining returns how long the current frame still has to run.
func (p *Pacer) Remaining() time.Duration {
	if p.frame <= 0 || p.start.IsZero() {
		return 0
	}
	left := p.frame - p.now().Sub(p.start)
	if left < 0 {
		return 0
	}
	return left
}

// Wait blocks until the frame deadline or until ctx is done.
// Overshoot is not carried into the next frame.
func (p *Pacer) Wait(ctx context.Context) error {
	left := p.Remaining()
	if left <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(left)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
