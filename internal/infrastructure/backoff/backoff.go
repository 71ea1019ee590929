package backoff

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// Backoff computes exponentially growing waits capped at Max.
type Backoff struct {
	Min    time.Duration
	Max    time.Duration
	Factor float64
	Jitter bool
}

func New(min, max time.Duration, factor float64) *Backoff {
	return &Backoff{
		Min:    min,
		Max:    max,
		Factor: factor,
		Jitter: true,
	}
}

// Duration returns the wait before the given attempt. Jitter keeps the result
// in [d/2, d].
func (b *Backoff) Duration(attempt int) time.Duration {
	if attempt <= 0 {
		return b.Min
	}

	d := float64(b.Min) * math.Pow(b.Factor, float64(attempt-1))
	if d > float64(b.Max) {
		d = float64(b.Max)
	}
	if b.Jitter {
		d *= 0.5 + rand.Float64()*0.5
	}
	return time.Duration(d)
}

// Poller paces an idle polling loop. Wake cuts the current wait short, which
// lets producers in the same process signal new work.
type Poller struct {
	backoff *Backoff
	wake    chan struct{}
}

func NewPoller(b *Backoff) *Poller {
	return &Poller{backoff: b, wake: make(chan struct{}, 1)}
}

// Wait sleeps for the idle-th backoff step, or less if woken. It returns
// ctx.Err() when the context ends first.
func (p *Poller) Wait(ctx context.Context, idle int) error {
	timer := time.NewTimer(p.backoff.Duration(idle))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-p.wake:
		return nil
	case <-timer.C:
		return nil
	}
}

func (p *Poller) Wake() {
	select {
	case p.wake <- struct{}{}:
	default:
	}
}
