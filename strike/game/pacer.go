package game

import (
	"context"
	"time"
)

// Pacer enforces a minimum frame period. A frame that overruns simply makes
// that period longer; there is no catch-up or frame skipping.
type Pacer struct {
	Period time.Duration

	now   func() time.Time
	sleep func(time.Duration)
}

// NewPacer returns a pacer on the wall clock.
func NewPacer(period time.Duration) *Pacer {
	return &Pacer{Period: period, now: time.Now, sleep: time.Sleep}
}

// Wait blocks until Period has elapsed since start.
func (p *Pacer) Wait(start time.Time) {
	if p.Period <= 0 {
		return
	}
	if rest := p.Period - p.now().Sub(start); rest > 0 {
		p.sleep(rest)
	}
}

// Run calls step once per frame until ctx is done or step fails.
func (p *Pacer) Run(ctx context.Context, step func() error) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		start := p.now()
		if err := step(); err != nil {
			return err
		}
		p.Wait(start)
	}
}
