package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeClock struct {
	t     time.Time
	slept []time.Duration
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.t = c.t.Add(d)
}

func newFakePacer(period time.Duration) (*Pacer, *fakeClock) {
	c := &fakeClock{t: time.Unix(0, 0)}
	return &Pacer{Period: period, now: c.now, sleep: c.sleep}, c
}

func TestPacerSleepsRemainder(t *testing.T) {
	p, c := newFakePacer(30 * time.Millisecond)
	start := c.now()
	c.t = c.t.Add(12 * time.Millisecond)
	p.Wait(start)
	if len(c.slept) != 1 || c.slept[0] != 18*time.Millisecond {
		t.Fatalf("slept %v, want [18ms]", c.slept)
	}
}

func TestPacerNoCatchUp(t *testing.T) {
	p, c := newFakePacer(30 * time.Millisecond)
	start := c.now()
	c.t = c.t.Add(45 * time.Millisecond)
	p.Wait(start)
	if len(c.slept) != 0 {
		t.Fatalf("slept %v after an overrun, want none", c.slept)
	}

	// The next frame still gets a full period, not a shortened one.
	start = c.now()
	c.t = c.t.Add(5 * time.Millisecond)
	p.Wait(start)
	if len(c.slept) != 1 || c.slept[0] != 25*time.Millisecond {
		t.Fatalf("slept %v, want [25ms]", c.slept)
	}
}

func TestPacerRunStopsOnError(t *testing.T) {
	p, c := newFakePacer(30 * time.Millisecond)
	errStop := errors.New("stop")
	calls := 0
	err := p.Run(context.Background(), func() error {
		calls++
		c.t = c.t.Add(10 * time.Millisecond)
		if calls == 3 {
			return errStop
		}
		return nil
	})
	if !errors.Is(err, errStop) {
		t.Fatalf("Run() = %v, want errStop", err)
	}
	if calls != 3 {
		t.Fatalf("step called %d times, want 3", calls)
	}
	if got := c.t.Sub(time.Unix(0, 0)); got != 70*time.Millisecond {
		t.Fatalf("elapsed %v, want 70ms (two paced frames + one failing step)", got)
	}
}

func TestPacerRunHonorsContext(t *testing.T) {
	p, _ := newFakePacer(30 * time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := p.Run(ctx, func() error {
		calls++
		if calls == 2 {
			cancel()
		}
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, want context.Canceled", err)
	}
	if calls != 2 {
		t.Fatalf("step called %d times, want 2", calls)
	}
}
