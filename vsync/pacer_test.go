package vsync

import (
	"testing"
	"time"

	"github.com/dshills/imterm/backend"
)

// fakeClock advances only when slept on, making tick timing exact.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept = append(c.slept, d)
}

func newTestPacer(t *testing.T, activeFPS, idleFPS float64) (*Pacer, *backend.Sim, *fakeClock) {
	t.Helper()
	sim := backend.NewSim(80, 24)
	clock := newFakeClock()
	return NewWithClock(activeFPS, idleFPS, sim, clock), sim, clock
}

func TestRateClamping(t *testing.T) {
	tests := []struct {
		name       string
		active     float64
		idle       float64
		wantActive time.Duration
		wantIdle   time.Duration
	}{
		{"idle slower", 100, 10, 10 * time.Millisecond, 100 * time.Millisecond},
		{"idle faster clamps", 100, 200, 10 * time.Millisecond, 10 * time.Millisecond},
		{"negative idle follows active", 100, -1, 10 * time.Millisecond, 10 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _, _ := newTestPacer(t, tt.active, tt.idle)
			if got := p.ActiveInterval(); got != tt.wantActive {
				t.Errorf("ActiveInterval() = %v, want %v", got, tt.wantActive)
			}
			if got := p.IdleInterval(); got != tt.wantIdle {
				t.Errorf("IdleInterval() = %v, want %v", got, tt.wantIdle)
			}
		})
	}
}

func TestWaitReleasesOnFixedGrid(t *testing.T) {
	const step = 10 * time.Millisecond
	p, _, clock := newTestPacer(t, 100, 100)
	t0 := clock.Now()

	for n := 1; n <= 20; n++ {
		p.Wait(false)
		want := t0.Add(time.Duration(n) * step)
		drift := want.Sub(clock.Now())
		if drift < 0 {
			drift = -drift
		}
		if drift > 200*time.Microsecond {
			t.Fatalf("tick %d released at %v off the grid point", n, drift)
		}
	}
}

func TestWaitGridDoesNotDriftWithProcessingTime(t *testing.T) {
	const step = 10 * time.Millisecond
	p, _, clock := newTestPacer(t, 100, 100)
	t0 := clock.Now()

	for n := 1; n <= 10; n++ {
		// Simulate frame work consuming part of the interval.
		clock.now = clock.now.Add(3 * time.Millisecond)
		p.Wait(false)
	}

	want := t0.Add(10 * step)
	drift := want.Sub(clock.Now())
	if drift < 0 {
		drift = -drift
	}
	if drift > 200*time.Microsecond {
		t.Fatalf("grid drifted by %v after busy frames", drift)
	}
}

func TestWaitAbortsEarlyOnInputAndRequeues(t *testing.T) {
	p, sim, clock := newTestPacer(t, 100, 100)
	t0 := clock.Now()

	sim.FeedRune('k')
	p.Wait(false)

	if clock.Now().Sub(t0) > time.Millisecond {
		t.Error("wait should release immediately on pending input")
	}
	ev, ok := sim.PollEvent()
	if !ok || ev.Rune != 'k' {
		t.Fatalf("peeked event lost: %+v ok=%v", ev, ok)
	}
}

func TestWaitActiveStickyDecay(t *testing.T) {
	// Active 100 FPS (10ms), idle 10 FPS (100ms).
	p, _, clock := newTestPacer(t, 100, 10)

	release := func(active bool) time.Duration {
		before := clock.Now()
		p.Wait(active)
		return clock.Now().Sub(before).Round(time.Millisecond)
	}

	if d := release(true); d != 10*time.Millisecond {
		t.Fatalf("active frame interval = %v", d)
	}
	// Nine more frames ride the sticky active window.
	for i := 0; i < 9; i++ {
		if d := release(false); d != 10*time.Millisecond {
			t.Fatalf("sticky frame %d interval = %v", i, d)
		}
	}
	// Then the pacer decays to the idle rate.
	if d := release(false); d != 100*time.Millisecond {
		t.Fatalf("idle frame interval = %v", d)
	}
}

func TestDelta(t *testing.T) {
	p, _, clock := newTestPacer(t, 60, 60)

	clock.now = clock.now.Add(16 * time.Millisecond)
	if d := p.Delta(); d != 16*time.Millisecond {
		t.Errorf("Delta() = %v", d)
	}
	clock.now = clock.now.Add(5 * time.Millisecond)
	if d := p.Delta(); d != 5*time.Millisecond {
		t.Errorf("second Delta() = %v", d)
	}
}

func TestSetRatesLive(t *testing.T) {
	p, _, _ := newTestPacer(t, 60, 60)
	p.SetRates(30, 5)
	if p.ActiveInterval() != time.Second/30 {
		t.Errorf("ActiveInterval() = %v", p.ActiveInterval())
	}
	if p.IdleInterval() != time.Second/5 {
		t.Errorf("IdleInterval() = %v", p.IdleInterval())
	}
}
