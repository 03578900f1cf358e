// Package vsync paces the frame loop. The pacer keeps redraws on a
// fixed tick grid with separate active and idle rates, and aborts a
// wait early when terminal input arrives so the UI stays responsive.
package vsync

import (
	"sync"
	"time"

	"github.com/dshills/imterm/backend"
)

// stickyFrames is how many frames the active rate persists after the
// last genuine input, so sparse input bursts do not flap between
// rates.
const stickyFrames = 10

// graceWindow is how close to the tick a wait is allowed to release.
const graceWindow = 100 * time.Microsecond

// InputPoller is the slice of the terminal backend the pacer needs:
// peeking for pending input and handing a peeked event back so the
// input decoder still sees it.
type InputPoller interface {
	PollEvent() (backend.Event, bool)
	PostEvent(backend.Event)
}

// Pacer schedules frame ticks. Ticks land on a fixed grid: each tick
// is the previous scheduled tick plus the step, not "now" plus the
// step, so processing time does not accumulate as drift.
type Pacer struct {
	clock  Clock
	poller InputPoller

	mu         sync.Mutex
	activeStep time.Duration
	idleStep   time.Duration

	last       time.Time
	next       time.Time
	activeLeft int
}

// New creates a pacer with the system clock. The idle rate is clamped
// to at most the active rate; a negative idle rate means "same as
// active".
func New(activeFPS, idleFPS float64, poller InputPoller) *Pacer {
	return NewWithClock(activeFPS, idleFPS, poller, systemClock{})
}

// NewWithClock creates a pacer with an explicit clock.
func NewWithClock(activeFPS, idleFPS float64, poller InputPoller, clock Clock) *Pacer {
	p := &Pacer{clock: clock, poller: poller}
	p.SetRates(activeFPS, idleFPS)
	now := clock.Now()
	p.last = now
	p.next = now
	return p
}

// SetRates replaces the pacing rates. Safe to call while another
// goroutine reloads configuration.
func (p *Pacer) SetRates(activeFPS, idleFPS float64) {
	if activeFPS <= 0 {
		activeFPS = 60
	}
	if idleFPS < 0 || idleFPS > activeFPS {
		idleFPS = activeFPS
	}
	if idleFPS == 0 {
		idleFPS = activeFPS
	}
	p.mu.Lock()
	p.activeStep = time.Duration(float64(time.Second) / activeFPS)
	p.idleStep = time.Duration(float64(time.Second) / idleFPS)
	p.mu.Unlock()
}

// ActiveInterval returns the active tick interval.
func (p *Pacer) ActiveInterval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeStep
}

// IdleInterval returns the idle tick interval.
func (p *Pacer) IdleInterval() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.idleStep
}

// Wait blocks until the next scheduled tick. With active set (or
// within the sticky window after it) the active rate applies,
// otherwise the idle rate. While waiting, pending input aborts the
// wait early; the peeked event is requeued so the decoder does not
// lose it, and the tick grid is not advanced.
func (p *Pacer) Wait(active bool) {
	if active {
		p.activeLeft = stickyFrames
	}
	p.mu.Lock()
	step := p.idleStep
	if p.activeLeft > 0 {
		step = p.activeStep
	}
	activeStep := p.activeStep
	p.mu.Unlock()
	if p.activeLeft > 0 {
		p.activeLeft--
	}

	target := p.next.Add(step)
	now := p.clock.Now()

	for now.Before(target.Add(-graceWindow)) {
		// Only poll while far enough from the tick that reacting
		// to input is worth cutting the frame short.
		if now.Add(activeStep / 2).Before(target) {
			if ev, ok := p.poller.PollEvent(); ok {
				p.poller.PostEvent(ev)
				return
			}
		}

		sleep := time.Duration(0.9 * float64(target.Sub(now)))
		if limit := time.Duration(0.9 * float64(activeStep)); sleep > limit {
			sleep = limit
		}
		if sleep <= 0 {
			break
		}
		p.clock.Sleep(sleep)
		now = p.clock.Now()
	}

	p.next = target
}

// Delta returns the wall-clock time elapsed since the previous call.
// It drives the GUI's per-frame delta time.
func (p *Pacer) Delta() time.Duration {
	now := p.clock.Now()
	d := now.Sub(p.last)
	p.last = now
	return d
}
