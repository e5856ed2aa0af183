// Package pace turns wall-clock time into idle ticks for real-time front ends.
package pace

import (
	"context"
	"sync"
	"time"

	"github.com/coder/quartz"
)

// Dropper reports when the next idle tick is due. It is polled by frame-driven
// loops; Start drives event-driven ones.
type Dropper struct {
	clock    quartz.Clock
	interval time.Duration

	mu     sync.Mutex
	last   time.Time
	paused bool
}

// NewDropper creates a dropper that fires every interval on clock.
func NewDropper(clock quartz.Clock, interval time.Duration) *Dropper {
	return &Dropper{
		clock:    clock,
		interval: interval,
		last:     clock.Now(),
	}
}

// Interval returns the tick period
func (d *Dropper) Interval() time.Duration {
	return d.interval
}

// Due reports whether an interval has elapsed since the last tick and, if
// so, starts the next interval. Missed intervals are not replayed.
func (d *Dropper) Due() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.paused {
		return false
	}
	now := d.clock.Now()
	if now.Sub(d.last) < d.interval {
		return false
	}
	d.last = now
	return true
}

// Reset restarts the current interval, as after a manual drop.
func (d *Dropper) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = d.clock.Now()
}

// SetPaused stops or resumes ticking. Resuming restarts the interval.
func (d *Dropper) SetPaused(paused bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.paused && !paused {
		d.last = d.clock.Now()
	}
	d.paused = paused
}

// Paused reports whether ticking is stopped
func (d *Dropper) Paused() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.paused
}

// Start calls tick every interval until ctx is done, skipping ticks while
// paused. The ticker is registered before Start returns; Wait on the result
// blocks until it stops.
func (d *Dropper) Start(ctx context.Context, tick func()) quartz.Waiter {
	return d.clock.TickerFunc(ctx, d.interval, func() error {
		if d.Due() {
			tick()
		}
		return nil
	}, "pace", "drop")
}
