package engine

import (
	"time"

	"github.com/lixenwraith/bell-fighter/parameter"
)

// Driver converts wall-clock time into a whole number of fixed steps
// The backlog is capped so a stall never triggers more than a bounded catch-up burst
type Driver struct {
	clock       TimeProvider
	step        time.Duration
	maxBacklog  time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewDriver creates a driver at the default step rate, anchored at the current clock reading
func NewDriver(clock TimeProvider) *Driver {
	return NewDriverWithStep(clock, parameter.StepDuration, parameter.MaxCatchUpSteps)
}

// NewDriverWithStep creates a driver with an explicit step length and catch-up bound
func NewDriverWithStep(clock TimeProvider, step time.Duration, maxSteps int) *Driver {
	return &Driver{
		clock:      clock,
		step:       step,
		maxBacklog: step * time.Duration(maxSteps),
		last:       clock.Now(),
	}
}

// Advance accumulates time elapsed since the previous call and runs fn once per whole step
// Returns the number of steps run
func (d *Driver) Advance(fn func()) int {
	now := d.clock.Now()
	delta := now.Sub(d.last)
	d.last = now
	if delta < 0 {
		delta = 0
	}

	d.accumulator += delta
	if d.accumulator > d.maxBacklog {
		d.accumulator = d.maxBacklog
	}

	n := 0
	for d.accumulator >= d.step {
		fn()
		d.accumulator -= d.step
		n++
	}
	return n
}

// Pending returns the unconsumed remainder of the accumulator
func (d *Driver) Pending() time.Duration {
	return d.accumulator
}

// Step returns the fixed step length
func (d *Driver) Step() time.Duration {
	return d.step
}
