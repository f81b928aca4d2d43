package core

import (
	"errors"
	"math"
)

// ErrTimerActive is the panic value raised when an active timer is started again.
var ErrTimerActive = errors.New("core: timer already active")

// Timer measures simulated time. A count-down timer starts at its total and
// finishes at zero; a count-up timer starts at zero and finishes at its total.
// An inactive timer ignores updates.
type Timer struct {
	countUp bool
	active  bool
	total   float64
	current float64
}

// NewCountDown returns an inactive count-down timer.
func NewCountDown() Timer {
	return Timer{}
}

// NewCountUp returns an inactive count-up timer.
func NewCountUp() Timer {
	return Timer{countUp: true}
}

// Start activates the timer for total seconds. Starting an active timer is a
// programming error and panics with ErrTimerActive.
func (t *Timer) Start(total float64) {
	if t.active {
		panic(ErrTimerActive)
	}
	t.active = true
	t.total = total
	if t.countUp {
		t.current = 0
	} else {
		t.current = total
	}
}

// Restart resets and starts the timer in one step.
func (t *Timer) Restart(total float64) {
	t.Reset()
	t.Start(total)
}

// Reset deactivates the timer and clears its values.
func (t *Timer) Reset() {
	t.active = false
	t.total = 0
	t.current = 0
}

// Update advances an active timer by dt and reports whether it is done.
// Inactive timers do not advance and report false.
func (t *Timer) Update(dt float64) bool {
	if !t.active {
		return false
	}
	if t.countUp {
		t.current += dt
	} else {
		t.current -= dt
	}
	return t.Done()
}

// Done reports whether an active timer has run out.
func (t *Timer) Done() bool {
	if !t.active {
		return false
	}
	if t.countUp {
		return t.current >= t.total
	}
	return t.current <= 0
}

// Active reports whether the timer is running (or finished but not reset).
func (t *Timer) Active() bool {
	return t.active
}

// Current returns the elapsed (count-up) or remaining (count-down) time.
func (t *Timer) Current() float64 {
	return t.current
}

// Total returns the duration passed to Start.
func (t *Timer) Total() float64 {
	return t.total
}

// Forever is a duration that never elapses.
var Forever = math.Inf(1)
