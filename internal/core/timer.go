package core

import "time"

// Clock supplies the current instant. The platform uses the system clock;
// tests substitute fixed instants so elapsed times are exact.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}

// Stopwatch measures the elapsed time between two instants.
// The zero value is stopped.
type Stopwatch struct {
	start   time.Time
	running bool
}

// Start records the instant measurement begins.
func (s *Stopwatch) Start(now time.Time) {
	s.start = now
	s.running = true
}

// Stop halts the stopwatch.
func (s *Stopwatch) Stop() {
	s.running = false
}

// Running reports whether Start has been called since the last Stop.
func (s *Stopwatch) Running() bool {
	return s.running
}

// Started returns the instant passed to Start.
func (s *Stopwatch) Started() time.Time {
	return s.start
}

// Elapsed returns now minus the start instant. It never returns a negative
// duration and returns zero when the stopwatch is not running.
func (s *Stopwatch) Elapsed(now time.Time) time.Duration {
	if !s.running {
		return 0
	}
	return Elapsed(s.start, now)
}

// Elapsed returns the duration from start to end, clamped at zero.
func Elapsed(start, end time.Time) time.Duration {
	d := end.Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// Deadline is an instant after which something should happen.
type Deadline struct {
	at  time.Time
	set bool
}

// NewDeadline returns a deadline d after now.
func NewDeadline(now time.Time, d time.Duration) Deadline {
	return Deadline{at: now.Add(d), set: true}
}

// Reached reports whether the deadline is set and now is at or after it.
func (d Deadline) Reached(now time.Time) bool {
	return d.set && !now.Before(d.at)
}

// Remaining returns the time left until the deadline, clamped at zero.
func (d Deadline) Remaining(now time.Time) time.Duration {
	if !d.set {
		return 0
	}
	return Elapsed(now, d.at)
}
