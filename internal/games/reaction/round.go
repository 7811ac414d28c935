package reaction

import (
	"time"

	"github.com/vovakirdan/tui-humanbench/internal/core"
)

// Phase is the state of a single reaction round.
type Phase int

const (
	PhaseWaiting     Phase = iota // Signal not shown yet
	PhaseArmed                    // Signal shown, measuring
	PhaseReacted                  // Key pressed after the signal
	PhaseFailedEarly              // Key pressed before the signal
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "Waiting"
	case PhaseArmed:
		return "Armed"
	case PhaseReacted:
		return "Reacted"
	case PhaseFailedEarly:
		return "FailedEarly"
	default:
		return "Unknown"
	}
}

// Round is one wait-for-signal measurement.
// The signal arms at the first Update whose instant is at or past the delay,
// so the measured time starts when the signal was actually drawn.
type Round struct {
	phase    Phase
	deadline core.Deadline
	watch    core.Stopwatch
	reaction time.Duration
}

// NewRound starts a round at now that arms after delay.
func NewRound(now time.Time, delay time.Duration) Round {
	return Round{
		phase:    PhaseWaiting,
		deadline: core.NewDeadline(now, delay),
	}
}

// Phase returns the current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Done reports whether the round reached a terminal phase.
func (r *Round) Done() bool {
	return r.phase == PhaseReacted || r.phase == PhaseFailedEarly
}

// ArmedAt returns the instant the signal was shown.
// Zero until the round has been armed.
func (r *Round) ArmedAt() time.Time {
	return r.watch.Started()
}

// Reaction returns the measured duration. Zero unless the phase is Reacted.
func (r *Round) Reaction() time.Duration {
	return r.reaction
}

// Update advances the round to now. Returns true if the signal armed.
func (r *Round) Update(now time.Time) bool {
	if r.phase != PhaseWaiting || !r.deadline.Reached(now) {
		return false
	}
	r.phase = PhaseArmed
	r.watch.Start(now)
	return true
}

// Press records a key press at now.
// Presses after the round has finished are ignored.
func (r *Round) Press(now time.Time) {
	switch r.phase {
	case PhaseWaiting:
		r.phase = PhaseFailedEarly
	case PhaseArmed:
		r.reaction = r.watch.Elapsed(now)
		r.watch.Stop()
		r.phase = PhaseReacted
	}
}
