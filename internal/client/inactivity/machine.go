// Package inactivity expires an idle client session. Machine holds the pure
// state transitions; Monitor drives it from a clock and dispatches hooks.
//
// All deadlines are absolute timestamps, so a host that sleeps and resumes
// sees the transitions it missed on the next tick rather than a drifted
// countdown.
package inactivity

import (
	"errors"
	"time"
)

type Phase int

const (
	PhaseActive Phase = iota
	PhaseWarning
	PhaseExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseWarning:
		return "warning"
	case PhaseExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Reason tells why a session expired.
type Reason int

const (
	ReasonIdle Reason = iota
	ReasonLogout
)

func (r Reason) String() string {
	if r == ReasonLogout {
		return "logout"
	}
	return "idle"
}

// Event is emitted by Machine transitions.
type Event interface{ event() }

// Warning is emitted once when the session enters PhaseWarning.
type Warning struct{ Remaining time.Duration }

// Countdown is emitted at most once per whole second while warning.
type Countdown struct{ Remaining time.Duration }

// Expired is terminal. It is emitted exactly once.
type Expired struct{ Reason Reason }

func (Warning) event()   {}
func (Countdown) event() {}
func (Expired) event()   {}

var ErrInvalidTimeouts = errors.New("inactivity warning must be positive and shorter than the timeout")

// Machine is not safe for concurrent use; Monitor serializes access.
type Machine struct {
	timeout  time.Duration
	warning  time.Duration
	phase    Phase
	deadline time.Time
	shown    int64
}

func NewMachine(timeout, warning time.Duration, now time.Time) (*Machine, error) {
	if warning <= 0 || timeout <= warning {
		return nil, ErrInvalidTimeouts
	}
	m := &Machine{timeout: timeout, warning: warning}
	m.rearm(now)
	return m, nil
}

func (m *Machine) rearm(now time.Time) {
	m.phase = PhaseActive
	m.deadline = now.Add(m.timeout)
	m.shown = 0
}

func (m *Machine) Phase() Phase { return m.phase }

func (m *Machine) Deadline() time.Time { return m.deadline }

// Advance applies the passage of time up to now.
func (m *Machine) Advance(now time.Time) []Event {
	if m.phase == PhaseExpired {
		return nil
	}

	remaining := m.deadline.Sub(now)
	if remaining <= 0 {
		m.phase = PhaseExpired
		return []Event{Expired{Reason: ReasonIdle}}
	}

	if m.phase == PhaseActive {
		if remaining > m.warning {
			return nil
		}
		m.phase = PhaseWarning
		m.shown = ceilSeconds(remaining)
		return []Event{Warning{Remaining: remaining}}
	}

	if s := ceilSeconds(remaining); s < m.shown {
		m.shown = s
		return []Event{Countdown{Remaining: remaining}}
	}
	return nil
}

// Activity records passive user activity. It only pushes the deadline
// while the session is active; a shown warning needs StayLoggedIn.
func (m *Machine) Activity(now time.Time) []Event {
	events := m.Advance(now)
	if m.phase == PhaseActive {
		m.deadline = now.Add(m.timeout)
	}
	return events
}

// StayLoggedIn is the explicit acknowledgment. It rearms both timers unless
// the deadline has already passed, in which case the only event is the
// expiry.
func (m *Machine) StayLoggedIn(now time.Time) []Event {
	if m.phase == PhaseExpired {
		return nil
	}
	if !now.Before(m.deadline) {
		m.phase = PhaseExpired
		return []Event{Expired{Reason: ReasonIdle}}
	}
	m.rearm(now)
	return nil
}

func (m *Machine) LogoutNow(time.Time) []Event {
	if m.phase == PhaseExpired {
		return nil
	}
	m.phase = PhaseExpired
	return []Event{Expired{Reason: ReasonLogout}}
}

func ceilSeconds(d time.Duration) int64 {
	return int64((d + time.Second - 1) / time.Second)
}
