package inactivity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func at(sec int) time.Time { return t0.Add(time.Duration(sec) * time.Second) }

func newMachine(t *testing.T) *Machine {
	t.Helper()
	m, err := NewMachine(900*time.Second, 60*time.Second, t0)
	require.NoError(t, err)
	return m
}

func expiries(events []Event) int {
	n := 0
	for _, e := range events {
		if _, ok := e.(Expired); ok {
			n++
		}
	}
	return n
}

func TestNewMachine_Validates(t *testing.T) {
	_, err := NewMachine(60*time.Second, 60*time.Second, t0)
	assert.ErrorIs(t, err, ErrInvalidTimeouts)
	_, err = NewMachine(60*time.Second, 0, t0)
	assert.ErrorIs(t, err, ErrInvalidTimeouts)
}

func TestMachine_WarningFiresAtTimeoutMinusWarning(t *testing.T) {
	m := newMachine(t)

	assert.Empty(t, m.Advance(at(839)))
	assert.Equal(t, PhaseActive, m.Phase())

	assert.Equal(t, []Event{Warning{Remaining: 60 * time.Second}}, m.Advance(at(840)))
	assert.Equal(t, PhaseWarning, m.Phase())
	assert.Empty(t, m.Advance(at(840)))
}

func TestMachine_StayLoggedInRearms(t *testing.T) {
	m := newMachine(t)
	m.Advance(at(840))

	assert.Empty(t, m.StayLoggedIn(at(845)))
	assert.Equal(t, PhaseActive, m.Phase())

	for sec := 846; sec < 1745; sec++ {
		assert.Zero(t, expiries(m.Advance(at(sec))), "expired early at %d", sec)
	}
	assert.Equal(t, []Event{Expired{Reason: ReasonIdle}}, m.Advance(at(1745)))
}

func TestMachine_StayLoggedInDuringCountdownEmitsNothing(t *testing.T) {
	m := newMachine(t)
	m.Advance(at(840))
	m.Advance(at(844))

	assert.Empty(t, m.StayLoggedIn(at(845)))
	assert.Equal(t, PhaseActive, m.Phase())
	assert.Equal(t, at(845).Add(15*time.Minute), m.Deadline())
	assert.Empty(t, m.Advance(at(846)))
}

func TestMachine_ExpiresExactlyOnce(t *testing.T) {
	m := newMachine(t)

	total := 0
	for sec := 1; sec <= 2000; sec++ {
		events := m.Advance(at(sec))
		if sec < 900 {
			assert.Zero(t, expiries(events), "expired early at %d", sec)
		}
		if sec == 900 {
			assert.Equal(t, 1, expiries(events))
		}
		total += expiries(events)
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, PhaseExpired, m.Phase())

	assert.Empty(t, m.StayLoggedIn(at(2001)))
	assert.Empty(t, m.LogoutNow(at(2001)))
	assert.Equal(t, PhaseExpired, m.Phase())
}

func TestMachine_CountdownOncePerSecond(t *testing.T) {
	m := newMachine(t)
	m.Advance(at(840))

	var got []time.Duration
	for ms := 840_250; ms < 900_000; ms += 250 {
		for _, e := range m.Advance(t0.Add(time.Duration(ms) * time.Millisecond)) {
			if c, ok := e.(Countdown); ok {
				got = append(got, c.Remaining)
			}
		}
	}
	assert.Len(t, got, 59)
	assert.Equal(t, 59*time.Second, got[0])
	assert.Equal(t, time.Second, got[len(got)-1])
}

func TestMachine_PassiveActivity(t *testing.T) {
	t.Run("resets while active", func(t *testing.T) {
		m := newMachine(t)
		m.Activity(at(500))
		assert.Empty(t, m.Advance(at(1339)))
		assert.Equal(t, []Event{Warning{Remaining: 60 * time.Second}}, m.Advance(at(1340)))
	})

	t.Run("does not cancel a shown warning", func(t *testing.T) {
		m := newMachine(t)
		m.Advance(at(840))
		m.Activity(at(850))
		m.Activity(at(899))
		assert.Equal(t, PhaseWarning, m.Phase())
		assert.Equal(t, 1, expiries(m.Advance(at(900))))
	})

	t.Run("after a missed warning point shows the warning", func(t *testing.T) {
		m := newMachine(t)
		events := m.Activity(at(870))
		assert.Equal(t, []Event{Warning{Remaining: 30 * time.Second}}, events)
		assert.Equal(t, t0.Add(900*time.Second), m.Deadline())
	})
}

func TestMachine_ResumeAfterSleep(t *testing.T) {
	m := newMachine(t)
	assert.Equal(t, []Event{Expired{Reason: ReasonIdle}}, m.Advance(at(5000)))

	m = newMachine(t)
	assert.Equal(t, 1, expiries(m.StayLoggedIn(at(901))))
	assert.Equal(t, PhaseExpired, m.Phase())
}

func TestMachine_LogoutNow(t *testing.T) {
	m := newMachine(t)
	m.Advance(at(850))

	assert.Equal(t, []Event{Expired{Reason: ReasonLogout}}, m.LogoutNow(at(851)))
	assert.Empty(t, m.Advance(at(900)))
}
