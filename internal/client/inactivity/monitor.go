package inactivity

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/logging"
)

const tickInterval = time.Second

// Hooks are called from whichever goroutine caused the transition. On
// expiry Revoke runs to completion before Redirect.
type Hooks struct {
	Warning   func(remaining time.Duration)
	Countdown func(remaining time.Duration)
	Revoke    func(reason Reason)
	Redirect  func(reason Reason)
}

type Monitor struct {
	mu      sync.Mutex
	machine *Machine
	clock   Clock
	hooks   Hooks
	log     logging.Logger

	ticker  Ticker
	stop    chan struct{}
	stopped bool
}

func NewMonitor(timeout, warning time.Duration, clock Clock, hooks Hooks, l logging.Logger) (*Monitor, error) {
	m, err := NewMachine(timeout, warning, clock.Now())
	if err != nil {
		return nil, err
	}
	return &Monitor{
		machine: m,
		clock:   clock,
		hooks:   hooks,
		log:     l.With("module", "inactivity"),
		stop:    make(chan struct{}),
	}, nil
}

// Start ticks once per second until Stop or expiry.
func (mo *Monitor) Start() {
	mo.mu.Lock()
	if mo.stopped || mo.ticker != nil {
		mo.mu.Unlock()
		return
	}
	mo.ticker = mo.clock.NewTicker(tickInterval)
	ticks := mo.ticker.C()
	mo.mu.Unlock()

	go func() {
		for {
			select {
			case <-mo.stop:
				return
			case <-ticks:
				if mo.Tick() {
					return
				}
			}
		}
	}()
}

// Stop cancels the ticker. Hooks never fire afterwards. It is safe to call
// from a hook.
func (mo *Monitor) Stop() {
	mo.mu.Lock()
	defer mo.mu.Unlock()
	if mo.stopped {
		return
	}
	mo.stopped = true
	close(mo.stop)
	if mo.ticker != nil {
		mo.ticker.Stop()
	}
}

func (mo *Monitor) Phase() Phase {
	mo.mu.Lock()
	defer mo.mu.Unlock()
	return mo.machine.Phase()
}

// Tick advances the machine to the clock's current time. It reports whether
// the session is over.
func (mo *Monitor) Tick() bool {
	return mo.apply(func(m *Machine, now time.Time) []Event { return m.Advance(now) })
}

func (mo *Monitor) Activity() {
	mo.apply(func(m *Machine, now time.Time) []Event { return m.Activity(now) })
}

func (mo *Monitor) StayLoggedIn() {
	mo.apply(func(m *Machine, now time.Time) []Event { return m.StayLoggedIn(now) })
}

func (mo *Monitor) LogoutNow() {
	mo.apply(func(m *Machine, now time.Time) []Event { return m.LogoutNow(now) })
}

func (mo *Monitor) apply(step func(*Machine, time.Time) []Event) bool {
	mo.mu.Lock()
	if mo.stopped {
		mo.mu.Unlock()
		return true
	}
	events := step(mo.machine, mo.clock.Now())
	mo.mu.Unlock()

	done := false
	for _, e := range events {
		if _, ok := e.(Expired); ok {
			done = true
		}
		mo.dispatch(e)
	}
	if done {
		mo.Stop()
	}
	return done
}

func (mo *Monitor) dispatch(e Event) {
	switch ev := e.(type) {
	case Warning:
		if mo.hooks.Warning != nil {
			mo.hooks.Warning(ev.Remaining)
		}
	case Countdown:
		if mo.hooks.Countdown != nil {
			mo.hooks.Countdown(ev.Remaining)
		}
	case Expired:
		mo.log.Info(context.Background(), "session ended", "reason", ev.Reason.String())
		if mo.hooks.Revoke != nil {
			mo.hooks.Revoke(ev.Reason)
		}
		if mo.hooks.Redirect != nil {
			mo.hooks.Redirect(ev.Reason)
		}
	}
}
