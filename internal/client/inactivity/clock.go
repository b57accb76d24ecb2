package inactivity

import "time"

// Clock is the time source a Monitor runs on.
type Clock interface {
	Now() time.Time
	NewTicker(d time.Duration) Ticker
}

type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock uses the wall clock. Now strips the monotonic reading so
// deadlines follow wall time across suspend and resume.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().Round(0) }

func (SystemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (s *systemTicker) C() <-chan time.Time { return s.t.C }
func (s *systemTicker) Stop()               { s.t.Stop() }
