package guard

import "sync"

// Gate holds the client-side authentication state and routes rendering
// through Authorize. Protected content is only ever invoked on Admit.
type Gate struct {
	mu        sync.RWMutex
	state     State
	principal *Principal
}

// NewGate starts in StateLoading.
func NewGate() *Gate {
	return &Gate{state: StateLoading}
}

func (g *Gate) SetLoading() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state, g.principal = StateLoading, nil
}

func (g *Gate) SetAuthenticated(p Principal) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state, g.principal = StateAuthenticated, &p
}

func (g *Gate) SetUnauthenticated() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state, g.principal = StateUnauthenticated, nil
}

// Principal returns a copy of the current principal, or nil.
func (g *Gate) Principal() *Principal {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.principal == nil {
		return nil
	}
	p := *g.principal
	return &p
}

func (g *Gate) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Views are the callbacks Render chooses from. Nil callbacks are skipped.
type Views struct {
	Protected func()
	Login     func()
	NotFound  func()
	Loading   func()
}

// Render evaluates the gate for required and calls the matching view.
func (g *Gate) Render(required Role, v Views) Decision {
	g.mu.RLock()
	d := Authorize(g.state, g.principal, required)
	g.mu.RUnlock()

	var fn func()
	switch d {
	case Admit:
		fn = v.Protected
	case Unauthenticated:
		fn = v.Login
	case NotFound:
		fn = v.NotFound
	case Pending:
		fn = v.Loading
	}
	if fn != nil {
		fn()
	}
	return d
}
