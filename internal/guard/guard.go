// Package guard decides whether a caller may reach a protected resource.
// The decision is a pure function of the authentication state, the caller's
// claims and the required role, so the gRPC interceptor and the CLI gate
// share exactly the same rules.
package guard

// Role is an account role. RoleAdmin satisfies RoleUser requirements.
type Role string

const (
	// RoleNone marks a public resource.
	RoleNone  Role = ""
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is an assignable account role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) satisfies(required Role) bool {
	switch required {
	case RoleNone:
		return true
	case RoleUser:
		return r == RoleUser || r == RoleAdmin
	case RoleAdmin:
		return r == RoleAdmin
	default:
		return false
	}
}

// State is where session resolution stands for the caller.
type State int

const (
	// StateLoading means the session is still being resolved; neither the
	// resource nor a denial may be shown.
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Principal is the verified identity behind a session.
type Principal struct {
	UserID       string
	SessionID    string
	Role         Role
	SecondFactor bool
}

// Decision is the outcome of Authorize.
type Decision int

const (
	// Pending: render a neutral placeholder and wait.
	Pending Decision = iota
	// Unauthenticated: send the caller to the login entry point.
	Unauthenticated
	// NotFound: the caller lacks the role; answer as if the resource did not
	// exist so its presence is not disclosed.
	NotFound
	Admit
)

func (d Decision) String() string {
	switch d {
	case Pending:
		return "pending"
	case Unauthenticated:
		return "unauthenticated"
	case NotFound:
		return "not_found"
	case Admit:
		return "admit"
	default:
		return "unknown"
	}
}

// Authorize maps (state, principal, required role) to a Decision. A
// resource that needs more than RoleUser is NotFound to anyone who does not
// hold that role, signed in or not, so a login prompt never confirms it
// exists.
func Authorize(state State, p *Principal, required Role) Decision {
	if state == StateLoading {
		return Pending
	}
	if required == RoleNone {
		return Admit
	}
	if required != RoleUser && (state != StateAuthenticated || p == nil || p.UserID == "") {
		return NotFound
	}
	switch state {
	case StateAuthenticated:
		if p == nil || p.UserID == "" {
			return Unauthenticated
		}
		if !p.Role.satisfies(required) {
			return NotFound
		}
		return Admit
	default:
		return Unauthenticated
	}
}
