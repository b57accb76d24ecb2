package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/eterbox/internal/client/client"
	"github.com/dmitrijs2005/eterbox/internal/client/inactivity"
	"github.com/dmitrijs2005/eterbox/internal/client/services"
	"github.com/dmitrijs2005/eterbox/internal/common"
	"github.com/dmitrijs2005/eterbox/internal/guard"
)

// openSession publishes the logged-in principal to the gate and arms the
// inactivity monitor.
func (a *App) openSession() error {
	s := a.auth.Session()
	if s == nil {
		return services.ErrNotLoggedIn
	}

	m, err := inactivity.NewMonitor(a.config.InactivityTimeout, a.config.InactivityWarning, a.clock, inactivity.Hooks{
		Warning:   a.onWarning,
		Countdown: a.onCountdown,
		Revoke:    a.onRevoke,
		Redirect:  a.onRedirect,
	}, a.log)
	if err != nil {
		return err
	}

	a.mu.Lock()
	old := a.monitor
	a.monitor = m
	a.mu.Unlock()
	if old != nil {
		old.Stop()
	}

	a.gate.SetAuthenticated(guard.Principal{
		UserID:       s.UserID,
		Role:         guard.Role(s.Role),
		SecondFactor: s.SecondFactor,
	})
	m.Start()
	return nil
}

func (a *App) currentMonitor() *inactivity.Monitor {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.monitor
}

func (a *App) stopMonitor() {
	a.mu.Lock()
	m := a.monitor
	a.monitor = nil
	a.mu.Unlock()
	if m != nil {
		m.Stop()
	}
}

// touch records user activity for the running monitor, if any.
func (a *App) touch() {
	if m := a.currentMonitor(); m != nil {
		m.Activity()
	}
}

func (a *App) onWarning(remaining time.Duration) {
	fmt.Fprintf(a.out, "\nSession expires in %s due to inactivity. Type 'stay' to stay logged in.\n", remaining.Round(time.Second))
}

func (a *App) onCountdown(remaining time.Duration) {
	secs := int(remaining.Round(time.Second) / time.Second)
	if secs%10 == 0 || secs <= 5 {
		fmt.Fprintf(a.out, "\nLogging out in %ds...\n", secs)
	}
}

// onRevoke ends the session on the server. Local key material is dropped
// even when the server cannot be reached.
func (a *App) onRevoke(reason inactivity.Reason) {
	ctx, cancel := a.requestContext(context.Background())
	defer cancel()
	if err := a.auth.Logout(ctx); err != nil {
		a.log.Warn(ctx, "session revoke failed", "reason", reason.String(), "error", err)
	}
}

func (a *App) onRedirect(reason inactivity.Reason) {
	a.mu.Lock()
	a.monitor = nil
	a.mu.Unlock()
	a.gate.SetUnauthenticated()

	if reason == inactivity.ReasonIdle {
		fmt.Fprintln(a.out, "\nLogged out after inactivity. Type 'login' to sign in again.")
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}

// Stay answers the inactivity warning.
func (a *App) Stay(ctx context.Context, _ []string) error {
	if m := a.currentMonitor(); m != nil {
		m.StayLoggedIn()
	}
	fmt.Fprintln(a.out, "Session extended.")
	return nil
}

// Logout goes through the monitor so the revoke-then-redirect order is the
// same as for an idle timeout.
func (a *App) Logout(ctx context.Context, _ []string) error {
	if m := a.currentMonitor(); m != nil {
		m.LogoutNow()
		return nil
	}
	a.onRevoke(inactivity.ReasonLogout)
	a.onRedirect(inactivity.ReasonLogout)
	return nil
}

func (a *App) LogoutAll(ctx context.Context, _ []string) error {
	rctx, cancel := a.requestContext(ctx)
	defer cancel()
	n, err := a.auth.LogoutAll(rctx)
	a.stopMonitor()
	a.gate.SetUnauthenticated()
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Revoked %d session(s). Logged out everywhere.\n", n)
	return nil
}

// describe turns service errors into user-facing text. Unknown errors are
// shown as is.
func describe(err error) string {
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrUnauthorized):
		return "invalid credentials or session expired"
	case errors.Is(err, client.ErrTooManyAttempts):
		return client.ErrTooManyAttempts.Error()
	case errors.Is(err, client.ErrVaultChanged):
		return client.ErrVaultChanged.Error()
	case errors.Is(err, client.ErrNotFound):
		return "not found"
	case errors.Is(err, client.ErrAlreadyExists):
		return "already exists"
	case errors.Is(err, client.ErrInvalidArgument):
		return "rejected by the server, check your input"
	case errors.Is(err, common.ErrDecryptionFailed):
		return "item could not be decrypted"
	default:
		return err.Error()
	}
}
