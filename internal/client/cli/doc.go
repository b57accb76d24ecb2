// Package cli is the interactive EterBox client.
//
// It wires configuration, the local metadata store and the API services into
// a REPL. Every command declares the role it needs and is routed through a
// guard.Gate, so commands for a missing session or a missing role behave the
// same way the server does: the first asks for a login, the second is
// reported as unknown.
//
// While a session is open an inactivity monitor runs in the background. It
// warns before the idle timeout, counts down, and on expiry revokes the
// session on the server before dropping back to the login prompt. Any
// command counts as activity; "stay" extends the session explicitly.
package cli
