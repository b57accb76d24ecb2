package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/eterbox/internal/guard"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// command is one REPL verb. role is what the gate requires before run is
// called; guard.RoleNone commands work without a session.
type command struct {
	name  string
	usage string
	role  guard.Role
	run   func(ctx context.Context, args []string) error
}

// runREPL reads commands until EOF or "exit". Each known command counts as
// activity (touch) and is routed through gate: without a session the user
// is sent to login, without the role the command does not exist.
//
// Errors returned by handlers are printed and the loop carries on.
func runREPL(ctx context.Context, cmds []command, gate *guard.Gate, touch func(), statusFn func() string, scanner *bufio.Scanner) {
	byName := make(map[string]command, len(cmds))
	for _, c := range cmds {
		byName[c.name] = c
	}

	for {
		printlnFn(fmt.Sprintf("eterbox%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		case "help":
			printlnFn(helpText(cmds, gate))
			continue
		}

		c, ok := byName[name]
		if !ok {
			printlnFn("Unknown command:", name)
			continue
		}
		if touch != nil {
			touch()
		}
		gate.Render(c.role, guard.Views{
			Protected: func() {
				if err := c.run(ctx, args); err != nil {
					printlnFn("Error:", describe(err))
				}
			},
			Login:    func() { printlnFn("Please log in first (type 'login').") },
			NotFound: func() { printlnFn("Unknown command:", name) },
			Loading:  func() { printlnFn("Still connecting, try again in a moment.") },
		})
	}
}

// helpText lists only the commands the gate would admit right now.
func helpText(cmds []command, gate *guard.Gate) string {
	var b strings.Builder
	b.WriteString("Available commands:")
	for _, c := range cmds {
		if guard.Authorize(gate.State(), gate.Principal(), c.role) != guard.Admit {
			continue
		}
		b.WriteString("\n  ")
		b.WriteString(c.name)
		if c.usage != "" {
			b.WriteString(" ")
			b.WriteString(c.usage)
		}
	}
	b.WriteString("\n  help\n  exit")
	return b.String()
}
