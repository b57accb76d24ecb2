// Package flagx lets the config file lookup and the server or client flag
// sets each parse os.Args without tripping over the other's flags.
package flagx

import (
	"flag"
	"slices"
	"strings"
)

// FilterArgs returns the subset of args that belongs to the named flags.
// "-a host" and "-a=host" are both accepted; a following token that starts
// with '-' is never taken as the value.
func FilterArgs(args []string, names []string) []string {
	out := []string{}
	for i := 0; i < len(args); i++ {
		name, _, inline := strings.Cut(args[i], "=")
		if !strings.HasPrefix(name, "-") || !slices.Contains(names, name) {
			continue
		}
		out = append(out, args[i])
		if inline {
			continue
		}
		if next := i + 1; next < len(args) && !strings.HasPrefix(args[next], "-") {
			out = append(out, args[next])
			i = next
		}
	}
	return out
}

// ConfigFileFlag returns the -c / -config value, or "" if neither is given.
func ConfigFileFlag(args []string) string {
	var path string
	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "config file (JSON or YAML)")
	fs.StringVar(&path, "c", "", "shorthand for -config")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "-config"}))
	return path
}
