package repl

import "strings"

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a new Completer.
func NewCompleter() *Completer {
	return &Completer{
		commands: []string{
			"models", "models list", "models info",
			"eval",
			"sweep",
			"runs", "runs list", "runs get", "runs export",
			"system", "system health", "system version",
			"help", "exit", "quit",
		},
	}
}

// Commands returns the known command lines.
func (c *Completer) Commands() []string {
	return c.commands
}

// Complete returns completion suggestions for the given prefix.
func (c *Completer) Complete(prefix string) []string {
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
