package command

import (
	"github.com/urfave/cli/v2"

	"github.com/gravsweep/gravsweep-go/internal/cli/repl"
)

// ReplCommand returns the interactive shell command.
func ReplCommand() *cli.Command {
	return &cli.Command{
		Name:  "repl",
		Usage: "Interactive shell",
		Action: func(c *cli.Context) error {
			r := repl.New(func(args []string) error {
				// Re-enter the app with the line's arguments so every
				// command and flag works exactly as in one-shot mode.
				return c.App.Run(append([]string{c.App.Name}, args...))
			})
			return r.Run()
		},
	}
}
