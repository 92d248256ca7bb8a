package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	cliconfig "github.com/gravsweep/gravsweep-go/internal/cli/config"
	"github.com/gravsweep/gravsweep-go/internal/cli/connection"
	"github.com/gravsweep/gravsweep-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	app := &cli.App{
		Name:    "gravsweep-cli",
		Usage:   "GravSweep metric-model evaluation tool",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ModelsCommand(),
			EvalCommand(),
			SweepCommand(),
			RunsCommand(),
			SystemCommand(),
			ReplCommand(),
		},
	}

	return app
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "server",
			Aliases: []string{"s"},
			Usage:   "GravSweep server address (e.g., localhost:7080)",
			EnvVars: []string{"GRAVSWEEP_SERVER"},
			Value:   "localhost:7080",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
			Value:   "table",
		},
		&cli.BoolFlag{
			Name:    "wide",
			Aliases: []string{"w"},
			Usage:   "Show wide output (more columns)",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"V"},
			Usage:   "Enable verbose output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	// Server connection
	Server string

	// Output format
	Output string // table, json, yaml
	Wide   bool

	// Other
	Verbose bool
}

// ParseGlobalFlags extracts global flags from context, falling back to
// the CLI config file for flags that were not set.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	flags := &GlobalFlags{
		Server:  c.String("server"),
		Output:  c.String("output"),
		Wide:    c.Bool("wide"),
		Verbose: c.Bool("verbose"),
	}

	cfg, err := cliconfig.Load("")
	if err != nil {
		return flags
	}
	if !c.IsSet("server") && cfg.DefaultServer != "" {
		flags.Server = cfg.DefaultServer
	}
	if !c.IsSet("output") && cfg.DefaultOutput != "" {
		flags.Output = cfg.DefaultOutput
	}
	return flags
}

// Client builds an API client from the global flags and the CLI config
// file. Named servers from the config resolve to their addresses.
func Client(c *cli.Context) (*connection.Client, error) {
	flags := ParseGlobalFlags(c)

	server := flags.Server
	var opts []connection.Option

	cfg, err := cliconfig.Load("")
	if err == nil {
		server = cfg.Resolve(server)
		if cfg.CAFile != "" {
			opts = append(opts, connection.WithCAFile(cfg.CAFile))
		}
	}

	return connection.NewClient(server, opts...)
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}

// truncateID truncates long IDs for display.
func truncateID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:13] + "..."
}
