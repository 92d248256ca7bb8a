package command

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gravsweep/gravsweep-go/internal/cli/output"
	"github.com/gravsweep/gravsweep-go/internal/infra/buildinfo"
)

// SystemCommand returns the system command group.
func SystemCommand() *cli.Command {
	return &cli.Command{
		Name:  "system",
		Usage: "Server health and client build information",
		Subcommands: []*cli.Command{
			{
				Name:   "health",
				Usage:  "Check server health",
				Action: systemHealth,
			},
			{
				Name:   "version",
				Usage:  "Show client build information",
				Action: systemVersion,
			},
		},
	}
}

func systemHealth(c *cli.Context) error {
	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	err = client.Health(ctx)
	elapsed := time.Since(start)

	if err != nil {
		fmt.Printf("✗ %s unreachable: %v\n", client.BaseURL(), err)
		return err
	}

	fmt.Printf("✓ %s healthy (%s)\n", client.BaseURL(), elapsed.Round(time.Millisecond))
	return nil
}

func systemVersion(c *cli.Context) error {
	info := buildinfo.Get()
	if info.GoVersion == "unknown" {
		info.GoVersion = runtime.Version()
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON:
		formatter := &output.JSONFormatter{}
		return formatter.Format(os.Stdout, info)
	case output.FormatYAML:
		formatter := &output.YAMLFormatter{}
		return formatter.Format(os.Stdout, info)
	default:
		fmt.Printf("gravsweep-cli %s\n", info.Version)
		fmt.Printf("  Commit:     %s\n", info.Commit)
		fmt.Printf("  Built:      %s\n", info.BuildTime)
		fmt.Printf("  Go version: %s\n", info.GoVersion)
		return nil
	}
}
