package command

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gravsweep/gravsweep-go/internal/cli/output"
	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/storage"
	"github.com/gravsweep/gravsweep-go/pkg/crypto/sealbox"
)

// RunsCommand returns the runs command group.
func RunsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "Inspect and export persisted evaluation runs",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List persisted runs, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Value:   50,
						Usage:   "Maximum number of runs to list",
					},
				},
				Action: runsList,
			},
			{
				Name:      "get",
				Usage:     "Show a single run",
				ArgsUsage: "RUN_ID",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "full",
						Usage: "Print the full component table",
					},
				},
				Action: runsGet,
			},
			{
				Name:  "export",
				Usage: "Export runs as a passphrase-sealed archive file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "output",
						Aliases:  []string{"f"},
						Usage:    "Archive file to write",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "passphrase",
						Aliases:  []string{"p"},
						Usage:    "Passphrase sealing the archive",
						Required: true,
					},
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"l"},
						Value:   0,
						Usage:   "Maximum number of runs to export (0 = server default)",
					},
				},
				Action: runsExport,
			},
		},
	}
}

func runsList(c *cli.Context) error {
	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := client.ListRuns(ctx, c.Int("limit"))
	if err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON:
		formatter := &output.JSONFormatter{}
		return formatter.Format(os.Stdout, resp)
	case output.FormatYAML:
		formatter := &output.YAMLFormatter{}
		return formatter.Format(os.Stdout, resp)
	default:
		table := &output.Table{
			Headers: []string{"ID", "MODEL", "ALPHA", "POINTS", "CACHED", "CREATED"},
		}
		for _, run := range resp.Items {
			id := run.ID
			if !flags.Wide {
				id = truncateID(id)
			}
			table.AddRow(
				id,
				run.ModelID,
				formatFloat(run.Alpha),
				fmt.Sprintf("%d", run.Points),
				fmt.Sprintf("%t", run.FromCache),
				run.CreatedAt.Format(time.RFC3339),
			)
		}
		if err := table.Render(os.Stdout); err != nil {
			return err
		}
		fmt.Printf("\nTotal: %d runs\n", resp.Total)
		return nil
	}
}

func runsGet(c *cli.Context) error {
	runID := c.Args().First()
	if runID == "" {
		return fmt.Errorf("run ID required")
	}

	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	run, err := client.GetRun(ctx, runID)
	if err != nil {
		return err
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON:
		formatter := &output.JSONFormatter{}
		return formatter.Format(os.Stdout, run)
	case output.FormatYAML:
		formatter := &output.YAMLFormatter{}
		return formatter.Format(os.Stdout, run)
	default:
		printRunHeader(run)
		if run.SweepID != "" {
			fmt.Printf("  Sweep:      %s\n", run.SweepID)
		}
		if c.Bool("full") {
			return printComponents(run)
		}
		return nil
	}
}

// runsExport fetches runs from the server and writes them as a sealed
// archive. Sealing happens client side, so the passphrase never leaves
// the machine.
func runsExport(c *cli.Context) error {
	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	resp, err := client.ListRuns(ctx, c.Int("limit"))
	if err != nil {
		return err
	}
	if len(resp.Items) == 0 {
		return fmt.Errorf("no runs to export")
	}

	bar := output.NewProgressBar(os.Stderr, "fetching runs", "runs")
	bar.SetTotal(len(resp.Items))

	runs := make([]*eval.Run, 0, len(resp.Items))
	for _, item := range resp.Items {
		run, err := client.GetRun(ctx, item.ID)
		if err != nil {
			return fmt.Errorf("fetch run %s: %w", item.ID, err)
		}
		runs = append(runs, run)
		bar.Increment()
	}
	bar.Finish()

	archive := storage.Archive{
		Version:   storage.ArchiveVersion,
		CreatedAt: time.Now().UTC(),
		Runs:      runs,
	}
	plaintext, err := json.Marshal(archive)
	if err != nil {
		return fmt.Errorf("encode archive: %w", err)
	}

	sealed, err := sealbox.Seal([]byte(c.String("passphrase")), plaintext, []byte(storage.ArchiveVersion))
	if err != nil {
		return fmt.Errorf("seal archive: %w", err)
	}

	path := c.String("output")
	if err := os.WriteFile(path, sealed, 0600); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}

	fmt.Printf("Exported %d runs to %s (%d bytes sealed)\n", len(runs), path, len(sealed))
	return nil
}
