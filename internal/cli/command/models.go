package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gravsweep/gravsweep-go/internal/cli/output"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
)

// ModelsCommand returns the models subcommand group.
func ModelsCommand() *cli.Command {
	return &cli.Command{
		Name:    "models",
		Aliases: []string{"model"},
		Usage:   "Inspect registered metric models",
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List registered models",
				Action: modelsList,
			},
			{
				Name:      "info",
				Usage:     "Show model details",
				ArgsUsage: "MODEL_ID",
				Action:    modelsInfo,
			},
		},
	}
}

func modelsList(c *cli.Context) error {
	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	list, err := client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	flags := ParseGlobalFlags(c)
	switch output.Format(flags.Output) {
	case output.FormatJSON:
		formatter := &output.JSONFormatter{}
		return formatter.Format(os.Stdout, list.Models)
	case output.FormatYAML:
		formatter := &output.YAMLFormatter{}
		return formatter.Format(os.Stdout, list.Models)
	default:
		table := &output.Table{
			Headers: []string{"ID", "NAME", "DEFAULT ALPHA", "CACHEABLE", "SWEEP"},
		}
		for _, info := range list.Models {
			table.AddRow(
				info.ID,
				info.Name,
				fmt.Sprintf("%g", info.DefaultAlpha),
				fmt.Sprintf("%t", info.Cacheable),
				formatSweep(info.Sweep),
			)
		}
		if err := table.Render(os.Stdout); err != nil {
			return err
		}
		fmt.Printf("\nTotal: %d models\n", list.Total)
		return nil
	}
}

func modelsInfo(c *cli.Context) error {
	modelID := c.Args().First()
	if modelID == "" {
		return fmt.Errorf("model ID required")
	}

	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	info, err := client.GetModel(ctx, modelID)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
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
		fmt.Printf("Model: %s\n", info.Name)
		fmt.Printf("  ID:            %s\n", info.ID)
		fmt.Printf("  Default alpha: %g\n", info.DefaultAlpha)
		fmt.Printf("  Cacheable:     %t\n", info.Cacheable)
		fmt.Printf("  Sweep:         %s\n", formatSweep(info.Sweep))
		return nil
	}
}

// formatSweep renders a sweep declaration for display.
func formatSweep(s *metric.SweepRange) string {
	if s == nil {
		return "-"
	}
	return fmt.Sprintf("%s: [%g, %g] / %d steps", s.Param, s.Min, s.Max, s.Steps)
}
