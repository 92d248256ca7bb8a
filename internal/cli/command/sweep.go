package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gravsweep/gravsweep-go/internal/cli/output"
	"github.com/gravsweep/gravsweep-go/internal/server/httpserver/handler"
)

// SweepCommand returns the sweep command.
func SweepCommand() *cli.Command {
	return &cli.Command{
		Name:      "sweep",
		Usage:     "Evaluate a model across its declared parameter range",
		ArgsUsage: "MODEL_ID",
		Flags:     gridFlags(),
		Action:    sweepRun,
	}
}

func sweepRun(c *cli.Context) error {
	modelID := c.Args().First()
	if modelID == "" {
		return fmt.Errorf("model ID required")
	}

	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	req := handler.SweepRequest{
		ModelID: modelID,
		Grid:    gridFromFlags(c),
		Params:  paramsFromFlags(c),
	}

	flags := ParseGlobalFlags(c)

	spinner := output.NewSpinner(os.Stderr, "sweeping "+modelID+"...")
	if flags.Output == string(output.FormatTable) {
		spinner.Start()
	}

	summary, err := client.Sweep(ctx, req)
	if flags.Output == string(output.FormatTable) {
		if err != nil {
			spinner.Fail("sweep failed")
		} else {
			spinner.Success(fmt.Sprintf("swept %s over %d values", summary.ModelID, len(summary.Alphas)))
		}
	}
	if err != nil {
		return err
	}

	switch output.Format(flags.Output) {
	case output.FormatJSON:
		formatter := &output.JSONFormatter{}
		return formatter.Format(os.Stdout, summary)
	case output.FormatYAML:
		formatter := &output.YAMLFormatter{}
		return formatter.Format(os.Stdout, summary)
	default:
		fmt.Printf("\nSweep: %s\n", summary.SweepID)
		fmt.Printf("  Model:   %s\n", summary.ModelID)
		fmt.Printf("  Param:   %s\n", summary.Param)
		fmt.Printf("  Elapsed: %s\n\n", summary.Elapsed)

		param := summary.Param
		if param == "" {
			param = "VALUE"
		}
		table := &output.Table{
			Headers: []string{param, "RUN ID"},
		}
		for i, alpha := range summary.Alphas {
			table.AddRow(formatFloat(alpha), summary.RunIDs[i])
		}
		return table.Render(os.Stdout)
	}
}
