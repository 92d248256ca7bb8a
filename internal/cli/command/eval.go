package command

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/gravsweep/gravsweep-go/internal/cli/output"
	"github.com/gravsweep/gravsweep-go/internal/core/eval"
	"github.com/gravsweep/gravsweep-go/internal/core/metric"
	"github.com/gravsweep/gravsweep-go/internal/server/httpserver/handler"
	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

// gridFlags returns the radial-grid and physical-parameter flags shared
// by eval and sweep.
func gridFlags() []cli.Flag {
	return []cli.Flag{
		&cli.Float64Flag{
			Name:  "r-min",
			Value: 2.5,
			Usage: "Minimum radial coordinate",
		},
		&cli.Float64Flag{
			Name:  "r-max",
			Value: 100,
			Usage: "Maximum radial coordinate",
		},
		&cli.IntFlag{
			Name:    "points",
			Aliases: []string{"n"},
			Value:   100,
			Usage:   "Number of grid points",
		},
		&cli.StringFlag{
			Name:  "spacing",
			Value: string(grid.SpacingLinear),
			Usage: "Grid spacing: linear, log",
		},
		&cli.Float64Flag{
			Name:    "mass",
			Aliases: []string{"M"},
			Value:   1,
			Usage:   "Central mass",
		},
		&cli.Float64Flag{
			Name:  "light-speed",
			Value: 1,
			Usage: "Speed of light",
		},
		&cli.Float64Flag{
			Name:  "gravity",
			Value: 1,
			Usage: "Gravitational constant",
		},
	}
}

// gridFromFlags builds the grid spec from CLI flags.
func gridFromFlags(c *cli.Context) grid.Spec {
	return grid.Spec{
		Min:     c.Float64("r-min"),
		Max:     c.Float64("r-max"),
		Points:  c.Int("points"),
		Spacing: grid.Spacing(c.String("spacing")),
	}
}

// paramsFromFlags builds the physical parameters from CLI flags.
func paramsFromFlags(c *cli.Context) metric.Params {
	return metric.Params{
		Mass:       c.Float64("mass"),
		LightSpeed: c.Float64("light-speed"),
		Gravity:    c.Float64("gravity"),
	}
}

// EvalCommand returns the eval command.
func EvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Evaluate a metric model on a radial grid",
		ArgsUsage: "MODEL_ID",
		Flags: append([]cli.Flag{
			&cli.Float64Flag{
				Name:    "alpha",
				Aliases: []string{"a"},
				Usage:   "Free-parameter override (default: model's default)",
			},
			&cli.BoolFlag{
				Name:  "full",
				Usage: "Print the full component table",
			},
		}, gridFlags()...),
		Action: evalRun,
	}
}

func evalRun(c *cli.Context) error {
	modelID := c.Args().First()
	if modelID == "" {
		return fmt.Errorf("model ID required")
	}

	client, err := Client(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	req := handler.EvaluateRequest{
		ModelID: modelID,
		Grid:    gridFromFlags(c),
		Params:  paramsFromFlags(c),
	}
	if c.IsSet("alpha") {
		alpha := c.Float64("alpha")
		req.Alpha = &alpha
	}

	flags := ParseGlobalFlags(c)

	spinner := output.NewSpinner(os.Stderr, "evaluating "+modelID+"...")
	if flags.Output == string(output.FormatTable) {
		spinner.Start()
	}

	run, err := client.Evaluate(ctx, req)
	if flags.Output == string(output.FormatTable) {
		if err != nil {
			spinner.Fail("evaluation failed")
		} else {
			spinner.Success(fmt.Sprintf("evaluated %s (%d points)", run.ModelName, run.Components.Len()))
		}
	}
	if err != nil {
		return err
	}

	switch output.Format(flags.Output) {
	case output.FormatJSON:
		formatter := &output.JSONFormatter{}
		return formatter.Format(os.Stdout, run)
	case output.FormatYAML:
		formatter := &output.YAMLFormatter{}
		return formatter.Format(os.Stdout, run)
	default:
		printRunHeader(run)
		if c.Bool("full") {
			return printComponents(run)
		}
		return nil
	}
}

// printRunHeader prints run metadata.
func printRunHeader(run *eval.Run) {
	fmt.Printf("\nRun: %s\n", run.ID)
	fmt.Printf("  Model:      %s\n", run.ModelName)
	fmt.Printf("  Alpha:      %g\n", run.Alpha)
	fmt.Printf("  Grid:       [%g, %g] / %d points\n", run.Grid.Min, run.Grid.Max, run.Grid.Points)
	fmt.Printf("  From cache: %t\n", run.FromCache)
	fmt.Printf("  Created:    %s\n", run.CreatedAt.Format(time.RFC3339))
}

// printComponents prints the metric components as a table, one grid
// point per row.
func printComponents(run *eval.Run) error {
	r, err := run.Grid.Build()
	if err != nil {
		return err
	}

	table := &output.Table{
		Headers: []string{"R", "G_TT", "G_RR", "G_THTH", "G_TPHI"},
	}
	for i := range r {
		table.AddRow(
			formatFloat(r[i]),
			formatFloat(run.Components.GTT[i]),
			formatFloat(run.Components.GRR[i]),
			formatFloat(run.Components.GThTh[i]),
			formatFloat(run.Components.GTPhi[i]),
		)
	}
	fmt.Println()
	return table.Render(os.Stdout)
}

// formatFloat renders a component value with full precision.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}
