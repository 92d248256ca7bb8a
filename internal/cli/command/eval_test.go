package command

import (
	"flag"
	"testing"

	"github.com/urfave/cli/v2"

	"github.com/gravsweep/gravsweep-go/pkg/grid"
)

func TestEvalCommand_Structure(t *testing.T) {
	cmd := EvalCommand()
	if cmd == nil {
		t.Fatal("EvalCommand returned nil")
	}

	if cmd.Name != "eval" {
		t.Errorf("Name = %q, want %q", cmd.Name, "eval")
	}
	if cmd.Action == nil {
		t.Error("eval command should have an action")
	}

	flagNames := make(map[string]bool)
	for _, flag := range cmd.Flags {
		flagNames[flag.Names()[0]] = true
	}

	requiredFlags := []string{"alpha", "full", "r-min", "r-max", "points", "spacing", "mass", "light-speed", "gravity"}
	for _, name := range requiredFlags {
		if !flagNames[name] {
			t.Errorf("missing flag: %s", name)
		}
	}
}

func TestSweepCommand_Structure(t *testing.T) {
	cmd := SweepCommand()
	if cmd == nil {
		t.Fatal("SweepCommand returned nil")
	}

	if cmd.Name != "sweep" {
		t.Errorf("Name = %q, want %q", cmd.Name, "sweep")
	}
	if cmd.Action == nil {
		t.Error("sweep command should have an action")
	}

	flagNames := make(map[string]bool)
	for _, flag := range cmd.Flags {
		flagNames[flag.Names()[0]] = true
	}

	for _, name := range []string{"r-min", "r-max", "points", "spacing"} {
		if !flagNames[name] {
			t.Errorf("missing flag: %s", name)
		}
	}
}

func TestEvalRun_MissingModelID(t *testing.T) {
	server := newMockServer()
	defer server.Close()

	ctx := testContext(server)
	if err := evalRun(ctx); err == nil {
		t.Error("expected error when model ID is missing")
	}

	if err := sweepRun(ctx); err == nil {
		t.Error("expected error when model ID is missing")
	}
}

func TestGridDefaults(t *testing.T) {
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	for _, f := range gridFlags() {
		f.Apply(set)
	}
	set.Parse(nil)
	ctx := cli.NewContext(nil, set, nil)

	spec := gridFromFlags(ctx)
	if spec.Min != 2.5 || spec.Max != 100 || spec.Points != 100 {
		t.Errorf("unexpected grid defaults: %+v", spec)
	}
	if spec.Spacing != grid.SpacingLinear {
		t.Errorf("Spacing = %q, want %q", spec.Spacing, grid.SpacingLinear)
	}

	params := paramsFromFlags(ctx)
	if params.Mass != 1 || params.LightSpeed != 1 || params.Gravity != 1 {
		t.Errorf("unexpected param defaults: %+v", params)
	}
}
