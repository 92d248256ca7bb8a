package repl

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func newTestREPL(t *testing.T, input string, runner Runner) (*REPL, *bytes.Buffer) {
	t.Helper()

	r := New(runner)
	out := &bytes.Buffer{}
	r.SetIO(strings.NewReader(input), out)
	r.history.file = filepath.Join(t.TempDir(), "history")
	return r, out
}

func TestREPL_DispatchesCommands(t *testing.T) {
	var got [][]string
	runner := func(args []string) error {
		got = append(got, args)
		return nil
	}

	r, _ := newTestREPL(t, "models list\neval schwarzschild --points 10\nexit\n", runner)
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("runner called %d times, want 2", len(got))
	}
	if got[0][0] != "models" || got[0][1] != "list" {
		t.Errorf("first command = %v", got[0])
	}
	if len(got[1]) != 4 || got[1][0] != "eval" {
		t.Errorf("second command = %v", got[1])
	}
}

func TestREPL_ExitOnEOF(t *testing.T) {
	r, _ := newTestREPL(t, "", func(args []string) error { return nil })
	if err := r.Run(); err != nil {
		t.Errorf("Run on EOF: %v", err)
	}
}

func TestREPL_SkipsEmptyLines(t *testing.T) {
	calls := 0
	r, _ := newTestREPL(t, "\n   \nquit\n", func(args []string) error {
		calls++
		return nil
	})
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if calls != 0 {
		t.Errorf("runner called %d times for blank input", calls)
	}
}

func TestREPL_PrintsErrors(t *testing.T) {
	r, out := newTestREPL(t, "models list\nexit\n", func(args []string) error {
		return errors.New("server unreachable")
	})
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Error: server unreachable") {
		t.Errorf("output missing error, got %q", out.String())
	}
}

func TestREPL_Help(t *testing.T) {
	r, out := newTestREPL(t, "help\nexit\n", func(args []string) error {
		t.Error("help should not reach the runner")
		return nil
	})
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "models") {
		t.Errorf("help output missing commands, got %q", out.String())
	}
}

func TestREPL_RecordsHistory(t *testing.T) {
	r, _ := newTestREPL(t, "models list\nsystem health\nexit\n", func(args []string) error { return nil })
	if err := r.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// exit is recorded too
	if r.history.Get(0) != "exit" {
		t.Errorf("history[0] = %q", r.history.Get(0))
	}
	if r.history.Get(2) != "models list" {
		t.Errorf("history[2] = %q", r.history.Get(2))
	}
}
