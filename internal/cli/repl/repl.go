package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Runner executes one parsed command line.
type Runner func(args []string) error

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	completer *Completer
	history   *History
	runner    Runner
}

// New creates a new REPL instance dispatching to runner.
func New(runner Runner) *REPL {
	return &REPL{
		input:     os.Stdin,
		output:    os.Stdout,
		completer: NewCompleter(),
		history:   NewHistory(),
		runner:    runner,
	}
}

// SetIO overrides input and output, mainly for tests.
func (r *REPL) SetIO(in io.Reader, out io.Writer) {
	r.input = in
	r.output = out
}

// Run starts the REPL loop. It returns when the input ends or the
// user types exit.
func (r *REPL) Run() error {
	r.history.Load()
	defer r.history.Save()

	reader := bufio.NewReader(r.input)

	for {
		fmt.Fprint(r.output, "gravsweep> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		r.history.Add(line)

		switch line {
		case "exit", "quit":
			return nil
		case "help", "?":
			r.printHelp()
			continue
		}

		if err := r.execute(line); err != nil {
			fmt.Fprintf(r.output, "Error: %v\n", err)
		}
	}
}

func (r *REPL) execute(line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}
	return r.runner(args)
}

func (r *REPL) printHelp() {
	fmt.Fprintln(r.output, "Commands:")
	for _, cmd := range r.completer.Commands() {
		fmt.Fprintf(r.output, "  %s\n", cmd)
	}
	fmt.Fprintln(r.output, "  help")
	fmt.Fprintln(r.output, "  exit")
}
