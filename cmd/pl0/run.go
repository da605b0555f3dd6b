package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pl0/compiler"
	"pl0/vm"
)

type runCmd struct {
	debug bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "execute a PL/0 source file" }
func (*runCmd) Usage() string {
	return `run <file>:
  Execute a PL/0 source file on the stack machine.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.debug, "debug", false, "drop into an interactive inspector at each DEBUG instruction")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 file not provided")
		return subcommands.ExitUsageError
	}

	nodes, ok := parseFile(args[0])
	if !ok {
		return subcommands.ExitFailure
	}

	bc, err := compiler.NewCompiler().Compile(nodes)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	machine := vm.New(os.Stdout)
	if c.debug {
		inspector, err := vm.NewReadlineInspector(os.Stdout)
		if err != nil {
			fmt.Fprintf(os.Stderr, "💥 failed to start debug inspector: %v\n", err)
			return subcommands.ExitFailure
		}
		defer inspector.Close()
		machine.Inspector = inspector
	}

	if err := machine.Run(bc); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
