package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pl0/transpiler"
)

type transpileCmd struct {
	outPath string
}

func (*transpileCmd) Name() string     { return "transpile" }
func (*transpileCmd) Synopsis() string { return "translate a PL/0 source file to Python 3" }
func (*transpileCmd) Usage() string {
	return `transpile <file>:
  Translate a PL/0 source file to equivalent Python 3 source.
`
}

func (c *transpileCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outPath, "o", "", "write the Python source to this file instead of stdout")
}

func (c *transpileCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 file not provided")
		return subcommands.ExitUsageError
	}

	nodes, ok := parseFile(args[0])
	if !ok {
		return subcommands.ExitFailure
	}

	source := transpiler.Transpile(nodes)
	if c.outPath != "" {
		if err := os.WriteFile(c.outPath, []byte(source), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "💥 failed to write Python source: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	fmt.Fprint(os.Stdout, source)
	return subcommands.ExitSuccess
}
