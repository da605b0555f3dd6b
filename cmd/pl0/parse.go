package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"pl0/parser"
)

type parseCmd struct {
	outPath string
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "parse a PL/0 source file and print its AST" }
func (*parseCmd) Usage() string {
	return `parse <file>:
  Parse a PL/0 source file and print the resulting AST as colorized JSON.
`
}

func (c *parseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outPath, "o", "", "write the AST as JSON to this file instead of stdout")
}

func (c *parseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "💥 file not provided")
		return subcommands.ExitUsageError
	}

	nodes, ok := parseFile(args[0])
	if !ok {
		return subcommands.ExitFailure
	}

	if c.outPath != "" {
		if err := parser.WriteASTJSONToFile(nodes, c.outPath); err != nil {
			fmt.Fprintf(os.Stderr, "💥 %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	if err := parser.Print(os.Stdout, nodes); err != nil {
		fmt.Fprintf(os.Stderr, "💥 %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
