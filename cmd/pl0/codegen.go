package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"pl0/compiler"
)

type codegenCmd struct {
	outPath string
}

func (*codegenCmd) Name() string     { return "codegen" }
func (*codegenCmd) Synopsis() string { return "compile a PL/0 source file and print its bytecode" }
func (*codegenCmd) Usage() string {
	return `codegen <file>:
  Compile a PL/0 source file and print the disassembled bytecode.
`
}

func (c *codegenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outPath, "o", "", "write the disassembly to this file instead of stdout")
}

func (c *codegenCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	disassembly := bc.Disassemble()
	if c.outPath != "" {
		if err := os.WriteFile(c.outPath, []byte(disassembly), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "💥 failed to write bytecode: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	yellow := color.New(color.FgYellow)
	yellow.Fprint(os.Stdout, disassembly)
	return subcommands.ExitSuccess
}
