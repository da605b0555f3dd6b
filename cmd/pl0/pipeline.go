package main

import (
	"fmt"
	"os"

	"pl0/ast"
	"pl0/lexer"
	"pl0/parser"
)

// parseFile reads path and runs it through the lexer and parser, printing
// a single diagnostic to stderr and returning false on any failure.
func parseFile(path string) ([]ast.Node, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "💥 failed to read file: %v\n", err)
		return nil, false
	}

	source := string(data)
	tokens := lexer.New(source).Scan()
	nodes, err := parser.Make(tokens, source).Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, false
	}
	return nodes, true
}
