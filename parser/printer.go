package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"pl0/ast"
)

// astPrinter implements both ast visitor interfaces, building a
// JSON-friendly mapping-tree representation. The source produces a
// deterministic rendering; the exact shape is implementation-defined.
type astPrinter struct{}

func (p astPrinter) VisitConst(c *ast.Const) any {
	return map[string]any{"type": "Const", "name": c.Name, "value": c.Value}
}

func (p astPrinter) VisitVar(v *ast.Var) any {
	return map[string]any{"type": "Var", "name": v.Name}
}

func (p astPrinter) VisitProcedure(pr *ast.Procedure) any {
	blocks := make([]any, 0, len(pr.Blocks))
	for _, n := range pr.Blocks {
		blocks = append(blocks, n.Accept(p))
	}
	return map[string]any{
		"type":       "Procedure",
		"name":       pr.Name,
		"parameters": pr.Parameters,
		"blocks":     blocks,
	}
}

func (p astPrinter) VisitAssignment(a *ast.Assignment) any {
	return map[string]any{
		"type":  "Assignment",
		"name":  a.Name,
		"value": a.Value.Accept(p),
	}
}

func (p astPrinter) VisitCall(c *ast.Call) any {
	args := make([]any, 0, len(c.Arguments))
	for _, arg := range c.Arguments {
		args = append(args, arg.Accept(p))
	}
	return map[string]any{"type": "Call", "name": c.Name, "arguments": args}
}

func (p astPrinter) VisitBlock(b *ast.Block) any {
	stmts := make([]any, 0, len(b.Statements))
	for _, n := range b.Statements {
		stmts = append(stmts, n.Accept(p))
	}
	return map[string]any{"type": "Block", "statements": stmts}
}

func (p astPrinter) VisitIf(i *ast.If) any {
	return map[string]any{
		"type":      "If",
		"condition": i.Condition.Accept(p),
		"body":      i.Body.Accept(p),
	}
}

func (p astPrinter) VisitLoop(l *ast.Loop) any {
	return map[string]any{
		"type":      "Loop",
		"condition": l.Condition.Accept(p),
		"body":      l.Body.Accept(p),
	}
}

func (p astPrinter) VisitOutput(o *ast.Output) any {
	return map[string]any{"type": "Output", "value": o.Value.Accept(p)}
}

func (p astPrinter) VisitDebug(*ast.Debug) any {
	return map[string]any{"type": "Debug"}
}

func (p astPrinter) VisitBinary(b *ast.Binary) any {
	return map[string]any{
		"type":     "Binary",
		"operator": string(b.Operator),
		"left":     b.Left.Accept(p),
		"right":    b.Right.Accept(p),
	}
}

func (p astPrinter) VisitUnary(u *ast.Unary) any {
	return map[string]any{
		"type":     "Unary",
		"operator": string(u.Operator),
		"right":    u.Right.Accept(p),
	}
}

func (p astPrinter) VisitOdd(o *ast.Odd) any {
	return map[string]any{"type": "Odd", "expression": o.Expression.Accept(p)}
}

func (p astPrinter) VisitIdentifier(i *ast.Identifier) any {
	return map[string]any{"type": "Identifier", "name": i.Name}
}

func (p astPrinter) VisitNumber(n *ast.Number) any {
	return map[string]any{"type": "Number", "value": n.Value}
}

func (p astPrinter) VisitGrouping(g *ast.Grouping) any {
	return map[string]any{"type": "Grouping", "expression": g.Expression.Accept(p)}
}

// PrintASTJSON renders the top-level program nodes as prettified JSON.
func PrintASTJSON(nodes []ast.Node) (string, error) {
	printer := astPrinter{}
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Accept(printer))
	}
	bytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Print writes the colorized AST JSON to w. Color is presentation only —
// never part of the returned JSON payload.
func Print(w io.Writer, nodes []ast.Node) error {
	jsonStr, err := PrintASTJSON(nodes)
	if err != nil {
		return err
	}
	yellow := color.New(color.FgYellow)
	yellow.Fprintln(w, jsonStr)
	return nil
}

// WriteASTJSONToFile writes the AST JSON for nodes to the given file path.
func WriteASTJSONToFile(nodes []ast.Node, path string) error {
	s, err := PrintASTJSON(nodes)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating AST file: %w", err)
	}
	defer f.Close()
	if _, err := f.Write([]byte(s)); err != nil {
		return fmt.Errorf("error writing AST to file: %w", err)
	}
	return nil
}
