// Package transpiler renders a PL/0 program as equivalent Python 3 source
// text, for comparison against the compiled/interpreted execution paths.
package transpiler

import (
	"strconv"
	"strings"

	"pl0/ast"
	"pl0/token"
)

const indentUnit = "    "

// scope tracks which names are local to the Python function currently being
// emitted, so an assignment to an enclosing variable gets the "global"
// declaration Python requires and a local (including a parameter) does not.
type scope struct {
	names map[string]bool
}

func newScope() *scope {
	return &scope{names: map[string]bool{}}
}

// pyTranspiler walks the AST emitting Python source. It implements both of
// the package's visitor interfaces the same way the AST printer does, but
// writes indented text instead of building a JSON tree.
type pyTranspiler struct {
	out    strings.Builder
	scopes []*scope
	depth  int
}

// Transpile renders the given program as Python 3 source.
func Transpile(nodes []ast.Node) string {
	t := &pyTranspiler{scopes: []*scope{newScope()}}
	for _, n := range nodes {
		n.Accept(t)
	}
	return t.out.String()
}

func (t *pyTranspiler) top() *scope {
	return t.scopes[len(t.scopes)-1]
}

func (t *pyTranspiler) indent() {
	t.out.WriteString(strings.Repeat(indentUnit, t.depth))
}

func (t *pyTranspiler) VisitConst(c *ast.Const) any {
	t.indent()
	t.out.WriteString(c.Name)
	t.out.WriteString(" = ")
	t.out.WriteString(strconv.Itoa(c.Value))
	t.out.WriteString("\n")
	t.top().names[c.Name] = true
	return nil
}

func (t *pyTranspiler) VisitVar(v *ast.Var) any {
	t.indent()
	t.out.WriteString(v.Name)
	t.out.WriteString(" = None\n")
	t.top().names[v.Name] = true
	return nil
}

func (t *pyTranspiler) VisitProcedure(p *ast.Procedure) any {
	t.indent()
	t.out.WriteString("\ndef ")
	t.out.WriteString(p.Name)
	t.out.WriteString("(")
	t.out.WriteString(strings.Join(p.Parameters, ", "))
	t.out.WriteString("):\n")

	inner := newScope()
	for _, param := range p.Parameters {
		inner.names[param] = true
	}
	t.scopes = append(t.scopes, inner)
	t.depth++
	if len(p.Blocks) == 0 {
		t.indent()
		t.out.WriteString("pass\n")
	}
	for _, block := range p.Blocks {
		block.Accept(t)
	}
	t.depth--
	t.scopes = t.scopes[:len(t.scopes)-1]
	t.out.WriteString("\n")
	return nil
}

func (t *pyTranspiler) VisitAssignment(a *ast.Assignment) any {
	if !t.top().names[a.Name] {
		t.indent()
		t.out.WriteString("global ")
		t.out.WriteString(a.Name)
		t.out.WriteString("\n")
		t.top().names[a.Name] = true
	}

	t.indent()
	t.out.WriteString(a.Name)
	t.out.WriteString(" = ")
	a.Value.Accept(t)
	t.out.WriteString("\n")
	return nil
}

func (t *pyTranspiler) VisitCall(c *ast.Call) any {
	t.indent()
	t.out.WriteString(c.Name)
	t.out.WriteString("(")
	for i, arg := range c.Arguments {
		if i > 0 {
			t.out.WriteString(", ")
		}
		arg.Accept(t)
	}
	t.out.WriteString(")\n")
	return nil
}

func (t *pyTranspiler) VisitBlock(b *ast.Block) any {
	if len(b.Statements) == 0 {
		t.indent()
		t.out.WriteString("pass\n")
		return nil
	}
	for _, stmt := range b.Statements {
		stmt.Accept(t)
	}
	return nil
}

func (t *pyTranspiler) VisitIf(i *ast.If) any {
	t.indent()
	t.out.WriteString("if ")
	i.Condition.Accept(t)
	t.out.WriteString(":\n")

	t.depth++
	i.Body.Accept(t)
	t.depth--
	return nil
}

func (t *pyTranspiler) VisitLoop(l *ast.Loop) any {
	t.indent()
	t.out.WriteString("while ")
	l.Condition.Accept(t)
	t.out.WriteString(":\n")

	t.depth++
	l.Body.Accept(t)
	t.depth--
	return nil
}

func (t *pyTranspiler) VisitOutput(o *ast.Output) any {
	t.indent()
	t.out.WriteString("print(")
	o.Value.Accept(t)
	t.out.WriteString(")\n")
	return nil
}

func (t *pyTranspiler) VisitDebug(*ast.Debug) any {
	t.indent()
	t.out.WriteString("breakpoint()\n")
	return nil
}

func (t *pyTranspiler) VisitBinary(b *ast.Binary) any {
	b.Left.Accept(t)
	t.out.WriteString(binaryPyOperator(b.Operator))
	b.Right.Accept(t)
	return nil
}

// binaryPyOperator maps a PL/0 operator to its Python spelling. LEQ maps to
// "<=", not ">=": the Python reference this toolchain supersedes emitted
// ">=" for both GEQ and LEQ, silently inverting every "<=" comparison it
// transpiled.
func binaryPyOperator(op token.TokenType) string {
	switch op {
	case token.PLUS:
		return " + "
	case token.MINUS:
		return " - "
	case token.TIMES:
		return " * "
	case token.SLASH:
		return " // "
	case token.EQL:
		return " == "
	case token.NEQ:
		return " != "
	case token.LESS:
		return " < "
	case token.GEQ:
		return " >= "
	case token.GTR:
		return " > "
	case token.LEQ:
		return " <= "
	default:
		return " ? "
	}
}

func (t *pyTranspiler) VisitUnary(u *ast.Unary) any {
	t.out.WriteString("-")
	u.Right.Accept(t)
	return nil
}

func (t *pyTranspiler) VisitOdd(o *ast.Odd) any {
	o.Expression.Accept(t)
	t.out.WriteString(" % 2 == 1")
	return nil
}

func (t *pyTranspiler) VisitIdentifier(i *ast.Identifier) any {
	t.out.WriteString(i.Name)
	return nil
}

func (t *pyTranspiler) VisitNumber(n *ast.Number) any {
	t.out.WriteString(strconv.Itoa(n.Value))
	return nil
}

func (t *pyTranspiler) VisitGrouping(g *ast.Grouping) any {
	t.out.WriteString("(")
	g.Expression.Accept(t)
	t.out.WriteString(")")
	return nil
}

