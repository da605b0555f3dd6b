// Package ast defines the PL/0 abstract syntax tree. Every node follows the
// visitor pattern: behavior (code generation, printing, transpilation) lives
// outside the node types themselves, dispatched through Accept.
package ast

// ExprVisitor is implemented by anything that operates on expression nodes
// (code generator, AST printer, transpiler).
type ExprVisitor interface {
	VisitBinary(b *Binary) any
	VisitUnary(u *Unary) any
	VisitOdd(o *Odd) any
	VisitIdentifier(i *Identifier) any
	VisitNumber(n *Number) any
	VisitGrouping(g *Grouping) any
}

// Visitor is implemented by anything that operates on statement/declaration
// nodes. PL/0 does not distinguish statements from declarations at the type
// level the way an expression-oriented language would — both appear as
// blocks of the same Node interface — so one visitor interface covers both.
type Visitor interface {
	VisitConst(c *Const) any
	VisitVar(v *Var) any
	VisitProcedure(p *Procedure) any
	VisitAssignment(a *Assignment) any
	VisitCall(c *Call) any
	VisitBlock(b *Block) any
	VisitIf(i *If) any
	VisitLoop(l *Loop) any
	VisitOutput(o *Output) any
	VisitDebug(d *Debug) any
}

// Node is implemented by every declaration/statement-level AST node:
// Const, Var, Procedure, Assignment, Call, Block, If, Loop, Output, Debug.
type Node interface {
	Accept(v Visitor) any
}

// Expr is implemented by every expression node: Binary, Unary, Odd,
// Identifier, Number, Grouping. Expressions are dispatched through a
// separate visitor because they return a value where statements do not.
type Expr interface {
	Accept(v ExprVisitor) any
}
