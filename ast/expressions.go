// expressions.go contains all expression AST nodes. An expression node
// always evaluates to a value.

package ast

import "pl0/token"

// Binary is a left/right expression joined by a relational or arithmetic
// operator (e.g. "a + b", "x <= y").
type Binary struct {
	Left     Expr
	Operator token.TokenType
	Right    Expr
}

func (b *Binary) Accept(v ExprVisitor) any { return v.VisitBinary(b) }

// Unary is a prefixed expression. PL/0 only ever produces MINUS here — a
// leading unary "+" is absorbed by the parser without emitting a node.
type Unary struct {
	Operator token.TokenType
	Right    Expr
}

func (u *Unary) Accept(v ExprVisitor) any { return v.VisitUnary(u) }

// Odd is the "odd e" condition.
type Odd struct {
	Expression Expr
}

func (o *Odd) Accept(v ExprVisitor) any { return v.VisitOdd(o) }

// Identifier references a previously declared const or var by name.
type Identifier struct {
	Name string
}

func (i *Identifier) Accept(v ExprVisitor) any { return v.VisitIdentifier(i) }

// Number is an integer literal.
type Number struct {
	Value int
}

func (n *Number) Accept(v ExprVisitor) any { return v.VisitNumber(n) }

// Grouping is a parenthesized expression.
type Grouping struct {
	Expression Expr
}

func (g *Grouping) Accept(v ExprVisitor) any { return v.VisitGrouping(g) }
