// ast_compiler.go walks a parsed PL/0 program and emits a resolved
// instruction array, generalizing the flat-VM-stack-slot locals bookkeeping
// pattern into true lexical-level/static-link addressing across nested
// procedure scopes.
package compiler

import (
	"fmt"

	"pl0/ast"
)

type bindingKind int

const (
	bindConst bindingKind = iota
	bindVar
	bindProc
	bindParam
)

// binding is one entry of a compiler scope: a Const, Var, Procedure, or
// Parameter, per the compiler-scope data model.
type binding struct {
	kind    bindingKind
	level   int
	offset  int // Var/Param: stack-frame offset relative to bp
	value   int // Const: the literal value
	address int // Procedure: code address, filled in when its block's entry is fixed up, before its statements compile
}

// scope is one level of the compiler's scope stack: a name→binding table
// plus the next free Var offset (offsets start at 3 — slots 0..2 are the
// frame header's SL/DL/RA).
type scope struct {
	bindings   map[string]*binding
	nextOffset int
}

func newScope() *scope {
	return &scope{bindings: map[string]*binding{}, nextOffset: 3}
}

// Compiler turns a parsed AST into a Bytecode array. It implements both
// ast.Visitor (declarations/statements) and ast.ExprVisitor (expressions).
type Compiler struct {
	code   Bytecode
	scopes []*scope
}

// NewCompiler returns a ready-to-use Compiler.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile compiles a full program (or procedure body) to a Bytecode array.
// Internal invariant violations and undeclared-name lookups are raised via
// panic and recovered here, converting them into a returned error — this
// keeps the recursive visitor methods themselves free of error-plumbing.
func (c *Compiler) Compile(nodes []ast.Node) (bc Bytecode, err error) {
	defer func() {
		if r := recover(); r != nil {
			if asErr, ok := r.(error); ok {
				err = asErr
				return
			}
			panic(r)
		}
	}()

	c.scopes = []*scope{newScope()}
	c.emitBlock(nodes, nil)
	c.emit(OPR, 0, int(RETURN))
	return c.code, nil
}

func (c *Compiler) curLevel() int {
	return len(c.scopes) - 1
}

func (c *Compiler) resolve(name string) *binding {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if b, ok := c.scopes[i].bindings[name]; ok {
			return b
		}
	}
	panic(SemanticError{Message: fmt.Sprintf("undeclared identifier %q reached code generation", name)})
}

func (c *Compiler) emit(op Opcode, level, value int) int {
	c.code = append(c.code, Instruction{Op: op, Level: level, Value: value})
	return len(c.code) - 1
}

// emitPlaceholderJump emits a JMP/JPC with an unresolved target, to be
// overwritten later by patchJump once the target address is known.
func (c *Compiler) emitPlaceholderJump(op Opcode) int {
	return c.emit(op, 0, -1)
}

func (c *Compiler) patchJump(pos, target int) {
	if pos < 0 || pos >= len(c.code) {
		panic(DeveloperError{Message: fmt.Sprintf("patchJump: position %d out of range", pos)})
	}
	c.code[pos].Value = target
}

// emitBlock compiles "[const...] [var...] {procedure...} statement" — the
// shape shared by the top-level program and every procedure body. It
// returns the resolved entry address: the position of the INT instruction
// that allocates this block's frame, which is also a Procedure's callable
// address. When proc is non-nil its address is set as soon as the entry is
// known, so recursive calls inside the block target it.
func (c *Compiler) emitBlock(nodes []ast.Node, proc *binding) (entryAddr int) {
	jmpPos := c.emitPlaceholderJump(JMP)
	varCount := 0
	fixedUp := false

	for _, n := range nodes {
		switch node := n.(type) {
		case *ast.Const:
			node.Accept(c)
		case *ast.Var:
			node.Accept(c)
			varCount++
		case *ast.Procedure:
			node.Accept(c)
		default:
			if !fixedUp {
				entryAddr = len(c.code)
				if proc != nil {
					proc.address = entryAddr
				}
				c.patchJump(jmpPos, entryAddr)
				c.emit(INT, 0, varCount+3)
				fixedUp = true
			}
			n.Accept(c)
		}
	}

	if !fixedUp {
		entryAddr = len(c.code)
		if proc != nil {
			proc.address = entryAddr
		}
		c.patchJump(jmpPos, entryAddr)
		c.emit(INT, 0, varCount+3)
	}
	return entryAddr
}

// --- ast.Visitor ---

func (c *Compiler) VisitConst(node *ast.Const) any {
	scope := c.scopes[c.curLevel()]
	scope.bindings[node.Name] = &binding{kind: bindConst, value: node.Value}
	return nil
}

func (c *Compiler) VisitVar(node *ast.Var) any {
	scope := c.scopes[c.curLevel()]
	offset := scope.nextOffset
	scope.nextOffset++
	scope.bindings[node.Name] = &binding{kind: bindVar, level: c.curLevel(), offset: offset}
	return nil
}

func (c *Compiler) VisitProcedure(node *ast.Procedure) any {
	outerLevel := c.curLevel()
	proc := &binding{kind: bindProc, level: outerLevel}
	// Record the procedure under its name at the outer level before
	// entering its body, so a recursive call inside resolves correctly.
	c.scopes[outerLevel].bindings[node.Name] = proc

	c.scopes = append(c.scopes, newScope())
	newLevel := c.curLevel()
	for i, param := range node.Parameters {
		c.scopes[newLevel].bindings[param] = &binding{kind: bindParam, level: newLevel, offset: -(i + 1)}
	}

	c.emitBlock(node.Blocks, proc)
	c.emit(OPR, 0, int(RETURN))

	c.scopes = c.scopes[:newLevel]
	return nil
}

func (c *Compiler) VisitAssignment(node *ast.Assignment) any {
	b := c.resolve(node.Name)
	node.Value.Accept(c)
	c.emit(STO, c.curLevel()-b.level, b.offset)
	return nil
}

func (c *Compiler) VisitCall(node *ast.Call) any {
	b := c.resolve(node.Name)
	for i := len(node.Arguments) - 1; i >= 0; i-- {
		node.Arguments[i].Accept(c)
	}
	c.emit(CAL, c.curLevel()-b.level, b.address)
	for range node.Arguments {
		c.emit(DET, 0, 0)
	}
	return nil
}

func (c *Compiler) VisitBlock(node *ast.Block) any {
	for _, stmt := range node.Statements {
		stmt.Accept(c)
	}
	return nil
}

func (c *Compiler) VisitIf(node *ast.If) any {
	node.Condition.Accept(c)
	jpc := c.emitPlaceholderJump(JPC)
	node.Body.Accept(c)
	c.patchJump(jpc, len(c.code))
	return nil
}

func (c *Compiler) VisitLoop(node *ast.Loop) any {
	loopStart := len(c.code)
	node.Condition.Accept(c)
	jpc := c.emitPlaceholderJump(JPC)
	node.Body.Accept(c)
	c.emit(JMP, 0, loopStart)
	c.patchJump(jpc, len(c.code))
	return nil
}

func (c *Compiler) VisitOutput(node *ast.Output) any {
	node.Value.Accept(c)
	c.emit(OPR, 0, int(WRITE))
	return nil
}

func (c *Compiler) VisitDebug(*ast.Debug) any {
	c.emit(OPR, 0, int(DEBUG))
	return nil
}

// --- ast.ExprVisitor ---

var binaryOperatorToOperation = map[string]Operation{
	"+":  ADD,
	"-":  SUB,
	"*":  MULT,
	"/":  DIV,
	"=":  EQUAL,
	"!=": NOT_EQUAL,
	"<":  LESS,
	"<=": LESS_EQUAL,
	">":  GREATER,
	">=": GREATER_EQUAL,
}

func (c *Compiler) VisitBinary(node *ast.Binary) any {
	node.Left.Accept(c)
	node.Right.Accept(c)
	op, ok := binaryOperatorToOperation[string(node.Operator)]
	if !ok {
		panic(DeveloperError{Message: fmt.Sprintf("no OPR mapping for operator %q", node.Operator)})
	}
	c.emit(OPR, 0, int(op))
	return nil
}

func (c *Compiler) VisitUnary(node *ast.Unary) any {
	node.Right.Accept(c)
	c.emit(OPR, 0, int(NEGATE))
	return nil
}

func (c *Compiler) VisitOdd(node *ast.Odd) any {
	node.Expression.Accept(c)
	c.emit(OPR, 0, int(ODD))
	return nil
}

func (c *Compiler) VisitIdentifier(node *ast.Identifier) any {
	b := c.resolve(node.Name)
	switch b.kind {
	case bindConst:
		c.emit(LIT, 0, b.value)
	case bindVar, bindParam:
		c.emit(LOD, c.curLevel()-b.level, b.offset)
	default:
		panic(SemanticError{Message: fmt.Sprintf("%q is a procedure and cannot appear in an expression", node.Name)})
	}
	return nil
}

func (c *Compiler) VisitNumber(node *ast.Number) any {
	c.emit(LIT, 0, node.Value)
	return nil
}

func (c *Compiler) VisitGrouping(node *ast.Grouping) any {
	node.Expression.Accept(c)
	return nil
}
