package compiler

import "fmt"

// SemanticError reports a compile-time problem that is the program's
// fault (e.g. an undeclared name reaching code generation, or a procedure
// name used inside an expression).
type SemanticError struct {
	Message string
}

func (e SemanticError) Error() string {
	return fmt.Sprintf("💥 semantic error: %s", e.Message)
}

// DeveloperError reports an invariant violated by the compiler itself
// (e.g. patching a jump that was never emitted). Seeing one means a bug
// in the code generator, not in the PL/0 source being compiled.
type DeveloperError struct {
	Message string
}

func (e DeveloperError) Error() string {
	return fmt.Sprintf("🤖 developer error: %s", e.Message)
}
