package parser

import (
	"fmt"
	"strings"
)

// errorMessages maps each PL/0 error code to its fixed diagnostic text.
// Codes and wording follow the canonical PL/0 compiler's table.
var errorMessages = map[int]string{
	1:  "Use = instead of :=",
	2:  "= must be followed by a number",
	3:  "Identifier must be followed by =",
	4:  "const, var, procedure must be followed by an identifier",
	5:  "Semicolon or comma missing",
	6:  "Incorrect symbol after procedure declaration",
	7:  "Statement expected",
	8:  "Incorrect symbol after statement part in block",
	9:  "Period expected",
	10: "Semicolon between statements is missing",
	11: "Undeclared identifier",
	12: "Assignment to constant or procedure is not allowed",
	13: "Assignment operator := expected",
	14: "call must be followed by an identifier",
	15: "Call of a constant or variable is meaningless",
	16: "then expected",
	17: "Semicolon or end expected",
	18: "do expected",
	19: "Incorrect symbol following statement",
	20: "Relational operator expected",
	21: "Expression must not contain a procedure identifier",
	22: "Right parenthesis missing",
	23: "The preceding factor cannot be followed by this symbol",
	24: "An expression cannot begin with this symbol",
	30: "This number is too large",
}

// SyntaxError is a PL/0 parse-time diagnostic: an error code, the offending
// token's position, and the source line it occurred on.
type SyntaxError struct {
	Code       int
	Line       int
	Column     int
	SourceLine string
}

// CreateSyntaxError builds a SyntaxError for the given code at the given
// position, capturing the offending source line for a caret diagnostic.
func CreateSyntaxError(code, line, column int, source string) SyntaxError {
	lines := strings.Split(source, "\n")
	var sourceLine string
	if line-1 >= 0 && line-1 < len(lines) {
		sourceLine = lines[line-1]
	}
	return SyntaxError{Code: code, Line: line, Column: column, SourceLine: sourceLine}
}

// Message returns the fixed diagnostic text for this error's code.
func (e SyntaxError) Message() string {
	if msg, ok := errorMessages[e.Code]; ok {
		return msg
	}
	return "Unknown error"
}

func (e SyntaxError) Error() string {
	col := e.Column
	if col < 0 {
		col = 0
	}
	caret := strings.Repeat(" ", col) + "^"
	return fmt.Sprintf("💥 syntax error [%d]: %s\nline %d, column %d\n%s\n%s",
		e.Code, e.Message(), e.Line, e.Column, e.SourceLine, caret)
}
