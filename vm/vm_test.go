package vm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pl0/compiler"
	"pl0/lexer"
	"pl0/parser"
	"pl0/vm"
)

// run compiles and executes src through the full pipeline, returning
// whatever the program wrote via WRITE.
func run(t *testing.T, src string) string {
	t.Helper()
	tokens := lexer.New(src).Scan()
	nodes, err := parser.Make(tokens, src).Parse()
	require.NoError(t, err)
	bc, err := compiler.NewCompiler().Compile(nodes)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, vm.New(&out).Run(bc))
	return out.String()
}

func lines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestSquareProgram(t *testing.T) {
	src := `
	VAR x, squ;
	PROCEDURE square;
	BEGIN
		squ := x * x
	END;
	BEGIN
		x := 1;
		WHILE x <= 10 DO
		BEGIN
			CALL square;
			WRITE squ;
			x := x + 1
		END
	END.
	`
	got := lines(run(t, src))
	want := []string{"1", "4", "9", "16", "25", "36", "49", "64", "81", "100"}
	assert.Equal(t, want, got)
}

func TestNestedScopeReadsEnclosingVariable(t *testing.T) {
	src := `
	VAR x;
	PROCEDURE outer;
		VAR y;
		PROCEDURE inner;
		BEGIN
			y := x + 1;
			WRITE y
		END;
		BEGIN
			y := 0;
			CALL inner
		END;
	BEGIN
		x := 41;
		CALL outer
	END.
	`
	assert.Equal(t, []string{"42"}, lines(run(t, src)))
}

func TestPrimesUnder100(t *testing.T) {
	src := `
	VAR n, i, isPrime;
	PROCEDURE check;
		VAR d;
		BEGIN
			isPrime := 1;
			d := 2;
			WHILE d < n DO
			BEGIN
				IF n / d * d = n THEN isPrime := 0;
				d := d + 1
			END
		END;
	BEGIN
		n := 2;
		WHILE n < 100 DO
		BEGIN
			CALL check;
			IF isPrime = 1 THEN WRITE n;
			n := n + 1
		END
	END.
	`
	want := []string{"2", "3", "5", "7", "11", "13", "17", "19", "23", "29",
		"31", "37", "41", "43", "47", "53", "59", "61", "67", "71",
		"73", "79", "83", "89", "97"}
	assert.Equal(t, want, lines(run(t, src)))
}

func TestRecursiveFactorialWithParameters(t *testing.T) {
	// PL/0's grammar has no else branch; recursion is driven by two
	// sequential guarded IFs instead of an if/else.
	src := `
	VAR result, acc, n;
	PROCEDURE fact(k);
		BEGIN
			IF k <= 1 THEN acc := 1;
			IF 1 < k THEN
			BEGIN
				CALL fact(k - 1);
				acc := acc * k
			END
		END;
	BEGIN
		CALL fact(5);
		result := acc;
		WRITE result
	END.
	`
	assert.Equal(t, []string{"120"}, lines(run(t, src)))
}

func TestNotEqualOperator(t *testing.T) {
	src := `
	VAR x;
	BEGIN
		x := 1;
		IF x != 2 THEN WRITE 1;
		IF x != 1 THEN WRITE 2
	END.
	`
	assert.Equal(t, []string{"1"}, lines(run(t, src)))
}

func TestOddPredicate(t *testing.T) {
	src := `
	BEGIN
		IF ODD 7 THEN WRITE 1;
		IF ODD 8 THEN WRITE 2
	END.
	`
	assert.Equal(t, []string{"1"}, lines(run(t, src)))
}

func TestIntegerDivisionFloors(t *testing.T) {
	src := `
	VAR q;
	BEGIN
		q := 7 / 2;
		WRITE q;
		q := (0 - 7) / 2;
		WRITE q
	END.
	`
	assert.Equal(t, []string{"3", "-4"}, lines(run(t, src)))
}

func TestDivisionByZeroIsFatal(t *testing.T) {
	src := `VAR q; BEGIN q := 1 / 0; WRITE q END.`
	tokens := lexer.New(src).Scan()
	nodes, err := parser.Make(tokens, src).Parse()
	require.NoError(t, err)
	bc, err := compiler.NewCompiler().Compile(nodes)
	require.NoError(t, err)

	var out bytes.Buffer
	err = vm.New(&out).Run(bc)
	require.Error(t, err)
	var rtErr vm.RuntimeError
	require.ErrorAs(t, err, &rtErr)
	assert.Contains(t, rtErr.Error(), "division by zero")
}

func TestStackOverflowIsFatalNotGrown(t *testing.T) {
	src := `
	VAR n;
	PROCEDURE loop;
	BEGIN
		CALL loop
	END;
	BEGIN
		CALL loop
	END.
	`
	tokens := lexer.New(src).Scan()
	nodes, err := parser.Make(tokens, src).Parse()
	require.NoError(t, err)
	bc, err := compiler.NewCompiler().Compile(nodes)
	require.NoError(t, err)

	var out bytes.Buffer
	err = vm.NewWithCapacity(&out, 32).Run(bc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stack overflow")
}

func TestCallRestoresBasePointerAfterReturn(t *testing.T) {
	// Two sibling calls at the same level should each see bp reset to the
	// caller's frame rather than drifting forward across calls.
	src := `
	VAR a, b;
	PROCEDURE setA;
	BEGIN
		a := 1
	END;
	PROCEDURE setB;
	BEGIN
		b := 2
	END;
	BEGIN
		CALL setA;
		CALL setB;
		WRITE a;
		WRITE b
	END.
	`
	assert.Equal(t, []string{"1", "2"}, lines(run(t, src)))
}

func TestDebugOpcodeIsNoOpWithoutInspector(t *testing.T) {
	src := `BEGIN DEBUG; WRITE 7 END.`
	assert.Equal(t, []string{"7"}, lines(run(t, src)))
}

func TestBaseAtWalksStaticLinkAcrossLevels(t *testing.T) {
	// A three-deep procedure nest: the innermost STO must reach three
	// levels up through three static-link hops.
	src := `
	VAR x;
	PROCEDURE a;
		PROCEDURE b;
			PROCEDURE c;
			BEGIN
				x := 99
			END;
			BEGIN
				CALL c
			END;
		BEGIN
			CALL b
		END;
	BEGIN
		CALL a;
		WRITE x
	END.
	`
	assert.Equal(t, []string{"99"}, lines(run(t, src)))
}
