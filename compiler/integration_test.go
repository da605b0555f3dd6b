package compiler

import "testing"

// These mirror the end-to-end scenarios named in the toolchain's test
// matrix; here they only assert that compilation succeeds and produces a
// terminating instruction stream. Execution-level assertions (the actual
// printed output) live in the vm package, which runs the same scenarios
// end to end with its own program text.
func TestScenariosCompileCleanly(t *testing.T) {
	scenarios := map[string]string{
		"square": `
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
		`,
		"nested scope": `
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
		`,
		"recursion": `
			VAR result;
			PROCEDURE fact(n);
				VAR tmp;
				BEGIN
					IF n <= 1 THEN result := 1;
					IF n > 1 THEN
					BEGIN
						CALL fact(n - 1);
						result := result * n
					END
				END;
			BEGIN
				CALL fact(5);
				WRITE result
			END.
		`,
		"odd predicate": `
			BEGIN
				IF ODD 7 THEN WRITE 1
			END.
		`,
		"integer division": `
			VAR q;
			BEGIN
				q := 7 / 2;
				WRITE q
			END.
		`,
	}

	for name, src := range scenarios {
		t.Run(name, func(t *testing.T) {
			bc := compile(t, src)
			if len(bc) == 0 {
				t.Fatal("expected non-empty bytecode")
			}
			last := bc[len(bc)-1]
			if last.Op != OPR || last.Value != int(RETURN) {
				t.Fatalf("expected final instruction to be OPR RETURN, got %v", last)
			}
		})
	}
}
