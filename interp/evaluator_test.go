/*
File    : go-basic/interp/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-basic/analyzer"
	"github.com/akashmaji946/go-basic/interp"
	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/parser"
)

// run lexes, parses, analyzes and executes src, returning everything
// written to PRINT/PRINTLN and the first error encountered, if any.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lx := lexer.NewLexer(src)
	p := parser.NewParser(&lx)
	prog := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected syntax errors: %v", p.GetErrors())
	}
	st, err := analyzer.Analyze(prog)
	if err != nil {
		return "", err
	}
	ev := interp.NewEvaluator(st)
	var buf bytes.Buffer
	ev.SetWriter(&buf)
	ev.SetInput(strings.NewReader(""))
	err = ev.Run()
	return buf.String(), err
}

func TestEvaluator_PrintStringLiteral(t *testing.T) {
	out, err := run(t, "10 PRINT \"HI\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "HI\n" {
		t.Errorf("expected %q, got %q", "HI\n", out)
	}
}

func TestEvaluator_ForNextWithSemicolonSeparator(t *testing.T) {
	out, err := run(t, "10 FOR I = 1 TO 3\n20 PRINT I;\n30 NEXT I\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "123" {
		t.Errorf("expected %q, got %q", "123", out)
	}
}

func TestEvaluator_ForNextStepDownward(t *testing.T) {
	out, err := run(t, "10 FOR I = 5 TO 1 STEP -2\n20 PRINT I;\n30 NEXT I\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "531" {
		t.Errorf("expected %q, got %q", "531", out)
	}
}

func TestEvaluator_DataRead(t *testing.T) {
	out, err := run(t, "10 DATA 1, 2, 3\n20 READ A, B, C\n30 PRINT A + B + C\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "6\n" {
		t.Errorf("expected %q, got %q", "6\n", out)
	}
}

func TestEvaluator_GosubReturn(t *testing.T) {
	out, err := run(t, "10 GOSUB 100\n20 PRINT \"BACK\"\n30 END\n100 PRINT \"SUB\"\n110 RETURN\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "SUB\nBACK\n" {
		t.Errorf("expected %q, got %q", "SUB\nBACK\n", out)
	}
}

func TestEvaluator_OnGoto(t *testing.T) {
	out, err := run(t, "10 X = 2\n20 ON X GOTO 100, 200, 300\n30 PRINT \"FALLTHROUGH\"\n40 END\n100 PRINT \"ONE\"\n110 END\n200 PRINT \"TWO\"\n210 END\n300 PRINT \"THREE\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "TWO\n" {
		t.Errorf("expected %q, got %q", "TWO\n", out)
	}
}

func TestEvaluator_OnGotoOutOfRangeFallsThrough(t *testing.T) {
	out, err := run(t, "10 X = 9\n20 ON X GOTO 100\n30 PRINT \"FALLTHROUGH\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "FALLTHROUGH\n" {
		t.Errorf("expected %q, got %q", "FALLTHROUGH\n", out)
	}
}

func TestEvaluator_DimArrayAssignmentAndRead(t *testing.T) {
	out, err := run(t, "10 DIM A(3)\n20 A(2) = 42\n30 PRINT A(2)\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "42\n" {
		t.Errorf("expected %q, got %q", "42\n", out)
	}
}

func TestEvaluator_DefunCall(t *testing.T) {
	out, err := run(t, "10 DEF SQUARE(X) = X * X\n20 PRINT SQUARE(5)\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "25\n" {
		t.Errorf("expected %q, got %q", "25\n", out)
	}
}

func TestEvaluator_IfThenElseIntegerSugar(t *testing.T) {
	out, err := run(t, "10 X = 1\n20 IF X = 1 THEN 100 ELSE 200\n30 END\n100 PRINT \"ONE\"\n110 END\n200 PRINT \"OTHER\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "ONE\n" {
		t.Errorf("expected %q, got %q", "ONE\n", out)
	}
}

func TestEvaluator_StringSuffixRejectsNumericAssignment(t *testing.T) {
	_, err := run(t, "10 A$ = 5\n")
	if err == nil {
		t.Fatalf("expected a type error, got none")
	}
}

func TestEvaluator_DivisionByZero(t *testing.T) {
	_, err := run(t, "10 PRINT 1 / 0\n")
	if err == nil {
		t.Fatalf("expected a division-by-zero error, got none")
	}
}

func TestEvaluator_EndStopsExecution(t *testing.T) {
	out, err := run(t, "10 PRINT \"A\"\n20 END\n30 PRINT \"B\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A\n" {
		t.Errorf("expected %q, got %q", "A\n", out)
	}
}

func TestEvaluator_ForLoopZeroTripWhenInitAlreadyPastTerm(t *testing.T) {
	out, err := run(t, "10 FOR I = 5 TO 1\n20 PRINT I;\n30 NEXT I\n40 PRINT \"DONE\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "DONE\n" {
		t.Errorf("expected the body to run zero times, got %q", out)
	}
}

func TestEvaluator_ForLoopZeroTripDownwardStep(t *testing.T) {
	out, err := run(t, "10 FOR I = 1 TO 5 STEP -1\n20 PRINT I;\n30 NEXT I\n40 PRINT \"DONE\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "DONE\n" {
		t.Errorf("expected the body to run zero times, got %q", out)
	}
}

func TestEvaluator_IfThenFalseWithoutElseStopsLine(t *testing.T) {
	out, err := run(t, "10 IF 1 = 2 THEN PRINT \"A\": PRINT \"B\"\n20 PRINT \"C\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "C\n" {
		t.Errorf("expected the guarded colon-separated statements to be skipped, got %q", out)
	}
}

func TestEvaluator_IfThenTrueStillRunsRestOfLine(t *testing.T) {
	out, err := run(t, "10 IF 1 = 1 THEN PRINT \"A\": PRINT \"B\"\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "A\nB\n" {
		t.Errorf("expected both statements after a true THEN to run, got %q", out)
	}
}

func TestEvaluator_NestedForLoops(t *testing.T) {
	out, err := run(t, "10 FOR I = 1 TO 2\n20 FOR J = 1 TO 2\n30 PRINT I * 10 + J;\n40 NEXT J\n50 NEXT I\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "11122122" {
		t.Errorf("expected %q, got %q", "11122122", out)
	}
}
