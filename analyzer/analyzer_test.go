/*
File    : go-basic/analyzer/analyzer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package analyzer

import (
	"testing"

	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/parser"
)

func parse(t *testing.T, src string) *parser.Program {
	t.Helper()
	lx := lexer.NewLexer(src)
	p := parser.NewParser(&lx)
	prog := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected syntax errors: %v", p.GetErrors())
	}
	return prog
}

func TestAnalyze_LineTable(t *testing.T) {
	prog := parse(t, "10 PRINT \"A\"\n20 PRINT \"B\"\n")
	st, err := Analyze(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.LineTable[10] != 0 || st.LineTable[20] != 1 {
		t.Errorf("unexpected line table: %v", st.LineTable)
	}
}

func TestAnalyze_ForNextPairing(t *testing.T) {
	prog := parse(t, "10 FOR I = 1 TO 3\n20 PRINT I\n30 NEXT I\n")
	st, err := Analyze(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d, ok := st.ForAtSite(10, 0)
	if !ok {
		t.Fatalf("expected a FOR descriptor at (10,0)")
	}
	d2, ok := st.ForAtNext(30, 0)
	if !ok {
		t.Fatalf("expected a FOR descriptor at NEXT (30,0)")
	}
	if d != d2 {
		t.Errorf("FOR and its NEXT should share one descriptor")
	}
	if d.Var != "I" {
		t.Errorf("expected counter I, got %s", d.Var)
	}
}

func TestAnalyze_UnmatchedNextIsSemanticError(t *testing.T) {
	prog := parse(t, "10 NEXT I\n")
	_, err := Analyze(prog)
	if !basicerr.Is(err, basicerr.Semantic) {
		t.Fatalf("expected a Semantic unmatched-NEXT error, got %v", err)
	}
}

func TestAnalyze_DataPoolConstantFolding(t *testing.T) {
	prog := parse(t, "10 DATA 1+2, 3*4, \"X\"\n")
	st, err := Analyze(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.DataPool) != 3 {
		t.Fatalf("expected 3 pooled values, got %d", len(st.DataPool))
	}
	if st.DataPool[0].ToString() != "3" || st.DataPool[1].ToString() != "12" {
		t.Errorf("unexpected folded DATA values: %v", st.DataPool)
	}
}

func TestAnalyze_DataRejectsVariableReference(t *testing.T) {
	prog := parse(t, "10 DATA X\n")
	_, err := Analyze(prog)
	if err == nil {
		t.Fatalf("expected DATA referencing a variable to be rejected at analysis time")
	}
}

func TestAnalyze_DefunRegistersFunction(t *testing.T) {
	prog := parse(t, "10 DEF DOUBLE(X) = X * 2\n")
	st, err := Analyze(prog)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := st.Functions["DOUBLE"]; !ok {
		t.Errorf("expected DOUBLE to be registered")
	}
}
