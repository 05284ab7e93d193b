/*
File    : go-basic/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/go-basic/lexer"
)

func mustParse(t *testing.T, src string) *Program {
	t.Helper()
	lex := lexer.NewLexer(src)
	p := NewParser(&lex)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return prog
}

func TestParser_PrintStringLiteral(t *testing.T) {
	prog := mustParse(t, "10 PRINT \"HI\"\n")
	require.Len(t, prog.Lines, 1)
	line := prog.Lines[0]
	assert.Equal(t, int64(10), line.Number)
	require.Len(t, line.Stmts, 1)
	pr, ok := line.Stmts[0].(*Print)
	require.True(t, ok)
	require.Len(t, pr.Items, 1)
	str, ok := pr.Items[0].(*Str)
	require.True(t, ok)
	assert.Equal(t, "HI", str.Val)
}

func TestParser_Assignment(t *testing.T) {
	prog := mustParse(t, "20 LET X = 3 + 4\n")
	line := prog.Lines[0]
	assign, ok := line.Stmts[0].(*Assignment)
	require.True(t, ok)
	v, ok := assign.Target.(*Var)
	require.True(t, ok)
	assert.Equal(t, "X", v.Name)
	bin, ok := assign.Value.(*BinOp)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS_OP, bin.Op)
}

func TestParser_ForNext(t *testing.T) {
	prog := mustParse(t, "10 FOR I = 1 TO 10 STEP 2\n20 NEXT I\n")
	require.Len(t, prog.Lines, 2)
	forLoop, ok := prog.Lines[0].Stmts[0].(*ForLoop)
	require.True(t, ok)
	assert.Equal(t, "I", forLoop.Var)
	require.NotNil(t, forLoop.Step)
	forNext, ok := prog.Lines[1].Stmts[0].(*ForNext)
	require.True(t, ok)
	assert.Equal(t, "I", forNext.Var)
}

func TestParser_IfThenElseIntegerSugar(t *testing.T) {
	prog := mustParse(t, "10 IF X = 1 THEN 20 ELSE 30\n")
	ifThen, ok := prog.Lines[0].Stmts[0].(*IfThen)
	require.True(t, ok)
	thenGoto, ok := ifThen.Then.(*Goto)
	require.True(t, ok)
	assert.Equal(t, int64(20), thenGoto.Target)
	elseGoto, ok := ifThen.Else.(*Goto)
	require.True(t, ok)
	assert.Equal(t, int64(30), elseGoto.Target)
}

func TestParser_DimArray(t *testing.T) {
	prog := mustParse(t, "10 DIM A(3,3)\n")
	decl, ok := prog.Lines[0].Stmts[0].(*ArrayDecl)
	require.True(t, ok)
	require.Len(t, decl.Decls, 1)
	assert.Equal(t, "A", decl.Decls[0].Name)
	assert.Len(t, decl.Decls[0].Dims, 2)
}

func TestParser_DefunSingleExpressionBody(t *testing.T) {
	prog := mustParse(t, "10 DEF SQ(X) = X*X\n")
	defn, ok := prog.Lines[0].Stmts[0].(*Defun)
	require.True(t, ok)
	assert.Equal(t, "SQ", defn.Name)
	assert.Equal(t, []string{"X"}, defn.Params)
	_, ok = defn.Body.(*BinOp)
	assert.True(t, ok)
}

func TestParser_OnGotoFallsThroughSyntax(t *testing.T) {
	prog := mustParse(t, "10 ON X GOTO 100,200,300\n")
	on, ok := prog.Lines[0].Stmts[0].(*OnXXX)
	require.True(t, ok)
	assert.False(t, on.IsGosub)
	assert.Equal(t, []int64{100, 200, 300}, on.Targets)
}

func TestParser_BareCallStatement(t *testing.T) {
	prog := mustParse(t, "10 FOO(1,2)\n")
	call, ok := prog.Lines[0].Stmts[0].(*FuncCall)
	require.True(t, ok)
	assert.Equal(t, "FOO", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParser_UnnumberedLineIsStillParsed(t *testing.T) {
	prog := mustParse(t, "PRINT \"NO NUMBER\"\n10 END\n")
	require.Len(t, prog.Lines, 2)
	assert.False(t, prog.Lines[0].HasNumber)
	assert.True(t, prog.Lines[1].HasNumber)
}

func TestParser_UnrecognizedTokenRecordsSyntaxError(t *testing.T) {
	lex := lexer.NewLexer("10 )))\n")
	p := NewParser(&lex)
	p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.GetErrors()[0], "Syntax near")
}

func TestParser_CommentNodePreserved(t *testing.T) {
	prog := mustParse(t, "10 REM a note\n")
	c, ok := prog.Lines[0].Stmts[0].(*Comment)
	require.True(t, ok)
	assert.Equal(t, " a note", c.Text)
}
