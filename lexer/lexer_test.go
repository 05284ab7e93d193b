/*
File    : go-basic/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func TestLexer_ConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `10 PRINT "HI"`,
			Expected: []Token{
				NewToken(INT_LIT, "10"),
				NewToken(PRINT_KEY, "PRINT"),
				NewToken(STRING_LIT, "HI"),
			},
		},
		{
			Input: `20 LET X = 3.14 + .5`,
			Expected: []Token{
				NewToken(INT_LIT, "20"),
				NewToken(LET_KEY, "LET"),
				NewToken(IDENT_TYPE, "X"),
				NewToken(EQ_OP, "="),
				NewToken(FLOAT_LIT, "3.14"),
				NewToken(PLUS_OP, "+"),
				NewToken(FLOAT_LIT, ".5"),
			},
		},
		{
			Input: `A$ <> B <= C >= D`,
			Expected: []Token{
				NewToken(IDENT_TYPE, "A$"),
				NewToken(NE_OP, "<>"),
				NewToken(IDENT_TYPE, "B"),
				NewToken(LE_OP, "<="),
				NewToken(IDENT_TYPE, "C"),
				NewToken(GE_OP, ">="),
				NewToken(IDENT_TYPE, "D"),
			},
		},
	}

	for _, tc := range tests {
		lex := NewLexer(tc.Input)
		got := lex.ConsumeTokens()
		assert.Equal(t, len(tc.Expected), len(got), "token count for %q", tc.Input)
		for i := range tc.Expected {
			assert.Equal(t, tc.Expected[i].Type, got[i].Type, "type[%d] for %q", i, tc.Input)
			assert.Equal(t, tc.Expected[i].Literal, got[i].Literal, "literal[%d] for %q", i, tc.Input)
		}
	}
}

func TestLexer_CommentConsumesToEOL(t *testing.T) {
	lex := NewLexer("10 REM hello\n20 END")
	toks := lex.ConsumeTokens()
	assert.Equal(t, INT_LIT, toks[0].Type)
	assert.Equal(t, REM_KEY, toks[1].Type)
	assert.Equal(t, COMMENT_TYPE, toks[2].Type)
	assert.Equal(t, " hello", toks[2].Literal)
	assert.Equal(t, EOL_TYPE, toks[3].Type)
	assert.Equal(t, INT_LIT, toks[4].Type)
}

func TestLexer_SuffixFollowedByMoreCharsIsInvalid(t *testing.T) {
	lex := NewLexer("A$B")
	tok := lex.NextToken()
	assert.Equal(t, INVALID_TYPE, tok.Type)
}

func TestLexer_KeywordsAreCaseInsensitive(t *testing.T) {
	lex := NewLexer("goto 10")
	tok := lex.NextToken()
	assert.Equal(t, GOTO_KEY, tok.Type)
	assert.Equal(t, "GOTO", tok.Literal)
}
