/*
File    : go-basic/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/objects"
)

// parsePrimary: literal | variable | paren-expr | call.
func (p *Parser) parsePrimary() Node {
	tok := p.CurrToken
	switch tok.Type {
	case lexer.INT_LIT:
		p.advance()
		n, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.addError("malformed integer literal %q", tok.Literal)
			n = 0
		}
		return &Num{base: base{Tok: tok}, Val: &objects.Integer{Value: n}}
	case lexer.FLOAT_LIT:
		p.advance()
		f, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.addError("malformed float literal %q", tok.Literal)
			f = 0
		}
		return &Num{base: base{Tok: tok}, Val: &objects.Float{Value: f}}
	case lexer.STRING_LIT:
		p.advance()
		return &Str{base: base{Tok: tok}, Val: tok.Literal}
	case lexer.LEFT_PAREN:
		p.advance()
		expr := p.parseExpr()
		p.expectCurr(lexer.RIGHT_PAREN)
		return expr
	case lexer.IDENT_TYPE:
		name := tok.Literal
		p.advance()
		if p.CurrToken.Type == lexer.LEFT_PAREN {
			return p.parseFuncCall(tok, name)
		}
		return &Var{base: base{Tok: tok}, Name: name}
	default:
		p.addError("expected an expression, got %s %q", tok.Type, tok.Literal)
		p.advance()
		return &Num{base: base{Tok: tok}, Val: &objects.Integer{Value: 0}}
	}
}

// parseFuncCall parses the `(arg1, ...)` suffix of a name already
// consumed by the caller, producing the shared FuncCall node used for
// both function calls and array element references.
func (p *Parser) parseFuncCall(tok lexer.Token, name string) Node {
	p.advance() // consume '('
	var args []Node
	if p.CurrToken.Type != lexer.RIGHT_PAREN {
		args = append(args, p.parseExpr())
		for p.CurrToken.Type == lexer.COMMA_DELIM {
			p.advance()
			args = append(args, p.parseExpr())
		}
	}
	p.expectCurr(lexer.RIGHT_PAREN)
	return &FuncCall{base: base{Tok: tok}, Name: name, Args: args}
}
