/*
File    : go-basic/parser/parser_assignments.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-basic/lexer"

// parseIdentStatement handles a statement that starts with a bare
// identifier: either `name = expr`, `name(i1,...) = expr`, or a bare
// `name(...)` call used for effect (its result is discarded).
func (p *Parser) parseIdentStatement() Node {
	tok := p.CurrToken
	name := tok.Literal
	p.advance()

	var target Node = &Var{base: base{Tok: tok}, Name: name}
	if p.CurrToken.Type == lexer.LEFT_PAREN {
		target = p.parseFuncCall(tok, name)
	}

	if p.CurrToken.Type == lexer.EQ_OP {
		p.advance()
		value := p.parseExpr()
		return &Assignment{base: base{Tok: tok}, Target: target, Value: value}
	}

	if _, isCall := target.(*FuncCall); isCall {
		return target
	}
	p.addError("bare variable %q is not a valid statement", name)
	return target
}

// parseAssignment parses the form required after an explicit LET: it
// must be an assignment, not a bare call.
func (p *Parser) parseAssignment() Node {
	tok := p.CurrToken
	if tok.Type != lexer.IDENT_TYPE {
		p.addError("expected a variable name after LET, got %s %q", tok.Type, tok.Literal)
		return nil
	}
	name := tok.Literal
	p.advance()

	var target Node = &Var{base: base{Tok: tok}, Name: name}
	if p.CurrToken.Type == lexer.LEFT_PAREN {
		target = p.parseFuncCall(tok, name)
	}
	if !p.expectCurr(lexer.EQ_OP) {
		return target
	}
	value := p.parseExpr()
	return &Assignment{base: base{Tok: tok}, Target: target, Value: value}
}
