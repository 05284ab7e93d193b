/*
File    : go-basic/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-basic/lexer"

// parseForLoop parses `FOR v = init TO term [STEP step]`.
func (p *Parser) parseForLoop() Node {
	tok := p.CurrToken
	p.advance()

	if p.CurrToken.Type != lexer.IDENT_TYPE {
		p.addError("expected a variable name after FOR, got %s %q", p.CurrToken.Type, p.CurrToken.Literal)
		return &ForLoop{base: base{Tok: tok}}
	}
	varName := p.CurrToken.Literal
	p.advance()

	p.expectCurr(lexer.EQ_OP)
	init := p.parseExpr()
	p.expectCurr(lexer.TO_KEY)
	term := p.parseExpr()

	var step Node
	if p.CurrToken.Type == lexer.STEP_KEY {
		p.advance()
		step = p.parseExpr()
	}
	return &ForLoop{base: base{Tok: tok}, Var: varName, Init: init, Term: term, Step: step}
}

// parseForNext parses `NEXT [v]`.
func (p *Parser) parseForNext() Node {
	tok := p.CurrToken
	p.advance()
	name := ""
	if p.CurrToken.Type == lexer.IDENT_TYPE {
		name = p.CurrToken.Literal
		p.advance()
	}
	return &ForNext{base: base{Tok: tok}, Var: name}
}
