/*
File    : go-basic/parser/parser_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-basic/lexer"

// parseIfThen parses `IF cond THEN X [ELSE Y]`.
func (p *Parser) parseIfThen() Node {
	tok := p.CurrToken
	p.advance()
	cond := p.parseExpr()
	p.expectCurr(lexer.THEN_KEY)
	then := p.parseThenElseTarget()

	var elseBranch Node
	if p.CurrToken.Type == lexer.ELSE_KEY {
		p.advance()
		elseBranch = p.parseThenElseTarget()
	}
	return &IfThen{base: base{Tok: tok}, Cond: cond, Then: then, Else: elseBranch}
}

// parseThenElseTarget parses a THEN/ELSE branch, which is either an
// ordinary statement or a bare line number, sugar for GOTO n.
func (p *Parser) parseThenElseTarget() Node {
	if p.CurrToken.Type == lexer.INT_LIT {
		tok := p.CurrToken
		target := parseIntLiteral(tok.Literal)
		p.advance()
		return &Goto{base: base{Tok: tok}, Target: target}
	}
	return p.parseStatement()
}

// parseGoto parses `GOTO n`.
func (p *Parser) parseGoto() Node {
	tok := p.CurrToken
	p.advance()
	target := p.expectLineNumber()
	return &Goto{base: base{Tok: tok}, Target: target}
}

// parseGosub parses `GOSUB n`.
func (p *Parser) parseGosub() Node {
	tok := p.CurrToken
	p.advance()
	target := p.expectLineNumber()
	return &GoSub{base: base{Tok: tok}, Target: target}
}

// expectLineNumber consumes an INT_LIT target line number, recording a
// syntax error (and returning 0) if one isn't there.
func (p *Parser) expectLineNumber() int64 {
	if p.CurrToken.Type != lexer.INT_LIT {
		p.addError("expected a line number, got %s %q", p.CurrToken.Type, p.CurrToken.Literal)
		return 0
	}
	n := parseIntLiteral(p.CurrToken.Literal)
	p.advance()
	return n
}

// parseOn parses `ON e GOTO n1,n2,...` or `ON e GOSUB n1,n2,...`.
func (p *Parser) parseOn() Node {
	tok := p.CurrToken
	p.advance()
	sel := p.parseExpr()

	on := &OnXXX{base: base{Tok: tok}, Sel: sel}
	switch p.CurrToken.Type {
	case lexer.GOTO_KEY:
		p.advance()
	case lexer.GOSUB_KEY:
		on.IsGosub = true
		p.advance()
	default:
		p.addError("expected GOTO or GOSUB after ON, got %s %q", p.CurrToken.Type, p.CurrToken.Literal)
		return on
	}

	on.Targets = append(on.Targets, p.expectLineNumber())
	for p.CurrToken.Type == lexer.COMMA_DELIM {
		p.advance()
		on.Targets = append(on.Targets, p.expectLineNumber())
	}
	return on
}
