/*
File    : go-basic/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-basic/lexer"

// parseDefun parses `DEF name[(p1,...,pk)] = expr`.
func (p *Parser) parseDefun() Node {
	tok := p.CurrToken
	p.advance()

	if p.CurrToken.Type != lexer.IDENT_TYPE {
		p.addError("expected a function name after DEF, got %s %q", p.CurrToken.Type, p.CurrToken.Literal)
		return &Defun{base: base{Tok: tok}}
	}
	name := p.CurrToken.Literal
	p.advance()

	var params []string
	if p.CurrToken.Type == lexer.LEFT_PAREN {
		p.advance()
		if p.CurrToken.Type != lexer.RIGHT_PAREN {
			params = append(params, p.expectParamName())
			for p.CurrToken.Type == lexer.COMMA_DELIM {
				p.advance()
				params = append(params, p.expectParamName())
			}
		}
		p.expectCurr(lexer.RIGHT_PAREN)
	}

	p.expectCurr(lexer.EQ_OP)
	body := p.parseExpr()
	return &Defun{base: base{Tok: tok}, Name: name, Params: params, Body: body}
}

func (p *Parser) expectParamName() string {
	if p.CurrToken.Type != lexer.IDENT_TYPE {
		p.addError("expected a parameter name, got %s %q", p.CurrToken.Type, p.CurrToken.Literal)
		return ""
	}
	name := p.CurrToken.Literal
	p.advance()
	return name
}

// parseArrayDecl parses `DIM decl1, decl2, ...`.
func (p *Parser) parseArrayDecl() Node {
	tok := p.CurrToken
	p.advance()

	decl := &ArrayDecl{base: base{Tok: tok}}
	decl.Decls = append(decl.Decls, p.parseArrayDim())
	for p.CurrToken.Type == lexer.COMMA_DELIM {
		p.advance()
		decl.Decls = append(decl.Decls, p.parseArrayDim())
	}
	return decl
}

// parseArrayDim parses one `name(s1,...,sk)` declarator.
func (p *Parser) parseArrayDim() ArrayDim {
	if p.CurrToken.Type != lexer.IDENT_TYPE {
		p.addError("expected an array name, got %s %q", p.CurrToken.Type, p.CurrToken.Literal)
		return ArrayDim{}
	}
	name := p.CurrToken.Literal
	p.advance()
	p.expectCurr(lexer.LEFT_PAREN)

	dims := &ArrayDim{Name: name}
	dims.Dims = append(dims.Dims, p.parseExpr())
	for p.CurrToken.Type == lexer.COMMA_DELIM {
		p.advance()
		dims.Dims = append(dims.Dims, p.parseExpr())
	}
	p.expectCurr(lexer.RIGHT_PAREN)
	return *dims
}
