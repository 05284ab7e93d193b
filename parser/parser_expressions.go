/*
File    : go-basic/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-basic/lexer"

// parseExpr is the single entry point for every expression context:
// PRINT items, DATA values, array dims, function arguments, conditions.
func (p *Parser) parseExpr() Node {
	return p.parseBoolExpr()
}

// parseBoolExpr: boolTerm ( (OR|XOR) boolTerm )*
func (p *Parser) parseBoolExpr() Node {
	left := p.parseBoolTerm()
	for isBoolExprOp(p.CurrToken.Type) {
		tok := p.CurrToken
		op := tok.Type
		p.advance()
		right := p.parseBoolTerm()
		left = &BoolExpr{base: base{Tok: tok}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseBoolTerm: notFactor ( AND notFactor )*
func (p *Parser) parseBoolTerm() Node {
	left := p.parseNotFactor()
	for p.CurrToken.Type == lexer.AND_KEY {
		tok := p.CurrToken
		p.advance()
		right := p.parseNotFactor()
		left = &BoolTerm{base: base{Tok: tok}, Op: lexer.AND_KEY, Left: left, Right: right}
	}
	return left
}

// parseNotFactor: NOT notFactor | relational
func (p *Parser) parseNotFactor() Node {
	if p.CurrToken.Type == lexer.NOT_KEY {
		tok := p.CurrToken
		p.advance()
		right := p.parseNotFactor()
		return &NotFactor{base: base{Tok: tok}, Right: right}
	}
	return p.parseRelational()
}

// parseRelational: additive ( (=|<>|<|>|<=|>=) additive )?
func (p *Parser) parseRelational() Node {
	left := p.parseAdditive()
	if isRelationalOp(p.CurrToken.Type) {
		tok := p.CurrToken
		op := tok.Type
		p.advance()
		right := p.parseAdditive()
		return &RelationOp{base: base{Tok: tok}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseAdditive: multiplicative ( (+|-) multiplicative )*
// `+` is overloaded on strings (concatenation) at evaluation time.
func (p *Parser) parseAdditive() Node {
	left := p.parseMultiplicative()
	for isAdditiveOp(p.CurrToken.Type) {
		tok := p.CurrToken
		op := tok.Type
		p.advance()
		right := p.parseMultiplicative()
		left = &BinOp{base: base{Tok: tok}, Op: op, Left: left, Right: right}
	}
	return left
}

// parseMultiplicative: power ( (*|/|DIV|MOD) power )*
func (p *Parser) parseMultiplicative() Node {
	left := p.parsePower()
	for isMultiplicativeOp(p.CurrToken.Type) {
		tok := p.CurrToken
		op := tok.Type
		p.advance()
		right := p.parsePower()
		left = &BinOp{base: base{Tok: tok}, Op: op, Left: left, Right: right}
	}
	return left
}

// parsePower: unary ( ^ power )? -- right-associative, hence the
// recursive call back into parsePower rather than a loop.
func (p *Parser) parsePower() Node {
	left := p.parseUnary()
	if p.CurrToken.Type == lexer.POW_OP {
		tok := p.CurrToken
		p.advance()
		right := p.parsePower()
		return &BinOp{base: base{Tok: tok}, Op: lexer.POW_OP, Left: left, Right: right}
	}
	return left
}

// parseUnary: (+|-) unary | primary
func (p *Parser) parseUnary() Node {
	if p.CurrToken.Type == lexer.PLUS_OP || p.CurrToken.Type == lexer.MINUS_OP {
		tok := p.CurrToken
		op := tok.Type
		p.advance()
		right := p.parseUnary()
		return &UnaryOp{base: base{Tok: tok}, Op: op, Right: right}
	}
	return p.parsePrimary()
}
