/*
File    : go-basic/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-basic/lexer"

// parseStatement dispatches on the current token, one production per
// keyword in the statement grammar. An unrecognized leading token is a
// syntax error; the parser advances past it so a single bad statement
// doesn't loop forever.
func (p *Parser) parseStatement() Node {
	switch p.CurrToken.Type {
	case lexer.REM_KEY:
		tok := p.CurrToken
		p.advance()
		text := ""
		if p.CurrToken.Type == lexer.COMMENT_TYPE {
			text = p.CurrToken.Literal
			p.advance()
		}
		return &Comment{base: base{Tok: tok}, Text: text}
	case lexer.COMMENT_TYPE:
		tok := p.CurrToken
		p.advance()
		return &Comment{base: base{Tok: tok}, Text: tok.Literal}
	case lexer.DEF_KEY:
		return p.parseDefun()
	case lexer.INPUT_KEY:
		return p.parseInput()
	case lexer.PRINT_KEY, lexer.PRINTLN_KEY:
		return p.parsePrint()
	case lexer.END_KEY:
		tok := p.CurrToken
		p.advance()
		return &End{base: base{Tok: tok}}
	case lexer.RUN_KEY:
		tok := p.CurrToken
		p.advance()
		return &Run{base: base{Tok: tok}}
	case lexer.RESTORE_KEY:
		tok := p.CurrToken
		p.advance()
		return &Restore{base: base{Tok: tok}}
	case lexer.RETURN_KEY:
		tok := p.CurrToken
		p.advance()
		return &GoSubReturn{base: base{Tok: tok}}
	case lexer.LET_KEY:
		p.advance()
		return p.parseAssignment()
	case lexer.ON_KEY:
		return p.parseOn()
	case lexer.IF_KEY:
		return p.parseIfThen()
	case lexer.GOTO_KEY:
		return p.parseGoto()
	case lexer.GOSUB_KEY:
		return p.parseGosub()
	case lexer.FOR_KEY:
		return p.parseForLoop()
	case lexer.NEXT_KEY:
		return p.parseForNext()
	case lexer.READ_KEY:
		return p.parseRead()
	case lexer.DATA_KEY:
		return p.parseData()
	case lexer.DIM_KEY:
		return p.parseArrayDecl()
	case lexer.IDENT_TYPE:
		return p.parseIdentStatement()
	default:
		p.addError("unexpected %s %q at statement position", p.CurrToken.Type, p.CurrToken.Literal)
		p.advance()
		return nil
	}
}

// parsePrint parses PRINT/PRINTLN's comma/semicolon-separated item
// list. A trailing separator (nothing follows it before EOL/colon)
// suppresses the statement's own trailing newline; this is recorded by
// simply leaving that last separator's slot non-nil with no following
// item, which the evaluator checks.
func (p *Parser) parsePrint() Node {
	tok := p.CurrToken
	ln := tok.Type == lexer.PRINTLN_KEY
	p.advance()

	pr := &Print{base: base{Tok: tok}, Ln: ln}
	if p.atEOL() || p.CurrToken.Type == lexer.COLON_DELIM {
		return pr
	}
	pr.Items = append(pr.Items, p.parseExpr())
	for p.CurrToken.Type == lexer.COMMA_DELIM || p.CurrToken.Type == lexer.SEMICOLON_DELIM {
		sepTok := p.CurrToken
		pr.Seps = append(pr.Seps, &PrintSep{base: base{Tok: sepTok}, Op: sepTok.Type})
		p.advance()
		if p.atEOL() || p.CurrToken.Type == lexer.COLON_DELIM {
			return pr
		}
		pr.Items = append(pr.Items, p.parseExpr())
	}
	pr.Seps = append(pr.Seps, nil)
	return pr
}

// parseInput parses INPUT ["prompt",] v1, v2, ...
func (p *Parser) parseInput() Node {
	tok := p.CurrToken
	p.advance()
	in := &Input{base: base{Tok: tok}}
	if p.CurrToken.Type == lexer.STRING_LIT {
		strTok := p.CurrToken
		in.Prompt = &Str{base: base{Tok: strTok}, Val: strTok.Literal}
		p.advance()
		if p.CurrToken.Type == lexer.COMMA_DELIM || p.CurrToken.Type == lexer.SEMICOLON_DELIM {
			p.advance()
		}
	}
	in.Targets = append(in.Targets, p.parseLValue())
	for p.CurrToken.Type == lexer.COMMA_DELIM {
		p.advance()
		in.Targets = append(in.Targets, p.parseLValue())
	}
	return in
}

// parseRead parses READ v1, v2, ...
func (p *Parser) parseRead() Node {
	tok := p.CurrToken
	p.advance()
	r := &Read{base: base{Tok: tok}}
	r.Targets = append(r.Targets, p.parseLValue())
	for p.CurrToken.Type == lexer.COMMA_DELIM {
		p.advance()
		r.Targets = append(r.Targets, p.parseLValue())
	}
	return r
}

// parseData parses DATA c1, c2, ...
func (p *Parser) parseData() Node {
	tok := p.CurrToken
	p.advance()
	d := &Data{base: base{Tok: tok}}
	d.Values = append(d.Values, p.parseExpr())
	for p.CurrToken.Type == lexer.COMMA_DELIM {
		p.advance()
		d.Values = append(d.Values, p.parseExpr())
	}
	return d
}

// parseLValue parses a READ/INPUT target: a scalar variable or an
// array element reference, reusing the same production as a call.
func (p *Parser) parseLValue() Node {
	tok := p.CurrToken
	if tok.Type != lexer.IDENT_TYPE {
		p.addError("expected a variable name, got %s %q", tok.Type, tok.Literal)
		return &Var{base: base{Tok: tok}, Name: tok.Literal}
	}
	name := tok.Literal
	p.advance()
	if p.CurrToken.Type == lexer.LEFT_PAREN {
		return p.parseFuncCall(tok, name)
	}
	return &Var{base: base{Tok: tok}, Name: name}
}
