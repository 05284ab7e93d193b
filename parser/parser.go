/*
File    : go-basic/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a lexer.Token stream into a Program AST by
// classical recursive descent. Syntax errors are accumulated rather
// than panicking, so a single Parse call can report more than one
// problem at once.
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-basic/lexer"
)

// Parser walks a token stream with one token of lookahead.
type Parser struct {
	Lex *lexer.Lexer

	CurrToken lexer.Token
	NextToken lexer.Token

	Errors []string
}

// NewParser creates a Parser over lex and primes both lookahead slots.
func NewParser(lex *lexer.Lexer) *Parser {
	p := &Parser{Lex: lex}
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead window forward by one token.
func (p *Parser) advance() {
	p.CurrToken = p.NextToken
	p.NextToken = p.Lex.NextToken()
}

// HasErrors reports whether any syntax error was recorded.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns every syntax error recorded so far.
func (p *Parser) GetErrors() []string { return p.Errors }

// addError records a formatted syntax error tagged with the current
// token's source address.
func (p *Parser) addError(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	p.Errors = append(p.Errors, fmt.Sprintf("Syntax near %s: %s", p.CurrToken.Pos, msg))
}

// expectCurr checks the current token's type, records an error and
// returns false if it doesn't match, and advances past it if it does.
func (p *Parser) expectCurr(tt lexer.TokenType) bool {
	if p.CurrToken.Type != tt {
		p.addError("expected %s, got %s %q", tt, p.CurrToken.Type, p.CurrToken.Literal)
		return false
	}
	p.advance()
	return true
}

// atEOL reports whether the current token ends a line: an explicit
// EOL or EOF. A COLON_DELIM statement separator does not count; the
// statements loop consumes it.
func (p *Parser) atEOL() bool {
	return p.CurrToken.Type == lexer.EOL_TYPE || p.CurrToken.Type == lexer.EOF_TYPE
}

// skipEOLs consumes zero or more consecutive blank lines.
func (p *Parser) skipEOLs() {
	for p.CurrToken.Type == lexer.EOL_TYPE {
		p.advance()
	}
}

// Parse runs the parser to completion and returns the Program. Callers
// should check HasErrors afterwards; a Program with recorded errors is
// still returned (partially built) so tooling can still inspect it.
func (p *Parser) Parse() *Program {
	return p.parseProgram()
}

// parseProgram consumes lines until EOF.
func (p *Parser) parseProgram() *Program {
	prog := &Program{base: base{Tok: p.CurrToken}}
	p.skipEOLs()
	for p.CurrToken.Type != lexer.EOF_TYPE {
		line := p.parseLine()
		if line != nil {
			prog.Lines = append(prog.Lines, line)
		}
		p.skipEOLs()
	}
	return prog
}

// parseLine parses one `[INTEGER]? statements? EOL?` line.
func (p *Parser) parseLine() *Compound {
	startTok := p.CurrToken
	comp := &Compound{base: base{Tok: startTok}}

	if p.CurrToken.Type == lexer.INT_LIT && p.NextToken.Type != lexer.LEFT_PAREN {
		n := parseIntLiteral(p.CurrToken.Literal)
		comp.Number = n
		comp.HasNumber = true
		p.advance()
	}

	if !p.atEOL() {
		comp.Stmts = p.parseStatements(comp.Number)
	}

	if p.CurrToken.Type == lexer.EOL_TYPE {
		p.advance()
	} else if p.CurrToken.Type != lexer.EOF_TYPE {
		p.addError("expected end of line, got %s %q", p.CurrToken.Type, p.CurrToken.Literal)
		// Recover by skipping to the next EOL/EOF so one bad line
		// doesn't cascade into spurious errors on every line after.
		for !p.atEOL() {
			p.advance()
		}
		if p.CurrToken.Type == lexer.EOL_TYPE {
			p.advance()
		}
	}
	return comp
}

// parseStatements parses one-or-more colon-separated statements,
// stamping each with lineNumber and its sequential offset.
func (p *Parser) parseStatements(lineNumber int64) []Node {
	var stmts []Node
	offset := 0
	for {
		stmt := p.parseStatement()
		if stmt != nil {
			if b, ok := stmt.(interface{ setPos(int, int) }); ok {
				b.setPos(int(lineNumber), offset)
			}
			stmts = append(stmts, stmt)
			offset++
		}
		if p.CurrToken.Type != lexer.COLON_DELIM {
			break
		}
		p.advance()
	}
	return stmts
}

// parseIntLiteral parses a decimal literal known to match INT_LIT;
// parse failures can't happen here because the lexer already validated
// the digit run, so a malformed literal is a lexer/parser contract bug
// rather than user input to recover from.
func parseIntLiteral(lit string) int64 {
	var n int64
	for i := 0; i < len(lit); i++ {
		n = n*10 + int64(lit[i]-'0')
	}
	return n
}
