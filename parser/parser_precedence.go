/*
File    : go-basic/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-basic/lexer"

// isBoolExprOp reports membership in the loosest-binding level: OR/XOR.
func isBoolExprOp(tt lexer.TokenType) bool {
	return tt == lexer.OR_KEY || tt == lexer.XOR_KEY
}

// isRelationalOp reports membership in the comparison level.
func isRelationalOp(tt lexer.TokenType) bool {
	switch tt {
	case lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return true
	}
	return false
}

// isAdditiveOp reports membership in the + / - level.
func isAdditiveOp(tt lexer.TokenType) bool {
	return tt == lexer.PLUS_OP || tt == lexer.MINUS_OP
}

// isMultiplicativeOp reports membership in the * / DIV / MOD level.
func isMultiplicativeOp(tt lexer.TokenType) bool {
	switch tt {
	case lexer.MUL_OP, lexer.DIV_OP, lexer.DIV_KEY, lexer.MOD_KEY:
		return true
	}
	return false
}
