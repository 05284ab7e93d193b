/*
File: go-basic/lexer/lexer_utils.go
Author: Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package lexer

import "unicode"

// isDigitASCII reports whether c is an ASCII decimal digit.
func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// isWhitespace reports whether c is a non-newline whitespace byte.
func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r'
}

// isAlpha reports whether c can start or continue an identifier letter.
func isAlpha(c byte) bool {
	return unicode.IsLetter(rune(c))
}

// isAlphanumeric reports whether c may continue an identifier body.
func isAlphanumeric(c byte) bool {
	return unicode.IsLetter(rune(c)) || unicode.IsDigit(rune(c))
}

// isSuffix reports whether c is one of the value-kind suffix characters
// a variable name may end with ($ % # !), per the name-suffix discipline.
func isSuffix(c byte) bool {
	return c == '$' || c == '%' || c == '#' || c == '!'
}
