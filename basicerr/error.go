/*
File    : go-basic/basicerr/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package basicerr defines the shared error taxonomy used by the
// analyzer, the evaluator, the value model and the built-ins; the parser
// records its syntax errors as strings instead. Keeping the Kind type
// here, instead of in any one of those packages, avoids an import cycle
// between them.
package basicerr

import "fmt"

// Kind classifies what went wrong, independent of which pass caught it.
type Kind string

const (
	// Syntax covers lexical and grammatical errors: rogue characters,
	// unterminated strings, a suffix glued to more identifier text,
	// misplaced keywords.
	Syntax Kind = "Syntax"
	// Semantic covers structural errors that are not purely lexical.
	// The analysis pass raises it for a NEXT without (or not matching)
	// its FOR, an unmatched FOR, a FOR counter reused by a nested FOR, a
	// duplicate DIM and a non-constant DATA value; the evaluator raises
	// it for GOTO/GOSUB to a missing line, RETURN without GOSUB and READ
	// past the end of the DATA pool.
	Semantic Kind = "Semantic"
	// NoSuchVar is raised when a variable or array is read before any
	// assignment, READ, INPUT, or DIM gives it a value.
	NoSuchVar Kind = "NoSuchVar"
	// BadArg is raised when a builtin or user function receives an
	// argument of the wrong value kind (e.g. a string where a number
	// is required).
	BadArg Kind = "BadArg"
	// BadArity is raised when a function call or array reference
	// supplies the wrong number of arguments.
	BadArity Kind = "BadArity"
	// IndexOOB is raised when an array subscript falls outside the
	// bounds declared by its DIM.
	IndexOOB Kind = "IndexOOB"
	// DivByZero is raised by / and MOD when the divisor is zero.
	DivByZero Kind = "DivByZero"
)

// Error is the concrete error type threaded through every package.
// Line is the BASIC line number (0 when unknown). Column holds the
// 0-based offset of the statement within its colon-separated line when
// the evaluator raises the error, and 0 for analyzer errors; Error()
// prints each of them only when it is non-zero.
type Error struct {
	Kind    Kind
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	if e.Line > 0 {
		if e.Column > 0 {
			return fmt.Sprintf("%s error at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
		}
		return fmt.Sprintf("%s error at line %d: %s", e.Kind, e.Line, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// New builds an Error with no position information attached.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At builds an Error tagged with a source line (and optional column).
func At(kind Kind, line, column int, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Line: line, Column: column, Message: fmt.Sprintf(format, args...)}
}

// Is reports whether err is a *Error of the given Kind. It lets callers
// branch on error category (e.g. the CLI deciding an exit code) without
// a type assertion at every call site.
func Is(err error, kind Kind) bool {
	be, ok := err.(*Error)
	return ok && be.Kind == kind
}
