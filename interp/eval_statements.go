/*
File    : go-basic/interp/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
)

// printZoneWidth is the classic BASIC print-zone width a comma
// separator advances to, matching the line-printer column tabs the
// original PRINT statement assumed.
const printZoneWidth = 14

// execPrint renders a PRINT/PRINTLN statement's items, honoring the
// comma (advance to next print zone) and semicolon (no separator)
// between them, and the newline-suppressing trailing separator.
func (e *Evaluator) execPrint(s *parser.Print) error {
	for i, item := range s.Items {
		v, err := e.Eval(item)
		if err != nil {
			return err
		}
		e.write(v.ToString())
		if i < len(s.Seps) && s.Seps[i] != nil && s.Seps[i].Op == lexer.COMMA_DELIM {
			e.writeZonePad()
		}
	}
	suppressNewline := len(s.Seps) > 0 && s.Seps[len(s.Seps)-1] != nil
	if !suppressNewline || s.Ln {
		e.write("\n")
		e.col = 0
	}
	return nil
}

// write sends text to the evaluator's writer and tracks the output
// column so PRINT's comma separator can pad to the next print zone.
func (e *Evaluator) write(text string) {
	fmt.Fprint(e.Writer, text)
	for _, r := range text {
		if r == '\n' {
			e.col = 0
		} else {
			e.col++
		}
	}
}

// writeZonePad pads with spaces up to the next print-zone boundary.
func (e *Evaluator) writeZonePad() {
	pad := printZoneWidth - (e.col % printZoneWidth)
	e.write(spacesOf(pad))
}

func spacesOf(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// execInput reads one value per target, optionally printing a leading
// prompt, and assigns each via the same suffix-coercion path as a
// plain assignment.
func (e *Evaluator) execInput(s *parser.Input) error {
	if s.Prompt != nil {
		e.write(s.Prompt.Val)
	}
	for _, target := range s.Targets {
		name := targetName(target)
		raw, err := e.Input.ReadLine(name + "? ")
		if err != nil {
			return basicerr.New(basicerr.Semantic, "INPUT: %s", err)
		}
		val := parseInputValue(name, raw)
		if err := e.assignTo(target, val); err != nil {
			return err
		}
	}
	return nil
}

// execRead assigns the next value(s) from the DATA pool to each
// target, in order, advancing State.DataPtr.
func (e *Evaluator) execRead(s *parser.Read) error {
	for _, target := range s.Targets {
		if e.State.DataPtr >= len(e.State.DataPool) {
			line, offset := target.Pos()
			return basicerr.At(basicerr.Semantic, line, offset, "READ: out of DATA")
		}
		val := e.State.DataPool[e.State.DataPtr]
		e.State.DataPtr++
		if err := e.assignTo(target, val); err != nil {
			return err
		}
	}
	return nil
}

// assignTo writes val to a READ/INPUT target, which is always a *Var
// or a *FuncCall standing in for an array element — the same shape
// execAssignment's Target handles.
func (e *Evaluator) assignTo(target parser.Node, val objects.Value) error {
	return e.execAssignment(&parser.Assignment{Target: target, Value: valueLiteral(val)})
}

// valueLiteral wraps an already-computed Value back into a Node so it
// can be threaded through execAssignment's ordinary Eval(s.Value) path.
type valueNode struct{ v objects.Value }

func (valueNode) Literal() string          { return "" }
func (valueNode) Pos() (int, int)          { return 0, 0 }
func valueLiteral(v objects.Value) parser.Node { return valueNode{v: v} }

func targetName(n parser.Node) string {
	switch t := n.(type) {
	case *parser.Var:
		return t.Name
	case *parser.FuncCall:
		return t.Name
	default:
		return ""
	}
}

// parseInputValue converts one line of raw INPUT text to a Value,
// guided by the target name's suffix: `$` keeps it a string, anything
// else attempts a numeric parse the way VAL does (falling back to
// integer zero on anything unparseable).
func parseInputValue(name, raw string) objects.Value {
	if name != "" && name[len(name)-1] == '$' {
		return &objects.String{Value: raw}
	}
	trimmed := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return &objects.Integer{Value: 0}
	}
	if !strings.ContainsAny(trimmed, ".eE") {
		return &objects.Integer{Value: int64(f)}
	}
	return &objects.Float{Value: f}
}

// execArrayDecl allocates one Array per declarator and binds it in the
// current frame (the global frame at top level, since DIM inside a
// DEF'd function body is not a construct this language has).
func (e *Evaluator) execArrayDecl(s *parser.ArrayDecl) error {
	for _, decl := range s.Decls {
		dims, err := e.evalIndices(decl.Dims)
		if err != nil {
			return err
		}
		e.Scp.Bind(decl.Name, objects.NewArray(dims))
	}
	return nil
}
