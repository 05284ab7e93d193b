/*
File    : go-basic/interp/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
)

// execIfThen evaluates Cond and runs Then (or Else, if present and Cond
// is false) as a single nested statement, forwarding whatever
// control-flow signal it produces. A false condition with no ELSE
// discards the rest of this line's colon-separated statements and
// advances straight to the next line, matching the original
// interpreter's Compound::eval, which stops the line on a falsy result
// rather than falling through to the next same-line statement.
func (e *Evaluator) execIfThen(s *parser.IfThen, line, offset int) (ctrl, error) {
	cond, err := e.Eval(s.Cond)
	if err != nil {
		return ctrl{}, err
	}
	if objects.IsTruthy(cond) {
		return e.execStmt(s.Then, line, offset)
	}
	if s.Else != nil {
		return e.execStmt(s.Else, line, offset)
	}
	return ctrl{kind: ctrlEndLine}, nil
}

// execOn evaluates Sel to a 1-based index into Targets and jumps (via
// GOTO or GOSUB, per IsGosub) to the selected line. An out-of-range
// selector is a silent fallthrough to the next statement, matching the
// original interpreter's ON...GOTO/GOSUB behavior.
func (e *Evaluator) execOn(s *parser.OnXXX) (ctrl, error) {
	sel, err := e.Eval(s.Sel)
	if err != nil {
		return ctrl{}, err
	}
	f, err := objects.AsFloat(sel)
	if err != nil {
		line, offset := s.Pos()
		return ctrl{}, basicerr.At(basicerr.BadArg, line, offset, "ON selector must be numeric")
	}
	n := int(f)
	if n < 1 || n > len(s.Targets) {
		return ctrl{}, nil
	}
	target := s.Targets[n-1]
	if s.IsGosub {
		return ctrl{kind: ctrlGosubLine, target: target}, nil
	}
	return ctrl{kind: ctrlGotoLine, target: target}, nil
}
