/*
File    : go-basic/interp/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
)

// execForLoop binds the counter to its initial value and records where
// execution should resume each time the matching NEXT loops back: the
// statement immediately following this FOR. If the initial value
// already violates the TO bound (given STEP's sign), the body never
// runs: execution skips straight past the matching NEXT, the same way
// execForNext ends the loop on any other iteration.
func (e *Evaluator) execForLoop(s *parser.ForLoop, line, offset int) (ctrl, error) {
	d, ok := e.State.ForAtSite(line, offset)
	if !ok {
		return ctrl{}, basicerr.At(basicerr.Semantic, line, offset, "FOR %s: not paired by analysis", s.Var)
	}
	init, err := e.Eval(s.Init)
	if err != nil {
		return ctrl{}, err
	}
	if !objects.IsNumeric(init) {
		return ctrl{}, basicerr.At(basicerr.BadArg, line, offset, "FOR %s: initial value must be numeric", s.Var)
	}
	e.Scp.Assign(s.Var, init)

	d.BodyPC, d.BodyOffset = e.pc, e.progOffset+1

	step := objects.Value(&objects.Integer{Value: 1})
	if s.Step != nil {
		v, err := e.Eval(s.Step)
		if err != nil {
			return ctrl{}, err
		}
		step = v
	}
	term, err := e.Eval(s.Term)
	if err != nil {
		return ctrl{}, err
	}

	stepF, err := objects.AsFloat(step)
	if err != nil {
		return ctrl{}, basicerr.At(basicerr.BadArg, line, offset, "FOR %s: STEP must be numeric", s.Var)
	}
	initF, _ := objects.AsFloat(init)
	termF, err := objects.AsFloat(term)
	if err != nil {
		return ctrl{}, basicerr.At(basicerr.BadArg, line, offset, "FOR %s: TO must be numeric", s.Var)
	}

	var keepGoing bool
	if stepF >= 0 {
		keepGoing = initF <= termF
	} else {
		keepGoing = initF >= termF
	}
	if keepGoing {
		return ctrl{}, nil
	}

	idx, ok := e.State.LineTable[int64(d.EndLine)]
	if !ok {
		return ctrl{}, basicerr.At(basicerr.Semantic, line, offset, "FOR %s: matching NEXT not found", s.Var)
	}
	e.pc, e.progOffset = idx, d.EndOffset+1
	return ctrl{kind: ctrlJumpPC}, nil
}

// execForNext advances the loop counter by STEP (default 1) and, if
// the counter has not yet passed TO's term, jumps back to the body.
// STEP's sign is re-evaluated on every iteration (rather than cached at
// FOR-entry), so a STEP expression that changes sign mid-loop changes
// the loop's direction immediately, matching the original interpreter.
func (e *Evaluator) execForNext(s *parser.ForNext, line, offset int) (ctrl, error) {
	d, ok := e.State.ForAtNext(line, offset)
	if !ok {
		return ctrl{}, basicerr.At(basicerr.Semantic, line, offset, "NEXT: not paired by analysis")
	}

	cur, ok := e.Scp.LookUp(d.Var)
	if !ok {
		return ctrl{}, basicerr.At(basicerr.NoSuchVar, line, offset, "undefined FOR counter: %s", d.Var)
	}

	step := objects.Value(&objects.Integer{Value: 1})
	if d.Node.Step != nil {
		v, err := e.Eval(d.Node.Step)
		if err != nil {
			return ctrl{}, err
		}
		step = v
	}

	next, err := objects.ApplyBinary(lexer.PLUS_OP, cur, step)
	if err != nil {
		return ctrl{}, err
	}
	e.Scp.Assign(d.Var, next)

	term, err := e.Eval(d.Node.Term)
	if err != nil {
		return ctrl{}, err
	}

	stepF, err := objects.AsFloat(step)
	if err != nil {
		return ctrl{}, basicerr.At(basicerr.BadArg, line, offset, "FOR %s: STEP must be numeric", d.Var)
	}
	nextF, _ := objects.AsFloat(next)
	termF, err := objects.AsFloat(term)
	if err != nil {
		return ctrl{}, basicerr.At(basicerr.BadArg, line, offset, "FOR %s: TO must be numeric", d.Var)
	}

	var keepGoing bool
	if stepF >= 0 {
		keepGoing = nextF <= termF
	} else {
		keepGoing = nextF >= termF
	}

	if keepGoing {
		e.pc, e.progOffset = d.BodyPC, d.BodyOffset
		return ctrl{kind: ctrlJumpPC}, nil
	}
	return ctrl{}, nil
}
