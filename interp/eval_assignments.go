/*
File    : go-basic/interp/eval_assignments.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
)

// execAssignment evaluates the right-hand side, coerces it to the type
// the target name's suffix demands, then writes it to a scalar
// variable or an array element.
func (e *Evaluator) execAssignment(s *parser.Assignment) error {
	val, err := e.Eval(s.Value)
	if err != nil {
		return err
	}

	switch t := s.Target.(type) {
	case *parser.Var:
		coerced, err := coerceForSuffix(t.Name, val)
		if err != nil {
			line, offset := t.Pos()
			return basicerr.At(basicerr.BadArg, line, offset, "%s", err)
		}
		e.Scp.Assign(t.Name, coerced)
		return nil

	case *parser.FuncCall:
		line, offset := t.Pos()
		v, ok := e.Scp.LookUp(t.Name)
		if !ok {
			return basicerr.At(basicerr.NoSuchVar, line, offset, "array not DIM'd: %s", t.Name)
		}
		arr, ok := v.(*objects.Array)
		if !ok {
			return basicerr.At(basicerr.BadArg, line, offset, "%s is not an array", t.Name)
		}
		idx, err := e.evalIndices(t.Args)
		if err != nil {
			return err
		}
		coerced, err := coerceForSuffix(t.Name, val)
		if err != nil {
			return basicerr.At(basicerr.BadArg, line, offset, "%s", err)
		}
		if err := arr.Set(idx, coerced); err != nil {
			kind := basicerr.IndexOOB
			if basicerr.Is(err, basicerr.BadArity) {
				kind = basicerr.BadArity
			}
			return basicerr.At(kind, line, offset, "%s", err)
		}
		return nil

	default:
		line, offset := s.Pos()
		return basicerr.At(basicerr.Semantic, line, offset, "invalid assignment target %T", s.Target)
	}
}

// coerceForSuffix enforces the name-suffix type discipline: a trailing
// `$` demands a String, `%` truncates to Integer, `#`/`!` widen to
// Float, and a bare name demands a number (use a $ name for strings).
func coerceForSuffix(name string, v objects.Value) (objects.Value, error) {
	if name == "" {
		return v, nil
	}
	switch name[len(name)-1] {
	case '$':
		if v.GetType() != objects.StringType {
			return nil, basicerr.New(basicerr.BadArg, "%s requires a string value, got %s", name, v.GetType())
		}
		return v, nil
	case '%':
		if !objects.IsNumeric(v) {
			return nil, basicerr.New(basicerr.BadArg, "%s requires a numeric value, got %s", name, v.GetType())
		}
		f, _ := objects.AsFloat(v)
		return &objects.Integer{Value: int64(f)}, nil
	case '#', '!':
		if !objects.IsNumeric(v) {
			return nil, basicerr.New(basicerr.BadArg, "%s requires a numeric value, got %s", name, v.GetType())
		}
		f, _ := objects.AsFloat(v)
		return &objects.Float{Value: f}, nil
	default:
		if !objects.IsNumeric(v) {
			return nil, basicerr.New(basicerr.BadArg, "%s requires a numeric value; use a $ suffix to hold a string", name)
		}
		return v, nil
	}
}
