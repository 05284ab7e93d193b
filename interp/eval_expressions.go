/*
File    : go-basic/interp/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/function"
	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
	"github.com/akashmaji946/go-basic/scope"
	"github.com/akashmaji946/go-basic/std"
)

// Eval evaluates an expression node to a runtime Value.
func (e *Evaluator) Eval(n parser.Node) (objects.Value, error) {
	switch v := n.(type) {
	case valueNode:
		return v.v, nil
	case *parser.Num:
		return v.Val, nil
	case *parser.Str:
		return &objects.String{Value: v.Val}, nil
	case *parser.Var:
		val, ok := e.Scp.LookUp(v.Name)
		if !ok {
			line, offset := v.Pos()
			return nil, basicerr.At(basicerr.NoSuchVar, line, offset, "undefined variable: %s", v.Name)
		}
		return val, nil
	case *parser.UnaryOp:
		right, err := e.Eval(v.Right)
		if err != nil {
			return nil, err
		}
		return objects.ApplyUnary(v.Op, right)
	case *parser.BinOp:
		left, err := e.Eval(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(v.Right)
		if err != nil {
			return nil, err
		}
		return objects.ApplyBinary(v.Op, left, right)
	case *parser.RelationOp:
		left, err := e.Eval(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(v.Right)
		if err != nil {
			return nil, err
		}
		return objects.CompareRelation(v.Op, left, right)
	case *parser.NotFactor:
		right, err := e.Eval(v.Right)
		if err != nil {
			return nil, err
		}
		if objects.IsTruthy(right) {
			return &objects.Integer{Value: 0}, nil
		}
		return &objects.Integer{Value: 1}, nil
	case *parser.BoolTerm:
		return e.evalBool(v.Op, v.Left, v.Right)
	case *parser.BoolExpr:
		return e.evalBool(v.Op, v.Left, v.Right)
	case *parser.FuncCall:
		return e.evalFuncCall(v)
	default:
		line, offset := n.Pos()
		return nil, basicerr.At(basicerr.Semantic, line, offset, "cannot evaluate %T as an expression", n)
	}
}

// evalBool evaluates AND/OR/XOR with short-circuit for AND/OR: the
// right side is skipped once the left side already decides the result.
func (e *Evaluator) evalBool(op lexer.TokenType, leftNode, rightNode parser.Node) (objects.Value, error) {
	left, err := e.Eval(leftNode)
	if err != nil {
		return nil, err
	}
	leftTruthy := objects.IsTruthy(left)

	switch op {
	case lexer.AND_KEY:
		if !leftTruthy {
			return &objects.Integer{Value: 0}, nil
		}
		right, err := e.Eval(rightNode)
		if err != nil {
			return nil, err
		}
		return boolResult(objects.IsTruthy(right)), nil
	case lexer.OR_KEY:
		if leftTruthy {
			return &objects.Integer{Value: 1}, nil
		}
		right, err := e.Eval(rightNode)
		if err != nil {
			return nil, err
		}
		return boolResult(objects.IsTruthy(right)), nil
	case lexer.XOR_KEY:
		right, err := e.Eval(rightNode)
		if err != nil {
			return nil, err
		}
		return boolResult(leftTruthy != objects.IsTruthy(right)), nil
	default:
		return nil, basicerr.New(basicerr.Semantic, "unsupported boolean operator %s", op)
	}
}

func boolResult(b bool) *objects.Integer {
	if b {
		return &objects.Integer{Value: 1}
	}
	return &objects.Integer{Value: 0}
}

// evalArgs evaluates a list of argument expressions in order.
func (e *Evaluator) evalArgs(nodes []parser.Node) ([]objects.Value, error) {
	args := make([]objects.Value, len(nodes))
	for i, n := range nodes {
		v, err := e.Eval(n)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// evalIndices evaluates an array reference's subscript list to int64s.
func (e *Evaluator) evalIndices(nodes []parser.Node) ([]int64, error) {
	idx := make([]int64, len(nodes))
	for i, n := range nodes {
		v, err := e.Eval(n)
		if err != nil {
			return nil, err
		}
		f, err := objects.AsFloat(v)
		if err != nil {
			line, offset := n.Pos()
			return nil, basicerr.At(basicerr.BadArg, line, offset, "array subscript must be numeric")
		}
		idx[i] = int64(f)
	}
	return idx, nil
}

// evalFuncCall dynamically disambiguates a FuncCall node: an array
// element reference (Name already bound to an *objects.Array), a
// user-defined function (DEF'd, registered in State.Functions), or a
// native built-in (std.Builtins). The same grammar production covers
// all three, so there is nothing to decide until Name is resolved.
func (e *Evaluator) evalFuncCall(fc *parser.FuncCall) (objects.Value, error) {
	line, offset := fc.Pos()

	if v, ok := e.Scp.LookUp(fc.Name); ok {
		if arr, ok := v.(*objects.Array); ok {
			idx, err := e.evalIndices(fc.Args)
			if err != nil {
				return nil, err
			}
			val, err := arr.Get(idx)
			if err != nil {
				kind := basicerr.IndexOOB
				if basicerr.Is(err, basicerr.BadArity) {
					kind = basicerr.BadArity
				}
				return nil, basicerr.At(kind, line, offset, "%s", err)
			}
			return val, nil
		}
	}

	if uf, ok := e.State.Functions[fc.Name]; ok {
		return e.callUserFunc(uf, fc.Args, line, offset)
	}

	if nf, ok := std.Builtins[fc.Name]; ok {
		args, err := e.evalArgs(fc.Args)
		if err != nil {
			return nil, err
		}
		val, err := nf.Fn(args)
		if err != nil {
			return nil, err
		}
		return val, nil
	}

	return nil, basicerr.At(basicerr.NoSuchVar, line, offset, "undefined array or function: %s", fc.Name)
}

// callUserFunc binds argument values to parameter names in a fresh
// frame parented on the global scope (so a DEF'd function body can
// still read globals) and evaluates its single-expression body.
func (e *Evaluator) callUserFunc(uf *function.UserFunc, argNodes []parser.Node, line, offset int) (objects.Value, error) {
	if len(argNodes) != len(uf.Params) {
		return nil, basicerr.At(basicerr.BadArity, line, offset, "%s expects %d argument(s), got %d", uf.Name, len(uf.Params), len(argNodes))
	}
	args, err := e.evalArgs(argNodes)
	if err != nil {
		return nil, err
	}
	root := e.Scp
	for root.Parent != nil {
		root = root.Parent
	}
	callScope := scope.NewScope(root)
	for i, p := range uf.Params {
		callScope.Bind(p, args[i])
	}
	saved := e.Scp
	e.Scp = callScope
	result, err := e.Eval(uf.Body)
	e.Scp = saved
	return result, err
}
