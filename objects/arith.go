/*
File    : go-basic/objects/arith.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"math"

	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/lexer"
)

// ApplyBinary implements BinOp's dispatch table: +, -, *, /, ^, DIV,
// MOD. `+` is overloaded on two strings (concatenation); every other
// operator requires numeric operands. Division by zero (/ and MOD)
// raises DivByZero; DIV and MOD additionally require both operands to
// be integers.
func ApplyBinary(op lexer.TokenType, left, right Value) (Value, error) {
	if op == lexer.PLUS_OP {
		ls, lIsStr := left.(*String)
		rs, rIsStr := right.(*String)
		if lIsStr && rIsStr {
			return &String{Value: ls.Value + rs.Value}, nil
		}
		if lIsStr != rIsStr {
			return nil, basicerr.New(basicerr.BadArg, "+ requires two numbers or two strings, got %s and %s", left.GetType(), right.GetType())
		}
	}

	if !IsNumeric(left) || !IsNumeric(right) {
		return nil, basicerr.New(basicerr.BadArg, "%s requires numeric operands, got %s and %s", op, left.GetType(), right.GetType())
	}

	li, lIsInt := left.(*Integer)
	ri, rIsInt := right.(*Integer)
	bothInt := lIsInt && rIsInt

	switch op {
	case lexer.DIV_KEY, lexer.MOD_KEY:
		if !bothInt {
			return nil, basicerr.New(basicerr.BadArg, "%s requires two integers, got %s and %s", op, left.GetType(), right.GetType())
		}
		if ri.Value == 0 {
			return nil, basicerr.New(basicerr.DivByZero, "%s by zero", op)
		}
		if op == lexer.DIV_KEY {
			return &Integer{Value: li.Value / ri.Value}, nil
		}
		return &Integer{Value: li.Value % ri.Value}, nil
	}

	if bothInt {
		switch op {
		case lexer.PLUS_OP:
			return &Integer{Value: li.Value + ri.Value}, nil
		case lexer.MINUS_OP:
			return &Integer{Value: li.Value - ri.Value}, nil
		case lexer.MUL_OP:
			return &Integer{Value: li.Value * ri.Value}, nil
		case lexer.DIV_OP:
			if ri.Value == 0 {
				return nil, basicerr.New(basicerr.DivByZero, "division by zero")
			}
			if li.Value%ri.Value == 0 {
				return &Integer{Value: li.Value / ri.Value}, nil
			}
			return &Float{Value: float64(li.Value) / float64(ri.Value)}, nil
		case lexer.POW_OP:
			return &Integer{Value: intPow(li.Value, ri.Value)}, nil
		}
	}

	lf, _ := AsFloat(left)
	rf, _ := AsFloat(right)
	switch op {
	case lexer.PLUS_OP:
		return &Float{Value: lf + rf}, nil
	case lexer.MINUS_OP:
		return &Float{Value: lf - rf}, nil
	case lexer.MUL_OP:
		return &Float{Value: lf * rf}, nil
	case lexer.DIV_OP:
		if rf == 0 {
			return nil, basicerr.New(basicerr.DivByZero, "division by zero")
		}
		return &Float{Value: lf / rf}, nil
	case lexer.POW_OP:
		return &Float{Value: math.Pow(lf, rf)}, nil
	default:
		return nil, basicerr.New(basicerr.BadArg, "unsupported operator %s", op)
	}
}

// intPow computes base**exp for non-negative integer exponents; a
// negative exponent falls back to truncated float power, matching what
// a BASIC programmer expects from `2^-1` on integers.
func intPow(base, exp int64) int64 {
	if exp < 0 {
		return int64(math.Pow(float64(base), float64(exp)))
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		result *= base
	}
	return result
}

// ApplyUnary implements unary +/-.
func ApplyUnary(op lexer.TokenType, v Value) (Value, error) {
	if !IsNumeric(v) {
		return nil, basicerr.New(basicerr.BadArg, "unary %s requires a number, got %s", op, v.GetType())
	}
	if op == lexer.PLUS_OP {
		return v, nil
	}
	switch n := v.(type) {
	case *Integer:
		return &Integer{Value: -n.Value}, nil
	case *Float:
		return &Float{Value: -n.Value}, nil
	default:
		return nil, basicerr.New(basicerr.BadArg, "unary - requires a number, got %s", v.GetType())
	}
}

// CompareRelation implements RelationOp: =, <>, <, >, <=, >=. Two
// strings compare byte-wise; numeric operands promote integer to float
// when mixed.
func CompareRelation(op lexer.TokenType, left, right Value) (Value, error) {
	ls, lIsStr := left.(*String)
	rs, rIsStr := right.(*String)
	if lIsStr && rIsStr {
		return boolToInt(compareStrings(op, ls.Value, rs.Value)), nil
	}
	if lIsStr != rIsStr {
		return nil, basicerr.New(basicerr.BadArg, "cannot compare %s with %s", left.GetType(), right.GetType())
	}
	if !IsNumeric(left) || !IsNumeric(right) {
		return nil, basicerr.New(basicerr.BadArg, "cannot compare %s with %s", left.GetType(), right.GetType())
	}
	lf, _ := AsFloat(left)
	rf, _ := AsFloat(right)
	return boolToInt(compareNumbers(op, lf, rf)), nil
}

func compareStrings(op lexer.TokenType, l, r string) bool {
	switch op {
	case lexer.EQ_OP:
		return l == r
	case lexer.NE_OP:
		return l != r
	case lexer.LT_OP:
		return l < r
	case lexer.GT_OP:
		return l > r
	case lexer.LE_OP:
		return l <= r
	case lexer.GE_OP:
		return l >= r
	}
	return false
}

func compareNumbers(op lexer.TokenType, l, r float64) bool {
	switch op {
	case lexer.EQ_OP:
		return l == r
	case lexer.NE_OP:
		return l != r
	case lexer.LT_OP:
		return l < r
	case lexer.GT_OP:
		return l > r
	case lexer.LE_OP:
		return l <= r
	case lexer.GE_OP:
		return l >= r
	}
	return false
}

func boolToInt(b bool) *Integer {
	if b {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}

// IsTruthy implements the language's falsy values: integer/float zero
// and Nil (the evaluator treats Nil as equivalent to zero). Every other
// value is truthy.
func IsTruthy(v Value) bool {
	switch n := v.(type) {
	case *Integer:
		return n.Value != 0
	case *Float:
		return n.Value != 0
	case *Nil:
		return false
	default:
		return true
	}
}
