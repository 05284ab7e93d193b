/*
File    : go-basic/objects/arith_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"testing"

	"github.com/akashmaji946/go-basic/lexer"
)

func TestApplyBinary_IntegerAddition(t *testing.T) {
	v, err := ApplyBinary(lexer.PLUS_OP, &Integer{Value: 2}, &Integer{Value: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ToString() != "5" {
		t.Errorf("expected 5, got %s", v.ToString())
	}
}

func TestApplyBinary_StringConcat(t *testing.T) {
	v, err := ApplyBinary(lexer.PLUS_OP, &String{Value: "AB"}, &String{Value: "CD"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ToString() != "ABCD" {
		t.Errorf("expected ABCD, got %s", v.ToString())
	}
}

func TestApplyBinary_StringPlusNumberIsError(t *testing.T) {
	if _, err := ApplyBinary(lexer.PLUS_OP, &String{Value: "AB"}, &Integer{Value: 1}); err == nil {
		t.Errorf("expected an error mixing string and number with +")
	}
}

func TestApplyBinary_DivisionPromotesToFloatOnRemainder(t *testing.T) {
	v, err := ApplyBinary(lexer.DIV_OP, &Integer{Value: 7}, &Integer{Value: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.GetType() != FloatType {
		t.Errorf("expected a Float result for non-exact division, got %s", v.GetType())
	}
}

func TestApplyBinary_DivisionStaysIntegerOnExactResult(t *testing.T) {
	v, err := ApplyBinary(lexer.DIV_OP, &Integer{Value: 6}, &Integer{Value: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.GetType() != IntegerType || v.ToString() != "3" {
		t.Errorf("expected Integer 3, got %s %s", v.GetType(), v.ToString())
	}
}

func TestApplyBinary_DivByZero(t *testing.T) {
	if _, err := ApplyBinary(lexer.DIV_OP, &Integer{Value: 1}, &Integer{Value: 0}); err == nil {
		t.Errorf("expected a division-by-zero error")
	}
}

func TestApplyBinary_ModRequiresIntegers(t *testing.T) {
	if _, err := ApplyBinary(lexer.MOD_KEY, &Float{Value: 1.5}, &Integer{Value: 2}); err == nil {
		t.Errorf("expected MOD with a float operand to be rejected")
	}
}

func TestApplyUnary_Negation(t *testing.T) {
	v, err := ApplyUnary(lexer.MINUS_OP, &Integer{Value: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ToString() != "-5" {
		t.Errorf("expected -5, got %s", v.ToString())
	}
}

func TestCompareRelation_NumericPromotion(t *testing.T) {
	v, err := CompareRelation(lexer.LT_OP, &Integer{Value: 1}, &Float{Value: 1.5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ToString() != "1" {
		t.Errorf("expected truthy (1), got %s", v.ToString())
	}
}

func TestCompareRelation_StringOrdering(t *testing.T) {
	v, err := CompareRelation(lexer.LT_OP, &String{Value: "APPLE"}, &String{Value: "BANANA"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.ToString() != "1" {
		t.Errorf("expected APPLE < BANANA to be true, got %s", v.ToString())
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{&Integer{Value: 0}, false},
		{&Integer{Value: 1}, true},
		{&Float{Value: 0}, false},
		{&Nil{}, false},
		{&String{Value: ""}, true},
	}
	for _, c := range cases {
		if got := IsTruthy(c.v); got != c.want {
			t.Errorf("IsTruthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
