/*
File    : go-basic/objects/objects.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package objects defines the tagged value model shared by every stage of
// the interpreter that needs to hold or pass around a BASIC value:
// Integer, Float, String, Array, Nil, plus the two function kinds
// (UserFunc lives in package function, NativeFunc in package std) which
// implement this package's Value interface without objects importing
// either of them.
package objects

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-basic/basicerr"
)

// ValueType tags the dynamic kind of a Value.
type ValueType string

const (
	IntegerType    ValueType = "Integer"
	FloatType      ValueType = "Float"
	StringType     ValueType = "String"
	ArrayType      ValueType = "Array"
	NilType        ValueType = "Nil"
	UserFuncType   ValueType = "UserFunc"
	NativeFuncType ValueType = "NativeFunc"
)

// Value is implemented by every runtime BASIC value.
type Value interface {
	GetType() ValueType
	ToString() string // PRINT-facing rendering
	ToObject() string // debug rendering, e.g. for the AST-dump demo
}

// Integer is a signed 64-bit BASIC integer, bound to names with a `%`
// suffix (or no suffix at all, where context allows).
type Integer struct {
	Value int64
}

func (i *Integer) GetType() ValueType { return IntegerType }
func (i *Integer) ToString() string   { return fmt.Sprintf("%d", i.Value) }
func (i *Integer) ToObject() string   { return fmt.Sprintf("<Integer(%d)>", i.Value) }

// Float is a 64-bit BASIC floating value, bound to names with a `#` or
// `!` suffix. ToString renders with trimmed trailing zeros, matching the
// original interpreter's fixed-point-looking output rather than Go's
// default %v formatting.
type Float struct {
	Value float64
}

func (f *Float) GetType() ValueType { return FloatType }
func (f *Float) ToString() string   { return formatFloat(f.Value) }
func (f *Float) ToObject() string   { return fmt.Sprintf("<Float(%s)>", formatFloat(f.Value)) }

// formatFloat renders a float the way a line-printer BASIC would: up to
// six decimal digits, with trailing zeros (and a trailing dot) trimmed.
func formatFloat(v float64) string {
	s := fmt.Sprintf("%.6f", v)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" || s == "-" {
		s = "0"
	}
	return s
}

// String is an immutable BASIC string, bound to names with a `$` suffix.
type String struct {
	Value string
}

func (s *String) GetType() ValueType { return StringType }
func (s *String) ToString() string   { return s.Value }
func (s *String) ToObject() string   { return fmt.Sprintf("<String(%q)>", s.Value) }

// Nil is the value of a variable that has a binding slot (e.g. a FOR
// counter's own name) but no meaningful value yet. It never surfaces as
// the result of an arithmetic or string expression.
type Nil struct{}

func (n *Nil) GetType() ValueType { return NilType }
func (n *Nil) ToString() string   { return "" }
func (n *Nil) ToObject() string   { return "<Nil>" }

// Array owns a flat buffer of Values plus the size vector given to DIM.
// Dims holds the declared upper bounds (s1..sk); the flat buffer has
// length prod(si+1) since every dimension is 0-based inclusive.
//
// Flat index for dimension i uses stride prod_{j<i}(dj+1), so the first
// declared dimension varies fastest. For k<=3 this reduces exactly to
// the z*(X*Y) + y*X + x formula: strides 1, X, X*Y for x, y, z.
type Array struct {
	Dims []int64
	Data []Value
}

// NewArray allocates an Array for the given declared upper bounds,
// filling every slot with an Integer zero (BASIC's default array
// element value).
func NewArray(dims []int64) *Array {
	size := int64(1)
	for _, d := range dims {
		size *= d + 1
	}
	data := make([]Value, size)
	for i := range data {
		data[i] = &Integer{Value: 0}
	}
	return &Array{Dims: dims, Data: data}
}

func (a *Array) GetType() ValueType { return ArrayType }

func (a *Array) ToString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.Data {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.ToString())
	}
	b.WriteByte(']')
	return b.String()
}

func (a *Array) ToObject() string {
	return fmt.Sprintf("<Array(dims=%v, len=%d)>", a.Dims, len(a.Data))
}

// FlatIndex converts a k-dimensional subscript into an offset into Data,
// validating both arity and bounds.
func (a *Array) FlatIndex(idx []int64) (int, error) {
	if len(idx) != len(a.Dims) {
		return 0, basicerr.New(basicerr.BadArity, "array expects %d subscript(s), got %d", len(a.Dims), len(idx))
	}
	stride := int64(1)
	flat := int64(0)
	for i, d := range a.Dims {
		if idx[i] < 0 || idx[i] > d {
			return 0, basicerr.New(basicerr.IndexOOB, "subscript %d out of range 0..%d", idx[i], d)
		}
		flat += idx[i] * stride
		stride *= d + 1
	}
	return int(flat), nil
}

// Get reads the element at idx.
func (a *Array) Get(idx []int64) (Value, error) {
	flat, err := a.FlatIndex(idx)
	if err != nil {
		return nil, err
	}
	return a.Data[flat], nil
}

// Set writes v into the element at idx.
func (a *Array) Set(idx []int64, v Value) error {
	flat, err := a.FlatIndex(idx)
	if err != nil {
		return err
	}
	a.Data[flat] = v
	return nil
}

// IsNumeric reports whether v is an Integer or a Float.
func IsNumeric(v Value) bool {
	switch v.(type) {
	case *Integer, *Float:
		return true
	}
	return false
}

// AsFloat widens any numeric Value to float64. Callers must check
// IsNumeric (or handle the returned error) first.
func AsFloat(v Value) (float64, error) {
	switch n := v.(type) {
	case *Integer:
		return float64(n.Value), nil
	case *Float:
		return n.Value, nil
	default:
		return 0, basicerr.New(basicerr.BadArg, "expected a number, got %s", v.GetType())
	}
}
