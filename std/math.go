/*
File    : go-basic/std/math.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - math.go
// Numeric builtins: the trigonometric and hyperbolic families, the
// rounding family (INT/SQR/CUR/SGN/ROUND/FRAC/FIX), and the single
// source of randomness, RAN#/RND.
package std

import (
	"math"
	"math/rand"

	"github.com/akashmaji946/go-basic/objects"
)

// unary registers a one-argument float->float builtin.
func unary(name string, f func(float64) float64) {
	register(&NativeFunc{
		Name: name, MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat(name, args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Float{Value: f(x)}, nil
		},
	})
}

func init() {
	register(&NativeFunc{
		Name: "PI", MinArgs: 0,
		Fn: func(args []objects.Value) (objects.Value, error) {
			return &objects.Float{Value: math.Pi}, nil
		},
	})

	unary("SIN", math.Sin)
	unary("COS", math.Cos)
	unary("TAN", math.Tan)
	unary("ASN", math.Asin)
	unary("ACS", math.Acos)
	unary("ATN", math.Atan)
	unary("HYPSIN", math.Sinh)
	unary("HYPCOS", math.Cosh)
	unary("HYPTAN", math.Tanh)
	unary("HYPASN", math.Asinh)
	unary("HYPACS", math.Acosh)
	unary("HYPATN", math.Atanh)
	unary("EXP", math.Exp)
	unary("LOG", math.Log)

	register(&NativeFunc{
		Name: "ABS", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			if n, ok := args[0].(*objects.Integer); ok {
				v := n.Value
				if v < 0 {
					v = -v
				}
				return &objects.Integer{Value: v}, nil
			}
			x, err := argFloat("ABS", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Float{Value: math.Abs(x)}, nil
		},
	})

	register(&NativeFunc{
		Name: "INT", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat("INT", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Integer{Value: int64(math.Floor(x))}, nil
		},
	})

	register(&NativeFunc{
		Name: "FIX", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat("FIX", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Integer{Value: int64(math.Trunc(x))}, nil
		},
	})

	register(&NativeFunc{
		Name: "FRAC", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat("FRAC", args, 0)
			if err != nil {
				return nil, err
			}
			_, frac := math.Modf(x)
			return &objects.Float{Value: frac}, nil
		},
	})

	register(&NativeFunc{
		Name: "SQR", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat("SQR", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Float{Value: math.Sqrt(x)}, nil
		},
	})

	register(&NativeFunc{
		Name: "CUR", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat("CUR", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Float{Value: math.Cbrt(x)}, nil
		},
	})

	register(&NativeFunc{
		Name: "SGN", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat("SGN", args, 0)
			if err != nil {
				return nil, err
			}
			switch {
			case x > 0:
				return &objects.Integer{Value: 1}, nil
			case x < 0:
				return &objects.Integer{Value: -1}, nil
			default:
				return &objects.Integer{Value: 0}, nil
			}
		},
	})

	register(&NativeFunc{
		Name: "ROUND", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			x, err := argFloat("ROUND", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Integer{Value: int64(math.Round(x))}, nil
		},
	})

	ranFn := func(args []objects.Value) (objects.Value, error) {
		return &objects.Float{Value: rand.Float64()}, nil
	}
	register(&NativeFunc{Name: "RAN#", MinArgs: 0, Fn: ranFn})
	register(&NativeFunc{Name: "RND", MinArgs: 0, Fn: ranFn})
}
