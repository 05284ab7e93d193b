/*
File    : go-basic/std/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std implements the native functions registered into every
// program's root frame: PI, SGN, ROUND and friends in math.go, RIGHT$
// and friends in strings.go. This file defines the shared NativeFunc
// type, the registry, and the argument-checking helpers every builtin
// leans on.
package std

import (
	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/objects"
)

// Fn is the signature every native function implements.
type Fn func(args []objects.Value) (objects.Value, error)

// NativeFunc is a builtin function value: it implements objects.Value
// so Install can bind it in a frame's Variables map like any other
// value. FuncCall dispatch looks it up by name in Builtins, after
// arrays bound in the frame and DEF'd functions.
type NativeFunc struct {
	Name    string
	MinArgs int
	MaxArgs int // equal to MinArgs unless the function takes optional args
	Fn      Fn
}

func (n *NativeFunc) GetType() objects.ValueType { return objects.NativeFuncType }
func (n *NativeFunc) ToString() string           { return "FN " + n.Name }
func (n *NativeFunc) ToObject() string           { return "<NativeFunc[" + n.Name + "]>" }

// Builtins maps every registered name to its NativeFunc. Populated by
// the init() functions in math.go and strings.go.
var Builtins = make(map[string]*NativeFunc)

// register adds fn to Builtins, defaulting MaxArgs to MinArgs when the
// caller left it at zero (i.e. didn't mean "optional args"), and wraps
// Fn with an arity check so individual builtins don't each repeat it.
func register(fn *NativeFunc) {
	if fn.MaxArgs == 0 {
		fn.MaxArgs = fn.MinArgs
	}
	inner := fn.Fn
	name, min, max := fn.Name, fn.MinArgs, fn.MaxArgs
	fn.Fn = func(args []objects.Value) (objects.Value, error) {
		if err := checkArity(name, min, max, len(args)); err != nil {
			return nil, err
		}
		return inner(args)
	}
	Builtins[fn.Name] = fn
}

// Install copies every registered builtin into frame, which the
// evaluator calls once on the root frame at run-start.
func Install(bind func(name string, v objects.Value)) {
	for name, fn := range Builtins {
		bind(name, fn)
	}
}

// checkArity validates the argument count against a NativeFunc's
// declared range.
func checkArity(name string, min, max, got int) error {
	if got < min || got > max {
		if min == max {
			return basicerr.New(basicerr.BadArity, "%s expects %d argument(s), got %d", name, min, got)
		}
		return basicerr.New(basicerr.BadArity, "%s expects %d to %d argument(s), got %d", name, min, max, got)
	}
	return nil
}

// argFloat widens args[i] to float64, erroring with BadArg if it isn't
// numeric.
func argFloat(name string, args []objects.Value, i int) (float64, error) {
	if !objects.IsNumeric(args[i]) {
		return 0, basicerr.New(basicerr.BadArg, "%s: argument %d must be numeric, got %s", name, i+1, args[i].GetType())
	}
	return objects.AsFloat(args[i])
}

// argInt widens args[i] to int64 by truncation.
func argInt(name string, args []objects.Value, i int) (int64, error) {
	f, err := argFloat(name, args, i)
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// argString requires args[i] to be a String.
func argString(name string, args []objects.Value, i int) (string, error) {
	s, ok := args[i].(*objects.String)
	if !ok {
		return "", basicerr.New(basicerr.BadArg, "%s: argument %d must be a string, got %s", name, i+1, args[i].GetType())
	}
	return s.Value, nil
}
