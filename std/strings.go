/*
File    : go-basic/std/strings.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std - strings.go
// String and character builtins: RIGHT$, LEFT$, MID$, CHR$, STR$, ASC,
// VAL, LEN, SPC.
package std

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/objects"
)

func init() {
	register(&NativeFunc{
		Name: "RIGHT$", MinArgs: 2,
		Fn: func(args []objects.Value) (objects.Value, error) {
			s, err := argString("RIGHT$", args, 0)
			if err != nil {
				return nil, err
			}
			n, err := argInt("RIGHT$", args, 1)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				n = 0
			}
			if n > int64(len(s)) {
				n = int64(len(s))
			}
			return &objects.String{Value: s[int64(len(s))-n:]}, nil
		},
	})

	register(&NativeFunc{
		Name: "LEFT$", MinArgs: 2,
		Fn: func(args []objects.Value) (objects.Value, error) {
			s, err := argString("LEFT$", args, 0)
			if err != nil {
				return nil, err
			}
			n, err := argInt("LEFT$", args, 1)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				n = 0
			}
			if n > int64(len(s)) {
				n = int64(len(s))
			}
			return &objects.String{Value: s[:n]}, nil
		},
	})

	register(&NativeFunc{
		Name: "MID$", MinArgs: 2, MaxArgs: 3,
		Fn: func(args []objects.Value) (objects.Value, error) {
			s, err := argString("MID$", args, 0)
			if err != nil {
				return nil, err
			}
			start, err := argInt("MID$", args, 1)
			if err != nil {
				return nil, err
			}
			// BASIC's MID$ is 1-based.
			start--
			if start < 0 {
				start = 0
			}
			if start > int64(len(s)) {
				start = int64(len(s))
			}
			end := int64(len(s))
			if len(args) == 3 {
				n, err := argInt("MID$", args, 2)
				if err != nil {
					return nil, err
				}
				if start+n < end {
					end = start + n
				}
			}
			return &objects.String{Value: s[start:end]}, nil
		},
	})

	register(&NativeFunc{
		Name: "CHR$", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			n, err := argInt("CHR$", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.String{Value: string(rune(n))}, nil
		},
	})

	register(&NativeFunc{
		Name: "STR$", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			return &objects.String{Value: args[0].ToString()}, nil
		},
	})

	register(&NativeFunc{
		Name: "ASC", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			s, err := argString("ASC", args, 0)
			if err != nil {
				return nil, err
			}
			if s == "" {
				return nil, basicerr.New(basicerr.BadArg, "ASC: empty string has no first character")
			}
			return &objects.Integer{Value: int64(s[0])}, nil
		},
	})

	register(&NativeFunc{
		Name: "VAL", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			s, err := argString("VAL", args, 0)
			if err != nil {
				return nil, err
			}
			s = strings.TrimSpace(s)
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				if !strings.ContainsAny(s, ".eE") {
					return &objects.Integer{Value: int64(f)}, nil
				}
				return &objects.Float{Value: f}, nil
			}
			return &objects.Integer{Value: 0}, nil
		},
	})

	register(&NativeFunc{
		Name: "LEN", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			s, err := argString("LEN", args, 0)
			if err != nil {
				return nil, err
			}
			return &objects.Integer{Value: int64(len(s))}, nil
		},
	})

	register(&NativeFunc{
		Name: "SPC", MinArgs: 1,
		Fn: func(args []objects.Value) (objects.Value, error) {
			n, err := argInt("SPC", args, 0)
			if err != nil {
				return nil, err
			}
			if n < 0 {
				n = 0
			}
			return &objects.String{Value: strings.Repeat(" ", int(n))}, nil
		},
	})
}
