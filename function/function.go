/*
File    : go-basic/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function holds UserFunc, the runtime representation of a DEF
// statement. It is its own package (rather than living in objects)
// because a UserFunc's Body is a parser.Node, and objects must not
// import parser.
package function

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
)

// UserFunc is a DEF-defined function: a name, its parameter names, and
// a single expression body, evaluated in a fresh frame with parameters
// bound to the call's argument values.
type UserFunc struct {
	Name   string
	Params []string
	Body   parser.Node
}

func (f *UserFunc) GetType() objects.ValueType { return objects.UserFuncType }

func (f *UserFunc) ToString() string {
	return fmt.Sprintf("FN %s", f.Name)
}

func (f *UserFunc) ToObject() string {
	return fmt.Sprintf("<UserFunc[%s(%s)]>", f.Name, strings.Join(f.Params, ", "))
}
