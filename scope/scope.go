/*
File    : go-basic/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements the call frame: a name->Value mapping with an
// outer pointer, walked outward on lookup and written at the current
// level on assignment. User-function calls push a fresh frame and pop it
// on return; everything else runs in the single root frame.
package scope

import "github.com/akashmaji946/go-basic/objects"

// Scope is one call frame in the frame chain.
type Scope struct {
	Variables map[string]objects.Value
	Parent    *Scope
}

// NewScope creates a frame chained to parent. Pass nil to create the
// root frame a program starts in.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.Value),
		Parent:    parent,
	}
}

// LookUp searches this frame and, failing that, every outer frame.
func (s *Scope) LookUp(name string) (objects.Value, bool) {
	if v, ok := s.Variables[name]; ok {
		return v, true
	}
	if s.Parent != nil {
		return s.Parent.LookUp(name)
	}
	return nil, false
}

// Bind creates or overwrites a binding in this frame only, never
// touching an outer frame even if the name already exists there. Used
// for function parameters, DIM'd arrays and the built-ins installed in
// the root frame, all of which belong to "the frame currently executing".
func (s *Scope) Bind(name string, v objects.Value) {
	s.Variables[name] = v
}

// Assign writes to the frame where name is already bound, walking
// outward to find it; if no frame has it yet, it is bound fresh in this
// (the innermost) frame. This lets an assignment, READ, INPUT or FOR
// create a variable on first use and later update it in whichever frame
// already holds it.
func (s *Scope) Assign(name string, v objects.Value) {
	for f := s; f != nil; f = f.Parent {
		if _, ok := f.Variables[name]; ok {
			f.Variables[name] = v
			return
		}
	}
	s.Variables[name] = v
}
