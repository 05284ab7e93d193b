/*
File    : go-basic/analyzer/analyzer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package analyzer implements the single pre-execution pass described
// by the data model: it installs the line table, pairs every FOR with
// its NEXT, evaluates DATA statements into the DATA pool, and registers
// DEF'd functions — all before the evaluator ever runs a line.
package analyzer

import (
	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/function"
	"github.com/akashmaji946/go-basic/interp"
	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
)

// analysis carries the mutable state needed only during the walk: the
// FOR stack (as a linked list via ForDescriptor.Outer) and the set of
// array names already DIM'd.
type analysis struct {
	state          *interp.State
	forTop         *interp.ForDescriptor
	declaredArrays map[string]bool
}

// Analyze runs the pre-execution pass over prog and returns the
// populated interp.State together with the first error encountered, if
// any: a Semantic error, or an arithmetic error from folding a DATA value.
func Analyze(prog *parser.Program) (*interp.State, error) {
	st := interp.NewState()
	st.Lines = prog.Lines
	for i, comp := range prog.Lines {
		if comp.HasNumber {
			st.LineTable[comp.Number] = i
		}
	}

	an := &analysis{state: st, declaredArrays: make(map[string]bool)}
	if err := an.walkProgram(prog); err != nil {
		return st, err
	}
	return st, nil
}

// walkProgram visits every top-level statement in source order, then
// checks that every FOR was eventually closed by a NEXT.
func (a *analysis) walkProgram(prog *parser.Program) error {
	for _, comp := range prog.Lines {
		for _, stmt := range comp.Stmts {
			line, offset := stmt.Pos()
			if err := a.walkStmt(stmt, line, offset); err != nil {
				return err
			}
		}
	}
	if a.forTop != nil {
		return basicerr.At(basicerr.Semantic, a.forTop.StartLine, 0, "Unmatched for-loop at line %d", a.forTop.StartLine)
	}
	return nil
}

// walkStmt dispatches on the statement's concrete type. Only the
// variants that carry analysis-time obligations do anything; everything
// else is purely an evaluator concern. IfThen is special-cased to walk
// into its Then/Else branch, since a FOR, DIM, DEF, or DATA reachable
// only through a THEN/ELSE still has to be registered or paired.
func (a *analysis) walkStmt(n parser.Node, line, offset int) error {
	switch s := n.(type) {
	case *parser.ForLoop:
		return a.handleForLoop(s, line, offset)
	case *parser.ForNext:
		return a.handleForNext(s, line, offset)
	case *parser.ArrayDecl:
		return a.handleArrayDecl(s, line)
	case *parser.Defun:
		a.state.Functions[s.Name] = &function.UserFunc{Name: s.Name, Params: s.Params, Body: s.Body}
		return nil
	case *parser.Data:
		return a.handleData(s)
	case *parser.IfThen:
		if s.Then != nil {
			if err := a.walkStmt(s.Then, line, offset); err != nil {
				return err
			}
		}
		if s.Else != nil {
			if err := a.walkStmt(s.Else, line, offset); err != nil {
				return err
			}
		}
		return nil
	default:
		return nil
	}
}

// handleForLoop pushes a new descriptor, rejecting a counter name
// already in use by an enclosing FOR.
func (a *analysis) handleForLoop(s *parser.ForLoop, line, offset int) error {
	for cur := a.forTop; cur != nil; cur = cur.Outer {
		if cur.Var == s.Var {
			return basicerr.At(basicerr.Semantic, line, 0, "FOR counter %q reused by a nested FOR", s.Var)
		}
	}
	d := &interp.ForDescriptor{Var: s.Var, StartLine: line, StartOffset: offset, Node: s, Outer: a.forTop}
	a.state.ForAt[interp.ForKey(line, offset)] = d
	a.forTop = d
	return nil
}

// handleForNext pops the innermost descriptor, checking the NEXT's
// optional variable name against it if one was given.
func (a *analysis) handleForNext(s *parser.ForNext, line, offset int) error {
	if a.forTop == nil {
		return basicerr.At(basicerr.Semantic, line, 0, "NEXT without a matching FOR")
	}
	d := a.forTop
	if s.Var != "" && s.Var != d.Var {
		return basicerr.At(basicerr.Semantic, line, 0, "NEXT %s does not match FOR %s", s.Var, d.Var)
	}
	d.EndLine, d.EndOffset = line, offset
	a.state.NextAt[interp.ForKey(line, offset)] = d
	a.forTop = d.Outer
	return nil
}

// handleArrayDecl rejects a DIM that redeclares an already-DIM'd name.
func (a *analysis) handleArrayDecl(s *parser.ArrayDecl, line int) error {
	for _, decl := range s.Decls {
		if a.declaredArrays[decl.Name] {
			return basicerr.At(basicerr.Semantic, line, 0, "duplicate array declaration: %s", decl.Name)
		}
		a.declaredArrays[decl.Name] = true
	}
	return nil
}

// handleData folds each DATA value to a constant Value and appends it
// to the pool. DATA values must be constant expressions (literals and
// arithmetic on them) since no frame exists yet at analysis time.
func (a *analysis) handleData(s *parser.Data) error {
	for _, v := range s.Values {
		val, err := evalConst(v)
		if err != nil {
			return err
		}
		a.state.DataPool = append(a.state.DataPool, val)
	}
	return nil
}

// evalConst evaluates the small constant-expression subset valid in a
// DATA statement: literals, unary +/-, and binary arithmetic/string
// concatenation over other constant expressions.
func evalConst(n parser.Node) (objects.Value, error) {
	switch v := n.(type) {
	case *parser.Num:
		return v.Val, nil
	case *parser.Str:
		return &objects.String{Value: v.Val}, nil
	case *parser.UnaryOp:
		right, err := evalConst(v.Right)
		if err != nil {
			return nil, err
		}
		return objects.ApplyUnary(v.Op, right)
	case *parser.BinOp:
		left, err := evalConst(v.Left)
		if err != nil {
			return nil, err
		}
		right, err := evalConst(v.Right)
		if err != nil {
			return nil, err
		}
		return objects.ApplyBinary(v.Op, left, right)
	default:
		line, _ := n.Pos()
		return nil, basicerr.At(basicerr.Semantic, line, 0, "DATA values must be constant expressions")
	}
}
