/*
File    : go-basic/print_visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"fmt"

	"github.com/akashmaji946/go-basic/parser"
)

const indentSize = 2

// AstPrinter renders a parsed Program as an indented tree, dispatching
// on each node's concrete type with a plain type switch rather than a
// visitor/Accept pair.
type AstPrinter struct {
	Indent int
	Buf    bytes.Buffer
}

func (p *AstPrinter) pad() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

func (p *AstPrinter) line(format string, args ...interface{}) {
	p.pad()
	fmt.Fprintf(&p.Buf, format, args...)
	p.Buf.WriteString("\n")
}

// Print dumps a whole Program: every line number and its statements.
func (p *AstPrinter) Print(prog *parser.Program) {
	p.line("Program (%d lines)", len(prog.Lines))
	p.Indent += indentSize
	for _, comp := range prog.Lines {
		p.printCompound(comp)
	}
	p.Indent -= indentSize
}

func (p *AstPrinter) printCompound(comp *parser.Compound) {
	if comp.HasNumber {
		p.line("Line %d", comp.Number)
	} else {
		p.line("Line (unnumbered)")
	}
	p.Indent += indentSize
	for _, stmt := range comp.Stmts {
		p.printNode(stmt)
	}
	p.Indent -= indentSize
}

// printNode dumps one statement or expression node and, for composite
// nodes, recurses into its children.
func (p *AstPrinter) printNode(n parser.Node) {
	switch v := n.(type) {
	case *parser.Print:
		p.line("Print (%d items, ln=%t)", len(v.Items), v.Ln)
		p.Indent += indentSize
		for _, item := range v.Items {
			p.printNode(item)
		}
		p.Indent -= indentSize
	case *parser.Input:
		p.line("Input (%d targets)", len(v.Targets))
		p.Indent += indentSize
		for _, t := range v.Targets {
			p.printNode(t)
		}
		p.Indent -= indentSize
	case *parser.Read:
		p.line("Read (%d targets)", len(v.Targets))
	case *parser.Data:
		p.line("Data (%d values)", len(v.Values))
	case *parser.Restore:
		p.line("Restore")
	case *parser.Run:
		p.line("Run")
	case *parser.End:
		p.line("End")
	case *parser.Comment:
		p.line("Comment %q", v.Text)
	case *parser.Defun:
		p.line("Defun %s(%v)", v.Name, v.Params)
		p.Indent += indentSize
		p.printNode(v.Body)
		p.Indent -= indentSize
	case *parser.ArrayDecl:
		p.line("ArrayDecl (%d declarators)", len(v.Decls))
		p.Indent += indentSize
		for _, d := range v.Decls {
			p.line("Dim %s(%d dims)", d.Name, len(d.Dims))
		}
		p.Indent -= indentSize
	case *parser.Assignment:
		p.line("Assignment")
		p.Indent += indentSize
		p.printNode(v.Target)
		p.printNode(v.Value)
		p.Indent -= indentSize
	case *parser.IfThen:
		p.line("IfThen")
		p.Indent += indentSize
		p.printNode(v.Cond)
		p.printNode(v.Then)
		if v.Else != nil {
			p.printNode(v.Else)
		}
		p.Indent -= indentSize
	case *parser.Goto:
		p.line("Goto %d", v.Target)
	case *parser.GoSub:
		p.line("GoSub %d", v.Target)
	case *parser.GoSubReturn:
		p.line("Return")
	case *parser.OnXXX:
		kind := "GOTO"
		if v.IsGosub {
			kind = "GOSUB"
		}
		p.line("On%s %v", kind, v.Targets)
		p.Indent += indentSize
		p.printNode(v.Sel)
		p.Indent -= indentSize
	case *parser.ForLoop:
		p.line("ForLoop %s", v.Var)
		p.Indent += indentSize
		p.printNode(v.Init)
		p.printNode(v.Term)
		if v.Step != nil {
			p.printNode(v.Step)
		}
		p.Indent -= indentSize
	case *parser.ForNext:
		p.line("ForNext %s", v.Var)
	case *parser.Num:
		p.line("Num %s", v.Val.ToString())
	case *parser.Str:
		p.line("Str %q", v.Val)
	case *parser.Var:
		p.line("Var %s", v.Name)
	case *parser.UnaryOp:
		p.line("UnaryOp %s", v.Op)
		p.Indent += indentSize
		p.printNode(v.Right)
		p.Indent -= indentSize
	case *parser.BinOp:
		p.line("BinOp %s", v.Op)
		p.Indent += indentSize
		p.printNode(v.Left)
		p.printNode(v.Right)
		p.Indent -= indentSize
	case *parser.RelationOp:
		p.line("RelationOp %s", v.Op)
		p.Indent += indentSize
		p.printNode(v.Left)
		p.printNode(v.Right)
		p.Indent -= indentSize
	case *parser.NotFactor:
		p.line("NotFactor")
		p.Indent += indentSize
		p.printNode(v.Right)
		p.Indent -= indentSize
	case *parser.BoolTerm:
		p.line("BoolTerm %s", v.Op)
		p.Indent += indentSize
		p.printNode(v.Left)
		p.printNode(v.Right)
		p.Indent -= indentSize
	case *parser.BoolExpr:
		p.line("BoolExpr %s", v.Op)
		p.Indent += indentSize
		p.printNode(v.Left)
		p.printNode(v.Right)
		p.Indent -= indentSize
	case *parser.FuncCall:
		p.line("FuncCall %s (%d args)", v.Name, len(v.Args))
		p.Indent += indentSize
		for _, a := range v.Args {
			p.printNode(a)
		}
		p.Indent -= indentSize
	default:
		p.line("%T", v)
	}
}

// String returns the accumulated dump.
func (p *AstPrinter) String() string { return p.Buf.String() }
