/*
File    : go-basic/interp/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package interp is the tree-walking evaluator: a two-level program
// counter (pc into State.Lines, progOffset into the current line's
// Compound.Stmts) drives execution of the AST the analyzer already
// paired up. GOTO, GOSUB/RETURN, ON...GOTO/GOSUB and FOR/NEXT all work
// by redirecting (pc, progOffset) rather than by recursive descent.
package interp

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/go-basic/basicerr"
	"github.com/akashmaji946/go-basic/parser"
	"github.com/akashmaji946/go-basic/scope"
	"github.com/akashmaji946/go-basic/std"
)

// Evaluator holds everything needed to run one program: the analyzed
// State, the global variable frame, and the I/O the PRINT/INPUT
// statements read and write.
type Evaluator struct {
	State *State
	Scp   *scope.Scope

	Writer io.Writer
	Input  *InputReader

	pc         int
	progOffset int
	col        int // current output column, for PRINT's comma zone-padding
}

// NewEvaluator creates an evaluator over an already-analyzed State,
// with output to stdout and input from stdin.
func NewEvaluator(st *State) *Evaluator {
	e := &Evaluator{
		State:  st,
		Scp:    scope.NewScope(nil),
		Writer: os.Stdout,
	}
	std.Install(e.Scp.Bind)
	e.Input = NewInputReader(os.Stdin, e.Writer)
	return e
}

// SetWriter redirects PRINT output, e.g. to a buffer under test.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
	if e.Input != nil {
		e.Input.prompter = w
	}
}

// SetInput redirects INPUT's source, e.g. to a fixed script under test.
// The non-interactive bufio.Scanner path is always used for a reader
// supplied this way, since there is no terminal to line-edit.
func (e *Evaluator) SetInput(r io.Reader) {
	e.Input = &InputReader{scanner: bufio.NewScanner(r), prompter: e.Writer}
}

// ctrlKind tags what a statement asked the Run loop to do next.
type ctrlKind int

const (
	ctrlNone ctrlKind = iota
	ctrlEnd
	ctrlRestart
	ctrlGotoLine
	ctrlGosubLine
	ctrlReturn
	ctrlJumpPC  // pc/progOffset were already set directly by the handler
	ctrlEndLine // stop this line's remaining colon-separated statements, advance to the next line
)

// ctrl is the control-flow signal returned alongside every executed
// statement's error.
type ctrl struct {
	kind   ctrlKind
	target int64 // BASIC line number, for ctrlGotoLine/ctrlGosubLine
}

// Run executes the program from its first line until END, falling off
// the last statement, or an error.
func (e *Evaluator) Run() error {
	if len(e.State.Lines) == 0 {
		return nil
	}
	e.pc, e.progOffset = 0, 0
	for e.pc < len(e.State.Lines) {
		comp := e.State.Lines[e.pc]
		if e.progOffset >= len(comp.Stmts) {
			e.pc++
			e.progOffset = 0
			continue
		}
		stmt := comp.Stmts[e.progOffset]
		line, offset := stmt.Pos()

		c, err := e.execStmt(stmt, line, offset)
		if err != nil {
			return err
		}

		switch c.kind {
		case ctrlEnd:
			return nil
		case ctrlRestart:
			e.pc, e.progOffset = 0, 0
			e.State.GosubStack = e.State.GosubStack[:0]
		case ctrlGotoLine:
			idx, ok := e.State.LineTable[c.target]
			if !ok {
				return basicerr.At(basicerr.Semantic, line, offset, "GOTO: no such line %d", c.target)
			}
			e.pc, e.progOffset = idx, 0
		case ctrlGosubLine:
			idx, ok := e.State.LineTable[c.target]
			if !ok {
				return basicerr.At(basicerr.Semantic, line, offset, "GOSUB: no such line %d", c.target)
			}
			e.State.GosubStack = append(e.State.GosubStack, GosubFrame{Line: e.pc, Offset: e.progOffset + 1})
			e.pc, e.progOffset = idx, 0
		case ctrlReturn:
			if len(e.State.GosubStack) == 0 {
				return basicerr.At(basicerr.Semantic, line, offset, "RETURN without a matching GOSUB")
			}
			top := e.State.GosubStack[len(e.State.GosubStack)-1]
			e.State.GosubStack = e.State.GosubStack[:len(e.State.GosubStack)-1]
			e.pc, e.progOffset = top.Line, top.Offset
		case ctrlJumpPC:
			// handler already repositioned pc/progOffset (FOR/NEXT loop-back)
		case ctrlEndLine:
			e.pc++
			e.progOffset = 0
		default:
			e.progOffset++
		}
	}
	return nil
}

// execStmt dispatches one statement to its handler. Every handler
// returns the control-flow signal for the Run loop and any evaluation
// error; statements with no control-flow effect simply return ctrl{}.
func (e *Evaluator) execStmt(n parser.Node, line, offset int) (ctrl, error) {
	switch s := n.(type) {
	case *parser.Print:
		return ctrl{}, e.execPrint(s)
	case *parser.Input:
		return ctrl{}, e.execInput(s)
	case *parser.Read:
		return ctrl{}, e.execRead(s)
	case *parser.Data:
		return ctrl{}, nil // folded into the DATA pool at analysis time
	case *parser.Restore:
		e.State.DataPtr = 0
		return ctrl{}, nil
	case *parser.Comment:
		return ctrl{}, nil
	case *parser.Defun:
		return ctrl{}, nil // already registered by the analyzer
	case *parser.ArrayDecl:
		return ctrl{}, e.execArrayDecl(s)
	case *parser.Assignment:
		return ctrl{}, e.execAssignment(s)
	case *parser.FuncCall:
		_, err := e.Eval(s) // bare call statement; result discarded
		return ctrl{}, err
	case *parser.IfThen:
		return e.execIfThen(s, line, offset)
	case *parser.Goto:
		return ctrl{kind: ctrlGotoLine, target: s.Target}, nil
	case *parser.GoSub:
		return ctrl{kind: ctrlGosubLine, target: s.Target}, nil
	case *parser.GoSubReturn:
		return ctrl{kind: ctrlReturn}, nil
	case *parser.OnXXX:
		return e.execOn(s)
	case *parser.ForLoop:
		return e.execForLoop(s, line, offset)
	case *parser.ForNext:
		return e.execForNext(s, line, offset)
	case *parser.End:
		return ctrl{kind: ctrlEnd}, nil
	case *parser.Run:
		return ctrl{kind: ctrlRestart}, nil
	default:
		return ctrl{}, basicerr.At(basicerr.Semantic, line, offset, "cannot execute %T", n)
	}
}
