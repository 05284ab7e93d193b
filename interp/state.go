/*
File    : go-basic/interp/state.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"fmt"

	"github.com/akashmaji946/go-basic/function"
	"github.com/akashmaji946/go-basic/objects"
	"github.com/akashmaji946/go-basic/parser"
)

// ForDescriptor is the FOR-loop record described by the data model: a
// counter name, the (line, offset) of both its FOR and its matching
// NEXT. Outer forms a stack while the analyzer is pairing FOR/NEXT and
// is never read again afterwards. Node is set by the analyzer and gives
// NEXT access to the loop's Term/Step expressions (re-evaluated every
// iteration, since STEP's sign can change the loop's direction).
// BodyPC/BodyOffset is the (State.Lines index, statement index) NEXT
// jumps back to; the evaluator sets it each time the FOR statement runs.
type ForDescriptor struct {
	Var string

	StartLine, StartOffset int
	EndLine, EndOffset     int

	Node               *parser.ForLoop
	BodyPC, BodyOffset int

	Outer *ForDescriptor
}

// GosubFrame records the caller's position so RETURN knows where to
// resume.
type GosubFrame struct {
	Line, Offset int
}

// ForKey formats a (line, offset) pair the way the FOR/NEXT side maps
// and every other per-statement lookup key it. Exported so the analyzer
// can build the same key when populating ForAt/NextAt.
func ForKey(line, offset int) string { return fmt.Sprintf("%d,%d", line, offset) }

// State is everything the Analyzer builds and the Evaluator consumes:
// the data model's line table, FOR-loop registry, DATA pool, and
// function registry. Both passes hold a pointer to the same State, per
// the data model's "back-references to interpreter state".
type State struct {
	Lines     []*parser.Compound
	LineTable map[int64]int

	// ForAt and NextAt are keyed by ForKey(line, offset) of the FOR's own
	// site and the NEXT's own site respectively; both map to the same
	// *ForDescriptor so the evaluator can look either one up by its
	// current (pc, offset).
	ForAt  map[string]*ForDescriptor
	NextAt map[string]*ForDescriptor

	DataPool []objects.Value
	DataPtr  int

	Functions map[string]*function.UserFunc

	GosubStack []GosubFrame
}

// NewState allocates an empty State ready for the analyzer to fill in.
func NewState() *State {
	return &State{
		LineTable: make(map[int64]int),
		ForAt:     make(map[string]*ForDescriptor),
		NextAt:    make(map[string]*ForDescriptor),
		Functions: make(map[string]*function.UserFunc),
	}
}

// ForAtSite looks up the FOR descriptor whose FOR statement sits at
// (line, offset).
func (s *State) ForAtSite(line, offset int) (*ForDescriptor, bool) {
	d, ok := s.ForAt[ForKey(line, offset)]
	return d, ok
}

// ForAtNext looks up the FOR descriptor whose matching NEXT sits at
// (line, offset).
func (s *State) ForAtNext(line, offset int) (*ForDescriptor, bool) {
	d, ok := s.NextAt[ForKey(line, offset)]
	return d, ok
}
