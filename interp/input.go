/*
File    : go-basic/interp/input.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interp

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"
)

// InputReader backs the INPUT statement. When standard input is a real
// terminal it uses github.com/chzyer/readline for line editing and
// history, the same dependency the REPL used for its prompt; otherwise
// (piped input, redirected files, go test) it falls back to a plain
// bufio.Scanner, since readline's terminal handling has nothing to
// attach to in that case.
type InputReader struct {
	rl       *readline.Instance
	scanner  *bufio.Scanner
	prompter io.Writer
}

// NewInputReader picks the terminal or non-terminal strategy based on
// in's file descriptor.
func NewInputReader(in *os.File, out io.Writer) *InputReader {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		rl, err := readline.New("? ")
		if err == nil {
			return &InputReader{rl: rl, prompter: out}
		}
	}
	return &InputReader{scanner: bufio.NewScanner(in), prompter: out}
}

// ReadLine prints prompt (terminal mode delegates this to readline
// itself) and returns one line of raw input text.
func (r *InputReader) ReadLine(prompt string) (string, error) {
	if r.rl != nil {
		r.rl.SetPrompt(prompt)
		return r.rl.Readline()
	}
	if r.prompter != nil {
		fmt.Fprint(r.prompter, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}
