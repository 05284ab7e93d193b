/*
File    : go-basic/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the go-basic interpreter. It reads
a BASIC source file named on the command line, and runs it: lex, parse,
analyze, evaluate.
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/go-basic/analyzer"
	"github.com/akashmaji946/go-basic/interp"
	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/parser"
	"github.com/fatih/color"
)

// VERSION is the current version of the go-basic interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// main reads one BASIC source file and runs it.
//
// Usage:
//
//	basic <filename>   - execute the named BASIC source file
//	basic --help        - display help information
//	basic --version     - display version information
func main() {
	if len(os.Args) < 2 {
		showUsage()
		os.Exit(1)
	}

	arg := os.Args[1]
	switch arg {
	case "--help", "-h":
		showHelp()
		os.Exit(0)
	case "--version", "-v":
		showVersion()
		os.Exit(0)
	}

	if err := runFile(arg); err != nil {
		redColor.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func showUsage() {
	redColor.Fprintln(os.Stderr, "[USAGE ERROR] missing source file")
	yellowColor.Fprintln(os.Stderr, "usage: basic <path-to-file.bas>")
}

func showHelp() {
	cyanColor.Println("go-basic - A Line-Numbered BASIC Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  basic <path-to-file>     Execute a BASIC source file")
	yellowColor.Println("  basic --help             Display this help message")
	yellowColor.Println("  basic --version          Display version information")
}

func showVersion() {
	cyanColor.Println("go-basic - A Line-Numbered BASIC Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads, parses, analyzes and executes one BASIC source file.
// A panic during evaluation (e.g. a programming error surfacing as a
// runtime panic rather than a returned error) is recovered and reported
// the same way an ordinary error would be, but still exits non-zero:
// a BASIC program that fails should never look like it succeeded.
func runFile(path string) (runErr error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("[FILE ERROR] could not read %q: %w", path, err)
	}

	defer func() {
		if recovered := recover(); recovered != nil {
			runErr = fmt.Errorf("[RUNTIME ERROR] %v", recovered)
		}
	}()

	lx := lexer.NewLexer(string(source))
	p := parser.NewParser(&lx)
	prog := p.Parse()
	if p.HasErrors() {
		for _, e := range p.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", e)
		}
		return fmt.Errorf("[PARSE ERROR] %d error(s) in %s", len(p.GetErrors()), path)
	}

	state, err := analyzer.Analyze(prog)
	if err != nil {
		return fmt.Errorf("[ANALYSIS ERROR] %w", err)
	}

	ev := interp.NewEvaluator(state)
	if err := ev.Run(); err != nil {
		return fmt.Errorf("[RUNTIME ERROR] %w", err)
	}
	return nil
}
