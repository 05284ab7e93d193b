/*
File    : go-basic/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

This file is a small demo of the lexer/parser pipeline: it parses a
handful of BASIC programs and prints their AST. The real interpreter
entry point lives in main/main.go.
*/
package main

import (
	"fmt"

	"github.com/akashmaji946/go-basic/lexer"
	"github.com/akashmaji946/go-basic/parser"
)

func dump(src string) {
	fmt.Println("---")
	fmt.Println(src)
	lx := lexer.NewLexer(src)
	p := parser.NewParser(&lx)
	prog := p.Parse()
	if p.HasErrors() {
		for _, err := range p.GetErrors() {
			fmt.Println("parse error:", err)
		}
		return
	}
	printer := &AstPrinter{}
	printer.Print(prog)
	fmt.Print(printer.String())
}

func main() {
	fmt.Println("go-basic AST demo")

	dump("10 PRINT \"HELLO\"\n20 END\n")

	dump("10 FOR I = 1 TO 5\n20 PRINT I\n30 NEXT I\n")

	dump("10 DATA 3, 7, 11\n20 READ A, B, C\n30 PRINT A + B + C\n")

	dump("10 DEF SQUARE(X) = X * X\n20 PRINT SQUARE(6)\n")

	dump("10 X = 2\n20 ON X GOTO 100, 200\n30 END\n100 PRINT \"ONE\"\n110 END\n200 PRINT \"TWO\"\n")
}
