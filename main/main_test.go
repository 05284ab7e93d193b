/*
File    : go-basic/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempProgram(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.bas")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("failed to write temp program: %v", err)
	}
	return path
}

func TestRunFile_Success(t *testing.T) {
	path := writeTempProgram(t, "10 PRINT \"HI\"\n20 END\n")
	if err := runFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRunFile_ParseError(t *testing.T) {
	path := writeTempProgram(t, "10 PRINT \"unterminated\n")
	if err := runFile(path); err == nil {
		t.Fatalf("expected a parse error, got none")
	}
}

func TestRunFile_RuntimeError(t *testing.T) {
	path := writeTempProgram(t, "10 PRINT 1 / 0\n")
	if err := runFile(path); err == nil {
		t.Fatalf("expected a division-by-zero error, got none")
	}
}

func TestRunFile_MissingFile(t *testing.T) {
	if err := runFile(filepath.Join(t.TempDir(), "missing.bas")); err == nil {
		t.Fatalf("expected a file-read error, got none")
	}
}
