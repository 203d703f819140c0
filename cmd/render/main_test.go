package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_DemoBoard(t *testing.T) {
	out := filepath.Join(t.TempDir(), "board.pdf")
	var stderr bytes.Buffer
	if code := run([]string{"-seed", "3", "-o", out}, &stderr); code != 0 {
		t.Fatalf("run exited %d: %s", code, stderr.String())
	}
	b, err := os.ReadFile(out) //nolint:gosec // test file
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}
	if !strings.Contains(stderr.String(), "wrote ") {
		t.Errorf("expected a wrote message, got %q", stderr.String())
	}
}

func TestRun_BoardFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "board.pdf")
	var stderr bytes.Buffer
	board := filepath.Join("..", "..", "boards", "demo.yaml")
	if code := run([]string{"-board", board, "-o", out}, &stderr); code != 0 {
		t.Fatalf("run exited %d: %s", code, stderr.String())
	}
}

func TestRun_InvalidBoard(t *testing.T) {
	dir := t.TempDir()
	board := filepath.Join(dir, "bad.yaml")
	body := "player:\n  hand:\n    - first: {kind: melee, weight: 2.5}\n      second: {kind: guard, weight: 1}\n"
	if err := os.WriteFile(board, []byte(body), 0o600); err != nil {
		t.Fatalf("write board: %v", err)
	}
	out := filepath.Join(dir, "board.pdf")
	var stderr bytes.Buffer
	if code := run([]string{"-board", board, "-o", out}, &stderr); code != 1 {
		t.Errorf("expected exit 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "not an integer") {
		t.Errorf("expected validation message, got %q", stderr.String())
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("expected no output file for an invalid board")
	}
}

func TestRun_BadArgs(t *testing.T) {
	var stderr bytes.Buffer
	if code := run([]string{"extra"}, &stderr); code != 2 {
		t.Errorf("expected exit 2, got %d", code)
	}
	if code := run([]string{"-nope"}, &stderr); code != 2 {
		t.Errorf("expected exit 2 for unknown flag, got %d", code)
	}
}
