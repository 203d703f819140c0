// render paints a board to a PDF file.
// Usage: go run ./cmd/render [-board boards/demo.yaml] [-seed 42] [-font font.ttf] -o board.pdf
// Flags default to the UNLIGHT_* environment settings.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"unlight/internal/config"
	"unlight/internal/game"
	"unlight/internal/render"
)

func main() {
	code := run(os.Args[1:], os.Stderr)
	if code != 0 {
		os.Exit(code)
	}
}

func run(args []string, stderr io.Writer) int {
	logger := log.New(stderr, "render: ", 0)

	cfg, err := config.Load()
	if err != nil {
		logger.Print(err)
		return 1
	}

	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	boardPath := fs.String("board", cfg.BoardPath, "YAML board file (default: built-in demo board)")
	fontPath := fs.String("font", cfg.FontPath, "UTF-8 TrueType font for board text")
	seed := fs.Uint64("seed", cfg.Seed, "seed for placeholder colors")
	out := fs.String("o", "board.pdf", "output PDF path")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(stderr, "usage: render [-board file.yaml] [-seed n] [-font file.ttf] -o board.pdf\n")
		return 2
	}

	var board *game.Board
	if *boardPath == "" {
		board, err = game.DemoBoard()
	} else {
		board, err = game.LoadBoard(*boardPath)
	}
	if err != nil {
		logger.Printf("load board: %v", err)
		return 1
	}

	pdf, err := render.RenderPDF(board, render.PDFOptions{
		FontPath: *fontPath,
		Seed:     *seed,
		Title:    "Unlight board",
	})
	if err != nil {
		logger.Printf("paint board: %v", err)
		return 1
	}

	outPath := filepath.Clean(*out)
	if err := os.WriteFile(outPath, pdf, 0o644); err != nil { //nolint:gosec // output is a public document
		logger.Printf("write %s: %v", outPath, err)
		return 1
	}
	logger.Printf("wrote %s (%d bytes)", outPath, len(pdf))
	return 0
}
