package main

import (
	"log"
	"net/http"

	"unlight/internal/config"
	"unlight/internal/game"
	"unlight/internal/session"
	"unlight/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	board, err := loadBoard(cfg.BoardPath)
	if err != nil {
		log.Fatal(err)
	}

	srv := &web.Server{
		Board:    board,
		Store:    session.NewBoundedMemoryStore[web.Visitor](cfg.MaxVisitors),
		FontPath: cfg.FontPath,
		Seed:     cfg.Seed,
	}

	log.Printf("listening on http://localhost%s", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, srv.Routes())) //nolint:gosec // prototype server, no timeouts needed
}

func loadBoard(path string) (*game.Board, error) {
	if path == "" {
		return game.DemoBoard()
	}
	return game.LoadBoard(path)
}
