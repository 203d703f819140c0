package web

import (
	"log"
	"net/http"

	"unlight/internal/render"
)

// GET /board.pdf
func (s *Server) handleBoard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	v, _, err := s.visitor(r.Context(), w, r)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	seed := v.Seed
	if s.Seed != 0 {
		seed = s.Seed
	}
	pdf, err := render.RenderPDF(s.Board, render.PDFOptions{
		FontPath: s.FontPath,
		Seed:     seed,
		Title:    "Unlight board",
	})
	if err != nil {
		log.Printf("render board: %v", err)
		http.Error(w, "failed to render board", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `inline; filename="unlight-board.pdf"`)
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(pdf); err != nil {
		log.Printf("write board: %v", err)
	}
}

// POST /reroll picks new placeholder colors for the caller.
func (s *Server) handleReroll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	_, id, err := s.visitor(r.Context(), w, r)
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	_, err = s.Store.Update(r.Context(), id, func(cur Visitor, _ bool) Visitor {
		cur.Seed = newSeed()
		return cur
	})
	if err != nil {
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/board.pdf", http.StatusSeeOther)
}
