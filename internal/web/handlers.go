package web

import (
	"context"
	"net/http"

	"unlight/internal/game"
	"unlight/internal/session"
)

// Server serves the rendered board. Board is built once at startup and
// shared read-only by every request.
type Server struct {
	Board *game.Board
	Store session.Store[Visitor]
	// FontPath is passed through to the PDF renderer.
	FontPath string
	// Seed, when non-zero, overrides every visitor's placeholder seed.
	Seed uint64
}

const cookieName = "unlight_sid"

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/board.pdf", s.handleBoard)
	mux.HandleFunc("/reroll", s.handleReroll)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, "/board.pdf", http.StatusFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

// visitor returns the caller's state, creating it (and the cookie) on
// first contact. Each call counts as a visit.
func (s *Server) visitor(ctx context.Context, w http.ResponseWriter, r *http.Request) (Visitor, string, error) {
	id := s.sessionID(r)
	if id == "" {
		id = s.Store.NewID()
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    id,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	v, err := s.Store.Update(ctx, id, func(cur Visitor, found bool) Visitor {
		if !found {
			cur = NewVisitor()
		}
		cur.Renders++
		return cur
	})
	return v, id, err
}

func (s *Server) sessionID(r *http.Request) string {
	c, err := r.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}
