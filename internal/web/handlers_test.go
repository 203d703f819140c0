package web

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"unlight/internal/game"
	"unlight/internal/session"
)

const pathBoard = "/board.pdf"

func testServer(t *testing.T) (*Server, *session.MemoryStore[Visitor]) {
	t.Helper()
	board, err := game.DemoBoard()
	if err != nil {
		t.Fatalf("DemoBoard: %v", err)
	}
	store := session.NewMemoryStore[Visitor]()
	return &Server{Board: board, Store: store}, store
}

func TestHandleIndex(t *testing.T) {
	srv, _ := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusFound {
		t.Errorf("Expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != pathBoard {
		t.Errorf("Expected Location %s, got %q", pathBoard, loc)
	}
}

func TestHandleIndex_UnknownPath(t *testing.T) {
	srv, _ := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/nope", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestHandleHealth(t *testing.T) {
	srv, _ := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "ok" {
		t.Errorf("Expected body ok, got %q", rec.Body.String())
	}
}

func TestHandleBoard_NewVisitor(t *testing.T) {
	srv, store := testServer(t)
	req := httptest.NewRequest(http.MethodGet, pathBoard, http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected application/pdf, got %q", ct)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("output is not a PDF (missing %PDF header)")
	}

	var id string
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookieName {
			id = c.Value
		}
	}
	if id == "" {
		t.Fatal("Expected session cookie to be set")
	}
	v, ok, err := store.Get(context.Background(), id)
	if err != nil || !ok {
		t.Fatalf("Expected visitor to be stored, ok=%v err=%v", ok, err)
	}
	if v.Renders != 1 {
		t.Errorf("Expected 1 render, got %d", v.Renders)
	}
}

func TestHandleBoard_ReturningVisitor(t *testing.T) {
	srv, store := testServer(t)
	ctx := context.Background()
	id := store.NewID()
	if err := store.Put(ctx, id, Visitor{Seed: 5, Renders: 3}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, pathBoard, http.NoBody)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("Expected no new cookie for a known visitor")
	}

	v, _, _ := store.Get(ctx, id)
	if v.Seed != 5 {
		t.Errorf("Expected seed to stay 5, got %d", v.Seed)
	}
	if v.Renders != 4 {
		t.Errorf("Expected 4 renders, got %d", v.Renders)
	}
}

func TestHandleBoard_SameSeedSameBoard(t *testing.T) {
	srv, store := testServer(t)
	ctx := context.Background()
	id := store.NewID()
	if err := store.Put(ctx, id, Visitor{Seed: 11}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	get := func() []byte {
		req := httptest.NewRequest(http.MethodGet, pathBoard, http.NoBody)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
		rec := httptest.NewRecorder()
		srv.Routes().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		return rec.Body.Bytes()
	}
	first, second := get(), get()
	if len(first) != len(second) {
		t.Errorf("Expected same-size PDFs for the same seed, got %d and %d", len(first), len(second))
	}
}

func TestHandleBoard_MethodNotAllowed(t *testing.T) {
	srv, _ := testServer(t)
	req := httptest.NewRequest(http.MethodPost, pathBoard, http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}

func TestHandleBoard_RenderFailure(t *testing.T) {
	srv, _ := testServer(t)
	srv.FontPath = "/does/not/exist.ttf"
	req := httptest.NewRequest(http.MethodGet, pathBoard, http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500, got %d", rec.Code)
	}
}

func TestHandleReroll(t *testing.T) {
	srv, store := testServer(t)
	ctx := context.Background()
	id := store.NewID()
	if err := store.Put(ctx, id, Visitor{Seed: 1}); err != nil {
		t.Fatalf("Put: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/reroll", http.NoBody)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: id})
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("Expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != pathBoard {
		t.Errorf("Expected Location %s, got %q", pathBoard, loc)
	}

	v, ok, err := store.Get(ctx, id)
	if err != nil || !ok {
		t.Fatalf("Expected visitor, ok=%v err=%v", ok, err)
	}
	if v.Seed == 1 {
		t.Error("Expected a new seed after reroll")
	}
}

func TestHandleReroll_GetNotAllowed(t *testing.T) {
	srv, _ := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/reroll", http.NoBody)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}
