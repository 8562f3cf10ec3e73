package main

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"immoBack/internal/models"
	"immoBack/internal/services"
)

type memorySessionStore struct {
	sessions map[string]models.Session
}

func (m *memorySessionStore) SaveSession(ctx context.Context, session models.Session) error {
	m.sessions[session.Token] = session
	return nil
}

func (m *memorySessionStore) GetSession(ctx context.Context, token string) (models.Session, error) {
	session, ok := m.sessions[token]
	if !ok {
		return models.Session{}, models.ErrSessionNotFound
	}
	return session, nil
}

func (m *memorySessionStore) DeleteSession(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func newGateTestApp(store *memorySessionStore) *application {
	return &application{
		errorLog: log.New(io.Discard, "", 0),
		infoLog:  log.New(io.Discard, "", 0),
		sessionService: &services.SessionService{
			Sessions: store,
			Secret:   "letmein",
		},
	}
}

func TestDashboardGateRejectsMissingCookie(t *testing.T) {
	app := newGateTestApp(&memorySessionStore{sessions: make(map[string]models.Session)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gated handler must not run without a session")
	})

	req := httptest.NewRequest("POST", "/properties", nil)
	rr := httptest.NewRecorder()
	app.requireDashboardSession(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestDashboardGateRejectsUnknownToken(t *testing.T) {
	app := newGateTestApp(&memorySessionStore{sessions: make(map[string]models.Session)})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gated handler must not run with a stale token")
	})

	req := httptest.NewRequest("POST", "/properties", nil)
	req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: "stale"})
	rr := httptest.NewRecorder()
	app.requireDashboardSession(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestDashboardGatePassesValidToken(t *testing.T) {
	store := &memorySessionStore{sessions: map[string]models.Session{
		"tok": {
			Token:     "tok",
			CreatedAt: time.Now(),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	app := newGateTestApp(store)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("POST", "/properties", nil)
	req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: "tok"})
	rr := httptest.NewRecorder()
	app.requireDashboardSession(next).ServeHTTP(rr, req)

	if !called {
		t.Fatal("gated handler should run with a valid session")
	}
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
