package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogpress/blog-backend/internal/core/domain"
)

type stubSessionStore struct {
	sessions map[string]string
}

func (s *stubSessionStore) Create(_ context.Context, userID string) (string, error) {
	return "", errors.New("not implemented")
}

func (s *stubSessionStore) Get(_ context.Context, token string) (string, error) {
	if userID, ok := s.sessions[token]; ok {
		return userID, nil
	}
	return "", domain.ErrSessionNotFound
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

const cookieName = "blog_session"

func runSession(t *testing.T, store *stubSessionStore, cookie *http.Cookie) (echo.Context, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/post", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var called bool
	next := func(c echo.Context) error {
		called = true
		return nil
	}
	err := Session(store, cookieName)(next)(c)
	if err != nil && called {
		t.Fatalf("next ran despite middleware error")
	}
	return c, err
}

func TestSession_ValidCookie(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{"tok-1": "u1"}}

	c, err := runSession(t, store, &http.Cookie{Name: cookieName, Value: "tok-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := c.Get("user_id").(string); got != "u1" {
		t.Fatalf("user_id not injected, got %q", got)
	}
	if got, _ := c.Get("session_token").(string); got != "tok-1" {
		t.Fatalf("session_token not injected, got %q", got)
	}
}

func TestSession_MissingCookie(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{}}

	_, err := runSession(t, store, nil)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSession_UnknownToken(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{}}

	_, err := runSession(t, store, &http.Cookie{Name: cookieName, Value: "stale"})
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSession_WrongCookieName(t *testing.T) {
	store := &stubSessionStore{sessions: map[string]string{"tok-1": "u1"}}

	_, err := runSession(t, store, &http.Cookie{Name: "other", Value: "tok-1"})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
