package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/blogpress/blog-backend/internal/api/handler"
	"github.com/blogpress/blog-backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, handler.Envelope) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var env handler.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid envelope: %v", err)
	}
	return rec.Code, env
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"duplicate username", domain.ErrDuplicateUsername, http.StatusConflict},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"stale session", domain.ErrSessionNotFound, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"post not found", domain.ErrPostNotFound, http.StatusNotFound},
		{"cover required", domain.ErrCoverRequired, http.StatusBadRequest},
		{"upload failed", domain.ErrUpload, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, env := renderError(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected status %d, got %d", tc.code, code)
			}
			if env.Success {
				t.Fatalf("error envelope must have success=false")
			}
			if env.Message == "" {
				t.Fatalf("error envelope must carry a message")
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), domain.ErrPostNotFound)
	code, _ := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("wrapped domain error should map to 404, got %d", code)
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	code, env := renderError(t, errors.New("mongo exploded"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if env.Message != "internal server error" {
		t.Fatalf("internal detail leaked to client: %q", env.Message)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, env := renderError(t, echo.NewHTTPError(http.StatusBadRequest, "invalid payload"))
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if env.Message != "invalid payload" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}
