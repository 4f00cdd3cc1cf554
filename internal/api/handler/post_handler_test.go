package handler

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error)
	listFn   func(ctx context.Context) ([]*domain.Post, error)
	getFn    func(ctx context.Context, id string) (*domain.Post, error)
	updateFn func(ctx context.Context, in ports.EditPostInput) error
	deleteFn func(ctx context.Context, callerID, id string) error
}

func (s *stubPostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, in)
}
func (s *stubPostService) List(ctx context.Context) ([]*domain.Post, error) { return s.listFn(ctx) }
func (s *stubPostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}
func (s *stubPostService) Update(ctx context.Context, in ports.EditPostInput) error {
	return s.updateFn(ctx, in)
}
func (s *stubPostService) Delete(ctx context.Context, callerID, id string) error {
	return s.deleteFn(ctx, callerID, id)
}

// multipartBody builds a multipart form with the given fields and an
// optional file part named "file".
func multipartBody(t *testing.T, fields map[string]string, filename string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if filename != "" {
		fw, err := w.CreateFormFile("file", filename)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write([]byte("fake image bytes")); err != nil {
			t.Fatalf("write file: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return buf, w.FormDataContentType()
}

func newMultipartContext(t *testing.T, method, target string, fields map[string]string, filename, userID string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	body, contentType := multipartBody(t, fields, filename)
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func TestPostHandler_Create_Success(t *testing.T) {
	stub := &stubPostService{
		createFn: func(_ context.Context, in ports.CreatePostInput) (*domain.Post, error) {
			if in.AuthorID != "u1" || in.Title != "T" || in.Summary != "S" || in.Content != "C" {
				t.Fatalf("unexpected input: %+v", in)
			}
			if in.Upload == nil || in.Upload.Filename != "a.png" {
				t.Fatalf("upload not forwarded: %+v", in.Upload)
			}
			data, _ := io.ReadAll(in.Upload.Reader)
			if string(data) != "fake image bytes" {
				t.Fatalf("upload content mismatch: %q", data)
			}
			return &domain.Post{ID: "p1", Title: in.Title, Cover: "/uploads/x.png", AuthorID: in.AuthorID}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newMultipartContext(t, http.MethodPost, "/post",
		map[string]string{"title": "T", "summary": "S", "content": "C"}, "a.png", "u1")

	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "Post created successfully" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestPostHandler_Create_WithoutFile(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newMultipartContext(t, http.MethodPost, "/post",
		map[string]string{"title": "T"}, "", "u1")

	if err := h.Create(c); !errors.Is(err, domain.ErrCoverRequired) {
		t.Fatalf("expected ErrCoverRequired, got %v", err)
	}
}

func TestPostHandler_Create_WithoutSession(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	c, _ := newMultipartContext(t, http.MethodPost, "/post",
		map[string]string{"title": "T"}, "a.png", "")

	if err := h.Create(c); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPostHandler_List(t *testing.T) {
	stub := &stubPostService{
		listFn: func(_ context.Context) ([]*domain.Post, error) {
			return []*domain.Post{
				{ID: "p2", Title: "newer", AuthorName: "alice"},
				{ID: "p1", Title: "older", AuthorName: "alice"},
			}, nil
		},
	}
	h := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/post", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	items, ok := env.Data.([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 posts, got %+v", env.Data)
	}
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	stub := &stubPostService{
		getFn: func(_ context.Context, id string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/post/missing", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostHandler_Update_WithoutFile(t *testing.T) {
	stub := &stubPostService{
		updateFn: func(_ context.Context, in ports.EditPostInput) error {
			if in.Upload != nil {
				t.Fatalf("upload must be nil when no file is sent")
			}
			if in.CallerID != "u1" || in.ID != "p1" || in.Title != "T2" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newMultipartContext(t, http.MethodPut, "/post",
		map[string]string{"id": "p1", "title": "T2"}, "", "u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "Post updated successfully" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestPostHandler_Update_WithFile(t *testing.T) {
	stub := &stubPostService{
		updateFn: func(_ context.Context, in ports.EditPostInput) error {
			if in.Upload == nil || in.Upload.Filename != "b.jpg" {
				t.Fatalf("upload not forwarded: %+v", in.Upload)
			}
			return nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newMultipartContext(t, http.MethodPut, "/post",
		map[string]string{"id": "p1", "title": "T2"}, "b.jpg", "u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
}

func TestPostHandler_Delete(t *testing.T) {
	stub := &stubPostService{
		deleteFn: func(_ context.Context, callerID, id string) error {
			if callerID != "u1" || id != "p1" {
				t.Fatalf("unexpected args: %s %s", callerID, id)
			}
			return nil
		},
	}
	h := NewPostHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/delete/p1", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("p1")
	c.Set("user_id", "u1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	env := decodeEnvelope(t, rec)
	if !env.Success || env.Message != "Post deleted successfully" {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}
