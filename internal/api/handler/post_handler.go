package handler

import (
	"mime/multipart"

	"github.com/labstack/echo/v4"

	"github.com/blogpress/blog-backend/internal/api/metrics"
	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

// PostHandler handles HTTP requests for post CRUD.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /post. The body is multipart form data carrying
// title, summary, content and the mandatory cover file.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        title    formData  string  true   "Title"
// @Param        summary  formData  string  false  "Summary"
// @Param        content  formData  string  false  "Content"
// @Param        file     formData  file    true   "Cover image"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /post [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	upload, src, err := formUpload(c)
	if err != nil {
		return domain.ErrCoverRequired
	}
	defer src.Close()

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		AuthorID: userID,
		Title:    c.FormValue("title"),
		Summary:  c.FormValue("summary"),
		Content:  c.FormValue("content"),
		Upload:   upload,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return respondOK(c, "Post created successfully", post)
}

// List handles GET /post: all posts newest-first, author names resolved.
//
// @Summary      List posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /post [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return respondOK(c, "", posts)
}

// Get handles GET /post/:id.
//
// @Summary      Get a post by id
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /post/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respondOK(c, "", post)
}

// Update handles PUT /post. The body is multipart form data; the cover file
// is optional and the existing cover is retained when it is absent.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Param        id       formData  string  true   "Post id"
// @Param        title    formData  string  true   "Title"
// @Param        summary  formData  string  false  "Summary"
// @Param        content  formData  string  false  "Content"
// @Param        file     formData  file    false  "Replacement cover image"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /post [put]
func (h *PostHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	// No file on update means "keep the current cover".
	upload, src, err := formUpload(c)
	if err == nil {
		defer src.Close()
	}

	if err := h.service.Update(c.Request().Context(), ports.EditPostInput{
		CallerID: userID,
		ID:       c.FormValue("id"),
		Title:    c.FormValue("title"),
		Summary:  c.FormValue("summary"),
		Content:  c.FormValue("content"),
		Upload:   upload,
	}); err != nil {
		return err
	}

	return respondOK(c, "Post updated successfully", nil)
}

// Delete handles GET /delete/:id. The route keeps the original verb-on-GET
// shape for frontend compatibility.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /delete/{id} [get]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	metrics.PostsDeletedTotal.Inc()
	return respondOK(c, "Post deleted successfully", nil)
}

// formUpload extracts the single "file" part from a multipart request.
// The returned file must be closed by the caller when err is nil.
func formUpload(c echo.Context) (*ports.FileUpload, multipart.File, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, nil, err
	}

	src, err := fh.Open()
	if err != nil {
		return nil, nil, err
	}

	return &ports.FileUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      src,
	}, src, nil
}
