package ports

import (
	"context"

	"github.com/blogpress/blog-backend/internal/core/domain"
)

// CreatePostInput carries everything needed to create a post. Upload must be
// non-nil: every post is created with a cover image.
type CreatePostInput struct {
	AuthorID string
	Title    string
	Summary  string
	Content  string
	Upload   *FileUpload
}

// EditPostInput carries an update. Upload may be nil, in which case the
// existing cover is retained. CallerID identifies the authenticated user;
// only the original author may edit or delete a post.
type EditPostInput struct {
	CallerID string
	ID       string
	Title    string
	Summary  string
	Content  string
	Upload   *FileUpload
}

type PostService interface {
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	// List returns all posts newest-first with author usernames resolved.
	List(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, in EditPostInput) error
	Delete(ctx context.Context, callerID, id string) error
}
