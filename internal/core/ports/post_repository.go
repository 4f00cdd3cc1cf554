package ports

import (
	"context"

	"github.com/blogpress/blog-backend/internal/core/domain"
)

// UpdatePostInput carries the mutable fields of a post. Cover is applied
// only when non-empty; the author is never touched by an update.
type UpdatePostInput struct {
	Title   string
	Summary string
	Content string
	Cover   string
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Insert(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// FindAll returns every post ordered by creation time, newest first.
	FindAll(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, id string, in UpdatePostInput) error
	Delete(ctx context.Context, id string) error
}
