package ports

import (
	"context"

	"github.com/blogpress/blog-backend/internal/core/domain"
)

// UserRepository defines persistence for registered users. Username
// uniqueness is enforced by the store, not by the caller.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
