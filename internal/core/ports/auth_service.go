package ports

import (
	"context"

	"github.com/blogpress/blog-backend/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns the authenticated user and a session token ready for
	// cookie delivery. The session is persisted before Login returns.
	Login(ctx context.Context, username, password string) (*domain.User, string, error)
	// Logout destroys the session identified by token. Idempotent.
	Logout(ctx context.Context, token string) error
}
