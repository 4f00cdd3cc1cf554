package ports

import (
	"context"
)

// SessionStore issues and resolves opaque session tokens. Implementations
// (e.g. Redis) own expiry; callers never see a token past its TTL.
type SessionStore interface {
	// Create issues a fresh token bound to userID and persists it before
	// returning, so a token handed to a client always resolves.
	Create(ctx context.Context, userID string) (string, error)
	// Get resolves a token to the user id it was issued for.
	// Returns domain.ErrSessionNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (string, error)
	// Delete destroys a session. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}
