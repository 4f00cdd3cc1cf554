package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

// AuthService implements registration, login and logout on top of the user
// repository and the server-side session store.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials and establishes a session. The session is
// written to the store before Login returns, so the cookie handed to the
// client always resolves server-side.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}
