package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

// Session resolves the session cookie against the server-side store and
// injects the authenticated user id into the request context under "user_id".
// Requests without a resolvable session are rejected with 401.
func Session(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthorized
			}

			userID, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}

			c.Set("user_id", userID)
			c.Set("session_token", cookie.Value)

			return next(c)
		}
	}
}
