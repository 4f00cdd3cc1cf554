package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/blogpress/blog-backend/internal/core/domain"
)

// ctxUserID extracts the user id injected by the Session middleware and
// performs a fast-fail check before any service call: presence proves the
// middleware ran and the cookie resolved server-side.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get("user_id").(string)
	if userID == "" {
		return "", domain.ErrUnauthorized
	}
	return userID, nil
}

// ctxSessionToken returns the raw session token for the current request, or
// "" when the request carried no resolvable session cookie.
func ctxSessionToken(c echo.Context) string {
	token, _ := c.Get("session_token").(string)
	return token
}
