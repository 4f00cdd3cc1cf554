package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blogpress/blog-backend/internal/api/metrics"
	"github.com/blogpress/blog-backend/internal/core/domain"
	"github.com/blogpress/blog-backend/internal/core/ports"
)

// CookieSettings controls how the session cookie is delivered. Secure and
// CrossSite are enabled together for cross-origin frontends over HTTPS.
type CookieSettings struct {
	Name      string
	TTL       time.Duration
	Secure    bool
	CrossSite bool
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieSettings
}

func NewAuthHandler(authService ports.AuthService, cookie CookieSettings) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

type credentialsRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  Envelope
// @Failure      400   {object}  Envelope
// @Failure      409   {object}  Envelope
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.Register(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	return respondOK(c, "Registered successfully", user)
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Username and password"
// @Success      200   {object}  Envelope
// @Failure      401   {object}  Envelope
// @Failure      404   {object}  Envelope
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, token, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("unknown_user").Inc()
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("bad_password").Inc()
		}
		return err
	}

	c.SetCookie(h.sessionCookie(token, h.cookie.TTL))
	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	return respondOK(c, "Login successfully", user)
}

// Logout destroys the current session. Idempotent: a request without a
// resolvable session cookie still succeeds.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := ctxSessionToken(c)
	if token == "" {
		if cookie, err := c.Cookie(h.cookie.Name); err == nil {
			token = cookie.Value
		}
	}

	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}

	// Expire the cookie client-side as well.
	c.SetCookie(h.sessionCookie("", -time.Hour))
	return respondOK(c, "Logout successfully", nil)
}

func (h *AuthHandler) sessionCookie(value string, ttl time.Duration) *http.Cookie {
	sameSite := http.SameSiteLaxMode
	if h.cookie.CrossSite {
		sameSite = http.SameSiteNoneMode
	}
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: sameSite,
	}
}
