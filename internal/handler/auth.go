package handler

import (
	"net/http"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/middleware"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/service"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Handler
	auth *service.AuthService
}

func NewAuthHandler(s *server.Server, auth *service.AuthService) *AuthHandler {
	return &AuthHandler{
		Handler: NewHandler(s),
		auth:    auth,
	}
}

// Login verifies the credentials and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context, payload *model.LoginPayload) (*model.Admin, error) {
	ctx := c.Request().Context()

	admin, err := h.auth.Login(ctx, payload.Username, payload.Password)
	if err != nil {
		return nil, err
	}

	token, claims, err := h.auth.StartSession(admin)
	if err != nil {
		return nil, err
	}

	c.SetCookie(h.sessionCookie(token, claims.ExpiresAt.Time))

	middleware.GetLogger(c).Info().
		Str("event", "admin_login").
		Str("admin_id", admin.ID.String()).
		Msg("Admin signed in")

	return admin, nil
}

// Logout revokes the current session and clears the cookie. The cookie is
// cleared even when revocation fails.
func (h *AuthHandler) Logout(c echo.Context, _ *model.EmptyPayload) error {
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))

	claims := middleware.GetSessionClaims(c)
	if claims == nil {
		return nil
	}
	return h.auth.EndSession(c.Request().Context(), claims)
}

// Me returns the signed-in admin.
func (h *AuthHandler) Me(c echo.Context, _ *model.EmptyPayload) (*model.Admin, error) {
	claims := middleware.GetSessionClaims(c)
	if claims == nil {
		return nil, errs.NewUnauthorizedError("Authentication required", false)
	}

	id, err := claims.AdminID()
	if err != nil {
		return nil, errs.NewUnauthorizedError("Session is no longer valid", true)
	}

	return h.auth.Me(c.Request().Context(), id)
}

// Register creates another admin. Only signed-in admins may call it.
func (h *AuthHandler) Register(c echo.Context, payload *model.RegisterPayload) (*model.Admin, error) {
	return h.auth.Register(c.Request().Context(), payload.Username, payload.Password)
}

// sessionCookie builds the HttpOnly session cookie. A zero-length value
// with a past expiry deletes it.
func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.server.Config.Auth.CookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.server.Config.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	}
	if value == "" {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(time.Until(expires).Seconds())
	}
	return cookie
}
