package middleware

import (
	"errors"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/lib/session"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
)

// LoginPath is where the back-office sends admins without a session.
const LoginPath = "/admin/login"

type AuthMiddleware struct {
	server *server.Server
}

func NewAuthMiddleware(s *server.Server) *AuthMiddleware {
	return &AuthMiddleware{server: s}
}

// RequireAdmin lets a request through only with a valid, unrevoked
// session cookie. The admin's id and claims are then available through
// GetAdminID and GetSessionClaims, and the request logger carries the id.
func (auth *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + auth.server.Config.Auth.CookieName,
		ContextKey:  SessionClaimsKey,
		ParseTokenFunc: func(c echo.Context, token string) (any, error) {
			claims, err := auth.server.Sessions.Parse(c.Request().Context(), token)
			if err != nil {
				return nil, err
			}

			c.Set(AdminIDKey, claims.Subject)
			c.Set(AdminUsernameKey, claims.Username)
			SetLogger(c, GetLogger(c).With().Str("admin_id", claims.Subject).Logger())

			return claims, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var extractErr *echojwt.TokenExtractionError

			event := GetLogger(c).Warn().Err(err)
			switch {
			case errors.As(err, &extractErr):
				event.Msg("request without session cookie")
			case errors.Is(err, session.ErrRevoked):
				event.Msg("revoked session presented")
			default:
				event.Msg("session could not be verified")
			}

			unauthorized := errs.NewUnauthorizedError("Authentication required", false)
			unauthorized.Action = &errs.Action{
				Type:    errs.ActionTypeRedirect,
				Message: "Please sign in again",
				Value:   LoginPath,
			}
			return unauthorized
		},
	})
}
