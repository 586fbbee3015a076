package middleware

import (
	"github.com/SabihaEylul/nextjswebb/internal/lib/session"
	"github.com/SabihaEylul/nextjswebb/internal/logger"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

const (
	AdminIDKey       = "admin_id"
	AdminUsernameKey = "admin_username"
	SessionClaimsKey = "session_claims"
	LoggerKey        = "logger"
)

// ContextEnhancer attaches a request-scoped logger to every request.
type ContextEnhancer struct {
	server *server.Server
}

func NewContextEnhancer(s *server.Server) *ContextEnhancer {
	return &ContextEnhancer{server: s}
}

// EnhanceContext builds a logger carrying the request id, method, route,
// client ip and, when New Relic is active, the trace ids. It is stored on
// the Echo context and in the request's context.Context, where services
// read it back with zerolog.Ctx.
func (ce *ContextEnhancer) EnhanceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			contextLogger := ce.server.Logger.With().
				Str("request_id", GetRequestID(c)).
				Str("method", c.Request().Method).
				Str("path", c.Path()).
				Str("ip", c.RealIP()).
				Logger()

			if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
				contextLogger = logger.WithTraceContext(contextLogger, txn)
			}

			SetLogger(c, contextLogger)

			return next(c)
		}
	}
}

// SetLogger replaces the request-scoped logger.
func SetLogger(c echo.Context, l zerolog.Logger) {
	c.Set(LoggerKey, &l)
	c.SetRequest(c.Request().WithContext(l.WithContext(c.Request().Context())))
}

// GetLogger returns the request-scoped logger, or a no-op logger when
// EnhanceContext did not run.
func GetLogger(c echo.Context) *zerolog.Logger {
	if l, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return l
	}
	l := zerolog.Nop()
	return &l
}

// GetAdminID returns the signed-in admin's id, empty on public routes.
func GetAdminID(c echo.Context) string {
	if adminID, ok := c.Get(AdminIDKey).(string); ok {
		return adminID
	}
	return ""
}

// GetSessionClaims returns the verified session, nil on public routes.
func GetSessionClaims(c echo.Context) *session.Claims {
	if claims, ok := c.Get(SessionClaimsKey).(*session.Claims); ok {
		return claims
	}
	return nil
}
