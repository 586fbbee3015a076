package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequestID(t *testing.T) {
	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	t.Run("generates one", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/")
		require.NoError(t, handler(c))
		require.NotEmpty(t, rec.Body.String())
		require.Equal(t, rec.Body.String(), rec.Header().Get(RequestIDHeader))
	})

	t.Run("reuses upstream id", func(t *testing.T) {
		c, rec := newContext(http.MethodGet, "/")
		c.Request().Header.Set(RequestIDHeader, "abc-123")
		require.NoError(t, handler(c))
		require.Equal(t, "abc-123", rec.Body.String())
	})
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(&server.Server{})

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{
			name:   "application error",
			err:    errs.NewConflictError("Username already exists", true, errs.Ptr("ADMIN_ALREADY_EXISTS")),
			status: http.StatusConflict,
			code:   "ADMIN_ALREADY_EXISTS",
		},
		{
			name:   "unknown route",
			err:    echo.ErrNotFound,
			status: http.StatusNotFound,
			code:   "ROUTE_NOT_FOUND",
		},
		{
			name:   "unexpected error is sanitized",
			err:    errors.New("dial tcp: connection refused"),
			status: http.StatusInternalServerError,
			code:   "INTERNAL_SERVER_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/api/services")
			global.GlobalErrorHandler(tt.err, c)

			require.Equal(t, tt.status, rec.Code)
			require.Contains(t, rec.Body.String(), `"code":"`+tt.code+`"`)
			require.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestGetLoggerWithoutEnhancer(t *testing.T) {
	c, _ := newContext(http.MethodGet, "/")
	require.NotNil(t, GetLogger(c))
	require.Empty(t, GetAdminID(c))
	require.Nil(t, GetSessionClaims(c))
}
