package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		message string
	}{
		{
			name: "duplicate username is a conflict",
			err: &pgconn.PgError{
				Code:           "23505",
				Severity:       "ERROR",
				TableName:      "admins",
				ConstraintName: "admins_username_key",
			},
			status:  http.StatusConflict,
			code:    "ADMIN_ALREADY_EXISTS",
			message: "An Admin with this Username already exists",
		},
		{
			name: "missing parent is a bad request",
			err: fmt.Errorf("insert review: %w", &pgconn.PgError{
				Code:       "23503",
				TableName:  "reviews",
				ColumnName: "product_id",
			}),
			status:  http.StatusBadRequest,
			code:    "REVIEW_NOT_FOUND",
			message: "The referenced Product does not exist",
		},
		{
			name: "not null carries a field error",
			err: &pgconn.PgError{
				Code:       "23502",
				TableName:  "services",
				ColumnName: "name",
			},
			status:  http.StatusBadRequest,
			code:    "SERVICE_REQUIRED",
			message: "The Name is required",
		},
		{
			name: "check violation",
			err: &pgconn.PgError{
				Code:      "23514",
				TableName: "reviews",
			},
			status:  http.StatusBadRequest,
			code:    "REVIEW_INVALID",
			message: "One or more values do not meet required conditions",
		},
		{
			name:    "no rows with table hint",
			err:     fmt.Errorf("table:contact_messages: %w", pgx.ErrNoRows),
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Contact Message not found",
		},
		{
			name:    "no rows without hint",
			err:     pgx.ErrNoRows,
			status:  http.StatusNotFound,
			code:    "NOT_FOUND",
			message: "Resource not found",
		},
		{
			name:    "unknown error is sanitized",
			err:     errors.New("connection reset by peer"),
			status:  http.StatusInternalServerError,
			code:    "INTERNAL_SERVER_ERROR",
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var httpErr *errs.HTTPError
			require.ErrorAs(t, HandleError(tt.err), &httpErr)
			require.Equal(t, tt.status, httpErr.Status)
			require.Equal(t, tt.code, httpErr.Code)
			require.Equal(t, tt.message, httpErr.Message)
		})
	}
}

func TestHandleErrorKeepsHTTPErrors(t *testing.T) {
	original := errs.NewNotFoundError("Service not found", true, errs.Ptr("SERVICE_NOT_FOUND"))
	require.Same(t, original, HandleError(original))
}

func TestErrCode(t *testing.T) {
	wrapped := fmt.Errorf("wrap: %w", ConvertPgError(&pgconn.PgError{Code: "23505"}))
	require.Equal(t, UniqueViolation, ErrCode(wrapped))
	require.Equal(t, Other, ErrCode(errors.New("plain")))
}
