// Package repository runs the SQL behind every entity.
//
// Each repository issues single, auto-committed statements against the
// shared pool owned by server.Server. Unknown ids surface as 404
// *errs.HTTPError values; every other driver error is returned wrapped
// and translated by the global error handler.
package repository

import (
	"errors"
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/jackc/pgx/v5"
)

// notFound converts pgx.ErrNoRows into a 404 for the named entity and
// wraps anything else.
func notFound(err error, entity, code, op string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(entity+" not found", true, &code)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
