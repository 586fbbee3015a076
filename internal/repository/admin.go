package repository

import (
	"context"
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const adminColumns = `id, username, password_hash, created_at`

type AdminRepository struct {
	server *server.Server
}

func NewAdminRepository(s *server.Server) *AdminRepository {
	return &AdminRepository{server: s}
}

func (r *AdminRepository) getAdmin(ctx context.Context, where string, arg any) (*model.Admin, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT `+adminColumns+`
		FROM admins
		WHERE `+where+` = @value
	`, pgx.NamedArgs{"value": arg})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get admin query: %w", err)
	}

	admin, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Admin])
	if err != nil {
		return nil, notFound(err, "Admin", "ADMIN_NOT_FOUND", "collect row from table:admins")
	}

	return &admin, nil
}

func (r *AdminRepository) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return r.getAdmin(ctx, "username", username)
}

func (r *AdminRepository) GetAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	return r.getAdmin(ctx, "id", id)
}

// CreateAdmin inserts an admin. A taken username fails with the
// admins_username_key unique violation.
func (r *AdminRepository) CreateAdmin(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		INSERT INTO admins (username, password_hash)
		VALUES (@username, @password_hash)
		RETURNING `+adminColumns,
		pgx.NamedArgs{
			"username":      username,
			"password_hash": passwordHash,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create admin query: %w", err)
	}

	admin, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Admin])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:admins: %w", err)
	}

	return &admin, nil
}
