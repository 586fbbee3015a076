package repository

import (
	"context"
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serviceColumns = `id, name, description, price, image_url, created_at, updated_at`

type ServiceRepository struct {
	server *server.Server
}

func NewServiceRepository(s *server.Server) *ServiceRepository {
	return &ServiceRepository{server: s}
}

func (r *ServiceRepository) ListServices(ctx context.Context) ([]model.Service, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list services query: %w", err)
	}

	services, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Service])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:services: %w", err)
	}

	return services, nil
}

func (r *ServiceRepository) GetServiceByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get service query for id=%s: %w", id, err)
	}

	service, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Service])
	if err != nil {
		return nil, notFound(err, "Service", "SERVICE_NOT_FOUND", "collect row from table:services")
	}

	return &service, nil
}

func (r *ServiceRepository) CreateService(ctx context.Context, fields model.ServiceFields) (*model.Service, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		INSERT INTO services (name, description, price, image_url)
		VALUES (@name, @description, @price, @image_url)
		RETURNING `+serviceColumns,
		pgx.NamedArgs{
			"name":        fields.Name,
			"description": fields.Description,
			"price":       fields.Price,
			"image_url":   fields.ImageURL,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create service query: %w", err)
	}

	service, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Service])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:services: %w", err)
	}

	return &service, nil
}

func (r *ServiceRepository) UpdateService(ctx context.Context, id uuid.UUID, patch model.ServicePatch) (*model.Service, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		UPDATE services
		SET
			name = COALESCE(@name, name),
			description = COALESCE(@description, description),
			price = COALESCE(@price, price),
			image_url = COALESCE(@image_url, image_url),
			updated_at = now()
		WHERE id = @id
		RETURNING `+serviceColumns,
		pgx.NamedArgs{
			"id":          id,
			"name":        patch.Name,
			"description": patch.Description,
			"price":       patch.Price,
			"image_url":   patch.ImageURL,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update service query for id=%s: %w", id, err)
	}

	service, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Service])
	if err != nil {
		return nil, notFound(err, "Service", "SERVICE_NOT_FOUND", "collect row from table:services")
	}

	return &service, nil
}

func (r *ServiceRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	result, err := r.server.DB.Pool.Exec(ctx, `
		DELETE FROM services
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete service query for id=%s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		code := "SERVICE_NOT_FOUND"
		return errs.NewNotFoundError("Service not found", true, &code)
	}

	return nil
}
