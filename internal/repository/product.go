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

const productColumns = `id, title, description, image_url, price, created_at, updated_at`

type ProductRepository struct {
	server *server.Server
}

func NewProductRepository(s *server.Server) *ProductRepository {
	return &ProductRepository{server: s}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to execute list products query: %w", err)
	}

	products, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:products: %w", err)
	}

	return products, nil
}

func (r *ProductRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get product query for id=%s: %w", id, err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, notFound(err, "Product", "PRODUCT_NOT_FOUND", "collect row from table:products")
	}

	return &product, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		INSERT INTO products (title, description, image_url, price)
		VALUES (@title, @description, @image_url, @price)
		RETURNING `+productColumns,
		pgx.NamedArgs{
			"title":       fields.Title,
			"description": fields.Description,
			"image_url":   fields.ImageURL,
			"price":       fields.Price,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create product query: %w", err)
	}

	product, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, fmt.Errorf("failed to collect row from table:products: %w", err)
	}

	return &product, nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	rows, err := r.server.DB.Pool.Query(ctx, `
		UPDATE products
		SET
			title = COALESCE(@title, title),
			description = COALESCE(@description, description),
			image_url = COALESCE(@image_url, image_url),
			price = COALESCE(@price, price),
			updated_at = now()
		WHERE id = @id
		RETURNING `+productColumns,
		pgx.NamedArgs{
			"id":          id,
			"title":       patch.Title,
			"description": patch.Description,
			"image_url":   patch.ImageURL,
			"price":       patch.Price,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to execute update product query for id=%s: %w", id, err)
	}

	product, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[model.Product])
	if err != nil {
		return nil, notFound(err, "Product", "PRODUCT_NOT_FOUND", "collect row from table:products")
	}

	return &product, nil
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	result, err := r.server.DB.Pool.Exec(ctx, `
		DELETE FROM products
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete product query for id=%s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		code := "PRODUCT_NOT_FOUND"
		return errs.NewNotFoundError("Product not found", true, &code)
	}

	return nil
}
