package service

import (
	"context"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ProductService struct {
	store ProductStore
}

func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) List(ctx context.Context) ([]model.Product, error) {
	return s.store.ListProducts(ctx)
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.store.GetProductByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	product, err := s.store.CreateProduct(ctx, fields)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "product_created").
		Str("product_id", product.ID.String()).
		Str("title", product.Title).
		Msg("Product created")

	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	return s.store.UpdateProduct(ctx, id, patch)
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResponse, error) {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "product_deleted").
		Str("product_id", id.String()).
		Msg("Product deleted")

	return &model.DeleteResponse{Message: "Product deleted successfully", ID: id}, nil
}
