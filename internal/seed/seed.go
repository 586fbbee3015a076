// Package seed loads the salon's opening catalog into an empty or
// partially filled database. At runtime the database is the only source
// of catalog data; nothing here is read by the HTTP layer.
package seed

import (
	"context"
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/rs/zerolog"
)

type ServiceStore interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	CreateService(ctx context.Context, fields model.ServiceFields) (*model.Service, error)
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, fields model.ProductFields) (*model.Product, error)
}

// Result counts what Run inserted and what it found already present.
type Result struct {
	ServicesCreated int
	ServicesSkipped int
	ProductsCreated int
	ProductsSkipped int
}

// Run inserts every catalog entry whose name (services) or title
// (products) is not in the database yet, so it is safe to run repeatedly.
func Run(ctx context.Context, logger *zerolog.Logger, services ServiceStore, products ProductStore) (Result, error) {
	var result Result

	existingServices, err := services.ListServices(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list services: %w", err)
	}
	serviceNames := make(map[string]bool, len(existingServices))
	for _, s := range existingServices {
		serviceNames[s.Name] = true
	}

	for _, fields := range Services {
		if serviceNames[fields.Name] {
			result.ServicesSkipped++
			logger.Debug().Str("service", fields.Name).Msg("service already present")
			continue
		}
		if _, err := services.CreateService(ctx, fields); err != nil {
			return result, fmt.Errorf("failed to create service %q: %w", fields.Name, err)
		}
		result.ServicesCreated++
		logger.Info().Str("service", fields.Name).Msg("service created")
	}

	existingProducts, err := products.ListProducts(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to list products: %w", err)
	}
	productTitles := make(map[string]bool, len(existingProducts))
	for _, p := range existingProducts {
		productTitles[p.Title] = true
	}

	for _, fields := range Products {
		if productTitles[fields.Title] {
			result.ProductsSkipped++
			logger.Debug().Str("product", fields.Title).Msg("product already present")
			continue
		}
		if _, err := products.CreateProduct(ctx, fields); err != nil {
			return result, fmt.Errorf("failed to create product %q: %w", fields.Title, err)
		}
		result.ProductsCreated++
		logger.Info().Str("product", fields.Title).Msg("product created")
	}

	return result, nil
}
