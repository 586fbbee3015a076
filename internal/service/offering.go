package service

import (
	"context"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OfferingService manages the salon's service catalog. It is named after
// what the salon offers to keep it apart from this package's own name.
type OfferingService struct {
	store ServiceStore
}

func NewOfferingService(store ServiceStore) *OfferingService {
	return &OfferingService{store: store}
}

func (s *OfferingService) List(ctx context.Context) ([]model.Service, error) {
	return s.store.ListServices(ctx)
}

func (s *OfferingService) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.store.GetServiceByID(ctx, id)
}

func (s *OfferingService) Create(ctx context.Context, fields model.ServiceFields) (*model.Service, error) {
	service, err := s.store.CreateService(ctx, fields)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "service_created").
		Str("service_id", service.ID.String()).
		Str("name", service.Name).
		Msg("Service created")

	return service, nil
}

func (s *OfferingService) Update(ctx context.Context, id uuid.UUID, patch model.ServicePatch) (*model.Service, error) {
	return s.store.UpdateService(ctx, id, patch)
}

func (s *OfferingService) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResponse, error) {
	if err := s.store.DeleteService(ctx, id); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "service_deleted").
		Str("service_id", id.String()).
		Msg("Service deleted")

	return &model.DeleteResponse{Message: "Service deleted successfully", ID: id}, nil
}
