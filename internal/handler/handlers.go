package handler

import (
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health    *HealthHandler
	OpenAPI   *OpenAPIHandler
	Offerings *OfferingHandler
	Products  *ProductHandler
	Reviews   *ReviewHandler
	Contacts  *ContactHandler
	Auth      *AuthHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:    NewHealthHandler(s),
		OpenAPI:   NewOpenAPIHandler(s),
		Offerings: NewOfferingHandler(s, services.Offerings),
		Products:  NewProductHandler(s, services.Products),
		Reviews:   NewReviewHandler(s, services.Reviews),
		Contacts:  NewContactHandler(s, services.Contacts),
		Auth:      NewAuthHandler(s, services.Auth),
	}
}
