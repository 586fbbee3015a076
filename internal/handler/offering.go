package handler

import (
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/service"
	"github.com/labstack/echo/v4"
)

// OfferingHandler serves the salon's bookable services under /api/services.
type OfferingHandler struct {
	Handler
	offerings *service.OfferingService
}

func NewOfferingHandler(s *server.Server, offerings *service.OfferingService) *OfferingHandler {
	return &OfferingHandler{
		Handler:   NewHandler(s),
		offerings: offerings,
	}
}

func (h *OfferingHandler) ListServices(c echo.Context, _ *model.EmptyPayload) ([]model.Service, error) {
	return h.offerings.List(c.Request().Context())
}

func (h *OfferingHandler) GetService(c echo.Context, payload *model.IDPayload) (*model.Service, error) {
	return h.offerings.Get(c.Request().Context(), payload.UUID())
}

func (h *OfferingHandler) CreateService(c echo.Context, payload *model.CreateServicePayload) (*model.Service, error) {
	return h.offerings.Create(c.Request().Context(), payload.Fields())
}

func (h *OfferingHandler) UpdateService(c echo.Context, payload *model.UpdateServicePayload) (*model.Service, error) {
	return h.offerings.Update(c.Request().Context(), payload.UUID(), payload.Patch())
}

func (h *OfferingHandler) DeleteService(c echo.Context, payload *model.IDPayload) (*model.DeleteResponse, error) {
	return h.offerings.Delete(c.Request().Context(), payload.UUID())
}
