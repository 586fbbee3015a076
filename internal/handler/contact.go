package handler

import (
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/service"
	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	Handler
	contacts *service.ContactService
}

func NewContactHandler(s *server.Server, contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{
		Handler:  NewHandler(s),
		contacts: contacts,
	}
}

// SubmitMessage stores a contact form submission from the public site.
func (h *ContactHandler) SubmitMessage(c echo.Context, payload *model.CreateContactPayload) (*model.ContactMessage, error) {
	return h.contacts.Create(c.Request().Context(), payload.Fields())
}

func (h *ContactHandler) ListMessages(c echo.Context, _ *model.EmptyPayload) ([]model.ContactMessage, error) {
	return h.contacts.List(c.Request().Context())
}

func (h *ContactHandler) GetMessage(c echo.Context, payload *model.IDPayload) (*model.ContactMessage, error) {
	return h.contacts.Get(c.Request().Context(), payload.UUID())
}

func (h *ContactHandler) DeleteMessage(c echo.Context, payload *model.IDPayload) (*model.DeleteResponse, error) {
	return h.contacts.Delete(c.Request().Context(), payload.UUID())
}
