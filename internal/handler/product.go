package handler

import (
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, products *service.ProductService) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: products,
	}
}

func (h *ProductHandler) ListProducts(c echo.Context, _ *model.EmptyPayload) ([]model.Product, error) {
	return h.products.List(c.Request().Context())
}

func (h *ProductHandler) GetProduct(c echo.Context, payload *model.IDPayload) (*model.Product, error) {
	return h.products.Get(c.Request().Context(), payload.UUID())
}

func (h *ProductHandler) CreateProduct(c echo.Context, payload *model.CreateProductPayload) (*model.Product, error) {
	return h.products.Create(c.Request().Context(), payload.Fields())
}

func (h *ProductHandler) UpdateProduct(c echo.Context, payload *model.UpdateProductPayload) (*model.Product, error) {
	return h.products.Update(c.Request().Context(), payload.UUID(), payload.Patch())
}

func (h *ProductHandler) DeleteProduct(c echo.Context, payload *model.IDPayload) (*model.DeleteResponse, error) {
	return h.products.Delete(c.Request().Context(), payload.UUID())
}
