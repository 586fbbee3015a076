package handler

import (
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	Handler
	reviews *service.ReviewService
}

func NewReviewHandler(s *server.Server, reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		Handler: NewHandler(s),
		reviews: reviews,
	}
}

// ListReviews returns every review, or those of one product or service
// when productId or serviceId is given.
func (h *ReviewHandler) ListReviews(c echo.Context, query *model.ListReviewsQuery) ([]model.Review, error) {
	return h.reviews.List(c.Request().Context(), query.Filter())
}

func (h *ReviewHandler) GetReview(c echo.Context, payload *model.IDPayload) (*model.Review, error) {
	return h.reviews.Get(c.Request().Context(), payload.UUID())
}

func (h *ReviewHandler) GetSummary(c echo.Context, query *model.ReviewSummaryQuery) (*model.RatingSummary, error) {
	return h.reviews.Summary(c.Request().Context(), query.Target())
}

func (h *ReviewHandler) CreateReview(c echo.Context, payload *model.CreateReviewPayload) (*model.Review, error) {
	return h.reviews.Create(c.Request().Context(), payload.Fields())
}

func (h *ReviewHandler) DeleteReview(c echo.Context, payload *model.IDPayload) (*model.DeleteResponse, error) {
	return h.reviews.Delete(c.Request().Context(), payload.UUID())
}
