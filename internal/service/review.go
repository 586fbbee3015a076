package service

import (
	"context"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type ReviewService struct {
	reviews  ReviewStore
	products ProductStore
	services ServiceStore
}

func NewReviewService(reviews ReviewStore, products ProductStore, services ServiceStore) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		products: products,
		services: services,
	}
}

// ensureTarget returns the parent's 404 when it does not exist.
func (s *ReviewService) ensureTarget(ctx context.Context, target model.ReviewTarget) error {
	var err error
	switch target.Kind() {
	case model.TargetProduct:
		_, err = s.products.GetProductByID(ctx, target.ID())
	case model.TargetService:
		_, err = s.services.GetServiceByID(ctx, target.ID())
	}
	return err
}

func (s *ReviewService) List(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	return s.reviews.ListReviews(ctx, filter)
}

func (s *ReviewService) Get(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	return s.reviews.GetReviewByID(ctx, id)
}

func (s *ReviewService) Create(ctx context.Context, fields model.ReviewFields) (*model.Review, error) {
	if err := s.ensureTarget(ctx, fields.Target); err != nil {
		return nil, err
	}

	review, err := s.reviews.CreateReview(ctx, fields)
	if err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().
		Str("event", "review_created").
		Str("review_id", review.ID.String()).
		Str("target", review.Target.String()).
		Int("rating", review.Rating).
		Msg("Review created")

	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteResponse, error) {
	if err := s.reviews.DeleteReview(ctx, id); err != nil {
		return nil, err
	}
	return &model.DeleteResponse{Message: "Review deleted successfully", ID: id}, nil
}

// Summary averages the ratings of one product or service.
func (s *ReviewService) Summary(ctx context.Context, target model.ReviewTarget) (*model.RatingSummary, error) {
	if err := s.ensureTarget(ctx, target); err != nil {
		return nil, err
	}

	ratings, err := s.reviews.ListRatings(ctx, target)
	if err != nil {
		return nil, err
	}

	summary := model.SummarizeRatings(target, ratings)
	return &summary, nil
}
