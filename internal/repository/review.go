package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// reviewRow mirrors the reviews table joined with the parent's display
// name. The two nullable parent columns are folded into a
// model.ReviewTarget before leaving the package.
type reviewRow struct {
	ID         uuid.UUID  `db:"id"`
	Name       string     `db:"name"`
	Comment    string     `db:"comment"`
	Rating     int        `db:"rating"`
	ProductID  *uuid.UUID `db:"product_id"`
	ServiceID  *uuid.UUID `db:"service_id"`
	CreatedAt  time.Time  `db:"created_at"`
	TargetName *string    `db:"target_name"`
}

func (row reviewRow) toModel() (model.Review, error) {
	target, err := model.NewReviewTarget(row.ProductID, row.ServiceID)
	if err != nil {
		return model.Review{}, fmt.Errorf("review %s: %w", row.ID, err)
	}

	return model.Review{
		Base:       model.Base{ID: row.ID, CreatedAt: row.CreatedAt},
		Name:       row.Name,
		Comment:    row.Comment,
		Rating:     row.Rating,
		Target:     target,
		TargetName: row.TargetName,
	}, nil
}

const reviewSelect = `
	SELECT
		r.id, r.name, r.comment, r.rating, r.product_id, r.service_id, r.created_at,
		COALESCE(p.title, s.name) AS target_name
	FROM %s r
	LEFT JOIN products p ON p.id = r.product_id
	LEFT JOIN services s ON s.id = r.service_id
`

type ReviewRepository struct {
	server *server.Server
}

func NewReviewRepository(s *server.Server) *ReviewRepository {
	return &ReviewRepository{server: s}
}

func collectReviews(rows pgx.Rows) ([]model.Review, error) {
	reviewRows, err := pgx.CollectRows(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:reviews: %w", err)
	}

	reviews := make([]model.Review, 0, len(reviewRows))
	for _, row := range reviewRows {
		review, err := row.toModel()
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}

	return reviews, nil
}

func (r *ReviewRepository) ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	productID, serviceID := filter.Target.Columns()

	rows, err := r.server.DB.Pool.Query(ctx, fmt.Sprintf(reviewSelect, "reviews")+`
		WHERE (@product_id::uuid IS NULL OR r.product_id = @product_id)
			AND (@service_id::uuid IS NULL OR r.service_id = @service_id)
		ORDER BY r.created_at DESC
	`, pgx.NamedArgs{
		"product_id": productID,
		"service_id": serviceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list reviews query: %w", err)
	}

	return collectReviews(rows)
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	rows, err := r.server.DB.Pool.Query(ctx, fmt.Sprintf(reviewSelect, "reviews")+`
		WHERE r.id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to execute get review query for id=%s: %w", id, err)
	}

	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[reviewRow])
	if err != nil {
		return nil, notFound(err, "Review", "REVIEW_NOT_FOUND", "collect row from table:reviews")
	}

	review, err := row.toModel()
	if err != nil {
		return nil, err
	}

	return &review, nil
}

func (r *ReviewRepository) CreateReview(ctx context.Context, fields model.ReviewFields) (*model.Review, error) {
	productID, serviceID := fields.Target.Columns()

	rows, err := r.server.DB.Pool.Query(ctx, `
		WITH inserted AS (
			INSERT INTO reviews (name, comment, rating, product_id, service_id)
			VALUES (@name, @comment, @rating, @product_id, @service_id)
			RETURNING *
		)`+fmt.Sprintf(reviewSelect, "inserted"),
		pgx.NamedArgs{
			"name":       fields.Name,
			"comment":    fields.Comment,
			"rating":     fields.Rating,
			"product_id": productID,
			"service_id": serviceID,
		})
	if err != nil {
		return nil, fmt.Errorf("failed to execute create review query: %w", err)
	}

	reviews, err := collectReviews(rows)
	if err != nil {
		return nil, err
	}
	if len(reviews) != 1 {
		return nil, fmt.Errorf("create review returned %d rows", len(reviews))
	}

	return &reviews[0], nil
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id uuid.UUID) error {
	result, err := r.server.DB.Pool.Exec(ctx, `
		DELETE FROM reviews
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("failed to execute delete review query for id=%s: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		code := "REVIEW_NOT_FOUND"
		return errs.NewNotFoundError("Review not found", true, &code)
	}

	return nil
}

// ListRatings returns the ratings of every review attached to target.
func (r *ReviewRepository) ListRatings(ctx context.Context, target model.ReviewTarget) ([]int, error) {
	column := "product_id"
	if target.Kind() == model.TargetService {
		column = "service_id"
	}

	rows, err := r.server.DB.Pool.Query(ctx, `
		SELECT rating
		FROM reviews
		WHERE `+column+` = @id
	`, pgx.NamedArgs{"id": target.ID()})
	if err != nil {
		return nil, fmt.Errorf("failed to execute list ratings query: %w", err)
	}

	ratings, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, fmt.Errorf("failed to collect rows from table:reviews: %w", err)
	}

	return ratings, nil
}
