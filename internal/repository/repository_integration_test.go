//go:build integration

// Run against a disposable database with
//
//	go test -tags integration ./internal/repository/...
//
// using the usual SALON_DATABASE__* settings. Every table is truncated.
package repository

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/SabihaEylul/nextjswebb/internal/config"
	"github.com/SabihaEylul/nextjswebb/internal/database"
	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/SabihaEylul/nextjswebb/internal/server"
	"github.com/SabihaEylul/nextjswebb/internal/sqlerr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestRepositories(t *testing.T) (*Repositories, *server.Server) {
	t.Helper()

	cfg, err := config.LoadConfig()
	if err != nil {
		t.Skipf("database config not available: %v", err)
	}

	logger := zerolog.Nop()
	ctx := context.Background()
	require.NoError(t, database.Migrate(ctx, &logger, cfg))

	s, err := server.NewDatabaseOnly(cfg, &logger, nil)
	require.NoError(t, err)

	truncate := func() {
		_, err := s.DB.Pool.Exec(ctx, `TRUNCATE reviews, services, products, contact_messages, admins`)
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		_ = s.DB.Close()
	})

	return NewRepositories(s), s
}

func requireHTTPStatus(t *testing.T, err error, status int, code string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	require.Equal(t, status, httpErr.Status)
	if code != "" {
		require.Equal(t, code, httpErr.Code)
	}
}

func TestServiceRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	created, err := repos.Services.CreateService(ctx, model.ServiceFields{
		Name:        "Saç Kesimi",
		Description: ptr("Yıkama dahil"),
		Price:       149.99,
		ImageURL:    ptr("/images/sac-kesimi.jpeg"),
	})
	require.NoError(t, err)
	require.Equal(t, 149.99, created.Price)
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := repos.Services.GetServiceByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Saç Kesimi", got.Name)
	require.Equal(t, 149.99, got.Price)

	t.Run("omitted fields keep their values", func(t *testing.T) {
		updated, err := repos.Services.UpdateService(ctx, created.ID, model.ServicePatch{
			Name:  ptr("Saç Kesimi ve Fön"),
			Price: ptr(0.0),
		})
		require.NoError(t, err)
		require.Equal(t, "Saç Kesimi ve Fön", updated.Name)
		require.Equal(t, 0.0, updated.Price)
		require.Equal(t, "Yıkama dahil", *updated.Description)
		require.Equal(t, "/images/sac-kesimi.jpeg", *updated.ImageURL)
		require.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("negative price violates the check", func(t *testing.T) {
		_, err := repos.Services.CreateService(ctx, model.ServiceFields{Name: "Kaş", Price: -1})
		requireHTTPStatus(t, sqlerr.HandleError(err), http.StatusBadRequest, "")
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.Services.GetServiceByID(ctx, uuid.New())
		requireHTTPStatus(t, err, http.StatusNotFound, "SERVICE_NOT_FOUND")

		_, err = repos.Services.UpdateService(ctx, uuid.New(), model.ServicePatch{Name: ptr("x"), Price: ptr(1.0)})
		requireHTTPStatus(t, err, http.StatusNotFound, "SERVICE_NOT_FOUND")

		err = repos.Services.DeleteService(ctx, uuid.New())
		requireHTTPStatus(t, err, http.StatusNotFound, "SERVICE_NOT_FOUND")
	})

	list, err := repos.Services.ListServices(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repos.Services.DeleteService(ctx, created.ID))
	list, err = repos.Services.ListServices(ctx)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestProductRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	unpriced, err := repos.Products.CreateProduct(ctx, model.ProductFields{
		Title:       "Keratin Şampuan",
		Description: "Yıpranmış saçlar için",
		ImageURL:    "/images/sampuan.jpeg",
	})
	require.NoError(t, err)
	require.Nil(t, unpriced.Price)

	t.Run("price is set through a patch", func(t *testing.T) {
		updated, err := repos.Products.UpdateProduct(ctx, unpriced.ID, model.ProductPatch{Price: ptr(249.5)})
		require.NoError(t, err)
		require.Equal(t, 249.5, *updated.Price)
		require.Equal(t, "Keratin Şampuan", updated.Title)
		require.Equal(t, "/images/sampuan.jpeg", updated.ImageURL)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := repos.Products.GetProductByID(ctx, uuid.New())
		requireHTTPStatus(t, err, http.StatusNotFound, "PRODUCT_NOT_FOUND")

		err = repos.Products.DeleteProduct(ctx, uuid.New())
		requireHTTPStatus(t, err, http.StatusNotFound, "PRODUCT_NOT_FOUND")
	})

	got, err := repos.Products.GetProductByID(ctx, unpriced.ID)
	require.NoError(t, err)
	require.Equal(t, 249.5, *got.Price)
}

func TestReviewRepository(t *testing.T) {
	repos, s := newTestRepositories(t)
	ctx := context.Background()

	service, err := repos.Services.CreateService(ctx, model.ServiceFields{Name: "Kirpik Lifting", Price: 200})
	require.NoError(t, err)
	product, err := repos.Products.CreateProduct(ctx, model.ProductFields{
		Title: "Saç Maskesi", Description: "Onarıcı", ImageURL: "/images/maske.jpeg",
	})
	require.NoError(t, err)

	serviceTarget := model.ServiceTarget(service.ID)
	productTarget := model.ProductTarget(product.ID)

	var serviceReviewID uuid.UUID
	for _, rating := range []int{5, 4} {
		review, err := repos.Reviews.CreateReview(ctx, model.ReviewFields{
			Name: "Ayşe", Comment: "Harika", Rating: rating, Target: serviceTarget,
		})
		require.NoError(t, err)
		require.Equal(t, serviceTarget, review.Target)
		require.Equal(t, "Kirpik Lifting", *review.TargetName)
		serviceReviewID = review.ID
	}

	productReview, err := repos.Reviews.CreateReview(ctx, model.ReviewFields{
		Name: "Elif", Comment: "Güzel koku", Rating: 3, Target: productTarget,
	})
	require.NoError(t, err)
	require.Equal(t, "Saç Maskesi", *productReview.TargetName)

	t.Run("filter by parent", func(t *testing.T) {
		all, err := repos.Reviews.ListReviews(ctx, model.ReviewFilter{})
		require.NoError(t, err)
		require.Len(t, all, 3)

		byService, err := repos.Reviews.ListReviews(ctx, model.ReviewFilter{Target: serviceTarget})
		require.NoError(t, err)
		require.Len(t, byService, 2)
		for _, r := range byService {
			require.Equal(t, serviceTarget, r.Target)
		}

		byProduct, err := repos.Reviews.ListReviews(ctx, model.ReviewFilter{Target: productTarget})
		require.NoError(t, err)
		require.Len(t, byProduct, 1)
		require.Equal(t, productReview.ID, byProduct[0].ID)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repos.Reviews.GetReviewByID(ctx, productReview.ID)
		require.NoError(t, err)
		require.Equal(t, productTarget, got.Target)
		require.Equal(t, "Saç Maskesi", *got.TargetName)

		_, err = repos.Reviews.GetReviewByID(ctx, uuid.New())
		requireHTTPStatus(t, err, http.StatusNotFound, "REVIEW_NOT_FOUND")
	})

	t.Run("ratings", func(t *testing.T) {
		ratings, err := repos.Reviews.ListRatings(ctx, serviceTarget)
		require.NoError(t, err)
		require.ElementsMatch(t, []int{5, 4}, ratings)

		summary := model.SummarizeRatings(serviceTarget, ratings)
		require.Equal(t, 4.5, *summary.Average)
	})

	t.Run("missing parent violates the foreign key", func(t *testing.T) {
		_, err := repos.Reviews.CreateReview(ctx, model.ReviewFields{
			Name: "Ayşe", Comment: "Harika", Rating: 5, Target: model.ServiceTarget(uuid.New()),
		})
		requireHTTPStatus(t, sqlerr.HandleError(err), http.StatusBadRequest, "")
	})

	t.Run("exactly one parent is enforced", func(t *testing.T) {
		_, err := repos.Reviews.CreateReview(ctx, model.ReviewFields{Name: "Ayşe", Comment: "Harika", Rating: 5})
		requireConstraint(t, err, "reviews_single_target")

		_, err = s.DB.Pool.Exec(ctx, `
			INSERT INTO reviews (name, comment, rating, product_id, service_id)
			VALUES ('Ayşe', 'Harika', 5, @product_id, @service_id)
		`, pgx.NamedArgs{"product_id": product.ID, "service_id": service.ID})
		requireConstraint(t, err, "reviews_single_target")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Reviews.DeleteReview(ctx, serviceReviewID))

		err := repos.Reviews.DeleteReview(ctx, serviceReviewID)
		requireHTTPStatus(t, err, http.StatusNotFound, "REVIEW_NOT_FOUND")
	})

	t.Run("deleting a parent cascades", func(t *testing.T) {
		require.NoError(t, repos.Services.DeleteService(ctx, service.ID))

		left, err := repos.Reviews.ListReviews(ctx, model.ReviewFilter{})
		require.NoError(t, err)
		require.Len(t, left, 1)
		require.Equal(t, productReview.ID, left[0].ID)

		require.NoError(t, repos.Products.DeleteProduct(ctx, product.ID))

		left, err = repos.Reviews.ListReviews(ctx, model.ReviewFilter{})
		require.NoError(t, err)
		require.Empty(t, left)
	})
}

func requireConstraint(t *testing.T, err error, constraint string) {
	t.Helper()

	var pgErr *pgconn.PgError
	require.True(t, errors.As(err, &pgErr), "expected a postgres error, got %v", err)
	require.Equal(t, "23514", pgErr.Code)
	require.Equal(t, constraint, pgErr.ConstraintName)
}

func TestContactRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	msg, err := repos.Contacts.CreateContactMessage(ctx, model.ContactFields{
		Name: "Ayşe", Email: "ayse@example.com", Message: "Randevu almak istiyorum",
	})
	require.NoError(t, err)

	got, err := repos.Contacts.GetContactMessageByID(ctx, msg.ID)
	require.NoError(t, err)
	require.Equal(t, "Randevu almak istiyorum", got.Message)

	list, err := repos.Contacts.ListContactMessages(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, repos.Contacts.DeleteContactMessage(ctx, msg.ID))
	_, err = repos.Contacts.GetContactMessageByID(ctx, msg.ID)
	requireHTTPStatus(t, err, http.StatusNotFound, "")
}

func TestAdminRepository(t *testing.T) {
	repos, _ := newTestRepositories(t)
	ctx := context.Background()

	admin, err := repos.Admins.CreateAdmin(ctx, "owner", "$2a$10$hash")
	require.NoError(t, err)

	byName, err := repos.Admins.GetAdminByUsername(ctx, "owner")
	require.NoError(t, err)
	require.Equal(t, admin.ID, byName.ID)

	byID, err := repos.Admins.GetAdminByID(ctx, admin.ID)
	require.NoError(t, err)
	require.Equal(t, "owner", byID.Username)

	_, err = repos.Admins.CreateAdmin(ctx, "owner", "$2a$10$other")
	requireHTTPStatus(t, sqlerr.HandleError(err), http.StatusConflict, "")

	_, err = repos.Admins.GetAdminByUsername(ctx, "nobody")
	require.Error(t, err)
}
