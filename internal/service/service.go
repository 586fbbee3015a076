// Package service holds the business rules between handlers and
// repositories.
//
// Services depend on the narrow store interfaces declared here rather
// than on concrete repositories, so the same rules run against Postgres
// in production and against in-memory stores in tests.
package service

import (
	"context"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/google/uuid"
)

type ServiceStore interface {
	ListServices(ctx context.Context) ([]model.Service, error)
	GetServiceByID(ctx context.Context, id uuid.UUID) (*model.Service, error)
	CreateService(ctx context.Context, fields model.ServiceFields) (*model.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, patch model.ServicePatch) (*model.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) error
}

type ProductStore interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	CreateProduct(ctx context.Context, fields model.ProductFields) (*model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type ReviewStore interface {
	ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error)
	GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	CreateReview(ctx context.Context, fields model.ReviewFields) (*model.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
	ListRatings(ctx context.Context, target model.ReviewTarget) ([]int, error)
}

type ContactStore interface {
	ListContactMessages(ctx context.Context) ([]model.ContactMessage, error)
	GetContactMessageByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error)
	CreateContactMessage(ctx context.Context, fields model.ContactFields) (*model.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id uuid.UUID) error
}

type AdminStore interface {
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	GetAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error)
	CreateAdmin(ctx context.Context, username, passwordHash string) (*model.Admin, error)
}

// ContactNotifier queues the owner notification for a new contact message.
type ContactNotifier interface {
	EnqueueContactNotification(ctx context.Context, messageID, name, email, message string, receivedAt time.Time) error
}
