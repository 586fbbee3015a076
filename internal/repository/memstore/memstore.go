// Package memstore is an in-memory stand-in for the Postgres
// repositories. It backs service and handler tests, mirroring the
// database's ordering, cascading deletes and constraint errors.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/errs"
	"github.com/SabihaEylul/nextjswebb/internal/model"
	"github.com/google/uuid"
)

// Store implements every store interface of the service package.
type Store struct {
	mu       sync.RWMutex
	now      func() time.Time
	services []model.Service
	products []model.Product
	reviews  []model.Review
	contacts []model.ContactMessage
	admins   []model.Admin
}

func New() *Store {
	return &Store{now: time.Now}
}

// stamp returns strictly increasing timestamps so creation order is
// stable even when the clock does not advance between inserts.
func (s *Store) stamp(last time.Time) time.Time {
	t := s.now().UTC()
	if !t.After(last) {
		t = last.Add(time.Microsecond)
	}
	return t
}

func (s *Store) latest() time.Time {
	var last time.Time
	for _, v := range s.services {
		last = maxTime(last, v.CreatedAt)
	}
	for _, v := range s.products {
		last = maxTime(last, v.CreatedAt)
	}
	for _, v := range s.reviews {
		last = maxTime(last, v.CreatedAt)
	}
	for _, v := range s.contacts {
		last = maxTime(last, v.CreatedAt)
	}
	for _, v := range s.admins {
		last = maxTime(last, v.CreatedAt)
	}
	return last
}

func maxTime(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}

func newest[T any](items []T) []T {
	out := slices.Clone(items)
	slices.Reverse(out)
	if out == nil {
		out = []T{}
	}
	return out
}

func notFound(entity, code string) error {
	return errs.NewNotFoundError(entity+" not found", true, &code)
}

func index[T any](items []T, match func(T) bool) int {
	return slices.IndexFunc(items, match)
}

// ---------------------------------------------------------------- services

func (s *Store) ListServices(ctx context.Context) ([]model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newest(s.services), nil
}

func (s *Store) GetServiceByID(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := index(s.services, func(v model.Service) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("Service", "SERVICE_NOT_FOUND")
	}
	service := s.services[i]
	return &service, nil
}

func (s *Store) CreateService(ctx context.Context, fields model.ServiceFields) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp(s.latest())
	service := model.Service{
		BaseWithUpdatedAt: model.BaseWithUpdatedAt{
			Base:      model.Base{ID: uuid.New(), CreatedAt: now},
			UpdatedAt: now,
		},
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		ImageURL:    fields.ImageURL,
	}
	s.services = append(s.services, service)
	return &service, nil
}

func (s *Store) UpdateService(ctx context.Context, id uuid.UUID, patch model.ServicePatch) (*model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := index(s.services, func(v model.Service) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("Service", "SERVICE_NOT_FOUND")
	}

	service := &s.services[i]
	if patch.Name != nil {
		service.Name = *patch.Name
	}
	if patch.Description != nil {
		service.Description = patch.Description
	}
	if patch.Price != nil {
		service.Price = *patch.Price
	}
	if patch.ImageURL != nil {
		service.ImageURL = patch.ImageURL
	}
	service.UpdatedAt = s.now().UTC()

	updated := *service
	return &updated, nil
}

func (s *Store) DeleteService(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := index(s.services, func(v model.Service) bool { return v.ID == id })
	if i < 0 {
		return notFound("Service", "SERVICE_NOT_FOUND")
	}
	s.services = slices.Delete(s.services, i, i+1)
	s.cascade(model.ServiceTarget(id))
	return nil
}

// ---------------------------------------------------------------- products

func (s *Store) ListProducts(ctx context.Context) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newest(s.products), nil
}

func (s *Store) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := index(s.products, func(v model.Product) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("Product", "PRODUCT_NOT_FOUND")
	}
	product := s.products[i]
	return &product, nil
}

func (s *Store) CreateProduct(ctx context.Context, fields model.ProductFields) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.stamp(s.latest())
	product := model.Product{
		BaseWithUpdatedAt: model.BaseWithUpdatedAt{
			Base:      model.Base{ID: uuid.New(), CreatedAt: now},
			UpdatedAt: now,
		},
		Title:       fields.Title,
		Description: fields.Description,
		ImageURL:    fields.ImageURL,
		Price:       fields.Price,
	}
	s.products = append(s.products, product)
	return &product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id uuid.UUID, patch model.ProductPatch) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := index(s.products, func(v model.Product) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("Product", "PRODUCT_NOT_FOUND")
	}

	product := &s.products[i]
	if patch.Title != nil {
		product.Title = *patch.Title
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		product.ImageURL = *patch.ImageURL
	}
	if patch.Price != nil {
		product.Price = patch.Price
	}
	product.UpdatedAt = s.now().UTC()

	updated := *product
	return &updated, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := index(s.products, func(v model.Product) bool { return v.ID == id })
	if i < 0 {
		return notFound("Product", "PRODUCT_NOT_FOUND")
	}
	s.products = slices.Delete(s.products, i, i+1)
	s.cascade(model.ProductTarget(id))
	return nil
}

// ---------------------------------------------------------------- reviews

// cascade mirrors ON DELETE CASCADE on the review foreign keys.
func (s *Store) cascade(target model.ReviewTarget) {
	s.reviews = slices.DeleteFunc(s.reviews, func(r model.Review) bool {
		return r.Target == target
	})
}

func (s *Store) targetName(target model.ReviewTarget) (string, bool) {
	switch target.Kind() {
	case model.TargetProduct:
		if i := index(s.products, func(v model.Product) bool { return v.ID == target.ID() }); i >= 0 {
			return s.products[i].Title, true
		}
	case model.TargetService:
		if i := index(s.services, func(v model.Service) bool { return v.ID == target.ID() }); i >= 0 {
			return s.services[i].Name, true
		}
	}
	return "", false
}

func (s *Store) ListReviews(ctx context.Context, filter model.ReviewFilter) ([]model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []model.Review
	for _, r := range s.reviews {
		if filter.Target.IsZero() || r.Target == filter.Target {
			matched = append(matched, r)
		}
	}
	return newest(matched), nil
}

func (s *Store) GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := index(s.reviews, func(v model.Review) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("Review", "REVIEW_NOT_FOUND")
	}
	review := s.reviews[i]
	return &review, nil
}

func (s *Store) CreateReview(ctx context.Context, fields model.ReviewFields) (*model.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if fields.Target.IsZero() {
		return nil, errs.NewBadRequestError("One or more values do not meet required conditions", true, errs.Ptr("REVIEW_INVALID"), nil, nil)
	}

	name, ok := s.targetName(fields.Target)
	if !ok {
		return nil, errs.NewBadRequestError("The referenced record does not exist", false, errs.Ptr("REVIEW_NOT_FOUND"), nil, nil)
	}

	review := model.Review{
		Base:       model.Base{ID: uuid.New(), CreatedAt: s.stamp(s.latest())},
		Name:       fields.Name,
		Comment:    fields.Comment,
		Rating:     fields.Rating,
		Target:     fields.Target,
		TargetName: &name,
	}
	s.reviews = append(s.reviews, review)
	return &review, nil
}

func (s *Store) DeleteReview(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := index(s.reviews, func(v model.Review) bool { return v.ID == id })
	if i < 0 {
		return notFound("Review", "REVIEW_NOT_FOUND")
	}
	s.reviews = slices.Delete(s.reviews, i, i+1)
	return nil
}

func (s *Store) ListRatings(ctx context.Context, target model.ReviewTarget) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ratings := []int{}
	for _, r := range s.reviews {
		if r.Target == target {
			ratings = append(ratings, r.Rating)
		}
	}
	return ratings, nil
}

// ---------------------------------------------------------------- contact

func (s *Store) ListContactMessages(ctx context.Context) ([]model.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newest(s.contacts), nil
}

func (s *Store) GetContactMessageByID(ctx context.Context, id uuid.UUID) (*model.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := index(s.contacts, func(v model.ContactMessage) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("Contact message", "CONTACT_MESSAGE_NOT_FOUND")
	}
	message := s.contacts[i]
	return &message, nil
}

func (s *Store) CreateContactMessage(ctx context.Context, fields model.ContactFields) (*model.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	message := model.ContactMessage{
		Base:    model.Base{ID: uuid.New(), CreatedAt: s.stamp(s.latest())},
		Name:    fields.Name,
		Email:   fields.Email,
		Message: fields.Message,
	}
	s.contacts = append(s.contacts, message)
	return &message, nil
}

func (s *Store) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := index(s.contacts, func(v model.ContactMessage) bool { return v.ID == id })
	if i < 0 {
		return notFound("Contact message", "CONTACT_MESSAGE_NOT_FOUND")
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)
	return nil
}

// ---------------------------------------------------------------- admins

func (s *Store) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := index(s.admins, func(v model.Admin) bool { return v.Username == username })
	if i < 0 {
		return nil, notFound("Admin", "ADMIN_NOT_FOUND")
	}
	admin := s.admins[i]
	return &admin, nil
}

func (s *Store) GetAdminByID(ctx context.Context, id uuid.UUID) (*model.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := index(s.admins, func(v model.Admin) bool { return v.ID == id })
	if i < 0 {
		return nil, notFound("Admin", "ADMIN_NOT_FOUND")
	}
	admin := s.admins[i]
	return &admin, nil
}

func (s *Store) CreateAdmin(ctx context.Context, username, passwordHash string) (*model.Admin, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index(s.admins, func(v model.Admin) bool { return v.Username == username }) >= 0 {
		return nil, errs.NewConflictError("An Admin with this Username already exists", true, errs.Ptr("ADMIN_ALREADY_EXISTS"))
	}

	admin := model.Admin{
		Base:         model.Base{ID: uuid.New(), CreatedAt: s.stamp(s.latest())},
		Username:     username,
		PasswordHash: passwordHash,
	}
	s.admins = append(s.admins, admin)
	return &admin, nil
}
