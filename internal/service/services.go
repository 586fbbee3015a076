package service

import (
	"github.com/SabihaEylul/nextjswebb/internal/repository"
	"github.com/SabihaEylul/nextjswebb/internal/server"
)

type Services struct {
	Offerings *OfferingService
	Products  *ProductService
	Reviews   *ReviewService
	Contacts  *ContactService
	Auth      *AuthService
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	var notifier ContactNotifier
	if s.Job != nil {
		notifier = s.Job
	}

	return &Services{
		Offerings: NewOfferingService(repos.Services),
		Products:  NewProductService(repos.Products),
		Reviews:   NewReviewService(repos.Reviews, repos.Products, repos.Services),
		Contacts:  NewContactService(repos.Contacts, notifier),
		Auth:      NewAuthService(repos.Admins, s.Sessions),
	}, nil
}

var (
	_ ServiceStore = (*repository.ServiceRepository)(nil)
	_ ProductStore = (*repository.ProductRepository)(nil)
	_ ReviewStore  = (*repository.ReviewRepository)(nil)
	_ ContactStore = (*repository.ContactRepository)(nil)
	_ AdminStore   = (*repository.AdminRepository)(nil)
)
