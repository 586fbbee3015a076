package repository

import (
	"github.com/SabihaEylul/nextjswebb/internal/server"
)

// Repositories groups the repositories built on the shared pool.
type Repositories struct {
	Services *ServiceRepository
	Products *ProductRepository
	Reviews  *ReviewRepository
	Contacts *ContactRepository
	Admins   *AdminRepository
}

func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Services: NewServiceRepository(s),
		Products: NewProductRepository(s),
		Reviews:  NewReviewRepository(s),
		Contacts: NewContactRepository(s),
		Admins:   NewAdminRepository(s),
	}
}
