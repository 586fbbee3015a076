package model

import "github.com/SabihaEylul/nextjswebb/internal/validation"

// Service is a bookable salon service such as a haircut.
type Service struct {
	BaseWithUpdatedAt
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	ImageURL    *string `db:"image_url" json:"imageUrl"`
}

// ServiceFields are the writable columns of a service.
type ServiceFields struct {
	Name        string
	Description *string
	Price       float64
	ImageURL    *string
}

// ServicePatch holds the fields of a service update. Nil fields are left
// unchanged.
type ServicePatch struct {
	Name        *string
	Description *string
	Price       *float64
	ImageURL    *string
}

// ------------------------------------------------------------

type CreateServicePayload struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=500"`
}

func (p *CreateServicePayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateServicePayload) Fields() ServiceFields {
	return ServiceFields{
		Name:        p.Name,
		Description: p.Description,
		Price:       *p.Price,
		ImageURL:    p.ImageURL,
	}
}

// ------------------------------------------------------------

type UpdateServicePayload struct {
	IDPayload
	Name        *string  `json:"name" validate:"required,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=500"`
}

// Validate requires name and price on every update; omitted optional
// fields keep their stored values.
func (p *UpdateServicePayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateServicePayload) Patch() ServicePatch {
	return ServicePatch{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
	}
}
