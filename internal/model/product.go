package model

import "github.com/SabihaEylul/nextjswebb/internal/validation"

// Product is a retail item sold in the salon. Price is optional; products
// without one are shown as "ask in store".
type Product struct {
	BaseWithUpdatedAt
	Title       string   `db:"title" json:"title"`
	Description string   `db:"description" json:"description"`
	ImageURL    string   `db:"image_url" json:"imageUrl"`
	Price       *float64 `db:"price" json:"price"`
}

type ProductFields struct {
	Title       string
	Description string
	ImageURL    string
	Price       *float64
}

// ProductPatch holds the fields of a product update. Nil fields are left
// unchanged.
type ProductPatch struct {
	Title       *string
	Description *string
	ImageURL    *string
	Price       *float64
}

// ------------------------------------------------------------

type CreateProductPayload struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required,max=2000"`
	ImageURL    string   `json:"imageUrl" validate:"required,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (p *CreateProductPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateProductPayload) Fields() ProductFields {
	return ProductFields{
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
	}
}

// ------------------------------------------------------------

type UpdateProductPayload struct {
	IDPayload
	Title       *string  `json:"title" validate:"omitempty,min=1,max=200"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=2000"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,min=1,max=500"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (p *UpdateProductPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.Title == nil && p.Description == nil && p.ImageURL == nil && p.Price == nil {
		return validation.CustomValidationErrors{{Field: "body", Message: "at least one field must be provided"}}
	}
	return nil
}

func (p *UpdateProductPayload) Patch() ProductPatch {
	return ProductPatch{
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Price:       p.Price,
	}
}
