package model

import "github.com/SabihaEylul/nextjswebb/internal/validation"

// ContactMessage is a contact form submission. It is read-only once stored.
type ContactMessage struct {
	Base
	Name    string `db:"name" json:"name"`
	Email   string `db:"email" json:"email"`
	Message string `db:"message" json:"message"`
}

type ContactFields struct {
	Name    string
	Email   string
	Message string
}

type CreateContactPayload struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email,max=254"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (p *CreateContactPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateContactPayload) Fields() ContactFields {
	return ContactFields{
		Name:    p.Name,
		Email:   p.Email,
		Message: p.Message,
	}
}
