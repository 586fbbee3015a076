// Package model holds the salon's entities and the request payloads
// that create or change them.
package model

import (
	"time"

	"github.com/SabihaEylul/nextjswebb/internal/validation"
	"github.com/google/uuid"
)

// Base is embedded by every entity.
type Base struct {
	ID        uuid.UUID `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// BaseWithUpdatedAt is embedded by mutable entities.
type BaseWithUpdatedAt struct {
	Base
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// IDPayload addresses a single record through the :id path parameter.
type IDPayload struct {
	ID string `param:"id" json:"-" validate:"required,uuid"`
}

func (p *IDPayload) Validate() error {
	return validation.Struct(p)
}

// UUID returns the parsed id. Only call it after Validate succeeded.
func (p *IDPayload) UUID() uuid.UUID {
	return uuid.MustParse(p.ID)
}

// DeleteResponse is returned by every delete endpoint.
type DeleteResponse struct {
	Message string    `json:"message"`
	ID      uuid.UUID `json:"id"`
}

// EmptyPayload is used by endpoints that take no input.
type EmptyPayload struct{}

func (p *EmptyPayload) Validate() error {
	return nil
}
