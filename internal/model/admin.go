package model

import "github.com/SabihaEylul/nextjswebb/internal/validation"

// MinPasswordLength applies to registration only; login accepts any input
// and lets the hash comparison decide.
const MinPasswordLength = 6

// Admin is a back-office user. The hash is never serialised.
type Admin struct {
	Base
	Username     string `db:"username" json:"username"`
	PasswordHash string `db:"password_hash" json:"-"`
}

type LoginPayload struct {
	Username string `json:"username" validate:"required,max=50"`
	Password string `json:"password" validate:"required,max=72"`
}

func (p *LoginPayload) Validate() error {
	return validation.Struct(p)
}

// RegisterPayload caps passwords at 72 bytes, the most bcrypt will hash.
type RegisterPayload struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

func (p *RegisterPayload) Validate() error {
	return validation.Struct(p)
}
