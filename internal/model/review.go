package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SabihaEylul/nextjswebb/internal/validation"
	"github.com/google/uuid"
)

// TargetKind names the entity a review is attached to.
type TargetKind string

const (
	TargetProduct TargetKind = "product"
	TargetService TargetKind = "service"
)

var (
	ErrNoReviewTarget        = errors.New("review must reference a product or a service")
	ErrAmbiguousReviewTarget = errors.New("review cannot reference both a product and a service")
)

// ReviewTarget is the single parent of a review. Its fields are private so
// a value can only be built through ProductTarget, ServiceTarget or
// NewReviewTarget, each of which yields exactly one parent.
type ReviewTarget struct {
	kind TargetKind
	id   uuid.UUID
}

func ProductTarget(id uuid.UUID) ReviewTarget {
	return ReviewTarget{kind: TargetProduct, id: id}
}

func ServiceTarget(id uuid.UUID) ReviewTarget {
	return ReviewTarget{kind: TargetService, id: id}
}

// NewReviewTarget builds a target from the two nullable columns or request
// fields, rejecting the "neither" and "both" cases.
func NewReviewTarget(productID, serviceID *uuid.UUID) (ReviewTarget, error) {
	switch {
	case productID != nil && serviceID != nil:
		return ReviewTarget{}, ErrAmbiguousReviewTarget
	case productID != nil:
		return ProductTarget(*productID), nil
	case serviceID != nil:
		return ServiceTarget(*serviceID), nil
	default:
		return ReviewTarget{}, ErrNoReviewTarget
	}
}

func (t ReviewTarget) Kind() TargetKind { return t.kind }
func (t ReviewTarget) ID() uuid.UUID    { return t.id }

// IsZero reports whether t is the unset zero value.
func (t ReviewTarget) IsZero() bool {
	return t.kind == ""
}

// Columns splits t back into the product_id and service_id columns.
func (t ReviewTarget) Columns() (productID, serviceID *uuid.UUID) {
	id := t.id
	switch t.kind {
	case TargetProduct:
		return &id, nil
	case TargetService:
		return nil, &id
	}
	return nil, nil
}

func (t ReviewTarget) String() string {
	return fmt.Sprintf("%s:%s", t.kind, t.id)
}

type reviewTargetJSON struct {
	Kind TargetKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

func (t ReviewTarget) MarshalJSON() ([]byte, error) {
	return json.Marshal(reviewTargetJSON{Kind: t.kind, ID: t.id})
}

func (t *ReviewTarget) UnmarshalJSON(data []byte) error {
	var raw reviewTargetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Kind {
	case TargetProduct, TargetService:
		*t = ReviewTarget{kind: raw.Kind, id: raw.ID}
		return nil
	default:
		return fmt.Errorf("unknown review target kind %q", raw.Kind)
	}
}

// Review is a customer rating of a product or a service. Reviews are never
// edited; they can only be deleted.
type Review struct {
	Base
	Name       string       `json:"name"`
	Comment    string       `json:"comment"`
	Rating     int          `json:"rating"`
	Target     ReviewTarget `json:"target"`
	TargetName *string      `json:"targetName,omitempty"`
}

type ReviewFields struct {
	Name    string
	Comment string
	Rating  int
	Target  ReviewTarget
}

// ReviewFilter narrows a review listing to one parent. The zero value
// lists every review.
type ReviewFilter struct {
	Target ReviewTarget
}

// ------------------------------------------------------------

type CreateReviewPayload struct {
	Name      string     `json:"name" validate:"required,max=100"`
	Comment   string     `json:"comment" validate:"required,max=2000"`
	Rating    int        `json:"rating" validate:"required,min=1,max=5"`
	ProductID *uuid.UUID `json:"productId"`
	ServiceID *uuid.UUID `json:"serviceId"`
}

func (p *CreateReviewPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	return targetError(p.ProductID, p.ServiceID)
}

// Fields returns the insert fields. Only call it after Validate succeeded.
func (p *CreateReviewPayload) Fields() ReviewFields {
	target, _ := NewReviewTarget(p.ProductID, p.ServiceID)
	return ReviewFields{
		Name:    p.Name,
		Comment: p.Comment,
		Rating:  p.Rating,
		Target:  target,
	}
}

func targetError(productID, serviceID *uuid.UUID) error {
	_, err := NewReviewTarget(productID, serviceID)
	switch {
	case errors.Is(err, ErrAmbiguousReviewTarget):
		return validation.CustomValidationErrors{
			{Field: "productId", Message: "ambiguous: provide either productId or serviceId, not both"},
			{Field: "serviceId", Message: "ambiguous: provide either productId or serviceId, not both"},
		}
	case errors.Is(err, ErrNoReviewTarget):
		return validation.CustomValidationErrors{
			{Field: "productId", Message: "productId or serviceId is required"},
		}
	}
	return nil
}

// ------------------------------------------------------------

type ListReviewsQuery struct {
	ProductID *uuid.UUID `query:"productId"`
	ServiceID *uuid.UUID `query:"serviceId"`
}

func (q *ListReviewsQuery) Validate() error {
	if q.ProductID != nil && q.ServiceID != nil {
		return targetError(q.ProductID, q.ServiceID)
	}
	return nil
}

func (q *ListReviewsQuery) Filter() ReviewFilter {
	target, err := NewReviewTarget(q.ProductID, q.ServiceID)
	if err != nil {
		return ReviewFilter{}
	}
	return ReviewFilter{Target: target}
}

// ReviewSummaryQuery asks for the rating summary of exactly one parent.
type ReviewSummaryQuery struct {
	ProductID *uuid.UUID `query:"productId"`
	ServiceID *uuid.UUID `query:"serviceId"`
}

func (q *ReviewSummaryQuery) Validate() error {
	return targetError(q.ProductID, q.ServiceID)
}

func (q *ReviewSummaryQuery) Target() ReviewTarget {
	target, _ := NewReviewTarget(q.ProductID, q.ServiceID)
	return target
}
