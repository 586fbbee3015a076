package model

import (
	"encoding/json"
	"testing"

	"github.com/SabihaEylul/nextjswebb/internal/validation"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewReviewTarget(t *testing.T) {
	productID := uuid.New()
	serviceID := uuid.New()

	t.Run("product", func(t *testing.T) {
		target, err := NewReviewTarget(&productID, nil)
		require.NoError(t, err)
		require.Equal(t, TargetProduct, target.Kind())
		require.Equal(t, productID, target.ID())

		p, s := target.Columns()
		require.Equal(t, productID, *p)
		require.Nil(t, s)
	})

	t.Run("service", func(t *testing.T) {
		target, err := NewReviewTarget(nil, &serviceID)
		require.NoError(t, err)
		require.Equal(t, TargetService, target.Kind())

		p, s := target.Columns()
		require.Nil(t, p)
		require.Equal(t, serviceID, *s)
	})

	t.Run("neither", func(t *testing.T) {
		target, err := NewReviewTarget(nil, nil)
		require.ErrorIs(t, err, ErrNoReviewTarget)
		require.True(t, target.IsZero())
	})

	t.Run("both", func(t *testing.T) {
		_, err := NewReviewTarget(&productID, &serviceID)
		require.ErrorIs(t, err, ErrAmbiguousReviewTarget)
	})
}

func TestReviewTargetJSON(t *testing.T) {
	id := uuid.MustParse("0d8f6f0e-7a36-4d8e-8f0e-0c5f3c2b9a11")

	data, err := json.Marshal(ServiceTarget(id))
	require.NoError(t, err)
	require.JSONEq(t, `{"kind":"service","id":"0d8f6f0e-7a36-4d8e-8f0e-0c5f3c2b9a11"}`, string(data))

	var decoded ReviewTarget
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, ServiceTarget(id), decoded)

	require.Error(t, json.Unmarshal([]byte(`{"kind":"salon","id":"0d8f6f0e-7a36-4d8e-8f0e-0c5f3c2b9a11"}`), &decoded))
}

func TestCreateReviewPayloadValidate(t *testing.T) {
	productID := uuid.New()
	serviceID := uuid.New()

	tests := []struct {
		name    string
		payload CreateReviewPayload
		field   string
	}{
		{
			name:    "no parent",
			payload: CreateReviewPayload{Name: "Elif", Comment: "Harika", Rating: 5},
			field:   "productId",
		},
		{
			name:    "both parents",
			payload: CreateReviewPayload{Name: "Elif", Comment: "Harika", Rating: 5, ProductID: &productID, ServiceID: &serviceID},
			field:   "serviceId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()

			var custom validation.CustomValidationErrors
			require.ErrorAs(t, err, &custom)

			fields := []string{}
			for _, ce := range custom {
				fields = append(fields, ce.Field)
			}
			require.Contains(t, fields, tt.field)
		})
	}

	t.Run("rating out of range", func(t *testing.T) {
		p := CreateReviewPayload{Name: "Elif", Comment: "Harika", Rating: 6, ProductID: &productID}
		require.Error(t, p.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		p := CreateReviewPayload{Name: "Elif", Comment: "Harika", Rating: 4, ServiceID: &serviceID}
		require.NoError(t, p.Validate())
		require.Equal(t, ServiceTarget(serviceID), p.Fields().Target)
	})
}

func TestReviewQueries(t *testing.T) {
	productID := uuid.New()

	list := ListReviewsQuery{}
	require.NoError(t, list.Validate())
	require.True(t, list.Filter().Target.IsZero())

	list.ProductID = &productID
	require.Equal(t, ProductTarget(productID), list.Filter().Target)

	summary := ReviewSummaryQuery{}
	require.Error(t, summary.Validate())

	summary.ProductID = &productID
	require.NoError(t, summary.Validate())
	require.Equal(t, ProductTarget(productID), summary.Target())
}
