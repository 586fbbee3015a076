package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestCreateServicePayloadValidate(t *testing.T) {
	tests := []struct {
		name    string
		payload CreateServicePayload
		wantErr bool
	}{
		{"valid", CreateServicePayload{Name: "Saç Kesimi", Price: ptr(150.0)}, false},
		{"free service", CreateServicePayload{Name: "Danışma", Price: ptr(0.0)}, false},
		{"missing name", CreateServicePayload{Price: ptr(150.0)}, true},
		{"missing price", CreateServicePayload{Name: "Saç Kesimi"}, true},
		{"negative price", CreateServicePayload{Name: "Saç Kesimi", Price: ptr(-1.0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdatePayloadsRequireFields(t *testing.T) {
	id := IDPayload{ID: "3f2a3c1e-5b7d-4f0a-9c2e-1a2b3c4d5e6f"}

	require.Error(t, (&UpdateServicePayload{IDPayload: id}).Validate())
	require.Error(t, (&UpdateServicePayload{IDPayload: id, Price: ptr(200.0)}).Validate())
	require.Error(t, (&UpdateServicePayload{IDPayload: id, Name: ptr("Fön")}).Validate())
	require.Error(t, (&UpdateServicePayload{IDPayload: id, Name: ptr(""), Price: ptr(200.0)}).Validate())
	require.NoError(t, (&UpdateServicePayload{IDPayload: id, Name: ptr("Fön"), Price: ptr(0.0)}).Validate())

	patch := (&UpdateServicePayload{IDPayload: id, Name: ptr("Fön"), Price: ptr(200.0)}).Patch()
	require.Nil(t, patch.Description)
	require.Nil(t, patch.ImageURL)

	require.Error(t, (&UpdateProductPayload{IDPayload: id}).Validate())
	require.NoError(t, (&UpdateProductPayload{IDPayload: id, Title: ptr("Şampuan")}).Validate())
}

func TestCreateProductPayloadValidate(t *testing.T) {
	p := CreateProductPayload{Title: "Şampuan", Description: "Keratinli", ImageURL: "/images/sampuan.jpeg"}
	require.NoError(t, p.Validate())
	require.Nil(t, p.Fields().Price)

	p.ImageURL = ""
	require.Error(t, p.Validate())
}

func TestAuthPayloads(t *testing.T) {
	require.Error(t, (&RegisterPayload{Username: "admin", Password: "12345"}).Validate())
	require.NoError(t, (&RegisterPayload{Username: "admin", Password: "123456"}).Validate())

	require.NoError(t, (&LoginPayload{Username: "admin", Password: "x"}).Validate())
	require.Error(t, (&LoginPayload{Username: "admin"}).Validate())
}

func TestContactPayload(t *testing.T) {
	require.Error(t, (&CreateContactPayload{Name: "Zeynep", Email: "not-an-email", Message: "Merhaba"}).Validate())
	require.NoError(t, (&CreateContactPayload{Name: "Zeynep", Email: "zeynep@example.com", Message: "Merhaba"}).Validate())
}
