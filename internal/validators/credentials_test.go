package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/dia-companion/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()

	tests := []struct {
		name   string
		creds  models.Credentials
		fields []string
	}{
		{name: "valid", creds: models.Credentials{Email: "anna@example.com", Password: "secret"}},
		{name: "missing email", creds: models.Credentials{Password: "secret"}, fields: []string{FieldEmail}},
		{name: "malformed email", creds: models.Credentials{Email: "anna", Password: "secret"}, fields: []string{FieldEmail}},
		{name: "missing password", creds: models.Credentials{Email: "anna@example.com"}, fields: []string{FieldPassword}},
		{name: "both missing", creds: models.Credentials{}, fields: []string{FieldEmail, FieldPassword}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.creds)
			if len(tt.fields) == 0 {
				require.NoError(t, err)
				return
			}
			got := fieldsOf(t, err)
			assert.ElementsMatch(t, tt.fields, keys(got))
		})
	}
}

func TestCredentialsValidator_Fields(t *testing.T) {
	v := NewCredentialsValidator()
	creds := &models.Credentials{Email: "anna@example.com"}

	assert.NoError(t, v.Validate(context.Background(), creds, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), creds, "role"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
