package validators

import (
	"context"
	"net/mail"
	"strings"

	"github.com/MKhiriev/dia-companion/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
)

// CredentialsValidator checks register and login requests.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var c models.Credentials
	switch value := obj.(type) {
	case models.Credentials:
		c = value
	case *models.Credentials:
		c = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := fieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(c.Email) == "" {
				errs.add(FieldEmail, "email is required")
			} else if _, err := mail.ParseAddress(c.Email); err != nil {
				errs.add(FieldEmail, "email is not valid")
			}
		case FieldPassword:
			if c.Password == "" {
				errs.add(FieldPassword, "password is required")
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.err()
}
