package validators

import (
	"context"
	"regexp"

	"github.com/MKhiriev/go-note-sync/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"
)

var loginPattern = regexp.MustCompile(`^[A-Za-z0-9._@-]+$`)

// CredentialsValidator checks register and login input.
type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var user models.User
	switch value := obj.(type) {
	case models.User:
		user = value
	case *models.User:
		user = *value
	default:
		return ErrUnsupportedType
	}

	checks := []fieldCheck{
		{
			name: FieldLogin,
			check: func() error {
				err := validation.Validate(user.Login,
					validation.Required, validation.Length(3, 64), validation.Match(loginPattern))
				return wrapInvalid(ErrInvalidCredentials, err)
			},
		},
		{
			name: FieldPassword,
			check: func() error {
				err := validation.Validate(user.Password, validation.Required, validation.Length(6, 128))
				return wrapInvalid(ErrInvalidCredentials, err)
			},
		},
	}

	return runChecks(checks, fields)
}
