package validators

import (
	"context"
	"net/mail"

	"github.com/aleksmv/go-habit-tracker/models"
)

// Field names used in validation error maps for the auth endpoints.
const (
	FieldName                 = "name"
	FieldEmail                = "email"
	FieldPassword             = "password"
	FieldPasswordConfirmation = "password_confirmation"
)

// Violation messages for the auth endpoints.
const (
	MsgNameRequired     = "The name field is required."
	MsgNameTooLong      = "The name may not be greater than 255 characters."
	MsgEmailRequired    = "The email field is required."
	MsgEmailInvalid     = "The email must be a valid email address."
	MsgEmailTooLong     = "The email may not be greater than 255 characters."
	MsgEmailTaken       = "The email has already been taken."
	MsgPasswordRequired = "The password field is required."
	MsgPasswordTooShort = "The password must be at least 8 characters."
	MsgPasswordNoMatch  = "The password confirmation does not match."
)

const (
	maxNameLength     = 255
	maxEmailLength    = 255
	minPasswordLength = 8
)

// AuthValidator validates registration and login payloads.
type AuthValidator struct {
}

func NewAuthValidator() Validator {
	return &AuthValidator{}
}

func (v *AuthValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value)
	case *models.RegisterRequest:
		return v.validateRegister(*value)

	case models.LoginRequest:
		return v.validateLogin(value)
	case *models.LoginRequest:
		return v.validateLogin(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *AuthValidator) validateRegister(req models.RegisterRequest) error {
	fieldErrs := NewFieldErrors()

	if req.Name == "" {
		fieldErrs.Add(FieldName, MsgNameRequired)
	} else if len(req.Name) > maxNameLength {
		fieldErrs.Add(FieldName, MsgNameTooLong)
	}

	validateEmail(fieldErrs, req.Email)

	if req.Password == "" {
		fieldErrs.Add(FieldPassword, MsgPasswordRequired)
	} else if len(req.Password) < minPasswordLength {
		fieldErrs.Add(FieldPassword, MsgPasswordTooShort)
	}

	if req.Password != req.PasswordConfirmation {
		fieldErrs.Add(FieldPassword, MsgPasswordNoMatch)
	}

	return fieldErrs.OrNil()
}

func (v *AuthValidator) validateLogin(req models.LoginRequest) error {
	fieldErrs := NewFieldErrors()

	validateEmail(fieldErrs, req.Email)

	if req.Password == "" {
		fieldErrs.Add(FieldPassword, MsgPasswordRequired)
	}

	return fieldErrs.OrNil()
}

// validateEmail applies the shared email rules: present, parseable as a bare
// address, and within length limits.
func validateEmail(fieldErrs *FieldErrors, email string) {
	if email == "" {
		fieldErrs.Add(FieldEmail, MsgEmailRequired)
		return
	}

	if len(email) > maxEmailLength {
		fieldErrs.Add(FieldEmail, MsgEmailTooLong)
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		fieldErrs.Add(FieldEmail, MsgEmailInvalid)
	}
}
