package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/aleksmv/go-habit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:                 "Ann",
		Email:                "ann@x.com",
		Password:             "password1",
		PasswordConfirmation: "password1",
	}
}

func fieldErrorsFrom(t *testing.T, err error) *FieldErrors {
	t.Helper()
	var fieldErrs *FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	return fieldErrs
}

func TestAuthValidator_RegisterValid(t *testing.T) {
	v := NewAuthValidator()
	assert.NoError(t, v.Validate(context.Background(), validRegisterRequest()))
}

func TestAuthValidator_RegisterPointerValid(t *testing.T) {
	v := NewAuthValidator()
	req := validRegisterRequest()
	assert.NoError(t, v.Validate(context.Background(), &req))
}

func TestAuthValidator_RegisterEmptyName(t *testing.T) {
	v := NewAuthValidator()
	req := validRegisterRequest()
	req.Name = ""

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgNameRequired}, fieldErrs.Fields[FieldName])
}

func TestAuthValidator_RegisterNameTooLong(t *testing.T) {
	v := NewAuthValidator()
	req := validRegisterRequest()
	req.Name = strings.Repeat("a", 256)

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgNameTooLong}, fieldErrs.Fields[FieldName])
}

func TestAuthValidator_RegisterBadEmail(t *testing.T) {
	v := NewAuthValidator()

	for _, email := range []string{"not-an-email", "a@", "@x.com", "a b@x.com"} {
		req := validRegisterRequest()
		req.Email = email

		fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
		assert.Contains(t, fieldErrs.Fields[FieldEmail], MsgEmailInvalid, "email %q", email)
	}
}

func TestAuthValidator_RegisterShortPassword(t *testing.T) {
	v := NewAuthValidator()
	req := validRegisterRequest()
	req.Password = "short"
	req.PasswordConfirmation = "short"

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgPasswordTooShort}, fieldErrs.Fields[FieldPassword])
}

func TestAuthValidator_RegisterConfirmationMismatch(t *testing.T) {
	v := NewAuthValidator()
	req := validRegisterRequest()
	req.PasswordConfirmation = "different1"

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Contains(t, fieldErrs.Fields[FieldPassword], MsgPasswordNoMatch)
}

func TestAuthValidator_RegisterCollectsMultipleFields(t *testing.T) {
	v := NewAuthValidator()
	req := models.RegisterRequest{}

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Contains(t, fieldErrs.Fields, FieldName)
	assert.Contains(t, fieldErrs.Fields, FieldEmail)
	assert.Contains(t, fieldErrs.Fields, FieldPassword)
}

func TestAuthValidator_LoginValid(t *testing.T) {
	v := NewAuthValidator()
	req := models.LoginRequest{Email: "ann@x.com", Password: "password1"}
	assert.NoError(t, v.Validate(context.Background(), req))
}

func TestAuthValidator_LoginMissingFields(t *testing.T) {
	v := NewAuthValidator()

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), models.LoginRequest{}))
	assert.Equal(t, []string{MsgEmailRequired}, fieldErrs.Fields[FieldEmail])
	assert.Equal(t, []string{MsgPasswordRequired}, fieldErrs.Fields[FieldPassword])
}

func TestAuthValidator_UnsupportedType(t *testing.T) {
	v := NewAuthValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}
