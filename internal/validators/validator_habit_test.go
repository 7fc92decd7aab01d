package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/aleksmv/go-habit-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestHabitValidator_CreateValid(t *testing.T) {
	v := NewHabitValidator()
	req := models.HabitCreateRequest{Name: "Run", Frequency: models.Daily}
	assert.NoError(t, v.Validate(context.Background(), req))
}

func TestHabitValidator_CreateEmptyName(t *testing.T) {
	v := NewHabitValidator()
	req := models.HabitCreateRequest{Frequency: models.Daily}

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgHabitNameRequired}, fieldErrs.Fields[FieldHabitName])
}

func TestHabitValidator_CreateUnknownFrequency(t *testing.T) {
	v := NewHabitValidator()
	req := models.HabitCreateRequest{Name: "Run", Frequency: "hourly"}

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgFrequencyInvalid}, fieldErrs.Fields[FieldFrequency])
}

func TestHabitValidator_CreateMissingFrequency(t *testing.T) {
	v := NewHabitValidator()
	req := models.HabitCreateRequest{Name: "Run"}

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgFrequencyRequired}, fieldErrs.Fields[FieldFrequency])
}

func TestHabitValidator_UpdateEmptyPayloadIsValid(t *testing.T) {
	v := NewHabitValidator()
	assert.NoError(t, v.Validate(context.Background(), models.HabitUpdateRequest{}))
}

func TestHabitValidator_UpdateBlankName(t *testing.T) {
	v := NewHabitValidator()
	blank := ""
	req := models.HabitUpdateRequest{Name: &blank}

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgHabitNameRequired}, fieldErrs.Fields[FieldHabitName])
}

func TestHabitValidator_UpdateNameTooLong(t *testing.T) {
	v := NewHabitValidator()
	long := strings.Repeat("a", 256)
	req := models.HabitUpdateRequest{Name: &long}

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgHabitNameTooLong}, fieldErrs.Fields[FieldHabitName])
}

func TestHabitValidator_UpdateInvalidFrequency(t *testing.T) {
	v := NewHabitValidator()
	freq := models.Frequency("yearly")
	req := models.HabitUpdateRequest{Frequency: &freq}

	fieldErrs := fieldErrorsFrom(t, v.Validate(context.Background(), req))
	assert.Equal(t, []string{MsgFrequencyInvalid}, fieldErrs.Fields[FieldFrequency])
}

func TestHabitValidator_UnsupportedType(t *testing.T) {
	v := NewHabitValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "nope"), ErrUnsupportedType)
}
