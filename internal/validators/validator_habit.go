package validators

import (
	"context"

	"github.com/aleksmv/go-habit-tracker/models"
)

// Field names used in validation error maps for the habit endpoints.
const (
	FieldHabitName = "name"
	FieldFrequency = "frequency"
)

// Violation messages for the habit endpoints.
const (
	MsgHabitNameRequired = "The name field is required."
	MsgHabitNameTooLong  = "The name may not be greater than 255 characters."
	MsgFrequencyRequired = "The frequency field is required."
	MsgFrequencyInvalid  = "The selected frequency is invalid."
)

// HabitValidator validates habit create and update payloads.
type HabitValidator struct {
}

func NewHabitValidator() Validator {
	return &HabitValidator{}
}

func (v *HabitValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.HabitCreateRequest:
		return v.validateCreate(value)
	case *models.HabitCreateRequest:
		return v.validateCreate(*value)

	case models.HabitUpdateRequest:
		return v.validateUpdate(value)
	case *models.HabitUpdateRequest:
		return v.validateUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *HabitValidator) validateCreate(req models.HabitCreateRequest) error {
	fieldErrs := NewFieldErrors()

	if req.Name == "" {
		fieldErrs.Add(FieldHabitName, MsgHabitNameRequired)
	} else if len(req.Name) > maxNameLength {
		fieldErrs.Add(FieldHabitName, MsgHabitNameTooLong)
	}

	if req.Frequency == "" {
		fieldErrs.Add(FieldFrequency, MsgFrequencyRequired)
	} else if !req.Frequency.Valid() {
		fieldErrs.Add(FieldFrequency, MsgFrequencyInvalid)
	}

	return fieldErrs.OrNil()
}

// validateUpdate checks only the fields present in the partial payload.
func (v *HabitValidator) validateUpdate(req models.HabitUpdateRequest) error {
	fieldErrs := NewFieldErrors()

	if req.Name != nil {
		if *req.Name == "" {
			fieldErrs.Add(FieldHabitName, MsgHabitNameRequired)
		} else if len(*req.Name) > maxNameLength {
			fieldErrs.Add(FieldHabitName, MsgHabitNameTooLong)
		}
	}

	if req.Frequency != nil && !req.Frequency.Valid() {
		fieldErrs.Add(FieldFrequency, MsgFrequencyInvalid)
	}

	return fieldErrs.OrNil()
}
