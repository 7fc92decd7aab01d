package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
)

// FieldErrors collects validation failures keyed by request field name.
// Messages for one field keep the order in which the rules were checked.
// It implements the error interface so services can return it directly.
type FieldErrors struct {
	Fields map[string][]string
}

// NewFieldErrors returns an empty, ready-to-fill FieldErrors.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{Fields: make(map[string][]string)}
}

// Add appends a violation message to the given field.
func (e *FieldErrors) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Any reports whether at least one violation was recorded.
func (e *FieldErrors) Any() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface with a flat, log-friendly summary.
func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, field+": "+strings.Join(messages, "; "))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// OrNil returns e as an error when violations were recorded, nil otherwise.
// Returning a typed nil through the error interface would always compare
// non-nil, hence this helper.
func (e *FieldErrors) OrNil() error {
	if e.Any() {
		return e
	}
	return nil
}
