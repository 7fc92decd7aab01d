package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"
)

// apiEnvelope mirrors the server's uniform response shape with a raw data
// payload, so each call site can decode data into its own type.
type apiEnvelope struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	StatusCode int                 `json:"status_code"`
	Errors     map[string][]string `json:"errors,omitempty"`
}

// mapHTTPError converts a non-2xx response into one of the package's
// sentinel errors, carrying the server's envelope message (and, for
// validation failures, the per-field violations) as context.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var envelope apiEnvelope
	message := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		message = envelope.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusUnprocessableEntity:
		if details := flattenFieldErrors(envelope.Errors); details != "" {
			return fmt.Errorf("%w: %s", ErrValidation, details)
		}
		return fmt.Errorf("%w: %s", ErrValidation, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// flattenFieldErrors renders the envelope's per-field violations into a
// single deterministic line for error wrapping and CLI output.
func flattenFieldErrors(fields map[string][]string) string {
	if len(fields) == 0 {
		return ""
	}

	names := make([]string, 0, len(fields))
	for field := range fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, field+": "+strings.Join(fields[field], "; "))
	}

	return strings.Join(parts, ", ")
}
