// SPDX-License-Identifier: Apache-2.0

package http

import (
	"net/http"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/utils"
	"github.com/aleksmv/go-habit-tracker/internal/validators"
	"github.com/aleksmv/go-habit-tracker/models"
)

// Envelope messages shared by more than one endpoint.
const (
	msgValidationFailed = "The given data was invalid."
	msgUnauthenticated  = "Unauthenticated."
)

// writeSuccess sends the uniform success envelope with the given payload.
func (h *Handler) writeSuccess(w http.ResponseWriter, r *http.Request, data any, message string, statusCode int) {
	envelope := models.Envelope{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	}

	if _, err := utils.WriteJSON(w, envelope, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing success response")
	}
}

// writeError sends the uniform error envelope. The message is the only
// detail exposed to the client; internal error text stays in the logs.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	envelope := models.Envelope{
		Success:    false,
		Message:    message,
		StatusCode: statusCode,
	}

	if _, err := utils.WriteJSON(w, envelope, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing error response")
	}
}

// writeValidationError sends the 422 envelope carrying per-field violation
// messages under the "errors" key.
func (h *Handler) writeValidationError(w http.ResponseWriter, r *http.Request, fieldErrs *validators.FieldErrors) {
	envelope := models.Envelope{
		Success:    false,
		Message:    msgValidationFailed,
		StatusCode: http.StatusUnprocessableEntity,
		Errors:     fieldErrs.Fields,
	}

	if _, err := utils.WriteJSON(w, envelope, http.StatusUnprocessableEntity); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing validation response")
	}
}
