package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/service"
	"github.com/aleksmv/go-habit-tracker/internal/utils"
	"github.com/aleksmv/go-habit-tracker/internal/validators"
	"github.com/aleksmv/go-habit-tracker/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	data, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		var fieldErrs *validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			log.Info().Any("errors", fieldErrs.Fields).Msg("registration payload failed validation")
			h.writeValidationError(w, r, fieldErrs)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.writeError(w, r, "Error registering user", http.StatusInternalServerError)
		}
		return
	}

	h.writeSuccess(w, r, data, "User registered successfully", http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	data, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		var fieldErrs *validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			log.Info().Any("errors", fieldErrs.Fields).Msg("login payload failed validation")
			h.writeValidationError(w, r, fieldErrs)
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Info().Msg("login rejected")
			h.writeError(w, r, "Invalid credentials provided.", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			h.writeError(w, r, "Error during login", http.StatusInternalServerError)
		}
		return
	}

	h.writeSuccess(w, r, data, "Login successful", http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// The auth middleware has already accepted this header, so extraction
	// cannot fail here; the error branch only guards against route misuse.
	token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
	if err != nil {
		log.Err(err).Msg("logout without a usable token")
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		log.Err(err).Msg("unexpected error occurred during logout")
		h.writeError(w, r, "Error during logout", http.StatusInternalServerError)
		return
	}

	h.writeSuccess(w, r, nil, "Logout successful", http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	// Re-read the record so the response reflects the stored state, not the
	// snapshot cached in the context by the auth middleware.
	freshUser, err := h.services.AuthService.CurrentUser(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("unexpected error occurred retrieving user")
		h.writeError(w, r, "Error retrieving user information", http.StatusInternalServerError)
		return
	}

	h.writeSuccess(w, r, freshUser, "User information retrieved successfully", http.StatusOK)
}

func (h *Handler) checkToken(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetCurrentUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	h.writeSuccess(w, r, user, "Token is valid", http.StatusOK)
}
