package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/store"
	"github.com/aleksmv/go-habit-tracker/internal/utils"
	"github.com/aleksmv/go-habit-tracker/internal/validators"
	"github.com/aleksmv/go-habit-tracker/models"
)

const msgHabitNotFound = "Habit not found"

func (h *Handler) listHabits(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	habits, err := h.services.HabitService.ListHabits(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("unexpected error occurred listing habits")
		h.writeError(w, r, "Error retrieving habits", http.StatusInternalServerError)
		return
	}

	h.writeSuccess(w, r, habits, "Habits retrieved successfully", http.StatusOK)
}

func (h *Handler) createHabit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	var req models.HabitCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	habit, err := h.services.HabitService.CreateHabit(ctx, user.UserID, req)
	if err != nil {
		var fieldErrs *validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			log.Info().Any("errors", fieldErrs.Fields).Msg("habit payload failed validation")
			h.writeValidationError(w, r, fieldErrs)
		default:
			log.Err(err).Int64("user_id", user.UserID).Msg("unexpected error occurred creating habit")
			h.writeError(w, r, "Error creating habit", statusFromError(err))
		}
		return
	}

	h.writeSuccess(w, r, habit, "Habit created successfully", http.StatusCreated)
}

func (h *Handler) getHabit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	habitID, err := habitIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, msgHabitNotFound, http.StatusNotFound)
		return
	}

	habit, err := h.services.HabitService.GetHabit(ctx, habitID, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrHabitNotFound):
			h.writeError(w, r, msgHabitNotFound, http.StatusNotFound)
		default:
			log.Err(err).Int64("habit_id", habitID).Msg("unexpected error occurred retrieving habit")
			h.writeError(w, r, "Error retrieving habit", statusFromError(err))
		}
		return
	}

	h.writeSuccess(w, r, habit, "Habit retrieved successfully", http.StatusOK)
}

func (h *Handler) updateHabit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	habitID, err := habitIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, msgHabitNotFound, http.StatusNotFound)
		return
	}

	var req models.HabitUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	habit, err := h.services.HabitService.UpdateHabit(ctx, habitID, user.UserID, req)
	if err != nil {
		var fieldErrs *validators.FieldErrors
		switch {
		case errors.As(err, &fieldErrs):
			log.Info().Any("errors", fieldErrs.Fields).Msg("habit payload failed validation")
			h.writeValidationError(w, r, fieldErrs)
		case errors.Is(err, store.ErrHabitNotFound):
			h.writeError(w, r, msgHabitNotFound, http.StatusNotFound)
		default:
			log.Err(err).Int64("habit_id", habitID).Msg("unexpected error occurred updating habit")
			h.writeError(w, r, "Error updating habit", statusFromError(err))
		}
		return
	}

	h.writeSuccess(w, r, habit, "Habit updated successfully", http.StatusOK)
}

func (h *Handler) deleteHabit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetCurrentUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
		return
	}

	habitID, err := habitIDFromRequest(r)
	if err != nil {
		h.writeError(w, r, msgHabitNotFound, http.StatusNotFound)
		return
	}

	if err := h.services.HabitService.DeleteHabit(ctx, habitID, user.UserID); err != nil {
		switch {
		case errors.Is(err, store.ErrHabitNotFound):
			h.writeError(w, r, msgHabitNotFound, http.StatusNotFound)
		default:
			log.Err(err).Int64("habit_id", habitID).Msg("unexpected error occurred deleting habit")
			h.writeError(w, r, "Error deleting habit", statusFromError(err))
		}
		return
	}

	h.writeSuccess(w, r, nil, "Habit deleted successfully", http.StatusOK)
}

// habitIDFromRequest parses the {habitID} route parameter. A non-numeric id
// can never address an existing habit, so callers answer it with 404.
func habitIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "habitID"), 10, 64)
}
