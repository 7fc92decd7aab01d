// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/store"
	"github.com/aleksmv/go-habit-tracker/internal/validators"
	"github.com/aleksmv/go-habit-tracker/models"
)

// habitService is the concrete implementation of HabitService.
//
// Every operation carries the owning user id down to the repository, where it
// lands in the WHERE clause of each query. A habit belonging to another user
// is therefore indistinguishable from a habit that does not exist; both
// surface as store.ErrHabitNotFound.
type habitService struct {
	// habitRepository is the data-access layer for habit records.
	habitRepository store.HabitRepository

	// validator enforces the habit payload rules before persistence.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewHabitService constructs a HabitService wired to the given HabitRepository.
func NewHabitService(habitRepository store.HabitRepository, logger *logger.Logger) HabitService {
	return &habitService{
		habitRepository: habitRepository,
		validator:       validators.NewHabitValidator(),
		logger:          logger,
	}
}

// ListHabits returns all habits owned by the user, oldest first. A user with
// no habits gets an empty list, not an error.
func (h *habitService) ListHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	log := logger.FromContext(ctx)

	habits, err := h.habitRepository.ListHabitsByUser(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("habit listing failed")
		return nil, fmt.Errorf("habit listing failed: %w", err)
	}

	for i := range habits {
		habits[i].FrequencyLabel = habits[i].Frequency.Label()
	}

	return habits, nil
}

// CreateHabit validates the payload and persists a new habit owned by userID.
//
// Returns the persisted habit (with server-assigned id and timestamps) or:
//   - *validators.FieldErrors when the payload breaks a validation rule.
//   - A wrapped storage error if persistence fails.
func (h *habitService) CreateHabit(ctx context.Context, userID int64, req models.HabitCreateRequest) (models.Habit, error) {
	log := logger.FromContext(ctx)

	if err := h.validator.Validate(ctx, req); err != nil {
		return models.Habit{}, err
	}

	habit, err := h.habitRepository.CreateHabit(ctx, models.Habit{
		UserID:    userID,
		Name:      req.Name,
		Frequency: req.Frequency,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("habit creation ended with error")
		return models.Habit{}, fmt.Errorf("habit creation ended with error: %w", err)
	}

	habit.FrequencyLabel = habit.Frequency.Label()

	return habit, nil
}

// GetHabit returns a single habit owned by userID, or store.ErrHabitNotFound
// when no such habit is visible to that user.
func (h *habitService) GetHabit(ctx context.Context, habitID, userID int64) (models.Habit, error) {
	habit, err := h.habitRepository.FindHabitByIDForUser(ctx, habitID, userID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit lookup failed: %w", err)
	}

	habit.FrequencyLabel = habit.Frequency.Label()

	return habit, nil
}

// UpdateHabit applies a partial mutation to a habit owned by userID. Fields
// absent from the payload keep their stored values; an empty payload still
// touches the habit's updated_at timestamp.
func (h *habitService) UpdateHabit(ctx context.Context, habitID, userID int64, req models.HabitUpdateRequest) (models.Habit, error) {
	log := logger.FromContext(ctx)

	if err := h.validator.Validate(ctx, req); err != nil {
		return models.Habit{}, err
	}

	habit, err := h.habitRepository.UpdateHabit(ctx, models.HabitUpdate{
		ID:        habitID,
		UserID:    userID,
		Name:      req.Name,
		Frequency: req.Frequency,
	})
	if err != nil {
		log.Err(err).Int64("habit_id", habitID).Int64("user_id", userID).Msg("habit update ended with error")
		return models.Habit{}, fmt.Errorf("habit update ended with error: %w", err)
	}

	habit.FrequencyLabel = habit.Frequency.Label()

	return habit, nil
}

// DeleteHabit removes a habit owned by userID. Deleting a habit that is not
// visible to that user fails with store.ErrHabitNotFound.
func (h *habitService) DeleteHabit(ctx context.Context, habitID, userID int64) error {
	log := logger.FromContext(ctx)

	if err := h.habitRepository.DeleteHabit(ctx, habitID, userID); err != nil {
		log.Err(err).Int64("habit_id", habitID).Int64("user_id", userID).Msg("habit deletion ended with error")
		return fmt.Errorf("habit deletion ended with error: %w", err)
	}

	return nil
}
