package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/models"
)

// habitRepository is the PostgreSQL-backed implementation of
// [HabitRepository]. Every statement it issues carries the owning user id in
// its WHERE clause, so a habit id belonging to a different user behaves
// exactly like a missing id.
type habitRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewHabitRepository constructs a [HabitRepository] backed by the provided
// database connection and logger.
func NewHabitRepository(db *DB, logger *logger.Logger) HabitRepository {
	logger.Debug().Msg("creating habit repository")
	return &habitRepository{
		db:     db,
		logger: logger,
	}
}

// CreateHabit persists a new habit and returns it with server-assigned
// fields (ID, CreatedAt, UpdatedAt).
func (r *habitRepository) CreateHabit(ctx context.Context, habit models.Habit) (models.Habit, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createHabit, habit.UserID, habit.Name, habit.Frequency)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*habitRepository.CreateHabit").Msg("error: insert failed")
		return models.Habit{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&habit.ID, &habit.UserID, &habit.Name, &habit.Frequency, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*habitRepository.CreateHabit").Msg("error: scanning error")
		return models.Habit{}, err
	}

	return habit, nil
}

// ListHabitsByUser returns all habits owned by userID ordered by id, which
// matches creation order.
func (r *habitRepository) ListHabitsByUser(ctx context.Context, userID int64) ([]models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListHabitsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.ListHabitsByUser").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.ListHabitsByUser").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	habits := make([]models.Habit, 0)
	for rows.Next() {
		var habit models.Habit
		if err := rows.Scan(&habit.ID, &habit.UserID, &habit.Name, &habit.Frequency, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*habitRepository.ListHabitsByUser").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		habits = append(habits, habit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return habits, nil
}

// FindHabitByIDForUser retrieves one habit by id, scoped to its owner.
//
// Returns [ErrHabitNotFound] when the id does not exist or belongs to a
// different user.
func (r *habitRepository) FindHabitByIDForUser(ctx context.Context, habitID, userID int64) (models.Habit, error) {
	log := logger.FromContext(ctx)

	var habit models.Habit
	row := r.db.QueryRowContext(ctx, findHabitByIDForUser, habitID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*habitRepository.FindHabitByIDForUser").Msg("error: query failed")
		return models.Habit{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&habit.ID, &habit.UserID, &habit.Name, &habit.Frequency, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, ErrHabitNotFound
		}
		log.Err(err).Str("func", "*habitRepository.FindHabitByIDForUser").Msg("error: scanning error")
		return models.Habit{}, err
	}

	return habit, nil
}

// UpdateHabit applies the non-nil fields of update to the habit identified by
// update.ID and update.UserID, and returns the updated row.
//
// Returns [ErrHabitNotFound] when the scoped row does not exist.
func (r *habitRepository) UpdateHabit(ctx context.Context, update models.HabitUpdate) (models.Habit, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateHabitQuery(update)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.UpdateHabit").Msg("error: building query")
		return models.Habit{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var habit models.Habit
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*habitRepository.UpdateHabit").Msg("error: update failed")
		return models.Habit{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&habit.ID, &habit.UserID, &habit.Name, &habit.Frequency, &habit.CreatedAt, &habit.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Habit{}, ErrHabitNotFound
		}
		log.Err(err).Str("func", "*habitRepository.UpdateHabit").Msg("error: scanning error")
		return models.Habit{}, err
	}

	return habit, nil
}

// DeleteHabit removes the habit identified by habitID and userID.
//
// Unlike token revocation, habit deletion is not idempotent: zero affected
// rows means the habit never existed (or was already deleted, or belongs to
// another user) and yields [ErrHabitNotFound].
func (r *habitRepository) DeleteHabit(ctx context.Context, habitID, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteHabit, habitID, userID)
	if err != nil {
		log.Err(err).Str("func", "*habitRepository.DeleteHabit").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrHabitNotFound
	}

	return nil
}
