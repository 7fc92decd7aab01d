package store

import (
	"context"

	"github.com/aleksmv/go-habit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// UserRepository persists and looks up user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TokenRepository persists the {token hash → user} bindings behind opaque
// bearer tokens.
type TokenRepository interface {
	SaveToken(ctx context.Context, token models.AuthToken) (models.AuthToken, error)
	FindUserByTokenHash(ctx context.Context, tokenHash string) (models.User, models.AuthToken, error)

	// DeleteTokenByHash removes the binding. Deleting an unknown hash is a
	// no-op, keeping logout idempotent.
	DeleteTokenByHash(ctx context.Context, tokenHash string) error
}

// HabitRepository persists habit records. Every read or mutation is scoped by
// the owning user id so one user can never observe another user's habits.
type HabitRepository interface {
	CreateHabit(ctx context.Context, habit models.Habit) (models.Habit, error)
	ListHabitsByUser(ctx context.Context, userID int64) ([]models.Habit, error)
	FindHabitByIDForUser(ctx context.Context, habitID, userID int64) (models.Habit, error)
	UpdateHabit(ctx context.Context, update models.HabitUpdate) (models.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID int64) error
}
