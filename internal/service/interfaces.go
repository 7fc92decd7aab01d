package service

import (
	"context"

	"github.com/aleksmv/go-habit-tracker/models"
)

// TokenIssuer manages the lifecycle of opaque bearer tokens: issuance at
// login, validation on every authenticated request, revocation at logout.
type TokenIssuer interface {
	// Issue mints a fresh token for the user and persists its hash.
	// The returned plaintext is shown to the client exactly once.
	Issue(ctx context.Context, user models.User) (string, error)

	// Validate resolves a plaintext token to its owning user.
	// Expired, revoked, and unknown tokens all fail with ErrTokenInvalid.
	Validate(ctx context.Context, token string) (models.User, error)

	// Revoke deletes the token's stored binding. Revoking a token that no
	// longer exists is a no-op.
	Revoke(ctx context.Context, token string) error
}

// AuthService handles account registration, credential verification, and
// session teardown.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthData, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, userID int64) (models.User, error)
}

// HabitService implements habit CRUD scoped to a single owning user.
type HabitService interface {
	ListHabits(ctx context.Context, userID int64) ([]models.Habit, error)
	CreateHabit(ctx context.Context, userID int64, req models.HabitCreateRequest) (models.Habit, error)
	GetHabit(ctx context.Context, habitID, userID int64) (models.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID int64, req models.HabitUpdateRequest) (models.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID int64) error
}
