// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer the CLI client uses to talk
// to the habit tracker server.
//
// The primary abstraction is [APIClient], which decouples the command layer
// from the REST wire format: envelope decoding, bearer header management,
// and mapping HTTP statuses to the sentinel errors in errors.go all happen
// here, so callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/aleksmv/go-habit-tracker/models"
)

// APIClient defines communication with the habit tracker REST API.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type APIClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the user together with the
	// plaintext token.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error)

	// Login authenticates with email and password. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthData, error)

	// Logout revokes the stored bearer token on the server and clears it
	// from the client.
	Logout(ctx context.Context) error

	// CurrentUser fetches the account record behind the stored token.
	CurrentUser(ctx context.Context) (models.User, error)

	// CheckToken verifies that the stored token is still accepted by the
	// server and returns the user it authenticates.
	CheckToken(ctx context.Context) (models.User, error)

	// ListHabits fetches all habits owned by the authenticated user.
	ListHabits(ctx context.Context) ([]models.Habit, error)

	// CreateHabit creates a new habit for the authenticated user.
	CreateHabit(ctx context.Context, req models.HabitCreateRequest) (models.Habit, error)

	// GetHabit fetches a single habit by id.
	GetHabit(ctx context.Context, habitID int64) (models.Habit, error)

	// UpdateHabit applies a partial mutation to a habit.
	UpdateHabit(ctx context.Context, habitID int64, req models.HabitUpdateRequest) (models.Habit, error)

	// DeleteHabit removes a habit by id.
	DeleteHabit(ctx context.Context, habitID int64) error
}
