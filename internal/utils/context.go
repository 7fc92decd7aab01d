// Package utils provides general-purpose helper utilities used across
// different parts of the application: context keys, opaque token generation
// and hashing, JSON response writing, and HTTP client initialization.
package utils

import (
	"context"

	"github.com/aleksmv/go-habit-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CurrentUserCtxKey is the key under which the authentication middleware
// stores the resolved current user in the request context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.CurrentUserCtxKey, user)
var CurrentUserCtxKey = contextKey("currentUser")

// GetCurrentUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — a user was resolved by the auth middleware
//   - ok == false — the request is anonymous or the value has a wrong type
func GetCurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
