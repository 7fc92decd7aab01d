// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/store"
	"github.com/aleksmv/go-habit-tracker/internal/validators"
	"github.com/aleksmv/go-habit-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, and session teardown
// using a UserRepository for persistence, bcrypt for password hashing, and a
// TokenIssuer for the bearer token lifecycle.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenIssuer mints and revokes the bearer tokens returned on
	// successful register and login.
	tokenIssuer TokenIssuer

	// validator enforces the request payload rules before any persistence
	// work happens.
	validator validators.Validator

	// bcryptCost is the bcrypt work factor for password hashing.
	// Zero selects the bcrypt default.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and TokenIssuer, with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenIssuer TokenIssuer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenIssuer:    tokenIssuer,
		validator:      validators.NewAuthValidator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account and immediately issues a bearer token,
// so a successful registration doubles as a login.
//
// Emails are normalised to lower case before validation and storage, making
// registration and login case-insensitive on the email.
//
// Returns the persisted user with its plaintext token or:
//   - *validators.FieldErrors when the payload breaks a validation rule or
//     the email is already taken.
//   - A wrapped storage or token error on infrastructure failure.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthData{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.AuthData{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			fieldErrs := validators.NewFieldErrors()
			fieldErrs.Add(validators.FieldEmail, validators.MsgEmailTaken)
			return models.AuthData{}, fieldErrs
		}
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.AuthData{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.tokenIssuer.Issue(ctx, user)
	if err != nil {
		return models.AuthData{}, err
	}

	return models.AuthData{User: user, Token: token}, nil
}

// Login authenticates an existing user by email and password and issues a
// fresh bearer token.
//
// An unknown email and a wrong password both return ErrInvalidCredentials,
// so a caller cannot probe which addresses have accounts.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.AuthData, error) {
	log := logger.FromContext(ctx)

	req.Email = normalizeEmail(req.Email)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.AuthData{}, err
	}

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.AuthData{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.AuthData{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.AuthData{}, ErrInvalidCredentials
	}

	token, err := a.tokenIssuer.Issue(ctx, user)
	if err != nil {
		return models.AuthData{}, err
	}

	return models.AuthData{User: user, Token: token}, nil
}

// Logout revokes the presented bearer token. The user's other sessions, if
// any, stay valid.
func (a *authService) Logout(ctx context.Context, token string) error {
	return a.tokenIssuer.Revoke(ctx, token)
}

// CurrentUser returns the stored account record for the given user id.
func (a *authService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
