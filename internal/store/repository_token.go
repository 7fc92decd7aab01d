package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It manages the "auth_tokens" table holding the
// {token hash → user} bindings behind opaque bearer tokens.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// SaveToken persists a new token binding and returns the row with its
// server-assigned TokenID.
func (r *tokenRepository) SaveToken(ctx context.Context, token models.AuthToken) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, saveToken, token.UserID, token.TokenHash, token.IssuedAt)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.SaveToken").Msg("error: insert failed")
		return models.AuthToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&token.TokenID, &token.UserID, &token.TokenHash, &token.IssuedAt); err != nil {
		log.Err(err).Str("func", "*tokenRepository.SaveToken").Msg("error: scanning error")
		return models.AuthToken{}, err
	}

	return token, nil
}

// FindUserByTokenHash resolves a token hash to the owning user together with
// the stored token row (the caller needs IssuedAt for TTL checks).
//
// Returns [ErrTokenNotFound] when no binding matches, which covers both
// never-issued and already-revoked tokens.
func (r *tokenRepository) FindUserByTokenHash(ctx context.Context, tokenHash string) (models.User, models.AuthToken, error) {
	log := logger.FromContext(ctx)

	var user models.User
	var token models.AuthToken
	row := r.db.QueryRowContext(ctx, findUserByTokenHash, tokenHash)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*tokenRepository.FindUserByTokenHash").Msg("error: query failed")
		return models.User{}, models.AuthToken{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(
		&user.UserID, &user.Name, &user.Email, &user.PasswordHash, &user.CreatedAt,
		&token.TokenID, &token.TokenHash, &token.IssuedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, models.AuthToken{}, ErrTokenNotFound
		}
		log.Err(err).Str("func", "*tokenRepository.FindUserByTokenHash").Msg("error: scanning error")
		return models.User{}, models.AuthToken{}, err
	}

	token.UserID = user.UserID

	return user, token, nil
}

// DeleteTokenByHash removes the binding for the given token hash. Zero
// affected rows is not an error: revoking an unknown or already-revoked
// token is a no-op so that logout stays idempotent.
func (r *tokenRepository) DeleteTokenByHash(ctx context.Context, tokenHash string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteTokenByHash, tokenHash); err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteTokenByHash").Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
