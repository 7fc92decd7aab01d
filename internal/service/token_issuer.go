// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/store"
	"github.com/aleksmv/go-habit-tracker/internal/utils"
	"github.com/aleksmv/go-habit-tracker/models"
)

// tokenIssuer is the concrete implementation of TokenIssuer.
//
// Tokens are opaque random strings; the database holds only their SHA-256
// digests, so validation is a digest lookup and revocation is a digest
// delete. No token state lives in process memory.
type tokenIssuer struct {
	// tokenRepository persists the {token hash → user} bindings.
	tokenRepository store.TokenRepository

	// tokenTTL bounds the lifetime of issued tokens. Zero disables
	// expiry: tokens then live until explicitly revoked.
	tokenTTL time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewTokenIssuer constructs a TokenIssuer backed by the given repository and
// configured with the token lifetime from cfg.
//
// The returned issuer is safe for concurrent use; all state is read-only
// after construction.
func NewTokenIssuer(tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) TokenIssuer {
	return &tokenIssuer{
		tokenRepository: tokenRepository,
		tokenTTL:        cfg.TokenTTL,
		logger:          logger,
	}
}

// Issue mints a fresh random token for the user, persists its hash, and
// returns the plaintext.
//
// Each call produces an independent token; a user logging in from several
// clients holds several concurrent sessions, and revoking one leaves the
// others valid.
func (t *tokenIssuer) Issue(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateToken()
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token generation failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	_, err = t.tokenRepository.SaveToken(ctx, models.AuthToken{
		UserID:    user.UserID,
		TokenHash: utils.HashToken(token),
		IssuedAt:  time.Now(),
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("token persistence failed")
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Validate resolves a plaintext token to the user it authenticates.
//
// Any failure — unknown hash, revoked binding, expired lifetime — is
// normalised to ErrTokenInvalid so that callers cannot distinguish why a
// token was rejected.
func (t *tokenIssuer) Validate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, authToken, err := t.tokenRepository.FindUserByTokenHash(ctx, utils.HashToken(token))
	if err != nil {
		return models.User{}, ErrTokenInvalid
	}

	if t.tokenTTL > 0 && time.Since(authToken.IssuedAt) > t.tokenTTL {
		// Expired bindings are dead weight; drop them on sight.
		if err := t.tokenRepository.DeleteTokenByHash(ctx, authToken.TokenHash); err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("failed to purge expired token")
		}
		return models.User{}, ErrTokenInvalid
	}

	return user, nil
}

// Revoke deletes the token's stored binding, invalidating it for all future
// requests. Revoking an already-revoked or unknown token succeeds silently.
func (t *tokenIssuer) Revoke(ctx context.Context, token string) error {
	if err := t.tokenRepository.DeleteTokenByHash(ctx, utils.HashToken(token)); err != nil {
		return fmt.Errorf("token revocation failed: %w", err)
	}

	return nil
}
