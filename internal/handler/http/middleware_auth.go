package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// resolves it to a user via [service.TokenIssuer.Validate], and — on
// success — stores the authenticated user in the request context under
// [utils.CurrentUserCtxKey] before delegating to the next handler.
//
// Every rejection answers with the same HTTP 401 envelope: a missing header,
// a malformed header, a revoked token, and an expired token are deliberately
// indistinguishable to the caller. The specific cause is still logged via
// the context-scoped logger obtained from [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Info().Err(ErrEmptyAuthorizationHeader).Send()
			h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Info().Err(err).Send()
			h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.TokenIssuer.Validate(ctx, token)
		if err != nil {
			log.Info().Err(err).Msg("token rejected")
			h.writeError(w, r, msgUnauthenticated, http.StatusUnauthorized)
			return
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without re-validating the token.
		ctx = context.WithValue(ctx, utils.CurrentUserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// For example:
//
//	Authorization: Bearer 4f90d13a9c…
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	token := parts[1]
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
