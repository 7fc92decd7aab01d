// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksmv/go-habit-tracker/internal/service"
	"github.com/aleksmv/go-habit-tracker/internal/validators"
	"github.com/aleksmv/go-habit-tracker/models"
)

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.AuthData, error) {
			assert.Equal(t, "ann@x.com", req.Email)
			return models.AuthData{User: testUser, Token: "plaintext-token"}, nil
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	body := `{"name":"Ann","email":"ann@x.com","password":"password1","password_confirmation":"password1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "User registered successfully", envelope.Message)
	assert.Equal(t, http.StatusCreated, envelope.StatusCode)

	var data models.AuthData
	require.NoError(t, json.Unmarshal(envelope.Data, &data))
	assert.Equal(t, "plaintext-token", data.Token)
	assert.Equal(t, int64(1), data.User.UserID)
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, &mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.False(t, envelope.Success)
}

func TestRegister_ValidationError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthData, error) {
			fieldErrs := validators.NewFieldErrors()
			fieldErrs.Add(validators.FieldEmail, validators.MsgEmailTaken)
			return models.AuthData{}, fieldErrs
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "The given data was invalid.", envelope.Message)
	assert.Equal(t, []string{validators.MsgEmailTaken}, envelope.Errors[validators.FieldEmail])
}

func TestRegister_ServiceError(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.AuthData, error) {
			return models.AuthData{}, errors.New("connection reset")
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/register", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "Error registering user", envelope.Message)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.AuthData, error) {
			assert.Equal(t, "ann@x.com", req.Email)
			return models.AuthData{User: testUser, Token: "plaintext-token"}, nil
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	body := `{"email":"ann@x.com","password":"password1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "Login successful", envelope.Message)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.AuthData, error) {
			return models.AuthData{}, service.ErrInvalidCredentials
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	body := `{"email":"ann@x.com","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.False(t, envelope.Success)
	assert.Equal(t, "Invalid credentials provided.", envelope.Message)
	assert.Empty(t, envelope.Errors)
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, nil, &mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_Success(t *testing.T) {
	var revoked string
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	req.Header.Set("Authorization", "Bearer plaintext-token")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "plaintext-token", revoked)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "Logout successful", envelope.Message)
	assert.Equal(t, "null", string(envelope.Data))
}

func TestLogout_ServiceError(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, _ string) error {
			return errors.New("connection reset")
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/logout", nil)
	req.Header.Set("Authorization", "Bearer plaintext-token")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "Error during logout", envelope.Message)
}

// ─────────────────────────────────────────────
// currentUser / checkToken
// ─────────────────────────────────────────────

func TestCurrentUser_Success(t *testing.T) {
	auth := &mockAuthService{
		currentUserFn: func(_ context.Context, userID int64) (models.User, error) {
			assert.Equal(t, int64(1), userID)
			return testUser, nil
		},
	}
	h := newTestHandler(t, nil, auth, nil)

	req := withCurrentUser(httptest.NewRequest(http.MethodGet, "/api/v1/user", nil), testUser)
	rec := httptest.NewRecorder()

	h.currentUser(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "User information retrieved successfully", envelope.Message)

	var user models.User
	require.NoError(t, json.Unmarshal(envelope.Data, &user))
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestCurrentUser_NoContextUser(t *testing.T) {
	h := newTestHandler(t, nil, &mockAuthService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user", nil)
	rec := httptest.NewRecorder()

	h.currentUser(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "Unauthenticated.", envelope.Message)
}

func TestCheckToken_Success(t *testing.T) {
	h := newTestHandler(t, nil, &mockAuthService{}, nil)

	req := withCurrentUser(httptest.NewRequest(http.MethodGet, "/api/v1/check", nil), testUser)
	rec := httptest.NewRecorder()

	h.checkToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	envelope := decodeEnvelope(t, rec.Body.Bytes())
	assert.True(t, envelope.Success)
	assert.Equal(t, "Token is valid", envelope.Message)
}

func TestCheckToken_PasswordHashNeverSerialized(t *testing.T) {
	h := newTestHandler(t, nil, &mockAuthService{}, nil)

	user := testUser
	user.PasswordHash = "$2a$10$secret"
	req := withCurrentUser(httptest.NewRequest(http.MethodGet, "/api/v1/check", nil), user)
	rec := httptest.NewRecorder()

	h.checkToken(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "secret")
}
