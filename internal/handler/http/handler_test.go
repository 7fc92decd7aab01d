// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/service"
	"github.com/aleksmv/go-habit-tracker/internal/utils"
	"github.com/aleksmv/go-habit-tracker/models"
)

// ─────────────────────────────────────────────
// Mock: service.TokenIssuer
// ─────────────────────────────────────────────

// mockTokenIssuer implements service.TokenIssuer for unit tests.
// Each method field can be overridden per test case.
type mockTokenIssuer struct {
	issueFn    func(ctx context.Context, user models.User) (string, error)
	validateFn func(ctx context.Context, token string) (models.User, error)
	revokeFn   func(ctx context.Context, token string) error
}

func (m *mockTokenIssuer) Issue(ctx context.Context, user models.User) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, user)
	}
	return "", nil
}

func (m *mockTokenIssuer) Validate(ctx context.Context, token string) (models.User, error) {
	if m.validateFn != nil {
		return m.validateFn(ctx, token)
	}
	return models.User{}, nil
}

func (m *mockTokenIssuer) Revoke(ctx context.Context, token string) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, token)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, req models.RegisterRequest) (models.AuthData, error)
	loginFn       func(ctx context.Context, req models.LoginRequest) (models.AuthData, error)
	logoutFn      func(ctx context.Context, token string) error
	currentUserFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.AuthData, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) CurrentUser(ctx context.Context, userID int64) (models.User, error) {
	return m.currentUserFn(ctx, userID)
}

// ─────────────────────────────────────────────
// Mock: service.HabitService
// ─────────────────────────────────────────────

type mockHabitService struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Habit, error)
	createFn func(ctx context.Context, userID int64, req models.HabitCreateRequest) (models.Habit, error)
	getFn    func(ctx context.Context, habitID, userID int64) (models.Habit, error)
	updateFn func(ctx context.Context, habitID, userID int64, req models.HabitUpdateRequest) (models.Habit, error)
	deleteFn func(ctx context.Context, habitID, userID int64) error
}

func (m *mockHabitService) ListHabits(ctx context.Context, userID int64) ([]models.Habit, error) {
	return m.listFn(ctx, userID)
}

func (m *mockHabitService) CreateHabit(ctx context.Context, userID int64, req models.HabitCreateRequest) (models.Habit, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockHabitService) GetHabit(ctx context.Context, habitID, userID int64) (models.Habit, error) {
	return m.getFn(ctx, habitID, userID)
}

func (m *mockHabitService) UpdateHabit(ctx context.Context, habitID, userID int64, req models.HabitUpdateRequest) (models.Habit, error) {
	return m.updateFn(ctx, habitID, userID, req)
}

func (m *mockHabitService) DeleteHabit(ctx context.Context, habitID, userID int64) error {
	return m.deleteFn(ctx, habitID, userID)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler around the given service mocks.
// Nil mocks are fine for endpoints the test never reaches.
func newTestHandler(t *testing.T, issuer service.TokenIssuer, auth service.AuthService, habits service.HabitService) *Handler {
	t.Helper()
	svcs := &service.Services{
		TokenIssuer:  issuer,
		AuthService:  auth,
		HabitService: habits,
	}
	return NewHandler(svcs, config.App{APIVersion: "1.0"}, logger.Nop())
}

// envelopeBody mirrors models.Envelope with a raw data payload so tests can
// decode data into endpoint-specific shapes.
type envelopeBody struct {
	Success    bool                `json:"success"`
	Message    string              `json:"message"`
	Data       json.RawMessage     `json:"data"`
	StatusCode int                 `json:"status_code"`
	Errors     map[string][]string `json:"errors"`
	Meta       *models.Meta        `json:"meta"`
}

// decodeEnvelope parses a recorded response body into an envelopeBody.
func decodeEnvelope(t *testing.T, body []byte) envelopeBody {
	t.Helper()
	var envelope envelopeBody
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope
}

// withCurrentUser stamps the request context the way the auth middleware
// does, so handlers can be exercised without the full middleware chain.
func withCurrentUser(r *http.Request, user models.User) *http.Request {
	ctx := context.WithValue(r.Context(), utils.CurrentUserCtxKey, user)
	return r.WithContext(ctx)
}

// testUser is a convenience fixture used across multiple tests.
var testUser = models.User{UserID: 1, Name: "Ann", Email: "ann@x.com"}
