package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/aleksmv/go-habit-tracker/internal/config"
	"github.com/aleksmv/go-habit-tracker/internal/logger"
	"github.com/aleksmv/go-habit-tracker/internal/utils"
	"github.com/aleksmv/go-habit-tracker/models"
)

type httpAPIClient struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPAPIClient constructs the REST implementation of [APIClient].
// It normalises and validates the base URL from cfg.BaseURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPAPIClient(cfg config.Client, logger *logger.Logger) (APIClient, error) {
	client := utils.NewHTTPClient()

	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid client base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpAPIClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [APIClient]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpAPIClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [APIClient]. It returns the bearer token currently held
// by the client, or an empty string if none has been set.
func (h *httpAPIClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpAPIClient) Register(ctx context.Context, req models.RegisterRequest) (models.AuthData, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/register")
	if err != nil {
		return models.AuthData{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthData{}, err
	}

	var data models.AuthData
	if err = decodeEnvelopeData(resp.Body(), &data); err != nil {
		return models.AuthData{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(data.Token)
	return data, nil
}

func (h *httpAPIClient) Login(ctx context.Context, req models.LoginRequest) (models.AuthData, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/login")
	if err != nil {
		return models.AuthData{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthData{}, err
	}

	var data models.AuthData
	if err = decodeEnvelopeData(resp.Body(), &data); err != nil {
		return models.AuthData{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(data.Token)
	return data, nil
}

func (h *httpAPIClient) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/v1/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	h.SetToken("")
	return nil
}

func (h *httpAPIClient) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/user")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decodeEnvelopeData(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	return user, nil
}

func (h *httpAPIClient) CheckToken(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/check")
	if err != nil {
		return models.User{}, fmt.Errorf("check token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = decodeEnvelopeData(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode check token response: %w", err)
	}

	return user, nil
}

func (h *httpAPIClient) ListHabits(ctx context.Context) ([]models.Habit, error) {
	resp, err := h.authedRequest(ctx).Get("/api/v1/habits")
	if err != nil {
		return nil, fmt.Errorf("list habits request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var habits []models.Habit
	if err = decodeEnvelopeData(resp.Body(), &habits); err != nil {
		return nil, fmt.Errorf("decode list habits response: %w", err)
	}

	return habits, nil
}

func (h *httpAPIClient) CreateHabit(ctx context.Context, req models.HabitCreateRequest) (models.Habit, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/v1/habits")
	if err != nil {
		return models.Habit{}, fmt.Errorf("create habit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	var habit models.Habit
	if err = decodeEnvelopeData(resp.Body(), &habit); err != nil {
		return models.Habit{}, fmt.Errorf("decode create habit response: %w", err)
	}

	return habit, nil
}

func (h *httpAPIClient) GetHabit(ctx context.Context, habitID int64) (models.Habit, error) {
	resp, err := h.authedRequest(ctx).Get(habitPath(habitID))
	if err != nil {
		return models.Habit{}, fmt.Errorf("get habit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	var habit models.Habit
	if err = decodeEnvelopeData(resp.Body(), &habit); err != nil {
		return models.Habit{}, fmt.Errorf("decode get habit response: %w", err)
	}

	return habit, nil
}

func (h *httpAPIClient) UpdateHabit(ctx context.Context, habitID int64, req models.HabitUpdateRequest) (models.Habit, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Patch(habitPath(habitID))
	if err != nil {
		return models.Habit{}, fmt.Errorf("update habit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Habit{}, err
	}

	var habit models.Habit
	if err = decodeEnvelopeData(resp.Body(), &habit); err != nil {
		return models.Habit{}, fmt.Errorf("decode update habit response: %w", err)
	}

	return habit, nil
}

func (h *httpAPIClient) DeleteHabit(ctx context.Context, habitID int64) error {
	resp, err := h.authedRequest(ctx).Delete(habitPath(habitID))
	if err != nil {
		return fmt.Errorf("delete habit request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpAPIClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func habitPath(habitID int64) string {
	return "/api/v1/habits/" + strconv.FormatInt(habitID, 10)
}

// decodeEnvelopeData unwraps the response envelope and decodes its data
// payload into out.
func decodeEnvelopeData(body []byte, out any) error {
	var envelope apiEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	if len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
