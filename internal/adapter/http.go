package adapter

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/logger"
	"github.com/MKhiriev/dia-companion/internal/utils"
	"github.com/MKhiriev/dia-companion/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. The base URL is taken from cfg.HTTPAddress; a missing
// scheme defaults to http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
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

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register POSTs the credentials to /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login POSTs the credentials to /api/auth/login and keeps the bearer token
// from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return user, nil
}

// Logout forgets the token even when the server cannot be reached.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	if h.Token() == "" {
		return nil
	}

	resp, err := h.authedRequest(ctx).Post("/api/auth/logout")
	h.SetToken("")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListRecords(ctx context.Context) ([]models.HealthRecord, error) {
	var records []models.HealthRecord

	resp, err := h.authedRequest(ctx).
		SetResult(&records).
		Get("/api/records")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

func (h *httpServerAdapter) AddRecord(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error) {
	var saved models.HealthRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		SetResult(&saved).
		Post("/api/records")
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("add record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthRecord{}, err
	}

	return saved, nil
}

func (h *httpServerAdapter) EditRecord(ctx context.Context, record models.HealthRecord) (models.HealthRecord, error) {
	var saved models.HealthRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", record.ID).
		SetBody(record).
		SetResult(&saved).
		Put("/api/records/{id}")
	if err != nil {
		return models.HealthRecord{}, fmt.Errorf("edit record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthRecord{}, err
	}

	return saved, nil
}

func (h *httpServerAdapter) DeleteRecord(ctx context.Context, id string) error {
	return h.deleteByID(ctx, "/api/records/{id}", id, "delete record")
}

func (h *httpServerAdapter) ImportRecords(ctx context.Context, csv io.Reader) (models.ImportResult, error) {
	var result models.ImportResult

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "text/csv").
		SetBody(csv).
		SetResult(&result).
		Post("/api/records/import")
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("import request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ImportResult{}, err
	}

	return result, nil
}

func (h *httpServerAdapter) ExportRecords(ctx context.Context, w io.Writer) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "text/csv").
		Get("/api/records/export")
	if err != nil {
		return fmt.Errorf("export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if _, err = w.Write(resp.Body()); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}

// deleteByID sends DELETE to path with its {id} parameter set.
func (h *httpServerAdapter) deleteByID(ctx context.Context, path, id, what string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete(path)
	if err != nil {
		return fmt.Errorf("%s request: %w", what, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
