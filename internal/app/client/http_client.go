package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/exp/slog"

	"recordbook/internal/app/client/config"
	"recordbook/internal/domain/record"
)

var _ RecordStore = (*httpStore)(nil)

// httpStore talks to one collection of the record service.
type httpStore struct {
	client    *http.Client
	log       *slog.Logger
	serverURL string
	baseURL   string
	userAgent string
}

// NewHTTPStore builds a RecordStore for cfg.Collection on cfg.BaseURL().
func NewHTTPStore(cfg *config.Config, log *slog.Logger) *httpStore {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpStore{
		client:    client,
		log:       log.With("component", "http_store"),
		serverURL: cfg.BaseURL(),
		baseURL:   cfg.BaseURL() + "/api/v1/collections/" + url.PathEscape(cfg.Collection) + "/records",
		userAgent: "Recordbook-Client/1.0",
	}
}

type createRequest struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type updateRequest struct {
	Text string `json:"text"`
}

type idResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Create добавляет запись в коллекцию и возвращает ID, назначенный сервером.
func (h *httpStore) Create(ctx context.Context, text string, timestamp time.Time) (string, error) {
	var resp idResponse
	if err := h.call(ctx, http.MethodPost, "", createRequest{Text: text, Timestamp: timestamp}, &resp); err != nil {
		return "", &record.PersistenceError{Op: OpCreate, Err: err}
	}
	if resp.ID == "" {
		return "", &record.PersistenceError{Op: OpCreate, Err: fmt.Errorf("%w: empty id in response", record.ErrInvalidData)}
	}
	return resp.ID, nil
}

// FetchAll загружает всю коллекцию, новые записи первыми.
func (h *httpStore) FetchAll(ctx context.Context) ([]record.Record, error) {
	var resp record.ListResponse
	if err := h.call(ctx, http.MethodGet, "", nil, &resp); err != nil {
		return nil, &record.PersistenceError{Op: OpFetchAll, Err: err}
	}

	records := resp.Records
	if records == nil {
		records = []record.Record{}
	}
	record.SortByRecency(records)
	return records, nil
}

// Update перезаписывает текст записи.
func (h *httpStore) Update(ctx context.Context, id, text string) error {
	if err := h.call(ctx, http.MethodPatch, "/"+url.PathEscape(id), updateRequest{Text: text}, nil); err != nil {
		return &record.PersistenceError{Op: OpUpdate, ID: id, Err: err}
	}
	return nil
}

// Delete удаляет запись.
func (h *httpStore) Delete(ctx context.Context, id string) error {
	if err := h.call(ctx, http.MethodDelete, "/"+url.PathEscape(id), nil, nil); err != nil {
		return &record.PersistenceError{Op: OpDelete, ID: id, Err: err}
	}
	return nil
}

// HealthCheck проверяет доступность сервера.
func (h *httpStore) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.serverURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	if err := h.parseResponse(resp, nil); err != nil {
		return fmt.Errorf("health check: %w", err)
	}
	return nil
}

func (h *httpStore) call(ctx context.Context, method, path string, body, result any) error {
	resp, err := h.doRequest(ctx, method, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, result)
}

func (h *httpStore) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}

	return resp, nil
}

// problem is the subset of huma's RFC 9457 error body we read.
type problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func (h *httpStore) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("response received", "status", resp.StatusCode, "body", string(body))

	if resp.StatusCode == http.StatusNotFound {
		return record.ErrNotFound
	}
	if resp.StatusCode >= 400 {
		var p problem
		if err := json.Unmarshal(body, &p); err == nil && p.Detail != "" {
			return fmt.Errorf("server error %d: %s", resp.StatusCode, p.Detail)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("%w: decode response: %v", record.ErrInvalidData, err)
		}
	}

	return nil
}
