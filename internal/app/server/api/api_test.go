package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"recordbook/internal/domain/record"
	"recordbook/internal/infrastructure/storage/memory"
)

func TestNew_RegistersAllOperations(t *testing.T) {
	var mux http.Handler
	require.NotPanics(t, func() {
		mux = New(memory.NewRecordRepository(), slog.Default(), prometheus.NewRegistry())
	})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Paths      map[string]map[string]any `json:"paths"`
		Components struct {
			Schemas map[string]any `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))

	assert.Contains(t, doc.Paths, "/api/v1/health")
	assert.Len(t, doc.Paths["/api/v1/collections/{collection}/records"], 2)
	assert.Len(t, doc.Paths["/api/v1/collections/{collection}/records/{id}"], 3)
	for _, name := range []string{"HealthResponse", "StatusResponse", "FindResponse", "ListResponse"} {
		assert.Contains(t, doc.Components.Schemas, name)
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := New(memory.NewRecordRepository(), slog.Default(), prometheus.NewRegistry())
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAPI_RecordLifecycle(t *testing.T) {
	srv := newTestServer(t)
	base := srv.URL + "/api/v1/collections/texts/records"

	t1 := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	var created struct {
		ID string `json:"id"`
	}
	resp := do(t, http.MethodPost, base, `{"text":"T1","timestamp":"`+t1.Format(time.RFC3339)+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	first := created.ID

	resp = do(t, http.MethodPost, base, `{"text":"T2","timestamp":"`+t2.Format(time.RFC3339)+`"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	second := created.ID
	assert.NotEqual(t, first, second)

	var list record.ListResponse
	resp = do(t, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Equal(t, 2, list.Total)
	assert.Equal(t, second, list.Records[0].ID)
	assert.Equal(t, first, list.Records[1].ID)

	resp = do(t, http.MethodPatch, base+"/"+first, `{"text":"goodbye"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodDelete, base+"/"+second, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = do(t, http.MethodDelete, base+"/"+second, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var found struct {
		Record record.Record `json:"record"`
	}
	resp = do(t, http.MethodGet, base+"/"+first, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&found))
	assert.Equal(t, "goodbye", found.Record.Text)
	require.NotNil(t, found.Record.Timestamp)
	assert.True(t, t1.Equal(*found.Record.Timestamp))
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/health", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	do(t, http.MethodGet, srv.URL+"/api/v1/collections/texts/records", "")

	resp = do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var sb strings.Builder
	_, err := io.Copy(&sb, resp.Body)
	require.NoError(t, err)
	assert.Contains(t, sb.String(), `recordbook_http_requests_total{operation="records-list",status="200"} 1`)
}
