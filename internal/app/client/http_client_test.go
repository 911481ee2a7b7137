package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recordbook/internal/app/client/config"
	"recordbook/internal/app/server/api"
	"recordbook/internal/domain/record"
	"recordbook/internal/infrastructure/storage/memory"
	"recordbook/internal/utils/logger"
)

func testConfig(srv *httptest.Server) *config.Config {
	return &config.Config{
		ServerAddress:  strings.TrimPrefix(srv.URL, "http://"),
		Collection:     "texts",
		RequestTimeout: 5 * time.Second,
	}
}

func newServiceStore(t *testing.T) *httpStore {
	t.Helper()
	srv := httptest.NewServer(api.New(memory.NewRecordRepository(), logger.Discard(), prometheus.NewRegistry()))
	t.Cleanup(srv.Close)
	return NewHTTPStore(testConfig(srv), logger.Discard())
}

func TestHTTPStore_AgainstService(t *testing.T) {
	ctx := context.Background()
	store := newServiceStore(t)

	t1 := time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	id1, err := store.Create(ctx, "T1", t1)
	require.NoError(t, err)
	id2, err := store.Create(ctx, "T2", t2)
	require.NoError(t, err)

	records, err := store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, id2, records[0].ID)
	assert.Equal(t, id1, records[1].ID)
	assert.True(t, t2.Equal(*records[0].Timestamp))

	require.NoError(t, store.Update(ctx, id1, "goodbye"))
	require.NoError(t, store.Delete(ctx, id2))

	records, err = store.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "goodbye", records[0].Text)
	assert.True(t, t1.Equal(*records[0].Timestamp))
}

func TestHTTPStore_MissingRecord(t *testing.T) {
	ctx := context.Background()
	store := newServiceStore(t)

	err := store.Update(ctx, "does-not-exist", "x")
	var pe *record.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpUpdate, pe.Op)
	assert.ErrorIs(t, err, record.ErrNotFound)

	err = store.Delete(ctx, "does-not-exist")
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpDelete, pe.Op)
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestHTTPStore_ServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"title":"Internal Server Error","status":500,"detail":"storage failure"}`))
	}))
	t.Cleanup(srv.Close)
	store := NewHTTPStore(testConfig(srv), logger.Discard())
	ctx := context.Background()

	_, err := store.Create(ctx, "hello", time.Now())
	assert.True(t, record.IsPersistence(err))
	assert.Contains(t, err.Error(), "storage failure")

	_, err = store.FetchAll(ctx)
	var pe *record.PersistenceError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, OpFetchAll, pe.Op)
}

func TestHTTPStore_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	cfg := testConfig(srv)
	srv.Close()

	store := NewHTTPStore(cfg, logger.Discard())

	_, err := store.FetchAll(context.Background())
	assert.True(t, record.IsPersistence(err))
}

func TestHTTPStore_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	t.Cleanup(srv.Close)
	store := NewHTTPStore(testConfig(srv), logger.Discard())

	_, err := store.FetchAll(context.Background())
	assert.ErrorIs(t, err, record.ErrInvalidData)

	_, err = store.Create(context.Background(), "x", time.Now())
	assert.ErrorIs(t, err, record.ErrInvalidData)
}

func TestHTTPStore_HealthCheck(t *testing.T) {
	store := newServiceStore(t)
	require.NoError(t, store.HealthCheck(context.Background()))

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	err := NewHTTPStore(testConfig(down), logger.Discard()).HealthCheck(context.Background())
	assert.ErrorContains(t, err, "status 503")
}
