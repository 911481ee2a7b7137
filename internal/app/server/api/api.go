// GET    /api/v1/health                                   # Проверка состояния
// GET    /api/v1/collections/{collection}/records         # Список записей коллекции
// POST   /api/v1/collections/{collection}/records         # Создать запись
// GET    /api/v1/collections/{collection}/records/{id}    # Получить запись
// PATCH  /api/v1/collections/{collection}/records/{id}    # Обновить текст записи
// DELETE /api/v1/collections/{collection}/records/{id}    # Удалить запись
// GET    /metrics                                         # Метрики Prometheus

package api

import (
	healthAPI "recordbook/internal/app/server/api/http/health"
	"recordbook/internal/app/server/api/http/middleware"
	"recordbook/internal/app/server/api/http/middleware/logger"
	"recordbook/internal/app/server/api/http/middleware/metrics"
	recordAPI "recordbook/internal/app/server/api/http/record"
	"recordbook/internal/domain/record"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Record *recordAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register и /metrics.
func New(repo record.Repository, log *slog.Logger, reg *prometheus.Registry) *chi.Mux {
	mux := chi.NewMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	config := huma.DefaultConfig("Recordbook API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(repo, log, metrics.New(reg))
	h.Health.SetupRoutes(API)
	h.Record.SetupRoutes(API)

	return mux
}

func handlers(repo record.Repository, log *slog.Logger, mtr *metrics.Metrics) *Handlers {
	chain := middleware.NewChain(logger.New(log).Middleware())

	healthHandler := healthAPI.NewHandler(repo, log, chain.With())

	recordService := record.NewService(repo, log)
	recordHandler := recordAPI.NewHandler(recordService, log, chain.With(mtr.Middleware()))

	return &Handlers{
		Health: healthHandler,
		Record: recordHandler,
	}
}
