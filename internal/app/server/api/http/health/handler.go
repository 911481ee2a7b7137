package health

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const pingTimeout = 2 * time.Second

// Checker - хранилище, доступность которого проверяется.
type Checker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	checker    Checker
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(checker Checker, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		checker:    checker,
		log:        log.With("component", "health"),
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		h.log.Warn("storage ping failed", "error", err)
		return nil, huma.Error503ServiceUnavailable("storage unavailable", err)
	}

	return &Output{
		Body: HealthResponse{
			Status:  "OK",
			Storage: "up",
		},
	}, nil
}
