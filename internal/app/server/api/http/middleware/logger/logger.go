package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// RequestIDHeader передается клиентом или назначается сервером.
const RequestIDHeader = "X-Request-Id"

// Logger middleware для логирования запросов к коллекциям
type Logger struct {
	log   *slog.Logger
	newID func() string
}

func New(log *slog.Logger) *Logger {
	return &Logger{
		log:   log.With(slog.String("component", "http_logger")),
		newID: uuid.NewString,
	}
}

// Middleware пишет одну строку на запрос: операция, коллекция, статус и
// длительность. Ответ получает заголовок X-Request-Id.
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		requestID := ctx.Header(RequestIDHeader)
		if requestID == "" {
			requestID = l.newID()
		}
		ctx.SetHeader(RequestIDHeader, requestID)

		attrs := []any{
			slog.String("request_id", requestID),
			slog.String("method", ctx.Method()),
			slog.String("path", ctx.URL().Path),
		}
		if op := ctx.Operation(); op != nil {
			attrs = append(attrs, slog.String("operation", op.OperationID))
		}
		if collection := ctx.Param("collection"); collection != "" {
			attrs = append(attrs, slog.String("collection", collection))
		}

		next(ctx)

		status := ctx.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		attrs = append(attrs,
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		)
		l.log.Log(ctx.Context(), level, "HTTP request", attrs...)
	}
}
