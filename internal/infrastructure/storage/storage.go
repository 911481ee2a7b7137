package storage

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/exp/slog"

	"recordbook/internal/app/server/config"
	"recordbook/internal/domain/record"
	"recordbook/internal/infrastructure/storage/memory"
	"recordbook/internal/infrastructure/storage/postgres"
	"recordbook/internal/infrastructure/storage/sqlite"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open выбирает бэкенд по cfg.DB.Driver и возвращает репозиторий записей.
// The returned closer releases the backend's connections.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (record.Repository, io.Closer, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		st, err := postgres.New(ctx, cfg, log)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewRecordRepository(st.Pool(), log), st, nil
	case config.DriverSQLite:
		st, err := sqlite.New(cfg.DB.DatabaseURI)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewRecordRepository(st, log), st, nil
	case config.DriverMemory:
		return memory.NewRecordRepository(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.DB.Driver)
	}
}
