package client

import (
	"context"
	"time"

	"recordbook/internal/domain/record"
)

// Operation names carried by record.PersistenceError.
const (
	OpCreate   = "create"
	OpFetchAll = "fetch_all"
	OpUpdate   = "update"
	OpDelete   = "delete"
)

// RecordStore is one remote collection. Every method is a single round-trip
// and reports failures as *record.PersistenceError.
type RecordStore interface {
	Create(ctx context.Context, text string, timestamp time.Time) (string, error)
	// FetchAll returns the whole collection sorted by record.SortByRecency.
	FetchAll(ctx context.Context) ([]record.Record, error)
	Update(ctx context.Context, id, text string) error
	Delete(ctx context.Context, id string) error
}
