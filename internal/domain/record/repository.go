package record

import (
	"context"
)

// Repository stores records grouped by collection name.
type Repository interface {
	// List returns every record of the collection, newest first.
	List(ctx context.Context, collection string) ([]Record, error)
	Get(ctx context.Context, collection, id string) (*Record, error)
	Create(ctx context.Context, collection string, rec *Record) error
	// UpdateText overwrites the text of an existing record and returns ErrNotFound for unknown ids.
	UpdateText(ctx context.Context, collection, id, text string) error
	Delete(ctx context.Context, collection, id string) error
	// Ping проверяет доступность хранилища.
	Ping(ctx context.Context) error
}
