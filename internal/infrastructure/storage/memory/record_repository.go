// Package memory keeps collections in process memory. Used for tests and
// STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"recordbook/internal/domain/record"
)

var _ record.Repository = (*RecordRepository)(nil)

type RecordRepository struct {
	mu          sync.RWMutex
	collections map[string]map[string]record.Record
}

func NewRecordRepository() *RecordRepository {
	return &RecordRepository{
		collections: make(map[string]map[string]record.Record),
	}
}

func (r *RecordRepository) Ping(context.Context) error {
	return nil
}

func (r *RecordRepository) List(_ context.Context, collection string) ([]record.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]record.Record, 0, len(r.collections[collection]))
	for _, rec := range r.collections[collection] {
		records = append(records, rec)
	}
	record.SortByRecency(records)

	return records, nil
}

func (r *RecordRepository) Get(_ context.Context, collection, id string) (*record.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.collections[collection][id]
	if !ok {
		return nil, record.ErrNotFound
	}
	return &rec, nil
}

func (r *RecordRepository) Create(_ context.Context, collection string, rec *record.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	docs, ok := r.collections[collection]
	if !ok {
		docs = make(map[string]record.Record)
		r.collections[collection] = docs
	}
	docs[rec.ID] = *rec

	return nil
}

func (r *RecordRepository) UpdateText(_ context.Context, collection, id, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.collections[collection][id]
	if !ok {
		return record.ErrNotFound
	}
	r.collections[collection][id] = rec.WithText(text)

	return nil
}

func (r *RecordRepository) Delete(_ context.Context, collection, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.collections[collection][id]; !ok {
		return record.ErrNotFound
	}
	delete(r.collections[collection], id)

	return nil
}
