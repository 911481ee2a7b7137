package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/exp/slog"

	"recordbook/internal/domain/record"
)

var _ record.Repository = (*RecordRepository)(nil)

type RecordRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewRecordRepository(pool *pgxpool.Pool, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		pool: pool,
		log:  log.With("component", "record_repository"),
	}
}

func (r *RecordRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func (r *RecordRepository) List(ctx context.Context, collection string) ([]record.Record, error) {
	const query = `
		SELECT id, text, timestamp
		FROM records
		WHERE collection = $1
		ORDER BY timestamp DESC NULLS LAST`

	rows, err := r.pool.Query(ctx, query, collection)
	if err != nil {
		r.log.Error("failed to list records", "collection", collection, "error", err)
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	records := make([]record.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

func (r *RecordRepository) Get(ctx context.Context, collection, id string) (*record.Record, error) {
	const query = `
		SELECT id, text, timestamp
		FROM records
		WHERE collection = $1 AND id = $2`

	rec, err := scanRecord(r.pool.QueryRow(ctx, query, collection, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, record.ErrNotFound
		}
		r.log.Error("failed to get record", "record_id", id, "collection", collection, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	return rec, nil
}

func (r *RecordRepository) Create(ctx context.Context, collection string, rec *record.Record) error {
	const query = `
		INSERT INTO records (collection, id, text, timestamp)
		VALUES ($1, $2, $3, $4)`

	if _, err := r.pool.Exec(ctx, query, collection, rec.ID, rec.Text, rec.Timestamp); err != nil {
		r.log.Error("failed to create record", "collection", collection, "error", err)
		return fmt.Errorf("create record: %w", err)
	}

	return nil
}

func (r *RecordRepository) UpdateText(ctx context.Context, collection, id, text string) error {
	const query = `UPDATE records SET text = $1 WHERE collection = $2 AND id = $3`

	result, err := r.pool.Exec(ctx, query, text, collection, id)
	if err != nil {
		r.log.Error("failed to update record", "record_id", id, "collection", collection, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return record.ErrNotFound
	}

	return nil
}

func (r *RecordRepository) Delete(ctx context.Context, collection, id string) error {
	const query = `DELETE FROM records WHERE collection = $1 AND id = $2`

	result, err := r.pool.Exec(ctx, query, collection, id)
	if err != nil {
		r.log.Error("failed to delete record", "record_id", id, "collection", collection, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	if result.RowsAffected() == 0 {
		return record.ErrNotFound
	}

	return nil
}

func scanRecord(row pgx.Row) (*record.Record, error) {
	var (
		rec record.Record
		ts  *time.Time
	)
	if err := row.Scan(&rec.ID, &rec.Text, &ts); err != nil {
		return nil, err
	}
	if ts != nil {
		utc := ts.UTC()
		rec.Timestamp = &utc
	}
	return &rec, nil
}
