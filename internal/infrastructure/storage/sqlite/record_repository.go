package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/exp/slog"

	"recordbook/internal/domain/record"
)

var _ record.Repository = (*RecordRepository)(nil)

type RecordRepository struct {
	db  *sql.DB
	log *slog.Logger
}

func NewRecordRepository(storage *Storage, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		db:  storage.DB(),
		log: log.With("component", "record_repository"),
	}
}

func (r *RecordRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *RecordRepository) List(ctx context.Context, collection string) ([]record.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, text, timestamp
		FROM records
		WHERE collection = ?
		ORDER BY timestamp IS NULL, timestamp DESC
	`, collection)
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
	row := r.db.QueryRowContext(ctx, `
		SELECT id, text, timestamp
		FROM records
		WHERE collection = ? AND id = ?
	`, collection, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, record.ErrNotFound
	}
	if err != nil {
		r.log.Error("failed to get record", "record_id", id, "collection", collection, "error", err)
		return nil, fmt.Errorf("get record: %w", err)
	}

	return rec, nil
}

func (r *RecordRepository) Create(ctx context.Context, collection string, rec *record.Record) error {
	var ts any
	if rec.Timestamp != nil {
		ts = rec.Timestamp.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO records (collection, id, text, timestamp)
		VALUES (?, ?, ?, ?)
	`, collection, rec.ID, rec.Text, ts)
	if err != nil {
		r.log.Error("failed to create record", "collection", collection, "error", err)
		return fmt.Errorf("create record: %w", err)
	}

	return nil
}

func (r *RecordRepository) UpdateText(ctx context.Context, collection, id, text string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE records SET text = ? WHERE collection = ? AND id = ?`, text, collection, id)
	if err != nil {
		r.log.Error("failed to update record", "record_id", id, "collection", collection, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	return expectAffected(result)
}

func (r *RecordRepository) Delete(ctx context.Context, collection, id string) error {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM records WHERE collection = ? AND id = ?`, collection, id)
	if err != nil {
		r.log.Error("failed to delete record", "record_id", id, "collection", collection, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	return expectAffected(result)
}

func expectAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return record.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*record.Record, error) {
	var (
		rec record.Record
		ts  sql.NullTime
	)
	if err := row.Scan(&rec.ID, &rec.Text, &ts); err != nil {
		return nil, err
	}
	if ts.Valid {
		t := ts.Time.UTC()
		rec.Timestamp = &t
	}
	return &rec, nil
}
