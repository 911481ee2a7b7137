package record

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// CollectionPattern ограничивает имена коллекций.
const CollectionPattern = `^[A-Za-z0-9_-]{1,64}$`

var collectionRe = regexp.MustCompile(CollectionPattern)

// Service defines the business logic for record operations
type Service struct {
	repo  Repository
	log   *slog.Logger
	newID func() string
}

type Servicer interface {
	List(ctx context.Context, collection string) (ListResponse, error)
	Create(ctx context.Context, collection, text string, timestamp *time.Time) (string, error)
	Find(ctx context.Context, collection, id string) (*Record, error)
	UpdateText(ctx context.Context, collection, id, text string) error
	Delete(ctx context.Context, collection, id string) error
}

// NewService creates a new record service
func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo:  repo,
		log:   log.With("component", "record_service"),
		newID: uuid.NewString,
	}
}

// ValidateCollection checks a collection name against CollectionPattern.
func ValidateCollection(collection string) error {
	if !collectionRe.MatchString(collection) {
		return fmt.Errorf("%w: %q", ErrInvalidCollection, collection)
	}
	return nil
}

// List returns all records of a collection, newest first
func (s *Service) List(ctx context.Context, collection string) (ListResponse, error) {
	if err := ValidateCollection(collection); err != nil {
		return ListResponse{}, err
	}

	records, err := s.repo.List(ctx, collection)
	if err != nil {
		s.log.Error("failed to list records", "collection", collection, "error", err)
		return ListResponse{}, fmt.Errorf("list records: %w", err)
	}
	if records == nil {
		records = []Record{}
	}
	SortByRecency(records)

	return ListResponse{
		Records: records,
		Total:   len(records),
	}, nil
}

// Create stores a new record and returns the id assigned to it.
// The timestamp is kept as given, nil included.
func (s *Service) Create(ctx context.Context, collection, text string, timestamp *time.Time) (string, error) {
	if err := ValidateCollection(collection); err != nil {
		return "", err
	}

	rec := &Record{
		ID:        s.newID(),
		Text:      text,
		Timestamp: normalizeTimestamp(timestamp),
	}

	if err := s.repo.Create(ctx, collection, rec); err != nil {
		s.log.Error("failed to create record", "collection", collection, "error", err)
		return "", fmt.Errorf("create record: %w", err)
	}

	s.log.Info("record created successfully", "record_id", rec.ID, "collection", collection)

	return rec.ID, nil
}

// Find returns a specific record by ID
func (s *Service) Find(ctx context.Context, collection, id string) (*Record, error) {
	if err := ValidateCollection(collection); err != nil {
		return nil, err
	}

	rec, err := s.repo.Get(ctx, collection, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.log.Error("failed to find record", "record_id", id, "collection", collection, "error", err)
		return nil, fmt.Errorf("find record: %w", err)
	}

	return rec, nil
}

// UpdateText overwrites the text of a record, leaving its timestamp alone
func (s *Service) UpdateText(ctx context.Context, collection, id, text string) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	if err := s.repo.UpdateText(ctx, collection, id, text); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to update record", "record_id", id, "collection", collection, "error", err)
		return fmt.Errorf("update record: %w", err)
	}

	s.log.Info("record updated successfully", "record_id", id, "collection", collection)
	return nil
}

// Delete permanently deletes a record
func (s *Service) Delete(ctx context.Context, collection, id string) error {
	if err := ValidateCollection(collection); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, collection, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("failed to delete record", "record_id", id, "collection", collection, "error", err)
		return fmt.Errorf("delete record: %w", err)
	}

	s.log.Info("record deleted successfully", "record_id", id, "collection", collection)
	return nil
}

// normalizeTimestamp drops zero times and strips the monotonic clock reading.
func normalizeTimestamp(ts *time.Time) *time.Time {
	if ts == nil || ts.IsZero() {
		return nil
	}
	t := ts.Round(0).UTC()
	return &t
}
