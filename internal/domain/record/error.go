package record

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrInvalidData       = errors.New("invalid record data")
	ErrInvalidCollection = errors.New("invalid collection name")
)

// PersistenceError is returned by a record store when a remote call fails.
// Op names the operation: create, fetch_all, update or delete.
type PersistenceError struct {
	Op  string
	ID  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s record %s: %v", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("%s records: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err is, or wraps, a *PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
