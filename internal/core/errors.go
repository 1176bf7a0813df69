package core

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateID is returned by Store.Insert when the record ID already exists.
	ErrDuplicateID = errors.New("duplicate key: id already exists")

	// ErrNotFound is returned by Store.Get when no row has the requested ID.
	ErrNotFound = errors.New("record not found")
)

// StoreError wraps any persistence failure other than a uniqueness violation.
type StoreError struct {
	Table string // Table name
	Op    string // "connect", "insert", "reset", ...
	Err   error  // Driver error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Table, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError returns nil if err is nil, err itself if it is already a
// StoreError or a duplicate-ID error, and a new StoreError otherwise.
func NewStoreError(table, op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrDuplicateID) {
		return err
	}
	var se *StoreError
	if errors.As(err, &se) {
		return err
	}
	return &StoreError{Table: table, Op: op, Err: err}
}
