package store

import (
	"errors"
	"fmt"

	"github.com/hance08/cashflow/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
)

var (
	ErrConstraintViolation = errors.New("database constraint violation")
	ErrInTransaction       = errors.New("store is already in a transaction")
)

// wrapErr turns a driver error into a model.StoreError, tagging constraint
// failures (foreign key, check, not null) with ErrConstraintViolation.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite.ErrConstraint {
		err = fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return &model.StoreError{Op: op, Err: err}
}
