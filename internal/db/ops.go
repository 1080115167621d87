package db

import (
	"errors"
	"fmt"

	"github.com/georgysavva/scany/pgxscan"
	"github.com/jackc/pgconn"
)

var (
	ErrInsertFailed = errors.New("insert operation failed")
	ErrUpdateFailed = errors.New("update operation failed")
	ErrDeleteFailed = errors.New("delete operation failed")
	ErrSelectFailed = errors.New("select operation failed")
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate natural key")
)

const uniqueViolation = "23505"

// wrap classifies a driver error: missing rows and unique violations get
// their own sentinels, everything else is tagged with op.
func wrap(fn string, op error, err error) error {
	if pgxscan.NotFound(err) {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s:%w:%w", fn, ErrDuplicateKey, err)
	}
	return fmt.Errorf("%s:%w:%w", fn, op, err)
}
