package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when a lookup or delete matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrReferenced is returned when a write breaks a foreign key, either by pointing at a missing
	// category or by deleting a category that questions still use.
	ErrReferenced = errors.New("record referenced by foreign key")
	// ErrStorage wraps every other driver, begin or commit failure.
	ErrStorage = errors.New("storage failure")
)

const sqlStateForeignKeyViolation = "23503"

func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == sqlStateForeignKeyViolation {
		return fmt.Errorf("%s: %w", op, ErrReferenced)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorage, err)
}
