package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	sqlcgen "github.com/ayodejiAA/trivia/internal/db/sqlc"
)

type beginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Runner hands out transaction-scoped query handles.
type Runner interface {
	ReadTx(ctx context.Context, fn func(Tx) error) error
	WriteTx(ctx context.Context, fn func(Tx) error) error
}

// Store runs each unit of work in its own transaction on the pgx pool.
type Store struct {
	db beginner
}

var _ Runner = (*Store)(nil)

func NewStore(db beginner) *Store {
	return &Store{db: db}
}

// ReadTx runs fn in a read-only repeatable-read transaction so counts and pages agree.
func (s *Store) ReadTx(ctx context.Context, fn func(Tx) error) error {
	return s.run(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

// WriteTx runs fn in a read-write transaction. Nothing fn wrote is visible unless the commit succeeds.
func (s *Store) WriteTx(ctx context.Context, fn func(Tx) error) error {
	return s.run(ctx, pgx.TxOptions{AccessMode: pgx.ReadWrite}, fn)
}

func (s *Store) run(ctx context.Context, opts pgx.TxOptions, fn func(Tx) error) error {
	var fnErr error
	err := pgx.BeginTxFunc(ctx, s.db, opts, func(tx pgx.Tx) error {
		fnErr = fn(newQueryTx(sqlcgen.New(tx)))
		return fnErr
	})
	if err == nil {
		return nil
	}
	if fnErr != nil {
		// fn errors are already classified; pass them through untouched.
		return fnErr
	}
	// begin, commit or rollback failed
	return fmt.Errorf("transaction: %w: %w", ErrStorage, err)
}
