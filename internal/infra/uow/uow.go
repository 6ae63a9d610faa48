// Package uow runs command handlers inside Postgres transactions and retries
// the ones that lose a serialization or deadlock race.
package uow

import (
	"context"
	"errors"
	"log/slog"
	"time"

	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	maxTxRetries = 3
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{pool: pool, q: q}
}

// Within runs fn in a READ COMMITTED transaction. That level is enough because
// every command locks the rows it changes with SELECT ... FOR UPDATE first.
// fn may run more than once and must not have side effects outside tx.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	attempts := 0
	op := func() error {
		attempts++
		err := u.once(ctx, fn)
		if err != nil && !isRetryableError(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		slog.Warn("retrying transaction",
			slog.Int("attempt", attempts),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	err := backoff.RetryNotify(op, backoff.WithContext(newTxBackOff(), ctx), notify)
	if err != nil && isRetryableError(err) {
		slog.Error("transaction gave up", slog.Int("attempts", attempts), slog.String("error", err.Error()))
		return errs.Mark(err, errMaxRetriesExceeded)
	}
	return err
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{q: u.q, dbtx: u.pool}
}

func (u *PostgresUoW) once(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	if err = fn(ctx, &pgTx{dbtx: pgxTx, q: u.q}); err == nil {
		if err = pgxTx.Commit(ctx); err == nil {
			return nil
		}
		err = errs.Mark(err, errTransactionCommit)
	}

	if rbErr := pgxTx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
		slog.Warn("rollback failed", slog.String("error", rbErr.Error()))
	}
	return err
}

// newTxBackOff waits roughly 100ms, 200ms, 400ms with 20% jitter.
func newTxBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.Multiplier = 2
	b.RandomizationFactor = 0.2
	b.MaxElapsedTime = 5 * time.Second
	b.Reset()
	return backoff.WithMaxRetries(b, maxTxRetries)
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrCodeSerializationFailure || pgErr.Code == pgErrCodeDeadlockDetected
}
