package commands

import (
	"context"
	"log/slog"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"
)

type SweepResult struct {
	ExpiredRequests int
	DeletedKeys     int64
}

type ExpiryCommands interface {
	SweepExpired(ctx context.Context, batchSize int) (*SweepResult, error)
}

type expiryCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewExpiryCommands(uow shared.UnitOfWork, clk clock.Clock) ExpiryCommands {
	return &expiryCommandsImpl{uow: uow, clock: clk}
}

// SweepExpired flips overdue requests in batches, one transaction per batch,
// until a batch comes back short. Rows locked by a running command are
// skipped; that command expires them itself.
func (e *expiryCommandsImpl) SweepExpired(ctx context.Context, batchSize int) (*SweepResult, error) {
	if batchSize <= 0 {
		batchSize = 100
	}
	now := e.clock.Now()
	result := &SweepResult{}

	for {
		var flipped int
		err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			rows, err := tx.Requests().ExpireOverdue(ctx, tx.DB(), now, batchSize)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			for _, row := range rows {
				event := RequestEvent{
					RequestID:  row.ID,
					SupplierID: row.SupplierID,
					VisitorID:  row.AcceptedVisitorID,
					Status:     matching.StatusExpired.String(),
					At:         now,
				}
				if err := enqueue(ctx, tx, matching.TopicRequestExpired, event); err != nil {
					return err
				}
			}
			flipped = len(rows)
			return nil
		})
		if err != nil {
			return result, err
		}
		result.ExpiredRequests += flipped
		if flipped < batchSize || ctx.Err() != nil {
			break
		}
	}

	err := e.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB(), now)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		result.DeletedKeys = n
		return nil
	})
	if err != nil {
		return result, err
	}

	if result.ExpiredRequests > 0 || result.DeletedKeys > 0 {
		slog.Info("expiry sweep finished",
			"expired_requests", result.ExpiredRequests,
			"deleted_idempotency_keys", result.DeletedKeys)
	}
	return result, nil
}
