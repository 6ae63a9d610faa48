package worker

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/config"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/commands"
)

const (
	ExpirySweeperName    = "expiry-sweeper"
	OutboxDispatcherName = "outbox-dispatcher"
)

// NewExpirySweeper flips overdue requests the lazy path has not touched.
func NewExpirySweeper(expiry commands.ExpiryCommands, cfg config.MatchingConfig) *Runner {
	return NewRunner(ExpirySweeperName, cfg.ExpirySweepInterval, func(ctx context.Context) error {
		_, err := expiry.SweepExpired(ctx, cfg.ExpirySweepBatch)
		return err
	})
}

// NewOutboxDispatcher drains due notification jobs. A full batch is followed
// straight away by another one.
func NewOutboxDispatcher(outbox commands.OutboxCommands, cfg config.NotificationConfig) *Runner {
	return NewRunner(OutboxDispatcherName, cfg.PollInterval, func(ctx context.Context) error {
		for ctx.Err() == nil {
			result, err := outbox.DispatchDue(ctx, cfg.BatchSize)
			if err != nil {
				return err
			}
			if result.Sent+result.Rescheduled+result.Failed < cfg.BatchSize {
				return nil
			}
		}
		return nil
	})
}
