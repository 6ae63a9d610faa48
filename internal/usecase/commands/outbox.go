package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"
)

const maxLastErrorLength = 500

type DispatchResult struct {
	Sent        int
	Rescheduled int
	Failed      int
}

type OutboxCommands interface {
	DispatchDue(ctx context.Context, limit int) (*DispatchResult, error)
}

type outboxCommandsImpl struct {
	uow         shared.UnitOfWork
	notifier    Notifier
	clock       clock.Clock
	maxAttempts int
	retryBase   time.Duration
}

func NewOutboxCommands(uow shared.UnitOfWork, notifier Notifier, clk clock.Clock, maxAttempts int, retryBase time.Duration) OutboxCommands {
	if maxAttempts <= 0 {
		maxAttempts = 1
	}
	return &outboxCommandsImpl{
		uow:         uow,
		notifier:    notifier,
		clock:       clk,
		maxAttempts: maxAttempts,
		retryBase:   retryBase,
	}
}

// DispatchDue claims due jobs with SKIP LOCKED so several dispatchers can run
// side by side. Delivery is at least once: a job whose transaction fails
// after Notify is sent again.
func (o *outboxCommandsImpl) DispatchDue(ctx context.Context, limit int) (*DispatchResult, error) {
	now := o.clock.Now()

	var result *DispatchResult
	err := o.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = &DispatchResult{}

		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, limit)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		for _, job := range jobs {
			if notifyErr := o.notifier.Notify(ctx, job); notifyErr != nil {
				failed, err := o.retryOrFail(ctx, tx, job, notifyErr, now)
				if err != nil {
					return err
				}
				if failed {
					result.Failed++
				} else {
					result.Rescheduled++
				}
				continue
			}

			if job.Topic == matching.TopicRequestCreated {
				if err := o.activate(ctx, tx, job, now); err != nil {
					return err
				}
			}
			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID, now); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			result.Sent++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (o *outboxCommandsImpl) retryOrFail(ctx context.Context, tx shared.Tx, job shared.NotificationJob, cause error, now time.Time) (bool, error) {
	lastErr := cause.Error()
	if len(lastErr) > maxLastErrorLength {
		lastErr = lastErr[:maxLastErrorLength]
	}

	attempts := job.Attempts + 1
	if attempts >= o.maxAttempts {
		slog.Error("notification job failed permanently",
			"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "error", lastErr)
		if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, lastErr, now); err != nil {
			return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return true, nil
	}

	runAt := now.Add(o.backoff(attempts))
	slog.Warn("notification job rescheduled",
		"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "run_at", runAt, "error", lastErr)
	if err := tx.Notifications().Reschedule(ctx, tx.DB(), job.ID, runAt, lastErr, now); err != nil {
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return false, nil
}

// backoff doubles the base delay per attempt, capped at 2^10 times the base.
func (o *outboxCommandsImpl) backoff(attempts int) time.Duration {
	shift := min(max(attempts-1, 0), 10)
	return o.retryBase * time.Duration(1<<shift)
}

// activate moves a freshly announced request from pending to active.
func (o *outboxCommandsImpl) activate(ctx context.Context, tx shared.Tx, job shared.NotificationJob, now time.Time) error {
	var event RequestEvent
	if err := json.Unmarshal(job.Payload, &event); err != nil {
		slog.Warn("skipping activation for malformed payload", "job_id", job.ID, "error", err.Error())
		return nil
	}
	err := activateRequest(ctx, tx, event.RequestID, now)
	if errs.Is(err, matching.ErrRequestNotFound) {
		return nil
	}
	return err
}
