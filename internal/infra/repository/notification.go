package repository

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type NotificationWriteQueries interface {
	CreateNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateNotificationJobParams) error
	ClaimDueNotificationJobs(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimDueNotificationJobsParams) ([]*sqlc.NotificationJob, error)
	MarkNotificationJobSent(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobSentParams) error
	RescheduleNotificationJob(ctx context.Context, db sqlc.DBTX, arg sqlc.RescheduleNotificationJobParams) error
	MarkNotificationJobFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkNotificationJobFailedParams) error
}

type NotificationRepository struct {
	queries NotificationWriteQueries
}

func NewNotificationRepository(queries NotificationWriteQueries) *NotificationRepository {
	return &NotificationRepository{queries: queries}
}

func (r *NotificationRepository) CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	params := sqlc.CreateNotificationJobParams{
		Kind:    kind,
		Topic:   topic,
		Payload: payload,
		RunAt:   pgconv.TimeToPgtype(runAt),
	}

	err := r.queries.CreateNotificationJob(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}

	return nil
}

// ClaimDue locks up to limit queued jobs whose run_at has passed. Rows held by
// another dispatcher are skipped.
func (r *NotificationRepository) ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]shared.NotificationJob, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, tx, sqlc.ClaimDueNotificationJobsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: int32(limit), // #nosec G115 -- batch size comes from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}

	jobs := make([]shared.NotificationJob, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, shared.NotificationJob{
			ID:       row.ID,
			Kind:     row.Kind,
			Topic:    row.Topic,
			Payload:  row.Payload,
			Attempts: int(row.Attempts),
			RunAt:    pgconv.TimeFromPgtype(row.RunAt),
		})
	}
	return jobs, nil
}

func (r *NotificationRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error {
	err := r.queries.MarkNotificationJobSent(ctx, tx, sqlc.MarkNotificationJobSentParams{
		ID:        id,
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job sent", err)
	}
	return nil
}

func (r *NotificationRepository) Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, runAt time.Time, lastErr string, now time.Time) error {
	err := r.queries.RescheduleNotificationJob(ctx, tx, sqlc.RescheduleNotificationJobParams{
		ID:        id,
		RunAt:     pgconv.TimeToPgtype(runAt),
		LastError: pgtype.Text{String: lastErr, Valid: true},
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to reschedule notification job", err)
	}
	return nil
}

func (r *NotificationRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error {
	err := r.queries.MarkNotificationJobFailed(ctx, tx, sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		LastError: pgtype.Text{String: lastErr, Valid: true},
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark notification job failed", err)
	}
	return nil
}
