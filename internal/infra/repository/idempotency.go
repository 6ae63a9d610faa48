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

type IdempotencyWriteQueries interface {
	TryInsertIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.TryInsertIdempotencyKeyParams) (int64, error)
	GetIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.GetIdempotencyKeyParams) (*sqlc.IdempotencyKey, error)
	ClaimExpiredIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimExpiredIdempotencyKeyParams) (int64, error)
	CompleteIdempotencyKey(ctx context.Context, db sqlc.DBTX, arg sqlc.CompleteIdempotencyKeyParams) (int64, error)
	DeleteExpiredIdempotencyKeys(ctx context.Context, db sqlc.DBTX, now pgtype.Timestamptz) (int64, error)
}

type IdempotencyRepository struct {
	queries IdempotencyWriteQueries
}

func NewIdempotencyRepository(queries IdempotencyWriteQueries) *IdempotencyRepository {
	return &IdempotencyRepository{queries: queries}
}

func (r *IdempotencyRepository) TryInsert(ctx context.Context, tx sqlc.DBTX, rec shared.IdempotencyRecord, now time.Time) (bool, error) {
	n, err := r.queries.TryInsertIdempotencyKey(ctx, tx, sqlc.TryInsertIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
		CreatedAt:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to try insert idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	row, err := r.queries.GetIdempotencyKey(ctx, tx, sqlc.GetIdempotencyKeyParams{Key: key, UserID: userID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	return &shared.IdempotencyRecord{
		Key:         row.Key,
		UserID:      row.UserID,
		Endpoint:    row.Endpoint,
		Status:      row.Status,
		RequestHash: row.RequestHash,
		ResultID:    pgconv.UUIDPtrFromPgtype(row.ResultID),
		ExpiresAt:   pgconv.TimeFromPgtype(row.ExpiresAt),
	}, nil
}

func (r *IdempotencyRepository) ClaimExpired(ctx context.Context, tx sqlc.DBTX, rec shared.IdempotencyRecord, now time.Time) (bool, error) {
	n, err := r.queries.ClaimExpiredIdempotencyKey(ctx, tx, sqlc.ClaimExpiredIdempotencyKeyParams{
		Key:         rec.Key,
		UserID:      rec.UserID,
		Endpoint:    rec.Endpoint,
		RequestHash: rec.RequestHash,
		ExpiresAt:   pgconv.TimeToPgtype(rec.ExpiresAt),
		Now:         pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim expired idempotency key", err)
	}
	return n == 1, nil
}

func (r *IdempotencyRepository) Complete(ctx context.Context, tx sqlc.DBTX, key, userID, resultID uuid.UUID, now time.Time) error {
	n, err := r.queries.CompleteIdempotencyKey(ctx, tx, sqlc.CompleteIdempotencyKeyParams{
		Key:       key,
		UserID:    userID,
		ResultID:  pgconv.UUIDToPgtype(resultID),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *IdempotencyRepository) DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error) {
	count, err := r.queries.DeleteExpiredIdempotencyKeys(ctx, tx, pgconv.TimeToPgtype(now))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete expired idempotency keys", err)
	}
	return count, nil
}
