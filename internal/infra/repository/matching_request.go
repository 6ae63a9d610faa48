package repository

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository/converter"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type MatchingRequestWriteQueries interface {
	CreateMatchingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchingRequestParams) (uuid.UUID, error)
	GetMatchingRequestForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*sqlc.MatchingRequest, error)
	UpdateMatchingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateMatchingRequestParams) (int64, error)
	CountActiveAcceptedByVisitor(ctx context.Context, db sqlc.DBTX, arg sqlc.CountActiveAcceptedByVisitorParams) (int64, error)
	ExpireOverdueMatchingRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireOverdueMatchingRequestsParams) ([]*sqlc.ExpireOverdueMatchingRequestsRow, error)
}

type MatchingRequestRepository struct {
	queries MatchingRequestWriteQueries
}

func NewMatchingRequestRepository(queries MatchingRequestWriteQueries) *MatchingRequestRepository {
	return &MatchingRequestRepository{queries: queries}
}

func (r *MatchingRequestRepository) Create(ctx context.Context, tx sqlc.DBTX, req *matching.Request) (uuid.UUID, error) {
	id, err := r.queries.CreateMatchingRequest(ctx, tx, converter.MatchingRequestToCreateParams(req))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create matching request", err)
	}
	return id, nil
}

func (r *MatchingRequestRepository) FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*matching.Request, error) {
	row, err := r.queries.GetMatchingRequestForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("matching request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock matching request", err)
	}
	req, err := converter.MatchingRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert matching request", err, infra.KindDBFailure)
	}
	return req, nil
}

func (r *MatchingRequestRepository) Save(ctx context.Context, tx sqlc.DBTX, req *matching.Request) error {
	n, err := r.queries.UpdateMatchingRequest(ctx, tx, converter.MatchingRequestToUpdateParams(req))
	if err != nil {
		return infra.WrapRepoErr("failed to update matching request", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("matching request not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MatchingRequestRepository) CountActiveAccepted(ctx context.Context, tx sqlc.DBTX, visitorID uuid.UUID, now time.Time) (int, error) {
	n, err := r.queries.CountActiveAcceptedByVisitor(ctx, tx, sqlc.CountActiveAcceptedByVisitorParams{
		AcceptedVisitorID: pgconv.UUIDToPgtype(visitorID),
		Now:               pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count accepted requests", err)
	}
	return int(n), nil
}

func (r *MatchingRequestRepository) ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int) ([]shared.ExpiredRequest, error) {
	rows, err := r.queries.ExpireOverdueMatchingRequests(ctx, tx, sqlc.ExpireOverdueMatchingRequestsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: int32(batchSize), // #nosec G115 -- batch size comes from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to expire overdue matching requests", err)
	}
	out := make([]shared.ExpiredRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, shared.ExpiredRequest{
			ID:                row.ID,
			SupplierID:        row.SupplierID,
			AcceptedVisitorID: pgconv.UUIDPtrFromPgtype(row.AcceptedVisitorID),
		})
	}
	return out, nil
}
