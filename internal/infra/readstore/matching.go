package readstore

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository/converter"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MatchingRequestViewQueries interface {
	ExpireMatchingRequest(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireMatchingRequestParams) (int64, error)
	ExpireOverdueMatchingRequestsBySupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.ExpireOverdueMatchingRequestsBySupplierParams) (int64, error)
	GetMatchingRequest(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*sqlc.MatchingRequest, error)
	ListMatchingRequestsBySupplier(ctx context.Context, db sqlc.DBTX, arg sqlc.ListMatchingRequestsBySupplierParams) ([]*sqlc.MatchingRequest, error)
	ListAvailableMatchingRequests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAvailableMatchingRequestsParams) ([]*sqlc.MatchingRequest, error)
	CountExposuresByRequests(ctx context.Context, db sqlc.DBTX, requestIds []uuid.UUID) ([]*sqlc.CountExposuresByRequestsRow, error)
	RecordExposures(ctx context.Context, db sqlc.DBTX, arg sqlc.RecordExposuresParams) (int64, error)
}

type MatchingRequestReadStore struct {
	queries MatchingRequestViewQueries
	db      sqlc.DBTX
}

func NewMatchingRequestReadStore(queries MatchingRequestViewQueries, db sqlc.DBTX) *MatchingRequestReadStore {
	return &MatchingRequestReadStore{
		queries: queries,
		db:      db,
	}
}

// ExpireIfDue flips an overdue request and enqueues its request.expired job
// in the same statement, so a flip seen first by a read still notifies.
func (r *MatchingRequestReadStore) ExpireIfDue(ctx context.Context, id uuid.UUID, now time.Time) error {
	_, err := r.queries.ExpireMatchingRequest(ctx, r.db, sqlc.ExpireMatchingRequestParams{
		ID:    id,
		Now:   pgconv.TimeToPgtype(now),
		Kind:  matching.NotificationKind,
		Topic: matching.TopicRequestExpired,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to expire matching request", err)
	}
	return nil
}

func (r *MatchingRequestReadStore) ExpireOverdueBySupplier(ctx context.Context, supplierID uuid.UUID, now time.Time) error {
	_, err := r.queries.ExpireOverdueMatchingRequestsBySupplier(ctx, r.db, sqlc.ExpireOverdueMatchingRequestsBySupplierParams{
		SupplierID: supplierID,
		Now:        pgconv.TimeToPgtype(now),
		Kind:       matching.NotificationKind,
		Topic:      matching.TopicRequestExpired,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to expire supplier requests", err)
	}
	return nil
}

func (r *MatchingRequestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*matching.Request, error) {
	row, err := r.queries.GetMatchingRequest(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("matching request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get matching request", err)
	}
	req, err := converter.MatchingRequestFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert matching request", err, infra.KindDBFailure)
	}
	return req, nil
}

func (r *MatchingRequestReadStore) ListBySupplier(ctx context.Context, supplierID uuid.UUID, status *matching.Status, after *queries.Keyset, limit int32) ([]*matching.Request, error) {
	params := sqlc.ListMatchingRequestsBySupplierParams{
		SupplierID: supplierID,
		RowLimit:   limit,
	}
	if status != nil {
		params.Status = pgconv.StringToPgtype(status.String())
	}
	params.AfterCreatedAt, params.AfterID = keysetParams(after)

	rows, err := r.queries.ListMatchingRequestsBySupplier(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matching requests by supplier", err)
	}
	return mapRequests(rows)
}

func (r *MatchingRequestReadStore) ListAvailable(ctx context.Context, now time.Time, after *queries.Keyset, limit int32) ([]*matching.Request, error) {
	params := sqlc.ListAvailableMatchingRequestsParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	}
	params.AfterCreatedAt, params.AfterID = keysetParams(after)

	rows, err := r.queries.ListAvailableMatchingRequests(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available matching requests", err)
	}
	return mapRequests(rows)
}

// CountExposures returns distinct visitor counts keyed by request. Requests
// nobody has seen yet are absent from the map.
func (r *MatchingRequestReadStore) CountExposures(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int, len(requestIDs))
	if len(requestIDs) == 0 {
		return counts, nil
	}
	rows, err := r.queries.CountExposuresByRequests(ctx, r.db, requestIDs)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count exposures", err)
	}
	for _, row := range rows {
		counts[row.RequestID] = int(row.VisitorCount)
	}
	return counts, nil
}

func (r *MatchingRequestReadStore) RecordExposures(ctx context.Context, requestIDs []uuid.UUID, visitorID uuid.UUID, source shared.ExposureSource, at time.Time) error {
	_, err := r.queries.RecordExposures(ctx, r.db, sqlc.RecordExposuresParams{
		RequestIds: requestIDs,
		VisitorID:  visitorID,
		Source:     string(source),
		SeenAt:     pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record exposures", err)
	}
	return nil
}

func mapRequests(rows []*sqlc.MatchingRequest) ([]*matching.Request, error) {
	result := make([]*matching.Request, 0, len(rows))
	for _, row := range rows {
		req, err := converter.MatchingRequestFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to convert matching request", err, infra.KindDBFailure)
		}
		result = append(result, req)
	}
	return result, nil
}

func keysetParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}
