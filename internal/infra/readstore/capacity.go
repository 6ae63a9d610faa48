package readstore

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CapacityViewQueries interface {
	GetVisitorCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.GetVisitorCapacityParams) (*sqlc.GetVisitorCapacityRow, error)
	ListVisitorCapacity(ctx context.Context, db sqlc.DBTX, arg sqlc.ListVisitorCapacityParams) ([]*sqlc.ListVisitorCapacityRow, error)
	ListNearCapacityVisitors(ctx context.Context, db sqlc.DBTX, arg sqlc.ListNearCapacityVisitorsParams) ([]*sqlc.ListNearCapacityVisitorsRow, error)
}

type CapacityReadStore struct {
	queries CapacityViewQueries
	db      sqlc.DBTX
}

func NewCapacityReadStore(queries CapacityViewQueries, db sqlc.DBTX) *CapacityReadStore {
	return &CapacityReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CapacityReadStore) LoadFor(ctx context.Context, visitorID uuid.UUID, now time.Time) (*queries.VisitorLoad, error) {
	row, err := r.queries.GetVisitorCapacity(ctx, r.db, sqlc.GetVisitorCapacityParams{
		Now:       pgconv.TimeToPgtype(now),
		VisitorID: visitorID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("visitor not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get visitor capacity", err)
	}
	return &queries.VisitorLoad{
		ID:             row.ID,
		FullName:       row.FullName,
		Country:        pgconv.StringPtrFromPgtype(row.Country),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		ActiveRequests: row.ActiveRequests,
	}, nil
}

func (r *CapacityReadStore) List(ctx context.Context, now time.Time, minActive *int64, after *queries.Keyset, limit int32) ([]*queries.VisitorLoad, error) {
	params := sqlc.ListVisitorCapacityParams{
		Now:      pgconv.TimeToPgtype(now),
		RowLimit: limit,
	}
	if minActive != nil {
		params.MinActive = pgtype.Int8{Int64: *minActive, Valid: true}
	}
	params.AfterCreatedAt, params.AfterID = keysetParams(after)

	rows, err := r.queries.ListVisitorCapacity(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visitor capacity", err)
	}
	result := make([]*queries.VisitorLoad, len(rows))
	for i, row := range rows {
		result[i] = &queries.VisitorLoad{
			ID:             row.ID,
			FullName:       row.FullName,
			Country:        pgconv.StringPtrFromPgtype(row.Country),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			ActiveRequests: row.ActiveRequests,
		}
	}
	return result, nil
}

func (r *CapacityReadStore) ListBusiest(ctx context.Context, now time.Time, minActive int64, limit int32) ([]*queries.VisitorLoad, error) {
	rows, err := r.queries.ListNearCapacityVisitors(ctx, r.db, sqlc.ListNearCapacityVisitorsParams{
		Now:       pgconv.TimeToPgtype(now),
		MinActive: minActive,
		RowLimit:  limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list near capacity visitors", err)
	}
	result := make([]*queries.VisitorLoad, len(rows))
	for i, row := range rows {
		result[i] = &queries.VisitorLoad{
			ID:             row.ID,
			FullName:       row.FullName,
			Country:        pgconv.StringPtrFromPgtype(row.Country),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
			ActiveRequests: row.ActiveRequests,
		}
	}
	return result, nil
}
