package readstore

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type ResponseViewQueries interface {
	ListResponsesByRequest(ctx context.Context, db sqlc.DBTX, requestID uuid.UUID) ([]*sqlc.ListResponsesByRequestRow, error)
	GetLatestResponseByVisitor(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestResponseByVisitorParams) (*sqlc.MatchingResponse, error)
}

type ResponseReadStore struct {
	queries ResponseViewQueries
	db      sqlc.DBTX
}

func NewResponseReadStore(queries ResponseViewQueries, db sqlc.DBTX) *ResponseReadStore {
	return &ResponseReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ResponseReadStore) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.ResponseView, error) {
	rows, err := r.queries.ListResponsesByRequest(ctx, r.db, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list responses by request", err)
	}
	result := make([]*queries.ResponseView, len(rows))
	for i, row := range rows {
		result[i] = &queries.ResponseView{
			ID:             row.ID,
			RequestID:      row.RequestID,
			VisitorID:      row.VisitorID,
			VisitorName:    row.VisitorName,
			VisitorCountry: pgconv.StringPtrFromPgtype(row.VisitorCountry),
			ResponseType:   row.ResponseType,
			Message:        pgconv.StringPtrFromPgtype(row.Message),
			CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *ResponseReadStore) FindByVisitor(ctx context.Context, requestID, visitorID uuid.UUID) (*queries.ResponseView, error) {
	row, err := r.queries.GetLatestResponseByVisitor(ctx, r.db, sqlc.GetLatestResponseByVisitorParams{
		RequestID: requestID,
		VisitorID: visitorID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("response not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get visitor response", err)
	}
	return &queries.ResponseView{
		ID:           row.ID,
		RequestID:    row.RequestID,
		VisitorID:    row.VisitorID,
		ResponseType: row.ResponseType,
		Message:      pgconv.StringPtrFromPgtype(row.Message),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
