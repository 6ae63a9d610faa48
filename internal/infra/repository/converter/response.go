package converter

import (
	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
)

func ResponseToCreateParams(r *response.Response) sqlc.CreateMatchingResponseParams {
	return sqlc.CreateMatchingResponseParams{
		ID:           r.ID(),
		RequestID:    r.RequestID(),
		VisitorID:    r.VisitorID(),
		ResponseType: r.Type().String(),
		Message:      pgconv.StringPtrToPgtype(r.Message()),
		CreatedAt:    pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func ResponseFromRow(row *sqlc.MatchingResponse) (*response.Response, error) {
	kind, err := response.ParseType(row.ResponseType)
	if err != nil {
		return nil, err
	}
	return response.ReconstructResponse(
		row.ID,
		row.RequestID,
		row.VisitorID,
		kind,
		pgconv.StringPtrFromPgtype(row.Message),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
