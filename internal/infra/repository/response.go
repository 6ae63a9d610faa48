package repository

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository/converter"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// ConstraintOneAcceptance is the partial unique index allowing a single
// accepted response per request.
const ConstraintOneAcceptance = "matching_responses_one_accept_uniq"

type ResponseWriteQueries interface {
	CreateMatchingResponse(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchingResponseParams) (uuid.UUID, error)
	GetLatestResponseByVisitor(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLatestResponseByVisitorParams) (*sqlc.MatchingResponse, error)
}

type ResponseRepository struct {
	queries ResponseWriteQueries
}

func NewResponseRepository(queries ResponseWriteQueries) *ResponseRepository {
	return &ResponseRepository{queries: queries}
}

func (r *ResponseRepository) Create(ctx context.Context, tx sqlc.DBTX, resp *response.Response) (uuid.UUID, error) {
	id, err := r.queries.CreateMatchingResponse(ctx, tx, converter.ResponseToCreateParams(resp))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create matching response", err)
	}
	return id, nil
}

func (r *ResponseRepository) FindByVisitor(ctx context.Context, tx sqlc.DBTX, requestID, visitorID uuid.UUID) (*response.Response, error) {
	row, err := r.queries.GetLatestResponseByVisitor(ctx, tx, sqlc.GetLatestResponseByVisitorParams{
		RequestID: requestID,
		VisitorID: visitorID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get visitor response", err)
	}
	resp, err := converter.ResponseFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert matching response", err, infra.KindDBFailure)
	}
	return resp, nil
}
