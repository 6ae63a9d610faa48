package repository

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/rating"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository/converter"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RatingWriteQueries interface {
	CreateMatchingRating(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateMatchingRatingParams) (uuid.UUID, error)
	GetRatingByRequestAndRater(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingByRequestAndRaterParams) (*sqlc.MatchingRating, error)
}

type RatingRepository struct {
	queries RatingWriteQueries
}

func NewRatingRepository(queries RatingWriteQueries) *RatingRepository {
	return &RatingRepository{queries: queries}
}

func (r *RatingRepository) Create(ctx context.Context, tx sqlc.DBTX, rt *rating.Rating) (uuid.UUID, error) {
	id, err := r.queries.CreateMatchingRating(ctx, tx, converter.RatingToCreateParams(rt))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create matching rating", err)
	}
	return id, nil
}

func (r *RatingRepository) FindByRater(ctx context.Context, tx sqlc.DBTX, requestID, raterID uuid.UUID) (*rating.Rating, error) {
	row, err := r.queries.GetRatingByRequestAndRater(ctx, tx, sqlc.GetRatingByRequestAndRaterParams{
		RequestID: requestID,
		RaterID:   raterID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get rating", err)
	}
	rt, err := converter.RatingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert rating", err, infra.KindDBFailure)
	}
	return rt, nil
}
