package readstore

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/rating"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type RatingViewQueries interface {
	GetRatingByRequestAndRater(ctx context.Context, db sqlc.DBTX, arg sqlc.GetRatingByRequestAndRaterParams) (*sqlc.MatchingRating, error)
	ListRatingsForUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListRatingsForUserParams) ([]*sqlc.ListRatingsForUserRow, error)
	GetRatingSummaryForUser(ctx context.Context, db sqlc.DBTX, ratedID uuid.UUID) (*sqlc.GetRatingSummaryForUserRow, error)
}

type RatingReadStore struct {
	queries RatingViewQueries
	db      sqlc.DBTX
}

func NewRatingReadStore(queries RatingViewQueries, db sqlc.DBTX) *RatingReadStore {
	return &RatingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RatingReadStore) HasRated(ctx context.Context, requestID, raterID uuid.UUID) (bool, error) {
	_, err := r.queries.GetRatingByRequestAndRater(ctx, r.db, sqlc.GetRatingByRequestAndRaterParams{
		RequestID: requestID,
		RaterID:   raterID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to get rating", err)
	}
	return true, nil
}

func (r *RatingReadStore) ListForUser(ctx context.Context, ratedID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.RatingView, error) {
	params := sqlc.ListRatingsForUserParams{
		RatedID:  ratedID,
		RowLimit: limit,
	}
	params.AfterCreatedAt, params.AfterID = keysetParams(after)

	rows, err := r.queries.ListRatingsForUser(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings for user", err)
	}
	result := make([]*queries.RatingView, len(rows))
	for i, row := range rows {
		result[i] = &queries.RatingView{
			ID:        row.ID,
			RequestID: row.RequestID,
			RaterID:   row.RaterID,
			RaterName: row.RaterName,
			RaterRole: row.RaterRole,
			RatedID:   row.RatedID,
			Score:     int(row.Rating),
			Comment:   pgconv.StringPtrFromPgtype(row.Comment),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return result, nil
}

func (r *RatingReadStore) SummaryForUser(ctx context.Context, ratedID uuid.UUID) (*queries.RatingSummary, error) {
	row, err := r.queries.GetRatingSummaryForUser(ctx, r.db, ratedID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get rating summary", err)
	}
	summary := &queries.RatingSummary{UserID: ratedID, RatingCount: row.RatingCount}
	if row.RatingCount == 0 {
		return summary, nil
	}
	avg, err := pgconv.Float64FromNumeric(row.AverageRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert average rating", err, infra.KindDBFailure)
	}
	summary.AverageRating = rating.RoundAverage(avg)
	return summary, nil
}
