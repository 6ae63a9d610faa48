package converter

import (
	"github.com/Hunterii1/asl-market-sub001/internal/domain/rating"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
)

func RatingToCreateParams(r *rating.Rating) sqlc.CreateMatchingRatingParams {
	return sqlc.CreateMatchingRatingParams{
		ID:        r.ID(),
		RequestID: r.RequestID(),
		RaterID:   r.RaterID(),
		RaterRole: string(r.RaterRole()),
		RatedID:   r.RatedID(),
		Rating:    int16(r.Score().Value()), // #nosec G115 -- score is 1..5
		Comment:   pgconv.StringPtrToPgtype(r.Comment()),
		CreatedAt: pgconv.TimeToPgtype(r.CreatedAt()),
	}
}

func RatingFromRow(row *sqlc.MatchingRating) (*rating.Rating, error) {
	role, err := rating.ParseRaterRole(row.RaterRole)
	if err != nil {
		return nil, err
	}
	score, err := rating.NewScore(int(row.Rating))
	if err != nil {
		return nil, err
	}
	return rating.ReconstructRating(
		row.ID,
		row.RequestID,
		row.RaterID,
		role,
		row.RatedID,
		score,
		pgconv.StringPtrFromPgtype(row.Comment),
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}
