package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type RatingReadStore interface {
	HasRated(ctx context.Context, requestID, raterID uuid.UUID) (bool, error)
	ListForUser(ctx context.Context, ratedID uuid.UUID, after *Keyset, limit int32) ([]*RatingView, error)
	SummaryForUser(ctx context.Context, ratedID uuid.UUID) (*RatingSummary, error)
}

type RatingQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*RatingView, *Cursor, error)
	SummaryForUser(ctx context.Context, userID uuid.UUID) (*RatingSummary, error)
}

type ratingQueriesImpl struct {
	ratings RatingReadStore
}

func NewRatingQueries(ratings RatingReadStore) RatingQueries {
	return &ratingQueriesImpl{ratings: ratings}
}

func (q *ratingQueriesImpl) ListForUser(ctx context.Context, userID uuid.UUID, cursor *Cursor, limit int) ([]*RatingView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	rows, err := q.ratings.ListForUser(ctx, userID, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(r *RatingView) (time.Time, uuid.UUID) { return r.CreatedAt, r.ID })
	return rows, next, nil
}

func (q *ratingQueriesImpl) SummaryForUser(ctx context.Context, userID uuid.UUID) (*RatingSummary, error) {
	return q.ratings.SummaryForUser(ctx, userID)
}
