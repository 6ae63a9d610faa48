package queries

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"

	"github.com/google/uuid"
)

// GateQueries answers the chat and rating gates. Both re-read the request on
// every call so a cancellation or expiry closes the gate immediately.
type GateQueries interface {
	CanChat(ctx context.Context, requestID, userID uuid.UUID) (bool, error)
	CanRate(ctx context.Context, requestID, raterID uuid.UUID) (bool, error)
}

type gateQueriesImpl struct {
	requests MatchingRequestReadStore
	ratings  RatingReadStore
	clock    clock.Clock
}

func NewGateQueries(requests MatchingRequestReadStore, ratings RatingReadStore, clk clock.Clock) GateQueries {
	return &gateQueriesImpl{requests: requests, ratings: ratings, clock: clk}
}

func (q *gateQueriesImpl) CanChat(ctx context.Context, requestID, userID uuid.UUID) (bool, error) {
	req, err := loadRequest(ctx, q.requests, requestID, q.clock.Now())
	if err != nil {
		return false, err
	}
	return req.CanChat(userID), nil
}

func (q *gateQueriesImpl) CanRate(ctx context.Context, requestID, raterID uuid.UUID) (bool, error) {
	req, err := loadRequest(ctx, q.requests, requestID, q.clock.Now())
	if err != nil {
		return false, err
	}
	if !req.RatingOpen() || !req.IsParty(raterID) {
		return false, nil
	}
	rated, err := q.ratings.HasRated(ctx, requestID, raterID)
	if err != nil {
		return false, err
	}
	return !rated, nil
}
