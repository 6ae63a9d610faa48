package queries

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"

	"github.com/google/uuid"
)

type ResponseReadStore interface {
	// ListByRequest returns responses in creation order.
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*ResponseView, error)
	FindByVisitor(ctx context.Context, requestID, visitorID uuid.UUID) (*ResponseView, error)
}

type ResponseQueries interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID, viewer Viewer) ([]*ResponseView, error)
	GetMine(ctx context.Context, requestID, visitorID uuid.UUID) (*ResponseView, error)
}

type responseQueriesImpl struct {
	requests  MatchingRequestReadStore
	responses ResponseReadStore
	clock     clock.Clock
}

func NewResponseQueries(requests MatchingRequestReadStore, responses ResponseReadStore, clk clock.Clock) ResponseQueries {
	return &responseQueriesImpl{
		requests:  requests,
		responses: responses,
		clock:     clk,
	}
}

func (q *responseQueriesImpl) ListByRequest(ctx context.Context, requestID uuid.UUID, viewer Viewer) ([]*ResponseView, error) {
	req, err := loadRequest(ctx, q.requests, requestID, q.clock.Now())
	if err != nil {
		return nil, err
	}
	if !viewer.IsAdmin() && !req.IsOwner(viewer.ID) {
		return nil, matching.ErrNotOwner
	}
	return q.responses.ListByRequest(ctx, requestID)
}

func (q *responseQueriesImpl) GetMine(ctx context.Context, requestID, visitorID uuid.UUID) (*ResponseView, error) {
	rv, err := q.responses.FindByVisitor(ctx, requestID, visitorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, response.ErrNotFound
		}
		return nil, err
	}
	return rv, nil
}
