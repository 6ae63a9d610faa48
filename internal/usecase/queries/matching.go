package queries

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MatchingRequestReadStore loads requests for reads. The Expire methods run
// the conditional status flip so a read never shows a stale live status.
type MatchingRequestReadStore interface {
	ExpireIfDue(ctx context.Context, id uuid.UUID, now time.Time) error
	ExpireOverdueBySupplier(ctx context.Context, supplierID uuid.UUID, now time.Time) error
	FindByID(ctx context.Context, id uuid.UUID) (*matching.Request, error)
	ListBySupplier(ctx context.Context, supplierID uuid.UUID, status *matching.Status, after *Keyset, limit int32) ([]*matching.Request, error)
	ListAvailable(ctx context.Context, now time.Time, after *Keyset, limit int32) ([]*matching.Request, error)
	CountExposures(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID]int, error)
	RecordExposures(ctx context.Context, requestIDs []uuid.UUID, visitorID uuid.UUID, source shared.ExposureSource, at time.Time) error
}

type MatchingQueries interface {
	GetDetail(ctx context.Context, requestID uuid.UUID, viewer Viewer) (*MatchingRequestDetail, error)
	ListMine(ctx context.Context, supplierID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*MatchingRequestView, *Cursor, error)
	ListAvailable(ctx context.Context, viewer Viewer, cursor *Cursor, limit int) ([]*MatchingRequestView, *Cursor, error)
}

type matchingQueriesImpl struct {
	requests  MatchingRequestReadStore
	responses ResponseReadStore
	ratings   RatingReadStore
	users     UserReadStore
	clock     clock.Clock
}

func NewMatchingQueries(
	requests MatchingRequestReadStore,
	responses ResponseReadStore,
	ratings RatingReadStore,
	users UserReadStore,
	clk clock.Clock,
) MatchingQueries {
	return &matchingQueriesImpl{
		requests:  requests,
		responses: responses,
		ratings:   ratings,
		users:     users,
		clock:     clk,
	}
}

func (q *matchingQueriesImpl) GetDetail(ctx context.Context, requestID uuid.UUID, viewer Viewer) (*MatchingRequestDetail, error) {
	now := q.clock.Now()
	req, err := loadRequest(ctx, q.requests, requestID, now)
	if err != nil {
		return nil, err
	}

	detail := &MatchingRequestDetail{}
	var myResponse *ResponseView

	switch {
	case viewer.IsAdmin(), req.IsOwner(viewer.ID):
	case viewer.Role == user.RoleVisitor:
		myResponse, err = q.responses.FindByVisitor(ctx, requestID, viewer.ID)
		if err != nil && !infra.IsKind(err, infra.KindNotFound) {
			return nil, err
		}
		if !req.IsAcceptedVisitor(viewer.ID) && myResponse == nil {
			if !req.IsAvailable(now) {
				return nil, matching.ErrRequestNotFound
			}
			if err := q.requireApprovedVisitor(ctx, viewer.ID); err != nil {
				return nil, matching.ErrRequestNotFound
			}
			if err := q.requests.RecordExposures(ctx, []uuid.UUID{requestID}, viewer.ID, shared.ExposureDetail, now); err != nil {
				return nil, err
			}
		}
		detail.MyResponse = myResponse
	default:
		return nil, matching.ErrRequestNotFound
	}

	var (
		counts    map[uuid.UUID]int
		responses []*ResponseView
		rated     bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = q.requests.CountExposures(gctx, []uuid.UUID{requestID})
		return err
	})
	if viewer.IsAdmin() || req.IsOwner(viewer.ID) {
		g.Go(func() error {
			var err error
			responses, err = q.responses.ListByRequest(gctx, requestID)
			return err
		})
	}
	if req.IsParty(viewer.ID) && req.RatingOpen() {
		g.Go(func() error {
			var err error
			rated, err = q.ratings.HasRated(gctx, requestID, viewer.ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	detail.Request = toRequestView(req, now, counts[requestID])
	detail.Responses = responses
	detail.CanChat = req.CanChat(viewer.ID)
	detail.CanRate = req.IsParty(viewer.ID) && req.RatingOpen() && !rated
	return detail, nil
}

func (q *matchingQueriesImpl) ListMine(ctx context.Context, supplierID uuid.UUID, status *string, cursor *Cursor, limit int) ([]*MatchingRequestView, *Cursor, error) {
	var filter *matching.Status
	if status != nil && *status != "" {
		s, err := matching.ParseStatus(*status)
		if err != nil {
			return nil, nil, err
		}
		filter = &s
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	now := q.clock.Now()
	if err := q.requests.ExpireOverdueBySupplier(ctx, supplierID, now); err != nil {
		return nil, nil, err
	}
	rows, err := q.requests.ListBySupplier(ctx, supplierID, filter, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, requestKey)

	views, err := q.toViews(ctx, rows, now)
	if err != nil {
		return nil, nil, err
	}
	return views, next, nil
}

func (q *matchingQueriesImpl) ListAvailable(ctx context.Context, viewer Viewer, cursor *Cursor, limit int) ([]*MatchingRequestView, *Cursor, error) {
	if err := q.requireApprovedVisitor(ctx, viewer.ID); err != nil {
		return nil, nil, err
	}
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	now := q.clock.Now()
	rows, err := q.requests.ListAvailable(ctx, now, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, requestKey)

	if len(rows) > 0 {
		ids := make([]uuid.UUID, len(rows))
		for i, r := range rows {
			ids[i] = r.ID()
		}
		if err := q.requests.RecordExposures(ctx, ids, viewer.ID, shared.ExposureFeed, now); err != nil {
			return nil, nil, err
		}
	}

	views, err := q.toViews(ctx, rows, now)
	if err != nil {
		return nil, nil, err
	}
	return views, next, nil
}

func (q *matchingQueriesImpl) requireApprovedVisitor(ctx context.Context, userID uuid.UUID) error {
	u, err := q.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.ErrNotVisitor
		}
		return err
	}
	if u.Role != string(user.RoleVisitor) || !u.IsActive || !u.IsApproved {
		return user.ErrNotVisitor
	}
	return nil
}

func (q *matchingQueriesImpl) toViews(ctx context.Context, rows []*matching.Request, now time.Time) ([]*MatchingRequestView, error) {
	views := make([]*MatchingRequestView, 0, len(rows))
	if len(rows) == 0 {
		return views, nil
	}
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID()
	}
	counts, err := q.requests.CountExposures(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		views = append(views, toRequestView(r, now, counts[r.ID()]))
	}
	return views, nil
}

// loadRequest flips an overdue request to expired before reading it.
func loadRequest(ctx context.Context, store MatchingRequestReadStore, id uuid.UUID, now time.Time) (*matching.Request, error) {
	if err := store.ExpireIfDue(ctx, id, now); err != nil {
		return nil, err
	}
	req, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, matching.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

func requestKey(r *matching.Request) (time.Time, uuid.UUID) { return r.CreatedAt(), r.ID() }

func toRequestView(r *matching.Request, now time.Time, matched int) *MatchingRequestView {
	d := r.Details()
	return &MatchingRequestView{
		ID:                   r.ID(),
		SupplierID:           r.SupplierID(),
		ProductName:          d.ProductName(),
		Quantity:             d.Quantity(),
		Unit:                 d.Unit(),
		DestinationCountries: d.Countries().Values(),
		Price:                d.Price(),
		Currency:             d.Currency(),
		PaymentTerms:         d.PaymentTerms(),
		DeliveryTime:         d.DeliveryTime(),
		Description:          d.Description(),
		Status:               r.Status().String(),
		ExpiresAt:            r.ExpiresAt(),
		AcceptedVisitorID:    r.AcceptedVisitorID(),
		AcceptedAt:           r.AcceptedAt(),
		CompletedAt:          r.CompletedAt(),
		CancelledAt:          r.CancelledAt(),
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
		MatchedVisitorCount:  matched,
		IsExpired:            r.IsExpired(now),
		RemainingSeconds:     int64(r.RemainingTime(now) / time.Second),
	}
}
