package queries

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/capacity"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrVisitorNotFound = errs.Sentinel("visitor not found", errs.ErrNotFound)

type CapacityReadStore interface {
	LoadFor(ctx context.Context, visitorID uuid.UUID, now time.Time) (*VisitorLoad, error)
	// List returns approved visitors newest first. minActive filters out
	// visitors holding fewer accepted requests.
	List(ctx context.Context, now time.Time, minActive *int64, after *Keyset, limit int32) ([]*VisitorLoad, error)
	// ListBusiest orders by active requests, highest first.
	ListBusiest(ctx context.Context, now time.Time, minActive int64, limit int32) ([]*VisitorLoad, error)
}

type CapacityQueries interface {
	CapacityFor(ctx context.Context, visitorID uuid.UUID) (*CapacityView, error)
	ListVisitors(ctx context.Context, nearOnly bool, cursor *Cursor, limit int) ([]*CapacityView, *Cursor, error)
	NearCapacity(ctx context.Context, limit int) ([]*CapacityView, error)
}

type capacityQueriesImpl struct {
	store CapacityReadStore
	limit int
	clock clock.Clock
}

// NewCapacityQueries builds capacity reads. limit is the per-visitor slot
// count; zero or less falls back to capacity.DefaultLimit.
func NewCapacityQueries(store CapacityReadStore, limit int, clk clock.Clock) CapacityQueries {
	if limit <= 0 {
		limit = capacity.DefaultLimit
	}
	return &capacityQueriesImpl{store: store, limit: limit, clock: clk}
}

func (q *capacityQueriesImpl) CapacityFor(ctx context.Context, visitorID uuid.UUID) (*CapacityView, error) {
	load, err := q.store.LoadFor(ctx, visitorID, q.clock.Now())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrVisitorNotFound
		}
		return nil, err
	}
	return q.toView(load), nil
}

func (q *capacityQueriesImpl) ListVisitors(ctx context.Context, nearOnly bool, cursor *Cursor, limit int) ([]*CapacityView, *Cursor, error) {
	after, err := decodeKeyset(cursor)
	if err != nil {
		return nil, nil, err
	}
	limit = ValidateLimit(limit)

	var minActive *int64
	if nearOnly {
		m := q.nearMinActive()
		minActive = &m
	}
	rows, err := q.store.List(ctx, q.clock.Now(), minActive, after, int32(limit+1)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit, func(v *VisitorLoad) (time.Time, uuid.UUID) { return v.CreatedAt, v.ID })

	views := make([]*CapacityView, len(rows))
	for i, row := range rows {
		views[i] = q.toView(row)
	}
	return views, next, nil
}

func (q *capacityQueriesImpl) NearCapacity(ctx context.Context, limit int) ([]*CapacityView, error) {
	limit = ValidateLimit(limit)
	rows, err := q.store.ListBusiest(ctx, q.clock.Now(), q.nearMinActive(), int32(limit)) // #nosec G115 -- limit is capped by ValidateLimit
	if err != nil {
		return nil, err
	}
	views := make([]*CapacityView, len(rows))
	for i, row := range rows {
		views[i] = q.toView(row)
	}
	return views, nil
}

// nearMinActive is the smallest load that leaves a visitor near capacity.
func (q *capacityQueriesImpl) nearMinActive() int64 {
	return int64(max(0, q.limit-capacity.NearThreshold))
}

func (q *capacityQueriesImpl) toView(load *VisitorLoad) *CapacityView {
	rec := capacity.NewRecord(load.ID, int(load.ActiveRequests), q.limit)
	return &CapacityView{
		VisitorID:      load.ID,
		FullName:       load.FullName,
		Country:        load.Country,
		ActiveRequests: rec.ActiveRequests(),
		RemainingSlots: rec.RemainingSlots(),
		Limit:          rec.Limit(),
		NearCapacity:   rec.NearCapacity(),
	}
}

// CanViewCapacity reports whether viewer may see the capacity of visitorID.
func CanViewCapacity(viewer Viewer, visitorID uuid.UUID) bool {
	switch viewer.Role {
	case user.RoleAdmin, user.RoleSupplier:
		return true
	default:
		return viewer.ID == visitorID
	}
}
