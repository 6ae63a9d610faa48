package capacity

import (
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/google/uuid"
)

// DefaultLimit is the number of accepted requests a visitor may hold at once.
const DefaultLimit = 5

// NearThreshold marks a visitor as near capacity when this many slots or
// fewer are left.
const NearThreshold = 1

var ErrCapacityReached = errs.Sentinel("visitor has no free matching slots", errs.ErrConflict)

// Record is the derived load of one visitor.
type Record struct {
	visitorID uuid.UUID
	active    int
	limit     int
}

func NewRecord(visitorID uuid.UUID, active, limit int) Record {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if active < 0 {
		active = 0
	}
	return Record{visitorID: visitorID, active: active, limit: limit}
}

func (r Record) VisitorID() uuid.UUID { return r.visitorID }
func (r Record) ActiveRequests() int  { return r.active }
func (r Record) Limit() int           { return r.limit }

func (r Record) RemainingSlots() int {
	return max(0, r.limit-r.active)
}

func (r Record) NearCapacity() bool {
	return r.RemainingSlots() <= NearThreshold
}

// CheckAccept rejects a new acceptance when the visitor has no slot left.
func (r Record) CheckAccept() error {
	if r.RemainingSlots() == 0 {
		return ErrCapacityReached
	}
	return nil
}
