package matching

import (
	"time"

	"github.com/google/uuid"
)

// Request is a supplier's sourcing request. All status changes go through
// apply so the transition table stays the only source of truth.
type Request struct {
	id                uuid.UUID
	supplierID        uuid.UUID
	details           Details
	status            Status
	expiresAt         time.Time
	acceptedVisitorID *uuid.UUID
	acceptedAt        *time.Time
	completedAt       *time.Time
	cancelledAt       *time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

func NewRequest(supplierID uuid.UUID, details Details, expiresAt, now time.Time) (*Request, error) {
	if !expiresAt.After(now) {
		return nil, ErrExpiryInPast
	}
	return &Request{
		id:         uuid.New(),
		supplierID: supplierID,
		details:    details,
		status:     StatusPending,
		expiresAt:  expiresAt,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructRequest(
	id, supplierID uuid.UUID,
	details Details,
	status Status,
	expiresAt time.Time,
	acceptedVisitorID *uuid.UUID,
	acceptedAt, completedAt, cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) *Request {
	return &Request{
		id:                id,
		supplierID:        supplierID,
		details:           details,
		status:            status,
		expiresAt:         expiresAt,
		acceptedVisitorID: acceptedVisitorID,
		acceptedAt:        acceptedAt,
		completedAt:       completedAt,
		cancelledAt:       cancelledAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (r *Request) apply(action Action, now time.Time) error {
	next, err := Next(r.status, action)
	if err != nil {
		return err
	}
	r.status = next
	r.updatedAt = now
	return nil
}

// IsExpired is true once the request is marked expired, or when a live
// request has reached its deadline but nobody has flipped it yet. The
// deadline instant itself already counts as expired.
func (r *Request) IsExpired(now time.Time) bool {
	if r.status == StatusExpired {
		return true
	}
	return !r.status.IsTerminal() && r.isPastDeadline(now)
}

func (r *Request) isPastDeadline(now time.Time) bool {
	return !now.Before(r.expiresAt)
}

// ExpireIfDue flips an overdue live request to expired and reports whether it
// did. Callers must persist the flip.
func (r *Request) ExpireIfDue(now time.Time) bool {
	if r.status.IsTerminal() || !r.isPastDeadline(now) {
		return false
	}
	return r.apply(ActionExpire, now) == nil
}

func (r *Request) RemainingTime(now time.Time) time.Duration {
	if r.status.IsTerminal() || r.isPastDeadline(now) {
		return 0
	}
	return r.expiresAt.Sub(now)
}

func (r *Request) IsOwner(userID uuid.UUID) bool { return r.supplierID == userID }

func (r *Request) IsAcceptedVisitor(userID uuid.UUID) bool {
	return r.acceptedVisitorID != nil && *r.acceptedVisitorID == userID
}

// IsParty is true for the supplier and, once accepted, the accepted visitor.
func (r *Request) IsParty(userID uuid.UUID) bool {
	return r.IsOwner(userID) || r.IsAcceptedVisitor(userID)
}

// CanChat opens the chat only between the two parties of an accepted request.
func (r *Request) CanChat(userID uuid.UUID) bool {
	return r.status == StatusAccepted && r.IsParty(userID)
}

// RatingOpen reports whether the parties may rate each other.
func (r *Request) RatingOpen() bool {
	return r.status == StatusAccepted || r.status == StatusCompleted
}

// IsAvailable reports whether visitors can still pick the request up.
func (r *Request) IsAvailable(now time.Time) bool {
	return r.status.IsOpen() && r.acceptedVisitorID == nil && !r.IsExpired(now)
}

func (r *Request) Activate(now time.Time) error {
	return r.apply(ActionActivate, now)
}

// CheckRespondable validates that a visitor response is still possible.
func (r *Request) CheckRespondable(now time.Time) error {
	if r.IsExpired(now) {
		return ErrRequestExpired
	}
	if r.status == StatusAccepted {
		return ErrRequestAlreadyTaken
	}
	if !r.status.Allows(ActionRespond) {
		return ErrInvalidTransition
	}
	return nil
}

// Accept binds the request to visitorID. A request that already has a
// visitor reports ErrRequestAlreadyTaken to every later caller.
func (r *Request) Accept(visitorID uuid.UUID, now time.Time) error {
	if err := r.CheckRespondable(now); err != nil {
		return err
	}
	if err := r.apply(ActionAccept, now); err != nil {
		return err
	}
	r.acceptedVisitorID = &visitorID
	r.acceptedAt = &now
	return nil
}

func (r *Request) UpdateDetails(actorID uuid.UUID, details Details, now time.Time) error {
	if !r.IsOwner(actorID) {
		return ErrNotOwner
	}
	if err := r.apply(ActionEdit, now); err != nil {
		return err
	}
	r.details = details
	return nil
}

func (r *Request) Extend(actorID uuid.UUID, newExpiresAt, now time.Time) error {
	if !r.IsOwner(actorID) {
		return ErrNotOwner
	}
	if !r.status.Allows(ActionExtend) {
		return ErrInvalidTransition
	}
	if !newExpiresAt.After(now) {
		return ErrExpiryInPast
	}
	if !newExpiresAt.After(r.expiresAt) {
		return ErrExpiryNotExtended
	}
	if err := r.apply(ActionExtend, now); err != nil {
		return err
	}
	r.expiresAt = newExpiresAt
	return nil
}

func (r *Request) Cancel(actorID uuid.UUID, now time.Time) error {
	if !r.IsOwner(actorID) {
		return ErrNotOwner
	}
	if err := r.apply(ActionCancel, now); err != nil {
		return err
	}
	r.cancelledAt = &now
	return nil
}

// Close completes an accepted request. Either party may close it.
func (r *Request) Close(actorID uuid.UUID, now time.Time) error {
	if !r.IsParty(actorID) {
		return ErrNotParty
	}
	if err := r.apply(ActionClose, now); err != nil {
		return err
	}
	r.completedAt = &now
	return nil
}

// Counterpart returns the other side of the deal for a rating given by
// raterID.
func (r *Request) Counterpart(raterID uuid.UUID) (uuid.UUID, error) {
	switch {
	case r.IsOwner(raterID) && r.acceptedVisitorID != nil:
		return *r.acceptedVisitorID, nil
	case r.IsAcceptedVisitor(raterID):
		return r.supplierID, nil
	default:
		return uuid.Nil, ErrNotParty
	}
}

func (r *Request) ID() uuid.UUID                 { return r.id }
func (r *Request) SupplierID() uuid.UUID         { return r.supplierID }
func (r *Request) Details() Details              { return r.details }
func (r *Request) Status() Status                { return r.status }
func (r *Request) ExpiresAt() time.Time          { return r.expiresAt }
func (r *Request) AcceptedVisitorID() *uuid.UUID { return r.acceptedVisitorID }
func (r *Request) AcceptedAt() *time.Time        { return r.acceptedAt }
func (r *Request) CompletedAt() *time.Time       { return r.completedAt }
func (r *Request) CancelledAt() *time.Time       { return r.cancelledAt }
func (r *Request) CreatedAt() time.Time          { return r.createdAt }
func (r *Request) UpdatedAt() time.Time          { return r.updatedAt }
