package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

// lockedMutation is run with the request row locked and lazy expiry already
// applied.
type lockedMutation func(ctx context.Context, tx shared.Tx, req *matching.Request) error

// mutateRequest locks the request, runs authorize, then applies lazy expiry.
// An overdue request is flipped to expired and the flip is committed before
// the caller sees matching.ErrRequestExpired.
func mutateRequest(
	ctx context.Context,
	uow shared.UnitOfWork,
	requestID uuid.UUID,
	now time.Time,
	authorize func(req *matching.Request) error,
	fn lockedMutation,
) error {
	var deferred error
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		deferred = nil

		req, err := findForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if authorize != nil {
			if err := authorize(req); err != nil {
				return err
			}
		}

		expired, err := expireIfDue(ctx, tx, req, now)
		if err != nil {
			return err
		}
		if expired {
			deferred = matching.ErrRequestExpired
			return nil
		}
		return fn(ctx, tx, req)
	})
	if err != nil {
		return err
	}
	return deferred
}

func findForUpdate(ctx context.Context, tx shared.Tx, requestID uuid.UUID) (*matching.Request, error) {
	req, err := tx.Requests().FindForUpdate(ctx, tx.DB(), requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, matching.ErrRequestNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return req, nil
}

// expireIfDue persists a lazy expiry flip and queues its notification.
func expireIfDue(ctx context.Context, tx shared.Tx, req *matching.Request, now time.Time) (bool, error) {
	if !req.ExpireIfDue(now) {
		return false, nil
	}
	if err := saveRequest(ctx, tx, req); err != nil {
		return false, err
	}
	if err := enqueue(ctx, tx, matching.TopicRequestExpired, newRequestEvent(req, now)); err != nil {
		return false, err
	}
	return true, nil
}

func saveRequest(ctx context.Context, tx shared.Tx, req *matching.Request) error {
	if err := tx.Requests().Save(ctx, tx.DB(), req); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return matching.ErrRequestNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// activateRequest moves a pending request to active. Anything else is left
// alone.
func activateRequest(ctx context.Context, tx shared.Tx, requestID uuid.UUID, now time.Time) error {
	req, err := findForUpdate(ctx, tx, requestID)
	if err != nil {
		return err
	}
	expired, err := expireIfDue(ctx, tx, req, now)
	if err != nil || expired {
		return err
	}
	if req.Status() != matching.StatusPending {
		return nil
	}
	if err := req.Activate(now); err != nil {
		return err
	}
	return saveRequest(ctx, tx, req)
}

func newRequestEvent(req *matching.Request, now time.Time) RequestEvent {
	return RequestEvent{
		RequestID:  req.ID(),
		SupplierID: req.SupplierID(),
		VisitorID:  req.AcceptedVisitorID(),
		Status:     req.Status().String(),
		At:         now,
	}
}

func enqueue(ctx context.Context, tx shared.Tx, topic string, event RequestEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "failed to encode notification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, tx.DB(), matching.NotificationKind, topic, payload, event.At); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func ownerOnly(actorID uuid.UUID) func(req *matching.Request) error {
	return func(req *matching.Request) error {
		if !req.IsOwner(actorID) {
			return matching.ErrNotOwner
		}
		return nil
	}
}

func partyOnly(actorID uuid.UUID) func(req *matching.Request) error {
	return func(req *matching.Request) error {
		if !req.IsParty(actorID) {
			return matching.ErrNotParty
		}
		return nil
	}
}
