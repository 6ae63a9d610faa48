package commands

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/capacity"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type RespondResult struct {
	ResponseID uuid.UUID
	Accepted   bool
	IsReplayed bool
}

type ResponseCommands interface {
	Respond(ctx context.Context, requestID, visitorID uuid.UUID, req reqdto.RespondRequest, idempotencyKey *uuid.UUID) (*RespondResult, error)
}

type responseCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy Policy
}

func NewResponseCommands(uow shared.UnitOfWork, clk clock.Clock, policy Policy) ResponseCommands {
	return &responseCommandsImpl{uow: uow, clock: clk, policy: policy}
}

// respondPayload is what the idempotency hash covers: the same body sent to
// a different request is a different operation.
type respondPayload struct {
	RequestID uuid.UUID             `json:"request_id"`
	Body      reqdto.RespondRequest `json:"body"`
}

func (r *responseCommandsImpl) Respond(
	ctx context.Context,
	requestID, visitorID uuid.UUID,
	req reqdto.RespondRequest,
	idempotencyKey *uuid.UUID,
) (*RespondResult, error) {
	now := r.clock.Now()

	kind, err := response.ParseType(req.ResponseType)
	if err != nil {
		return nil, err
	}
	if err := r.requireVisitor(ctx, visitorID); err != nil {
		return nil, err
	}

	var result *RespondResult
	var deferred error
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result, deferred = nil, nil

		entity, err := findForUpdate(ctx, tx, requestID)
		if err != nil {
			return err
		}

		var key *shared.IdempotencyRecord
		var replayed *uuid.UUID
		if idempotencyKey != nil {
			key = &shared.IdempotencyRecord{
				Key:         *idempotencyKey,
				UserID:      visitorID,
				Endpoint:    endpointRespond,
				RequestHash: calculateRequestHash(respondPayload{RequestID: requestID, Body: req}),
				ExpiresAt:   now.Add(r.policy.IdempotencyTTL),
			}
			// A completed key answers with its stored result even past the deadline.
			if replayed, err = completedResult(ctx, tx, *key, now); err != nil {
				return err
			}
		}

		expired, err := expireIfDue(ctx, tx, entity, now)
		if err != nil {
			return err
		}
		if replayed != nil {
			result = replayResult(*replayed, kind)
			return nil
		}
		if expired {
			deferred = matching.ErrRequestExpired
			return nil
		}

		if key != nil {
			if replayed, err = claimIdempotencyKey(ctx, tx, *key, now); err != nil {
				return err
			}
			if replayed != nil {
				result = replayResult(*replayed, kind)
				return nil
			}
		}

		if err := entity.CheckRespondable(now); err != nil {
			return err
		}

		previous, err := tx.Responses().FindByVisitor(ctx, tx.DB(), requestID, visitorID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !response.AllowsResubmission(previous, r.policy.AllowResubmission) {
			return response.ErrAlreadyResponded
		}

		resp, err := response.NewResponse(requestID, visitorID, kind, req.Message, now)
		if err != nil {
			return err
		}

		if resp.IsAcceptance() {
			if err := r.checkCapacity(ctx, tx, visitorID, now); err != nil {
				return err
			}
			if err := entity.Accept(visitorID, now); err != nil {
				return err
			}
			if err := saveRequest(ctx, tx, entity); err != nil {
				return err
			}
		}

		id, err := tx.Responses().Create(ctx, tx.DB(), resp)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) && infra.ConstraintOf(err) == repository.ConstraintOneAcceptance {
				return matching.ErrRequestAlreadyTaken
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := tx.Exposures().Record(ctx, tx.DB(), requestID, visitorID, shared.ExposureResponse, now); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		event := newRequestEvent(entity, now)
		event.VisitorID = &visitorID
		event.Response = kind.String()
		if err := enqueue(ctx, tx, matching.TopicResponseReceived, event); err != nil {
			return err
		}
		if resp.IsAcceptance() {
			if err := enqueue(ctx, tx, matching.TopicRequestAccepted, newRequestEvent(entity, now)); err != nil {
				return err
			}
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, tx.DB(), *idempotencyKey, visitorID, id, now); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &RespondResult{ResponseID: id, Accepted: resp.IsAcceptance()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if deferred != nil {
		return nil, deferred
	}
	return result, nil
}

func replayResult(id uuid.UUID, kind response.Type) *RespondResult {
	return &RespondResult{ResponseID: id, Accepted: kind == response.TypeAccepted, IsReplayed: true}
}

// checkCapacity locks the visitor row so two acceptances by the same visitor
// on different requests cannot both pass the count.
func (r *responseCommandsImpl) checkCapacity(ctx context.Context, tx shared.Tx, visitorID uuid.UUID, now time.Time) error {
	if !r.policy.EnforceCapacity {
		return nil
	}
	if _, err := tx.Users().LockForUpdate(ctx, tx.DB(), visitorID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.ErrNotVisitor
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	active, err := tx.Requests().CountActiveAccepted(ctx, tx.DB(), visitorID, now)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return capacity.NewRecord(visitorID, active, r.policy.VisitorCapacity).CheckAccept()
}

func (r *responseCommandsImpl) requireVisitor(ctx context.Context, visitorID uuid.UUID) error {
	actor, err := r.uow.CommandReads().UserByID(ctx, visitorID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.ErrNotVisitor
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !actor.CanRespond() {
		return user.ErrNotVisitor
	}
	return nil
}
