package commands

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateMatchingRequestResult struct {
	RequestID  uuid.UUID
	IsReplayed bool
}

type MatchingCommands interface {
	Create(ctx context.Context, supplierID uuid.UUID, req reqdto.CreateMatchingRequestRequest, idempotencyKey *uuid.UUID) (*CreateMatchingRequestResult, error)
	Update(ctx context.Context, requestID, supplierID uuid.UUID, req reqdto.UpdateMatchingRequestRequest) error
	Cancel(ctx context.Context, requestID, supplierID uuid.UUID) error
	Close(ctx context.Context, requestID, actorID uuid.UUID) error
	Extend(ctx context.Context, requestID, supplierID uuid.UUID, newExpiresAt time.Time) error
	Activate(ctx context.Context, requestID uuid.UUID) error
}

type matchingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy Policy
}

func NewMatchingCommands(uow shared.UnitOfWork, clk clock.Clock, policy Policy) MatchingCommands {
	return &matchingCommandsImpl{uow: uow, clock: clk, policy: policy}
}

func (m *matchingCommandsImpl) Create(
	ctx context.Context,
	supplierID uuid.UUID,
	req reqdto.CreateMatchingRequestRequest,
	idempotencyKey *uuid.UUID,
) (*CreateMatchingRequestResult, error) {
	now := m.clock.Now()

	if err := m.requireSupplier(ctx, supplierID); err != nil {
		return nil, err
	}

	details, err := req.ToDomain()
	if err != nil {
		return nil, err
	}
	entity, err := matching.NewRequest(supplierID, details, req.ExpiresAt, now)
	if err != nil {
		return nil, err
	}

	var result *CreateMatchingRequestResult
	err = m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil

		if idempotencyKey != nil {
			replayed, err := claimIdempotencyKey(ctx, tx, shared.IdempotencyRecord{
				Key:         *idempotencyKey,
				UserID:      supplierID,
				Endpoint:    endpointCreateRequest,
				RequestHash: calculateRequestHash(req),
				ExpiresAt:   now.Add(m.policy.IdempotencyTTL),
			}, now)
			if err != nil {
				return err
			}
			if replayed != nil {
				result = &CreateMatchingRequestResult{RequestID: *replayed, IsReplayed: true}
				return nil
			}
		}

		id, err := tx.Requests().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		if err := enqueue(ctx, tx, matching.TopicRequestCreated, newRequestEvent(entity, now)); err != nil {
			return err
		}

		if idempotencyKey != nil {
			if err := tx.Idempotency().Complete(ctx, tx.DB(), *idempotencyKey, supplierID, id, now); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &CreateMatchingRequestResult{RequestID: id}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (m *matchingCommandsImpl) Update(
	ctx context.Context,
	requestID, supplierID uuid.UUID,
	req reqdto.UpdateMatchingRequestRequest,
) error {
	now := m.clock.Now()
	return mutateRequest(ctx, m.uow, requestID, now, ownerOnly(supplierID),
		func(ctx context.Context, tx shared.Tx, entity *matching.Request) error {
			details, err := req.ToDomain(entity.Details())
			if err != nil {
				return err
			}
			if err := entity.UpdateDetails(supplierID, details, now); err != nil {
				return err
			}
			return saveRequest(ctx, tx, entity)
		})
}

func (m *matchingCommandsImpl) Cancel(ctx context.Context, requestID, supplierID uuid.UUID) error {
	now := m.clock.Now()
	return mutateRequest(ctx, m.uow, requestID, now, ownerOnly(supplierID),
		func(ctx context.Context, tx shared.Tx, entity *matching.Request) error {
			if err := entity.Cancel(supplierID, now); err != nil {
				return err
			}
			if err := saveRequest(ctx, tx, entity); err != nil {
				return err
			}
			return enqueue(ctx, tx, matching.TopicRequestCancelled, newRequestEvent(entity, now))
		})
}

func (m *matchingCommandsImpl) Close(ctx context.Context, requestID, actorID uuid.UUID) error {
	now := m.clock.Now()
	return mutateRequest(ctx, m.uow, requestID, now, partyOnly(actorID),
		func(ctx context.Context, tx shared.Tx, entity *matching.Request) error {
			if err := entity.Close(actorID, now); err != nil {
				return err
			}
			if err := saveRequest(ctx, tx, entity); err != nil {
				return err
			}
			return enqueue(ctx, tx, matching.TopicRequestCompleted, newRequestEvent(entity, now))
		})
}

func (m *matchingCommandsImpl) Extend(ctx context.Context, requestID, supplierID uuid.UUID, newExpiresAt time.Time) error {
	now := m.clock.Now()
	return mutateRequest(ctx, m.uow, requestID, now, ownerOnly(supplierID),
		func(ctx context.Context, tx shared.Tx, entity *matching.Request) error {
			if err := entity.Extend(supplierID, newExpiresAt, now); err != nil {
				return err
			}
			return saveRequest(ctx, tx, entity)
		})
}

func (m *matchingCommandsImpl) Activate(ctx context.Context, requestID uuid.UUID) error {
	now := m.clock.Now()
	return m.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return activateRequest(ctx, tx, requestID, now)
	})
}

func (m *matchingCommandsImpl) requireSupplier(ctx context.Context, supplierID uuid.UUID) error {
	actor, err := m.uow.CommandReads().UserByID(ctx, supplierID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return user.ErrNotSupplier
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !actor.CanPostRequests() {
		return user.ErrNotSupplier
	}
	return nil
}
