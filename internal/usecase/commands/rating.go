package commands

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/rating"
	reqdto "github.com/Hunterii1/asl-market-sub001/internal/handler/dto/request"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubmitRatingResult struct {
	RatingID uuid.UUID
	RatedID  uuid.UUID
}

type RatingCommands interface {
	Submit(ctx context.Context, requestID, raterID uuid.UUID, req reqdto.SubmitRatingRequest) (*SubmitRatingResult, error)
}

type ratingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewRatingCommands(uow shared.UnitOfWork, clk clock.Clock) RatingCommands {
	return &ratingCommandsImpl{uow: uow, clock: clk}
}

func (r *ratingCommandsImpl) Submit(
	ctx context.Context,
	requestID, raterID uuid.UUID,
	req reqdto.SubmitRatingRequest,
) (*SubmitRatingResult, error) {
	now := r.clock.Now()

	score, err := rating.NewScore(req.Rating)
	if err != nil {
		return nil, err
	}

	var result *SubmitRatingResult
	err = mutateRequest(ctx, r.uow, requestID, now, partyOnly(raterID),
		func(ctx context.Context, tx shared.Tx, entity *matching.Request) error {
			result = nil

			if !entity.RatingOpen() {
				return rating.ErrRatingNotOpen
			}

			existing, err := tx.Ratings().FindByRater(ctx, tx.DB(), requestID, raterID)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if existing != nil {
				return rating.ErrAlreadyRated
			}

			ratedID, err := entity.Counterpart(raterID)
			if err != nil {
				return err
			}
			role := rating.RaterVisitor
			if entity.IsOwner(raterID) {
				role = rating.RaterSupplier
			}

			entry, err := rating.NewRating(requestID, raterID, role, ratedID, score, req.Comment, now)
			if err != nil {
				return err
			}
			id, err := tx.Ratings().Create(ctx, tx.DB(), entry)
			if err != nil {
				if infra.IsKind(err, infra.KindDuplicateKey) {
					return rating.ErrAlreadyRated
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			event := newRequestEvent(entity, now)
			event.Score = score.Value()
			if err := enqueue(ctx, tx, matching.TopicRatingSubmitted, event); err != nil {
				return err
			}

			result = &SubmitRatingResult{RatingID: id, RatedID: ratedID}
			return nil
		})
	if err != nil {
		return nil, err
	}
	return result, nil
}
