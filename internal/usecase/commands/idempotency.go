package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrIdempotencyCheckFailed = errs.New("idempotency check failed")

const (
	endpointCreateRequest = "POST /matching/requests"
	endpointRespond       = "POST /matching/requests/:id/respond"
)

// claimIdempotencyKey registers key for the current transaction. It returns
// the stored result id when the key was already completed with the same
// payload, nil when the caller should go ahead.
func claimIdempotencyKey(ctx context.Context, tx shared.Tx, rec shared.IdempotencyRecord, now time.Time) (*uuid.UUID, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), rec, now)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	existing, err := tx.Idempotency().Get(ctx, tx.DB(), rec.Key, rec.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}

	if existing.ExpiresAt.Before(now) {
		claimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), rec, now)
		if err != nil {
			return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
		}
		if !claimed {
			return nil, errs.ErrIdempotencyInProgress
		}
		return nil, nil
	}

	if existing.Endpoint != rec.Endpoint || existing.RequestHash != rec.RequestHash {
		return nil, errs.ErrIdempotencyKeyReused
	}

	switch existing.Status {
	case shared.IdempotencyCompleted:
		if existing.ResultID == nil {
			return nil, errs.New("completed idempotency key has no result")
		}
		return existing.ResultID, nil
	case shared.IdempotencyProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.Newf("invalid idempotency key status %q", existing.Status)
	}
}

// completedResult looks key up without claiming it and returns the stored
// result id only for a live, completed key with the same payload.
func completedResult(ctx context.Context, tx shared.Tx, rec shared.IdempotencyRecord, now time.Time) (*uuid.UUID, error) {
	existing, err := tx.Idempotency().Get(ctx, tx.DB(), rec.Key, rec.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, errs.Mark(err, ErrIdempotencyCheckFailed)
	}
	switch {
	case existing.Status != shared.IdempotencyCompleted, existing.ResultID == nil:
		return nil, nil
	case existing.ExpiresAt.Before(now):
		return nil, nil
	case existing.Endpoint != rec.Endpoint || existing.RequestHash != rec.RequestHash:
		return nil, nil
	}
	return existing.ResultID, nil
}

func calculateRequestHash(v any) string {
	data, _ := json.Marshal(v)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
