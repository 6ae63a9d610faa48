package shared

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/rating"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/response"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Requests() MatchingRequestRepository
	Responses() ResponseRepository
	Ratings() RatingRepository
	Exposures() ExposureRepository
	Users() UserRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	DB() sqlc.DBTX
}

type CommandReads interface {
	UserByEmail(ctx context.Context, email string) (*user.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (*user.User, error)
}

type MatchingRequestRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, req *matching.Request) (uuid.UUID, error)
	// FindForUpdate loads the request and holds its row lock until the
	// transaction ends.
	FindForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*matching.Request, error)
	Save(ctx context.Context, tx sqlc.DBTX, req *matching.Request) error
	CountActiveAccepted(ctx context.Context, tx sqlc.DBTX, visitorID uuid.UUID, now time.Time) (int, error)
	ExpireOverdue(ctx context.Context, tx sqlc.DBTX, now time.Time, batchSize int) ([]ExpiredRequest, error)
}

type ResponseRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, resp *response.Response) (uuid.UUID, error)
	// FindByVisitor returns the visitor's latest response, or nil when there is none.
	FindByVisitor(ctx context.Context, tx sqlc.DBTX, requestID, visitorID uuid.UUID) (*response.Response, error)
}

type RatingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, r *rating.Rating) (uuid.UUID, error)
	// FindByRater returns nil when raterID has not rated the request yet.
	FindByRater(ctx context.Context, tx sqlc.DBTX, requestID, raterID uuid.UUID) (*rating.Rating, error)
}

type ExposureRepository interface {
	Record(ctx context.Context, tx sqlc.DBTX, requestID, visitorID uuid.UUID, source ExposureSource, at time.Time) error
}

type UserRepository interface {
	LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error
}

type IdempotencyRepository interface {
	// TryInsert reports false when the key already exists for the user.
	TryInsert(ctx context.Context, tx sqlc.DBTX, rec IdempotencyRecord, now time.Time) (bool, error)
	Get(ctx context.Context, tx sqlc.DBTX, key, userID uuid.UUID) (*IdempotencyRecord, error)
	// ClaimExpired takes over a key whose previous use has expired.
	ClaimExpired(ctx context.Context, tx sqlc.DBTX, rec IdempotencyRecord, now time.Time) (bool, error)
	Complete(ctx context.Context, tx sqlc.DBTX, key, userID, resultID uuid.UUID, now time.Time) error
	DeleteExpired(ctx context.Context, tx sqlc.DBTX, now time.Time) (int64, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, now time.Time) error
	Reschedule(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, runAt time.Time, lastErr string, now time.Time) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, now time.Time) error
}
