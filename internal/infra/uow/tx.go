package uow

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository/converter"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
)

// pgTx hands out repositories bound to one transaction. Repositories are
// stateless, so building them per call is cheap.
type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries
}

func (t *pgTx) DB() sqlc.DBTX { return t.dbtx }

func (t *pgTx) Requests() shared.MatchingRequestRepository {
	return repository.NewMatchingRequestRepository(t.q)
}

func (t *pgTx) Responses() shared.ResponseRepository { return repository.NewResponseRepository(t.q) }
func (t *pgTx) Ratings() shared.RatingRepository     { return repository.NewRatingRepository(t.q) }
func (t *pgTx) Exposures() shared.ExposureRepository { return repository.NewExposureRepository(t.q) }
func (t *pgTx) Users() shared.UserRepository         { return repository.NewUserRepository(t.q) }

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	return repository.NewIdempotencyRepository(t.q)
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	return repository.NewNotificationRepository(t.q)
}

// commandReads serves lookups a command makes before it opens a transaction,
// such as resolving the actor.
type commandReads struct {
	q    *sqlc.Queries
	dbtx sqlc.DBTX
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*user.User, error) {
	row, err := r.q.GetUserByEmail(ctx, r.dbtx, email)
	return userRow(row, err, "email")
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.q.GetUserByID(ctx, r.dbtx, id)
	return userRow(row, err, "id")
}

func userRow(row *sqlc.User, err error, by string) (*user.User, error) {
	switch {
	case pgconv.IsNoRows(err):
		return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
	case err != nil:
		return nil, infra.WrapRepoErr("failed to find user by "+by, err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return u, nil
}
