package repository

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/infra/repository/converter"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (uuid.UUID, error)
	GetUserForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*sqlc.User, error)
	UpdateUserLastLogin(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateUserLastLoginParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

// Create inserts an account. A taken email surfaces as KindDuplicateKey.
func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) error {
	if _, err := r.queries.CreateUser(ctx, tx, converter.UserToCreateParams(u)); err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

// LockForUpdate takes a row lock on the user. Acceptance uses it to serialize
// capacity checks per visitor.
func (r *UserRepository) LockForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserForUpdate(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}
	u, err := converter.UserFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return u, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID, at time.Time) error {
	n, err := r.queries.UpdateUserLastLogin(ctx, tx, sqlc.UpdateUserLastLoginParams{
		ID:        userID,
		LastLogin: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
