package readstore

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	sqlc "github.com/Hunterii1/asl-market-sub001/internal/infra/sqlc/generated"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/pgconv"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (*sqlc.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return toAuthorizedUserView(row), nil
}

func toAuthorizedUserView(row *sqlc.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:         row.ID,
		Email:      row.Email,
		FullName:   row.FullName,
		Role:       row.Role,
		Country:    pgconv.StringPtrFromPgtype(row.Country),
		IsActive:   row.IsActive,
		IsApproved: row.IsApproved,
		LastLogin:  pgconv.TimePtrFromPgtype(row.LastLogin),
	}
}
