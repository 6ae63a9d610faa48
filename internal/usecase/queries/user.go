package queries

import (
	"context"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound = errs.Sentinel("user not found", errs.ErrNotFound)
	ErrUserInactive = errs.Sentinel("user inactive", errs.ErrForbidden)
)

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type userQueriesImpl struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &userQueriesImpl{users: users}
}

// GetCurrentUser loads the account behind a session. A deactivated account
// keeps its token valid until expiry but can no longer see itself.
func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.users.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		return nil, err
	case !view.IsActive:
		return nil, ErrUserInactive
	}
	return view, nil
}
