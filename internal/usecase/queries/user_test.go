//go:build unit

package queries_test

import (
	"context"
	"testing"

	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/errs"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserQueries_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	tests := []struct {
		name    string
		view    *queries.AuthorizedUserView
		err     error
		wantErr error
	}{
		{name: "active user", view: &queries.AuthorizedUserView{ID: id, Email: "a@example.com", IsActive: true}},
		{name: "inactive user", view: &queries.AuthorizedUserView{ID: id, IsActive: false}, wantErr: queries.ErrUserInactive},
		{name: "missing row", err: infra.WrapRepoErr("user not found", errs.New("no rows"), infra.KindNotFound), wantErr: queries.ErrUserNotFound},
		{name: "store failure passes through", err: errs.ErrDatabaseOperationFailed, wantErr: errs.ErrDatabaseOperationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockUserStore{}
			store.On("FindByID", ctx, id).Return(tt.view, tt.err)

			got, err := queries.NewUserQueries(store).GetCurrentUser(ctx, id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.view, got)
			store.AssertExpectations(t)
		})
	}
}

func TestUserErrorCategories(t *testing.T) {
	assert.True(t, errs.Is(queries.ErrUserNotFound, errs.ErrNotFound))
	assert.True(t, errs.Is(queries.ErrUserInactive, errs.ErrForbidden))
}
