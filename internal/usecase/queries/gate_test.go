//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/infra"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"
	"github.com/Hunterii1/asl-market-sub001/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGateQueries(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	clk := clock.NewMockClock(now)
	supplier, visitor, stranger := uuid.New(), uuid.New(), uuid.New()

	setup := func(req *matching.Request) (*mockRequestStore, *mockRatingStore, queries.GateQueries) {
		requests := &mockRequestStore{}
		ratings := &mockRatingStore{}
		requests.On("ExpireIfDue", mock.Anything, req.ID(), now).Return(nil)
		requests.On("FindByID", mock.Anything, req.ID()).Return(req, nil)
		return requests, ratings, queries.NewGateQueries(requests, ratings, clk)
	}

	t.Run("chat is open only while accepted", func(t *testing.T) {
		accepted := builder.NewMatchingRequestBuilder().WithSupplier(supplier).AcceptedBy(visitor).BuildDomain()
		_, _, gate := setup(accepted)

		for id, want := range map[uuid.UUID]bool{supplier: true, visitor: true, stranger: false} {
			ok, err := gate.CanChat(ctx, accepted.ID(), id)
			require.NoError(t, err)
			assert.Equal(t, want, ok)
		}

		done := builder.NewMatchingRequestBuilder().WithSupplier(supplier).AcceptedBy(visitor).WithStatus(matching.StatusCompleted).BuildDomain()
		_, _, gate = setup(done)
		ok, err := gate.CanChat(ctx, done.ID(), visitor)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("rating open for parties that have not rated", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithSupplier(supplier).AcceptedBy(visitor).BuildDomain()
		_, ratings, gate := setup(req)
		ratings.On("HasRated", mock.Anything, req.ID(), visitor).Return(false, nil)
		ratings.On("HasRated", mock.Anything, req.ID(), supplier).Return(true, nil)

		ok, err := gate.CanRate(ctx, req.ID(), visitor)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = gate.CanRate(ctx, req.ID(), supplier)
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = gate.CanRate(ctx, req.ID(), stranger)
		require.NoError(t, err)
		assert.False(t, ok)
		ratings.AssertNotCalled(t, "HasRated", mock.Anything, req.ID(), stranger)
	})

	t.Run("rating closed while the request is open", func(t *testing.T) {
		req := builder.NewMatchingRequestBuilder().WithSupplier(supplier).BuildDomain()
		_, ratings, gate := setup(req)

		ok, err := gate.CanRate(ctx, req.ID(), supplier)
		require.NoError(t, err)
		assert.False(t, ok)
		ratings.AssertNotCalled(t, "HasRated", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown request", func(t *testing.T) {
		requests := &mockRequestStore{}
		id := uuid.New()
		requests.On("ExpireIfDue", mock.Anything, id, now).Return(nil)
		requests.On("FindByID", mock.Anything, id).Return(nil, infra.WrapRepoErr("not found", nil, infra.KindNotFound))
		gate := queries.NewGateQueries(requests, &mockRatingStore{}, clk)

		_, err := gate.CanChat(ctx, id, visitor)
		assert.ErrorIs(t, err, matching.ErrRequestNotFound)
		_, err = gate.CanRate(ctx, id, visitor)
		assert.ErrorIs(t, err, matching.ErrRequestNotFound)
	})
}
