//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/domain/user"
	"github.com/Hunterii1/asl-market-sub001/internal/pkg/clock"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"
	"github.com/Hunterii1/asl-market-sub001/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type matchingStores struct {
	requests  *mockRequestStore
	responses *mockResponseStore
	ratings   *mockRatingStore
	users     *mockUserStore
}

func newMatchingQueries(clk clock.Clock) (*matchingStores, queries.MatchingQueries) {
	s := &matchingStores{
		requests:  &mockRequestStore{},
		responses: &mockResponseStore{},
		ratings:   &mockRatingStore{},
		users:     &mockUserStore{},
	}
	return s, queries.NewMatchingQueries(s.requests, s.responses, s.ratings, s.users, clk)
}

func (s *matchingStores) serve(req *matching.Request, now time.Time) {
	s.requests.On("ExpireIfDue", mock.Anything, req.ID(), now).Return(nil)
	s.requests.On("FindByID", mock.Anything, req.ID()).Return(req, nil)
	s.requests.On("CountExposures", mock.Anything, []uuid.UUID{req.ID()}).Return(map[uuid.UUID]int{req.ID(): 3}, nil)
}

func TestMatchingQueries_GetDetail(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	clk := clock.NewMockClock(now)
	supplierID := uuid.New()
	visitor := builder.NewUserBuilder().AsVisitor()
	viewer := queries.Viewer{ID: visitor.ID, Role: user.RoleVisitor}

	t.Run("owner sees responses", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		req := builder.NewMatchingRequestBuilder().WithSupplier(supplierID).BuildDomain()
		stores.serve(req, now)
		responses := []*queries.ResponseView{{ID: uuid.New(), RequestID: req.ID(), ResponseType: "question"}}
		stores.responses.On("ListByRequest", mock.Anything, req.ID()).Return(responses, nil)

		detail, err := q.GetDetail(ctx, req.ID(), queries.Viewer{ID: supplierID, Role: user.RoleSupplier})
		require.NoError(t, err)
		assert.Equal(t, responses, detail.Responses)
		assert.Equal(t, 3, detail.Request.MatchedVisitorCount)
		assert.False(t, detail.CanChat)
		assert.False(t, detail.CanRate)
		stores.requests.AssertNotCalled(t, "RecordExposures", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("visitor browsing an open request is counted", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		req := builder.NewMatchingRequestBuilder().WithSupplier(supplierID).BuildDomain()
		stores.serve(req, now)
		stores.responses.On("FindByVisitor", mock.Anything, req.ID(), visitor.ID).Return(nil, nil)
		stores.users.On("FindByID", mock.Anything, visitor.ID).Return(visitor.BuildReadModel(), nil)
		stores.requests.On("RecordExposures", mock.Anything, []uuid.UUID{req.ID()}, visitor.ID, shared.ExposureDetail, now).Return(nil)

		detail, err := q.GetDetail(ctx, req.ID(), viewer)
		require.NoError(t, err)
		assert.Nil(t, detail.Responses)
		assert.Nil(t, detail.MyResponse)
		stores.requests.AssertExpectations(t)
	})

	t.Run("visitor cannot see a request taken by someone else", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		req := builder.NewMatchingRequestBuilder().WithSupplier(supplierID).AcceptedBy(uuid.New()).BuildDomain()
		stores.serve(req, now)
		stores.responses.On("FindByVisitor", mock.Anything, req.ID(), visitor.ID).Return(nil, nil)

		_, err := q.GetDetail(ctx, req.ID(), viewer)
		assert.ErrorIs(t, err, matching.ErrRequestNotFound)
	})

	t.Run("accepted visitor can chat and rate", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		req := builder.NewMatchingRequestBuilder().WithSupplier(supplierID).AcceptedBy(visitor.ID).BuildDomain()
		stores.serve(req, now)
		mine := &queries.ResponseView{ID: uuid.New(), RequestID: req.ID(), VisitorID: visitor.ID, ResponseType: "accepted"}
		stores.responses.On("FindByVisitor", mock.Anything, req.ID(), visitor.ID).Return(mine, nil)
		stores.ratings.On("HasRated", mock.Anything, req.ID(), visitor.ID).Return(false, nil)

		detail, err := q.GetDetail(ctx, req.ID(), viewer)
		require.NoError(t, err)
		assert.Equal(t, mine, detail.MyResponse)
		assert.True(t, detail.CanChat)
		assert.True(t, detail.CanRate)
	})

	t.Run("other suppliers get not found", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		req := builder.NewMatchingRequestBuilder().WithSupplier(supplierID).BuildDomain()
		stores.serve(req, now)

		_, err := q.GetDetail(ctx, req.ID(), queries.Viewer{ID: uuid.New(), Role: user.RoleSupplier})
		assert.ErrorIs(t, err, matching.ErrRequestNotFound)
	})
}

func TestMatchingQueries_ListAvailable(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	clk := clock.NewMockClock(now)
	visitor := builder.NewUserBuilder().AsVisitor()
	viewer := queries.Viewer{ID: visitor.ID, Role: user.RoleVisitor}

	t.Run("records feed exposure for the page served", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		rows := []*matching.Request{
			builder.NewMatchingRequestBuilder().BuildDomain(),
			builder.NewMatchingRequestBuilder().BuildDomain(),
			builder.NewMatchingRequestBuilder().BuildDomain(),
		}
		page := []uuid.UUID{rows[0].ID(), rows[1].ID()}
		stores.users.On("FindByID", mock.Anything, visitor.ID).Return(visitor.BuildReadModel(), nil)
		stores.requests.On("ListAvailable", mock.Anything, now, (*queries.Keyset)(nil), int32(3)).Return(rows, nil)
		stores.requests.On("RecordExposures", mock.Anything, page, visitor.ID, shared.ExposureFeed, now).Return(nil)
		stores.requests.On("CountExposures", mock.Anything, page).Return(map[uuid.UUID]int{rows[0].ID(): 1}, nil)

		views, next, err := q.ListAvailable(ctx, viewer, nil, 2)
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.NotNil(t, next)
		assert.Equal(t, 1, views[0].MatchedVisitorCount)
		assert.Equal(t, 0, views[1].MatchedVisitorCount)
		stores.requests.AssertExpectations(t)
	})

	t.Run("unapproved visitors are refused", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		pending := builder.NewUserBuilder().AsVisitor().AsUnapproved()
		stores.users.On("FindByID", mock.Anything, pending.ID).Return(pending.BuildReadModel(), nil)

		_, _, err := q.ListAvailable(ctx, queries.Viewer{ID: pending.ID, Role: user.RoleVisitor}, nil, 10)
		assert.ErrorIs(t, err, user.ErrNotVisitor)
	})
}

func TestMatchingQueries_ListMine(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)
	clk := clock.NewMockClock(now)
	supplierID := uuid.New()

	t.Run("expires overdue rows before listing", func(t *testing.T) {
		stores, q := newMatchingQueries(clk)
		status := matching.StatusActive
		row := builder.NewMatchingRequestBuilder().WithSupplier(supplierID).BuildDomain()
		stores.requests.On("ExpireOverdueBySupplier", mock.Anything, supplierID, now).Return(nil).Once()
		stores.requests.On("ListBySupplier", mock.Anything, supplierID, &status, (*queries.Keyset)(nil), int32(21)).
			Return([]*matching.Request{row}, nil).Once()
		stores.requests.On("CountExposures", mock.Anything, []uuid.UUID{row.ID()}).Return(map[uuid.UUID]int{}, nil)

		filter := "active"
		views, next, err := q.ListMine(ctx, supplierID, &filter, nil, 0)
		require.NoError(t, err)
		assert.Nil(t, next)
		require.Len(t, views, 1)
		assert.Equal(t, row.ID(), views[0].ID)
		stores.requests.AssertExpectations(t)
	})

	t.Run("unknown status filter", func(t *testing.T) {
		_, q := newMatchingQueries(clk)
		filter := "archived"
		_, _, err := q.ListMine(ctx, supplierID, &filter, nil, 0)
		assert.ErrorIs(t, err, matching.ErrInvalidStatus)
	})
}
