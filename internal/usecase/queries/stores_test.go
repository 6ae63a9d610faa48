//go:build unit

package queries_test

import (
	"context"
	"time"

	"github.com/Hunterii1/asl-market-sub001/internal/domain/matching"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/queries"
	"github.com/Hunterii1/asl-market-sub001/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type mockRequestStore struct{ mock.Mock }

func (m *mockRequestStore) ExpireIfDue(ctx context.Context, id uuid.UUID, now time.Time) error {
	return m.Called(ctx, id, now).Error(0)
}

func (m *mockRequestStore) ExpireOverdueBySupplier(ctx context.Context, supplierID uuid.UUID, now time.Time) error {
	return m.Called(ctx, supplierID, now).Error(0)
}

func (m *mockRequestStore) FindByID(ctx context.Context, id uuid.UUID) (*matching.Request, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*matching.Request), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRequestStore) ListBySupplier(ctx context.Context, supplierID uuid.UUID, status *matching.Status, after *queries.Keyset, limit int32) ([]*matching.Request, error) {
	args := m.Called(ctx, supplierID, status, after, limit)
	return args.Get(0).([]*matching.Request), args.Error(1)
}

func (m *mockRequestStore) ListAvailable(ctx context.Context, now time.Time, after *queries.Keyset, limit int32) ([]*matching.Request, error) {
	args := m.Called(ctx, now, after, limit)
	return args.Get(0).([]*matching.Request), args.Error(1)
}

func (m *mockRequestStore) CountExposures(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	args := m.Called(ctx, requestIDs)
	return args.Get(0).(map[uuid.UUID]int), args.Error(1)
}

func (m *mockRequestStore) RecordExposures(ctx context.Context, requestIDs []uuid.UUID, visitorID uuid.UUID, source shared.ExposureSource, at time.Time) error {
	return m.Called(ctx, requestIDs, visitorID, source, at).Error(0)
}

type mockResponseStore struct{ mock.Mock }

func (m *mockResponseStore) ListByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.ResponseView, error) {
	args := m.Called(ctx, requestID)
	return args.Get(0).([]*queries.ResponseView), args.Error(1)
}

func (m *mockResponseStore) FindByVisitor(ctx context.Context, requestID, visitorID uuid.UUID) (*queries.ResponseView, error) {
	args := m.Called(ctx, requestID, visitorID)
	if v := args.Get(0); v != nil {
		return v.(*queries.ResponseView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockRatingStore struct{ mock.Mock }

func (m *mockRatingStore) HasRated(ctx context.Context, requestID, raterID uuid.UUID) (bool, error) {
	args := m.Called(ctx, requestID, raterID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRatingStore) ListForUser(ctx context.Context, ratedID uuid.UUID, after *queries.Keyset, limit int32) ([]*queries.RatingView, error) {
	args := m.Called(ctx, ratedID, after, limit)
	return args.Get(0).([]*queries.RatingView), args.Error(1)
}

func (m *mockRatingStore) SummaryForUser(ctx context.Context, ratedID uuid.UUID) (*queries.RatingSummary, error) {
	args := m.Called(ctx, ratedID)
	if v := args.Get(0); v != nil {
		return v.(*queries.RatingSummary), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*queries.AuthorizedUserView), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCapacityStore struct{ mock.Mock }

func (m *mockCapacityStore) LoadFor(ctx context.Context, visitorID uuid.UUID, now time.Time) (*queries.VisitorLoad, error) {
	args := m.Called(ctx, visitorID, now)
	if v := args.Get(0); v != nil {
		return v.(*queries.VisitorLoad), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCapacityStore) List(ctx context.Context, now time.Time, minActive *int64, after *queries.Keyset, limit int32) ([]*queries.VisitorLoad, error) {
	args := m.Called(ctx, now, minActive, after, limit)
	return args.Get(0).([]*queries.VisitorLoad), args.Error(1)
}

func (m *mockCapacityStore) ListBusiest(ctx context.Context, now time.Time, minActive int64, limit int32) ([]*queries.VisitorLoad, error) {
	args := m.Called(ctx, now, minActive, limit)
	return args.Get(0).([]*queries.VisitorLoad), args.Error(1)
}
